/*
Package stopwatch provides a stopwatch value type that accumulates elapsed
time across start/stop cycles, generic over the timekeeping type used to
measure it.

A Stopwatch is a pair of an accumulated elapsed duration and an optional
start instant. It is a plain value: every operation is a pure computation
over a snapshot, there is no locking and no shared state. Callers sharing a
stopwatch across goroutines must synchronize externally.

Timekeeping is pluggable through the Instant interface. The instants
subpackage implements it for the system wall clock, the monotonic clock, a
coarse millisecond clock and a manually advanced clock for deterministic
tests.

Every arithmetic operation comes in three flavors with a uniform overflow
policy:

  - checked: reports failure and leaves the value unmodified
  - saturating: clamps to [0, MaxDuration] and never fails
  - Add/Sub: panics on overflow, as a strict convenience form

Since Go's time.Duration is signed while elapsed time is not, negative
duration arguments are treated as zero throughout the package.

Equality and hashing are defined on the logical value, not on the raw
fields: two stopwatches that trade stored elapsed time for an equivalently
shifted start instant compare equal and hash identically. See Stopwatch.Equal
and Hash.
*/
package stopwatch
