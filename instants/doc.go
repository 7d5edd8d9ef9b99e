/*
Package instants implements the stopwatch.Instant timekeeping capability for
the system clocks and for a deterministic test clock.

  - Mono: the monotonic system clock, the right default for measuring
    elapsed time.
  - Wall: the wall clock, without a monotonic reading. Subject to clock
    steps; the stopwatch only guards against negative intervals.
  - Coarse: the wall clock truncated to millisecond resolution.
  - Manual: a paused clock advanced by hand, for deterministic tests.

The package also exports stopwatch aliases bound to each instant type, Sw
being the monotonic one.
*/
package instants
