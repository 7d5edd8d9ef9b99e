package instants

import "time"

// Mono is an instant of the monotonic system clock. It is unaffected by
// wall clock steps, which makes it the right default for measuring elapsed
// time within a single process.
type Mono struct {
	t time.Time
}

// Time returns the instant as a time.Time, carrying the monotonic reading.
func (m Mono) Time() time.Time {
	return m.t
}

// Now returns the current monotonic instant.
func (Mono) Now() Mono {
	return Mono{time.Now()}
}

// CheckedAdd returns the instant ahead of m by d, or false if it is not
// representable.
func (m Mono) CheckedAdd(d time.Duration) (Mono, bool) {
	return checkedAddTime(m.t, d, func(t time.Time) Mono { return Mono{t} })
}

// CheckedSub returns the instant behind m by d, or false if it is not
// representable.
func (m Mono) CheckedSub(d time.Duration) (Mono, bool) {
	return checkedSubTime(m.t, d, func(t time.Time) Mono { return Mono{t} })
}

// SaturatingDurationSince returns the duration elapsed from earlier to m,
// or zero if earlier is ahead of m. The monotonic readings are compared
// when both instants carry one.
func (m Mono) SaturatingDurationSince(earlier Mono) time.Duration {
	return saturatingSince(m.t, earlier.t)
}

// AppendHashBytes appends the instant's second and nanosecond readings,
// which are identical for equal instants.
func (m Mono) AppendHashBytes(b []byte) []byte {
	return appendTimeHash(b, m.t)
}
