package instants

import "time"

// coarseResolution is the tick size of the coarse clock.
const coarseResolution = time.Millisecond

// Coarse is a low-resolution instant of the wall clock, truncated to
// millisecond ticks. Reading it is as cheap as reading Wall here; the type
// exists for interoperability with systems that only persist or exchange
// millisecond timestamps.
type Coarse struct {
	t time.Time
}

// CoarseAt returns the coarse instant for the given time, truncated to the
// coarse resolution.
func CoarseAt(t time.Time) Coarse {
	return Coarse{t.Round(0).Truncate(coarseResolution)}
}

// Time returns the instant as a time.Time.
func (c Coarse) Time() time.Time {
	return c.t
}

// Now returns the current coarse instant.
func (Coarse) Now() Coarse {
	return CoarseAt(time.Now())
}

// CheckedAdd returns the instant ahead of c by d rounded to the coarse
// resolution, or false if it is not representable.
func (c Coarse) CheckedAdd(d time.Duration) (Coarse, bool) {
	return checkedAddTime(c.t, d.Round(coarseResolution), func(t time.Time) Coarse { return Coarse{t} })
}

// CheckedSub returns the instant behind c by d rounded to the coarse
// resolution, or false if it is not representable.
func (c Coarse) CheckedSub(d time.Duration) (Coarse, bool) {
	return checkedSubTime(c.t, d.Round(coarseResolution), func(t time.Time) Coarse { return Coarse{t} })
}

// SaturatingDurationSince returns the duration elapsed from earlier to c,
// or zero if earlier is ahead of c.
func (c Coarse) SaturatingDurationSince(earlier Coarse) time.Duration {
	return saturatingSince(c.t, earlier.t)
}

// AppendHashBytes appends the instant's second and nanosecond readings,
// which are identical for equal instants.
func (c Coarse) AppendHashBytes(b []byte) []byte {
	return appendTimeHash(b, c.t)
}
