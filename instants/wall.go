package instants

import (
	"encoding/binary"
	"time"
)

// Wall is an instant of the system wall clock, stripped of the monotonic
// reading. Unlike Mono it survives serialization boundaries and process
// restarts, but it is not monotonic: the clock may step backwards.
type Wall struct {
	t time.Time
}

// WallAt returns the wall instant for the given time.
func WallAt(t time.Time) Wall {
	return Wall{t.Round(0)}
}

// Time returns the instant as a time.Time.
func (w Wall) Time() time.Time {
	return w.t
}

// Now returns the current wall instant.
func (Wall) Now() Wall {
	return WallAt(time.Now())
}

// CheckedAdd returns the instant ahead of w by d, or false if it is not
// representable.
func (w Wall) CheckedAdd(d time.Duration) (Wall, bool) {
	return checkedAddTime(w.t, d, func(t time.Time) Wall { return Wall{t} })
}

// CheckedSub returns the instant behind w by d, or false if it is not
// representable.
func (w Wall) CheckedSub(d time.Duration) (Wall, bool) {
	return checkedSubTime(w.t, d, func(t time.Time) Wall { return Wall{t} })
}

// SaturatingDurationSince returns the duration elapsed from earlier to w,
// or zero if earlier is ahead of w.
func (w Wall) SaturatingDurationSince(earlier Wall) time.Duration {
	return saturatingSince(w.t, earlier.t)
}

// AppendHashBytes appends the instant's second and nanosecond readings,
// which are identical for equal instants.
func (w Wall) AppendHashBytes(b []byte) []byte {
	return appendTimeHash(b, w.t)
}

func checkedAddTime[T any](t time.Time, d time.Duration, wrap func(time.Time) T) (T, bool) {
	if d < 0 {
		d = 0
	}
	sum := t.Add(d)
	if d > 0 && !sum.After(t) {
		// the time type wrapped around
		var zero T
		return zero, false
	}
	return wrap(sum), true
}

func checkedSubTime[T any](t time.Time, d time.Duration, wrap func(time.Time) T) (T, bool) {
	if d < 0 {
		d = 0
	}
	diff := t.Add(-d)
	if d > 0 && !diff.Before(t) {
		var zero T
		return zero, false
	}
	return wrap(diff), true
}

func saturatingSince(t, earlier time.Time) time.Duration {
	d := t.Sub(earlier)
	if d < 0 {
		return 0
	}
	return d
}

func appendTimeHash(b []byte, t time.Time) []byte {
	b = binary.BigEndian.AppendUint64(b, uint64(t.Unix()))
	return binary.BigEndian.AppendUint32(b, uint32(t.Nanosecond()))
}
