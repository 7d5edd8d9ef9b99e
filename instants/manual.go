package instants

import (
	"encoding/binary"
	"time"
)

// Manual is a deterministic instant for tests: an offset from a fixed
// origin, advanced only by explicit arithmetic. Now behaves like a paused
// clock and always returns the origin.
//
// Its domain is [0, stopwatch.MaxDuration] from the origin, so CheckedSub
// fails near the origin, which makes it easy to construct stopwatches in
// every canonical class on purpose.
type Manual time.Duration

// Now returns the origin. The manual clock does not tick on its own.
func (Manual) Now() Manual {
	return 0
}

// CheckedAdd returns the instant ahead of m by d, or false if it leaves the
// domain.
func (m Manual) CheckedAdd(d time.Duration) (Manual, bool) {
	if d < 0 {
		d = 0
	}
	sum := time.Duration(m) + d
	if sum < time.Duration(m) {
		return 0, false
	}
	return Manual(sum), true
}

// CheckedSub returns the instant behind m by d, or false if it precedes the
// origin.
func (m Manual) CheckedSub(d time.Duration) (Manual, bool) {
	if d < 0 {
		d = 0
	}
	if d > time.Duration(m) {
		return 0, false
	}
	return m - Manual(d), true
}

// SaturatingDurationSince returns the duration elapsed from earlier to m,
// or zero if earlier is ahead of m.
func (m Manual) SaturatingDurationSince(earlier Manual) time.Duration {
	if earlier >= m {
		return 0
	}
	return time.Duration(m - earlier)
}

// AppendHashBytes appends the instant's offset from the origin.
func (m Manual) AppendHashBytes(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, uint64(m))
}
