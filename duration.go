package stopwatch

import "time"

// MaxDuration is the upper bound of the elapsed time domain. Saturating
// operations clamp to it, checked operations fail instead of exceeding it.
const MaxDuration time.Duration = 1<<63 - 1

// clampDur maps negative durations to zero. The elapsed time domain is
// [0, MaxDuration]; time.Duration just happens to be signed.
func clampDur(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}

// addDur adds two non-negative durations, reporting overflow.
func addDur(a, b time.Duration) (time.Duration, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}

// saturatingAddDur adds two non-negative durations, clamping to MaxDuration.
func saturatingAddDur(a, b time.Duration) time.Duration {
	if sum, ok := addDur(a, b); ok {
		return sum
	}
	return MaxDuration
}

// subDur subtracts b from a, both non-negative, reporting underflow.
func subDur(a, b time.Duration) (time.Duration, bool) {
	if b > a {
		return 0, false
	}
	return a - b, true
}

// saturatingSubDur subtracts b from a, both non-negative, flooring at zero.
func saturatingSubDur(a, b time.Duration) time.Duration {
	if diff, ok := subDur(a, b); ok {
		return diff
	}
	return 0
}
