package stopwatch

import "time"

// Instant is the timekeeping capability used by a Stopwatch. It is
// implemented by opaque, copyable point-in-time types.
//
// The type parameter is the implementing type itself, for example:
//
//	type Mono struct{ ... }
//	func (Mono) Now() Mono { ... }
//	// Mono satisfies Instant[Mono]
//
// Now must be callable on the zero value of the implementing type, since a
// stopped stopwatch holds no meaningful instant to call it on.
//
// No ordering operation is assumed to exist between two instants. Where the
// stopwatch needs to order them, it compares the two directional
// SaturatingDurationSince results instead.
type Instant[T any] interface {
	// Now returns the current instant.
	Now() T

	// CheckedAdd returns the instant ahead of the receiver by d, or false
	// if that instant is not representable.
	CheckedAdd(d time.Duration) (T, bool)

	// CheckedSub returns the instant behind the receiver by d, or false if
	// that instant is not representable.
	CheckedSub(d time.Duration) (T, bool)

	// SaturatingDurationSince returns the duration elapsed from earlier to
	// the receiver, or zero if earlier is ahead of the receiver. It never
	// returns a negative duration.
	SaturatingDurationSince(earlier T) time.Duration
}

// HashableInstant is an Instant whose values can contribute to a hash.
//
// AppendHashBytes must append identical bytes for any two instants that
// compare equal, meaning SaturatingDurationSince yields zero in both
// directions. Hash relies on this to guarantee that equal stopwatches hash
// equal.
type HashableInstant[T any] interface {
	Instant[T]

	// AppendHashBytes appends an equality-compatible binary form of the
	// instant to b and returns the extended slice.
	AppendHashBytes(b []byte) []byte
}
