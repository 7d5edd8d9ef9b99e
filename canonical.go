package stopwatch

import (
	"encoding/binary"
	"time"

	xxhash "github.com/cespare/xxhash/v2"
)

// canonical is the normalized representative of a stopwatch state, used for
// equality and hashing only. The raw (elapsed, start) pair is not unique per
// logical value: shifting duration from elapsed into an earlier start yields
// an observably identical stopwatch. Canonicalization folds the elapsed time
// entirely into the start instant when that instant is representable.
type canonical[T Instant[T]] struct {
	kind canonicalKind

	// payload of canonicalStopped
	elapsed time.Duration

	// payload of canonicalBounded: the virtual start had elapsed been zero
	point T
}

type canonicalKind uint8

const (
	canonicalStopped canonicalKind = iota
	canonicalBounded

	// canonicalUnbounded covers running stopwatches whose start minus
	// elapsed is not representable in the instant domain. The elapsed/start
	// split is unrecoverable there, so all such stopwatches are treated as
	// one equivalence class; instants are too opaque to split it further.
	canonicalUnbounded
)

func canonicalize[T Instant[T]](s Stopwatch[T]) canonical[T] {
	if !s.running {
		return canonical[T]{kind: canonicalStopped, elapsed: s.elapsed}
	}
	if virtual, ok := s.start.CheckedSub(s.elapsed); ok {
		return canonical[T]{kind: canonicalBounded, point: virtual}
	}
	return canonical[T]{kind: canonicalUnbounded}
}

// instantEq reports whether two instants denote the same point in time,
// derived from the zero-floor difference in both directions.
func instantEq[T Instant[T]](a, b T) bool {
	return a.SaturatingDurationSince(b) == 0 && b.SaturatingDurationSince(a) == 0
}

func (c canonical[T]) equal(o canonical[T]) bool {
	if c.kind != o.kind {
		return false
	}
	switch c.kind {
	case canonicalStopped:
		return c.elapsed == o.elapsed
	case canonicalBounded:
		return instantEq(c.point, o.point)
	default:
		return true
	}
}

// Equal reports whether two stopwatches represent the same logical value:
// both running or both stopped, with equal elapsed time trajectories. It is
// independent of the time of observation and of how the internal components
// split elapsed time against the start instant.
func (s Stopwatch[T]) Equal(other Stopwatch[T]) bool {
	return canonicalize(s).equal(canonicalize(other))
}

// Hash returns a 64-bit hash of the stopwatch's logical value, such that
// stopwatches comparing Equal hash identically. The instant type must
// implement HashableInstant.
func Hash[T HashableInstant[T]](s Stopwatch[T]) uint64 {
	c := canonicalize(s)

	b := make([]byte, 0, 16)
	b = append(b, byte(c.kind))
	switch c.kind {
	case canonicalStopped:
		b = binary.BigEndian.AppendUint64(b, uint64(c.elapsed))
	case canonicalBounded:
		b = c.point.AppendHashBytes(b)
	case canonicalUnbounded:
		// tag only
	}
	return xxhash.Sum64(b)
}
