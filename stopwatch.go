package stopwatch

import "time"

// Stopwatch measures and accumulates elapsed time between starts and stops,
// using any timekeeping type that implements Instant.
//
// The zero value is a stopped stopwatch with zero elapsed time.
//
// Note that two stopwatches whose internal components differ can still be
// equal according to Equal and Hash: shifting a duration out of the
// accumulated elapsed time and into an earlier start instant does not change
// the logical value.
type Stopwatch[T Instant[T]] struct {
	elapsed time.Duration
	start   T
	running bool
}

func now[T Instant[T]]() T {
	var zero T
	return zero.Now()
}

// New returns a stopped stopwatch with zero elapsed time.
func New[T Instant[T]]() Stopwatch[T] {
	return WithElapsed[T](0)
}

// NewStarted returns a running stopwatch with zero elapsed time, started
// now.
func NewStarted[T Instant[T]]() Stopwatch[T] {
	return WithElapsedStarted[T](0)
}

// NewStartedAt returns a running stopwatch with zero elapsed time, started
// at the given instant.
func NewStartedAt[T Instant[T]](start T) Stopwatch[T] {
	return Stopwatch[T]{start: start, running: true}
}

// WithElapsed returns a stopped stopwatch with the given elapsed time.
func WithElapsed[T Instant[T]](elapsed time.Duration) Stopwatch[T] {
	return Stopwatch[T]{elapsed: clampDur(elapsed)}
}

// WithElapsedStarted returns a running stopwatch with the given elapsed
// time, started now.
func WithElapsedStarted[T Instant[T]](elapsed time.Duration) Stopwatch[T] {
	return Stopwatch[T]{elapsed: clampDur(elapsed), start: now[T](), running: true}
}

// FromRaw returns a stopwatch assembled from its raw components. A nil
// start produces a stopped stopwatch, a non-nil start a running one.
func FromRaw[T Instant[T]](elapsed time.Duration, start *T) Stopwatch[T] {
	s := Stopwatch[T]{elapsed: clampDur(elapsed)}
	if start != nil {
		s.start = *start
		s.running = true
	}
	return s
}

// RawParts returns the stopwatch's raw components: the accumulated elapsed
// time of completed intervals, and the start instant of the interval in
// progress, or nil if the stopwatch is stopped.
func (s Stopwatch[T]) RawParts() (time.Duration, *T) {
	if !s.running {
		return s.elapsed, nil
	}
	start := s.start
	return s.elapsed, &start
}

// StartTime returns the instant at which the interval in progress began,
// and whether the stopwatch is running at all.
func (s Stopwatch[T]) StartTime() (T, bool) {
	return s.start, s.running
}

// IsRunning reports whether the stopwatch is running.
func (s Stopwatch[T]) IsRunning() bool {
	return s.running
}

// IsStopped reports whether the stopwatch is stopped.
func (s Stopwatch[T]) IsStopped() bool {
	return !s.running
}

// Elapsed returns the total time elapsed, saturating to MaxDuration on
// overflow.
func (s Stopwatch[T]) Elapsed() time.Duration {
	return s.ElapsedAt(now[T]())
}

// ElapsedAt returns the total time elapsed, measured as if the current time
// were anchor, saturating to MaxDuration on overflow.
//
// An anchor earlier than the running interval's start contributes nothing:
// the result is exactly the accumulated elapsed time of completed intervals.
func (s Stopwatch[T]) ElapsedAt(anchor T) time.Duration {
	if d, ok := s.CheckedElapsedAt(anchor); ok {
		return d
	}
	return MaxDuration
}

// CheckedElapsed returns the total time elapsed, or false on overflow.
func (s Stopwatch[T]) CheckedElapsed() (time.Duration, bool) {
	return s.CheckedElapsedAt(now[T]())
}

// CheckedElapsedAt returns the total time elapsed, measured as if the
// current time were anchor, or false on overflow.
func (s Stopwatch[T]) CheckedElapsedAt(anchor T) (time.Duration, bool) {
	if !s.running {
		return s.elapsed, true
	}
	return addDur(s.elapsed, anchor.SaturatingDurationSince(s.start))
}

// Start starts measuring the time elapsed, from now.
func (s *Stopwatch[T]) Start() {
	s.StartAt(now[T]())
}

// StartAt starts measuring the time elapsed as if the current time were
// anchor. If the stopwatch is already running, the prior start is
// overwritten and the interval in progress is discarded, not accumulated.
//
// If anchor is ahead of the present, Elapsed reports no progress until the
// current time catches up to it.
func (s *Stopwatch[T]) StartAt(anchor T) {
	s.start = anchor
	s.running = true
}

// Stop stops measuring the time elapsed since the last start, folding the
// interval into the accumulated elapsed time. No-op if already stopped.
func (s *Stopwatch[T]) Stop() {
	s.StopAt(now[T]())
}

// StopAt stops the stopwatch as if the current time were anchor. An anchor
// earlier than the last start contributes nothing to the elapsed time.
// Overflow saturates to MaxDuration; use CheckedStopAt to detect it.
func (s *Stopwatch[T]) StopAt(anchor T) {
	if !s.running {
		return
	}
	interval := anchor.SaturatingDurationSince(s.start)
	s.running = false
	s.elapsed = saturatingAddDur(s.elapsed, interval)
}

// CheckedStop tries to stop the stopwatch. If the new elapsed time would
// overflow, it reports false and leaves the stopwatch unmodified.
func (s *Stopwatch[T]) CheckedStop() bool {
	return s.CheckedStopAt(now[T]())
}

// CheckedStopAt tries to stop the stopwatch as if the current time were
// anchor. If the new elapsed time would overflow, it reports false and
// leaves the stopwatch unmodified.
func (s *Stopwatch[T]) CheckedStopAt(anchor T) bool {
	if !s.running {
		return true
	}
	sum, ok := addDur(s.elapsed, anchor.SaturatingDurationSince(s.start))
	if !ok {
		return false
	}
	s.elapsed = sum
	s.running = false
	return true
}

// Toggle starts the stopwatch if stopped and stops it if running.
func (s *Stopwatch[T]) Toggle() {
	s.ToggleAt(now[T]())
}

// ToggleAt toggles between running and stopped as if the current time were
// anchor, with StopAt's saturating overflow behavior.
func (s *Stopwatch[T]) ToggleAt(anchor T) {
	if s.running {
		s.StopAt(anchor)
	} else {
		s.StartAt(anchor)
	}
}

// CheckedToggle toggles between running and stopped. If stopping would
// overflow the elapsed time, it reports false and leaves the stopwatch
// unmodified.
func (s *Stopwatch[T]) CheckedToggle() bool {
	return s.CheckedToggleAt(now[T]())
}

// CheckedToggleAt toggles between running and stopped as if the current
// time were anchor. If stopping would overflow the elapsed time, it reports
// false and leaves the stopwatch unmodified.
func (s *Stopwatch[T]) CheckedToggleAt(anchor T) bool {
	if s.running {
		return s.CheckedStopAt(anchor)
	}
	s.StartAt(anchor)
	return true
}

// Reset stops the stopwatch and resets the elapsed time to zero.
func (s *Stopwatch[T]) Reset() {
	*s = New[T]()
}

// ResetInPlace resets the elapsed time to zero without affecting whether
// the stopwatch is running; a running interval restarts now.
func (s *Stopwatch[T]) ResetInPlace() {
	s.ResetInPlaceAt(now[T]())
}

// ResetInPlaceAt resets the elapsed time to zero without affecting whether
// the stopwatch is running; a running interval restarts at the given
// instant.
func (s *Stopwatch[T]) ResetInPlaceAt(start T) {
	s.SetInPlaceAt(0, start)
}

// Set stops the stopwatch and sets the total elapsed time to d.
func (s *Stopwatch[T]) Set(d time.Duration) {
	*s = WithElapsed[T](d)
}

// SetInPlace sets the total elapsed time to d without affecting whether the
// stopwatch is running; a running interval restarts now.
func (s *Stopwatch[T]) SetInPlace(d time.Duration) {
	s.SetInPlaceAt(d, now[T]())
}

// SetInPlaceAt sets the total elapsed time to d as if the current time were
// anchor, without affecting whether the stopwatch is running.
func (s *Stopwatch[T]) SetInPlaceAt(d time.Duration, anchor T) {
	wasRunning := s.running
	s.Set(d)
	if wasRunning {
		s.StartAt(anchor)
	}
}

// Replace stops the stopwatch and sets the total elapsed time to d,
// returning the previous elapsed time.
func (s *Stopwatch[T]) Replace(d time.Duration) time.Duration {
	return s.ReplaceAt(d, now[T]())
}

// ReplaceAt stops the stopwatch and sets the total elapsed time to d,
// returning the previous elapsed time measured as if the current time were
// anchor.
func (s *Stopwatch[T]) ReplaceAt(d time.Duration, anchor T) time.Duration {
	old := s.ElapsedAt(anchor)
	s.Set(d)
	return old
}

// SaturatingAdd returns the stopwatch with d added to the accumulated
// elapsed time, clamping to MaxDuration on overflow.
func (s Stopwatch[T]) SaturatingAdd(d time.Duration) Stopwatch[T] {
	s.elapsed = saturatingAddDur(s.elapsed, clampDur(d))
	return s
}

// SaturatingSub returns the stopwatch with d subtracted from the total
// elapsed time as of now, flooring at zero on underflow.
func (s Stopwatch[T]) SaturatingSub(d time.Duration) Stopwatch[T] {
	return s.SaturatingSubAt(d, now[T]())
}

// SaturatingSubAt returns the stopwatch with d subtracted from the total
// elapsed time as if the current time were anchor, flooring at zero on
// underflow.
//
// The anchor saturates to the last start instant. A running stopwatch is
// first synchronized: the interval in progress is folded into the elapsed
// time (saturating at MaxDuration) and restarted at the anchor, so the
// subtraction applies to the up-to-date total whether running or stopped.
func (s Stopwatch[T]) SaturatingSubAt(d time.Duration, anchor T) Stopwatch[T] {
	anchor = s.saturateAnchorToStart(anchor)
	s.saturatingSyncElapsedAt(anchor)
	s.elapsed = saturatingSubDur(s.elapsed, clampDur(d))
	return s
}

// CheckedAdd returns the stopwatch with d added to the accumulated elapsed
// time, or false on overflow.
func (s Stopwatch[T]) CheckedAdd(d time.Duration) (Stopwatch[T], bool) {
	sum, ok := addDur(s.elapsed, clampDur(d))
	if !ok {
		return Stopwatch[T]{}, false
	}
	s.elapsed = sum
	return s, true
}

// CheckedSub returns the stopwatch with d subtracted from the total elapsed
// time as of now, or false on overflow or underflow.
func (s Stopwatch[T]) CheckedSub(d time.Duration) (Stopwatch[T], bool) {
	return s.CheckedSubAt(d, now[T]())
}

// CheckedSubAt returns the stopwatch with d subtracted from the total
// elapsed time as if the current time were anchor, or false on overflow or
// underflow.
//
// The anchor saturates to the last start instant. Synchronization follows
// SaturatingSubAt, except that an overflowing interval fold fails instead
// of clamping.
func (s Stopwatch[T]) CheckedSubAt(d time.Duration, anchor T) (Stopwatch[T], bool) {
	anchor = s.saturateAnchorToStart(anchor)
	if !s.checkedSyncElapsedAt(anchor) {
		return Stopwatch[T]{}, false
	}
	diff, ok := subDur(s.elapsed, clampDur(d))
	if !ok {
		return Stopwatch[T]{}, false
	}
	s.elapsed = diff
	return s, true
}

// Add returns the stopwatch with d added to the accumulated elapsed time.
// It panics on overflow; use CheckedAdd or SaturatingAdd for graceful
// handling.
func (s Stopwatch[T]) Add(d time.Duration) Stopwatch[T] {
	out, ok := s.CheckedAdd(d)
	if !ok {
		panic("stopwatch: add overflows elapsed time")
	}
	return out
}

// Sub returns the stopwatch with d subtracted from the total elapsed time
// as of now. It panics on overflow or underflow; use CheckedSub or
// SaturatingSub for graceful handling.
func (s Stopwatch[T]) Sub(d time.Duration) Stopwatch[T] {
	out, ok := s.CheckedSub(d)
	if !ok {
		panic("stopwatch: sub overflows elapsed time")
	}
	return out
}

// saturateAnchorToStart clamps anchor such that when the stopwatch is
// running, start <= anchor. Instants have no ordering operation, so the
// difference is measured in both directions:
//   - anchor < start iff past is nonzero and future is zero
//   - start < anchor iff future is nonzero and past is zero
//   - start == anchor iff both are zero
func (s Stopwatch[T]) saturateAnchorToStart(anchor T) T {
	if !s.running {
		return anchor
	}
	future := anchor.SaturatingDurationSince(s.start)
	past := s.start.SaturatingDurationSince(anchor)
	if future < past {
		return s.start
	}
	return anchor
}

// saturatingSyncElapsedAt folds the running interval into the elapsed time
// and restarts it at anchor, effectively toggling the stopwatch twice.
// Overflow saturates to MaxDuration.
func (s *Stopwatch[T]) saturatingSyncElapsedAt(anchor T) {
	if !s.running {
		return
	}
	s.elapsed = saturatingAddDur(s.elapsed, anchor.SaturatingDurationSince(s.start))
	s.start = anchor
}

// checkedSyncElapsedAt is saturatingSyncElapsedAt with overflow reported as
// false, leaving the stopwatch unmodified.
func (s *Stopwatch[T]) checkedSyncElapsedAt(anchor T) bool {
	if !s.running {
		return true
	}
	sum, ok := addDur(s.elapsed, anchor.SaturatingDurationSince(s.start))
	if !ok {
		return false
	}
	s.elapsed = sum
	s.start = anchor
	return true
}
