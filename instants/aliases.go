package instants

import "github.com/tickwork/stopwatch"

// Stopwatch aliases bound to the instant types of this package.
type (
	// Sw is a stopwatch on the monotonic system clock.
	Sw = stopwatch.Stopwatch[Mono]

	// SystemSw is a stopwatch on the system wall clock.
	SystemSw = stopwatch.Stopwatch[Wall]

	// CoarseSw is a stopwatch on the coarse millisecond clock.
	CoarseSw = stopwatch.Stopwatch[Coarse]

	// ManualSw is a stopwatch on the manual test clock.
	ManualSw = stopwatch.Stopwatch[Manual]
)
