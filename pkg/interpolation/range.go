package interpolation

import (
	"errors"
	"fmt"
)

var ErrDegenerateTimeRange = errors.New("the time range has zero length")

// Range is a value range bound to a time range.
type Range struct {
	StartValue float32
	EndValue   float32
	StartTime  int32
	EndTime    int32
}

func (r Range) String() string {
	return fmt.Sprintf("[%v@%d .. %v@%d]", r.StartValue, r.StartTime, r.EndValue, r.EndTime)
}

// At is GenerateValue applied to the range.
func (r Range) At(currentTime int32) float32 {
	return GenerateValue(r.StartValue, r.EndValue, r.StartTime, r.EndTime, currentTime)
}

// AtClamped is like At, but currentTime is first limited to the time range,
// so the result never extrapolates.
func (r Range) AtClamped(currentTime int32) float32 {
	return r.At(r.Clamp(currentTime))
}

// Clamp returns the instant of the time range closest to currentTime.
func (r Range) Clamp(currentTime int32) int32 {
	lo, hi := r.StartTime, r.EndTime
	if lo > hi {
		lo, hi = hi, lo
	}
	return min(max(currentTime, lo), hi)
}

func (r Range) IsDegenerate() bool {
	return r.StartTime == r.EndTime
}

// Contains reports whether currentTime is within the time range (bounds
// included), i.e. whether At interpolates rather than extrapolates.
func (r Range) Contains(currentTime int32) bool {
	lo, hi := r.StartTime, r.EndTime
	if lo > hi {
		lo, hi = hi, lo
	}
	return currentTime >= lo && currentTime <= hi
}

// Validate checks the invariant At relies on but never enforces itself.
func (r Range) Validate() error {
	if r.IsDegenerate() {
		return fmt.Errorf("start time %d equals end time %d: %w", r.StartTime, r.EndTime, ErrDegenerateTimeRange)
	}
	return nil
}
