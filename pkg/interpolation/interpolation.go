package interpolation

// GenerateValue returns the value linearly interpolated between startValue
// and endValue at currentTime, where startValue corresponds to startTime and
// endValue to endTime.
//
// The progress is not clamped, so instants outside of [startTime, endTime]
// extrapolate. The caller must ensure startTime != endTime: a zero-length time
// range yields a non-finite result (±Inf or NaN) instead of an error.
func GenerateValue(
	startValue, endValue float32,
	startTime, endTime, currentTime int32,
) float32 {
	return Blend(startValue, endValue, Progress(startTime, endTime, currentTime))
}

// Progress returns how far currentTime has advanced through
// [startTime, endTime]: 0 at startTime, 1 at endTime.
//
// The instants are widened to float64 before the subtraction, so distant
// int32 timestamps do not wrap around.
func Progress(startTime, endTime, currentTime int32) float64 {
	return (float64(currentTime) - float64(startTime)) / (float64(endTime) - float64(startTime))
}

// Blend returns the weighted average startValue*(1-t) + endValue*t.
func Blend(startValue, endValue float32, t float64) float32 {
	return float32(float64(startValue)*(1-t) + float64(endValue)*t)
}
