package sampler

import (
	"fmt"
)

// MaxInstants limits the length of a sweep returned by Instants.
const MaxInstants = 1 << 24

// Instants returns the instants from startTime towards endTime (inclusive)
// spaced by step. endTime is included only if it is reachable with the step.
// A descending range yields descending instants.
func Instants(startTime, endTime, step int32) ([]int32, error) {
	if step <= 0 {
		return nil, fmt.Errorf("step must be positive, but is %d", step)
	}

	span := int64(endTime) - int64(startTime)
	direction := int64(1)
	if span < 0 {
		direction = -1
		span = -span
	}

	count := span/int64(step) + 1
	if count > MaxInstants {
		return nil, fmt.Errorf("the sweep from %d to %d with step %d has %d instants, which is more than %d", startTime, endTime, step, count, MaxInstants)
	}
	result := make([]int32, 0, count)
	for i := int64(0); i < count; i++ {
		result = append(result, int32(int64(startTime)+direction*i*int64(step)))
	}
	return result, nil
}
