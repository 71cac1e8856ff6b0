package sampler

import (
	"context"

	"github.com/xaionaro-go/valuegen/pkg/interpolation"
)

// Sampler evaluates a Range at each of the given instants. The i-th
// result corresponds to instants[i].
type Sampler interface {
	Sample(ctx context.Context, r interpolation.Range, instants []int32) ([]float32, error)
}
