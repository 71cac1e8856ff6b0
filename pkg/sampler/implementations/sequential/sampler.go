package sequential

import (
	"context"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/valuegen/pkg/interpolation"
	"github.com/xaionaro-go/valuegen/pkg/sampler"
)

// ctxCheckInterval is how many instants are evaluated between checks
// of the context.
const ctxCheckInterval = 4096

type Sampler struct{}

var _ sampler.Sampler = (*Sampler)(nil)

func New() *Sampler {
	return &Sampler{}
}

func (*Sampler) Sample(
	ctx context.Context,
	r interpolation.Range,
	instants []int32,
) ([]float32, error) {
	logger.Tracef(ctx, "Sample(%s, %d instants)", r, len(instants))
	result := make([]float32, len(instants))
	for i, ts := range instants {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		result[i] = r.At(ts)
	}
	return result, nil
}
