package parallel

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/observability"
	"github.com/xaionaro-go/valuegen/pkg/interpolation"
	"github.com/xaionaro-go/valuegen/pkg/sampler"
)

const (
	// MinChunkSize is the smallest amount of instants handed to a single
	// worker; smaller inputs are not worth a goroutine each.
	MinChunkSize = 1024

	ctxCheckInterval = 4096
)

// Sampler splits the instants into contiguous chunks and evaluates each
// chunk in its own goroutine. GenerateValue keeps no state, so the workers
// share nothing but the output slice, each writing its own region.
//
// A non-positive Workers means runtime.GOMAXPROCS(0).
type Sampler struct {
	Workers int
}

var _ sampler.Sampler = (*Sampler)(nil)

// New returns a Sampler with the given amount of workers; zero means
// runtime.GOMAXPROCS(0).
func New(workers int) (*Sampler, error) {
	if workers < 0 {
		return nil, fmt.Errorf("the amount of workers cannot be negative, but is %d", workers)
	}
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Sampler{
		Workers: workers,
	}, nil
}

func (s *Sampler) Sample(
	ctx context.Context,
	r interpolation.Range,
	instants []int32,
) ([]float32, error) {
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunkSize := max((len(instants)+workers-1)/workers, MinChunkSize)
	logger.Tracef(ctx, "Sample(%s, %d instants): workers:%d chunkSize:%d", r, len(instants), workers, chunkSize)

	result := make([]float32, len(instants))
	var wg sync.WaitGroup
	for lo := 0; lo < len(instants); lo += chunkSize {
		hi := min(lo+chunkSize, len(instants))
		wg.Add(1)
		observability.Go(ctx, func() {
			defer wg.Done()
			sampleChunk(ctx, r, instants[lo:hi], result[lo:hi])
		})
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func sampleChunk(
	ctx context.Context,
	r interpolation.Range,
	instants []int32,
	out []float32,
) {
	for i, ts := range instants {
		if i%ctxCheckInterval == 0 && ctx.Err() != nil {
			return
		}
		out[i] = r.At(ts)
	}
}
