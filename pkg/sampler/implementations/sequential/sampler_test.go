package sequential

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/valuegen/pkg/interpolation"
)

func TestSample(t *testing.T) {
	r := interpolation.Range{StartValue: 0, EndValue: 10, StartTime: 0, EndTime: 100}
	values, err := New().Sample(context.Background(), r, []int32{0, 50, 100, 150})
	require.NoError(t, err)
	require.Equal(t, []float32{0, 5, 10, 15}, values)
}

func TestSample_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Sample(ctx, interpolation.Range{EndTime: 1}, []int32{0})
	require.ErrorIs(t, err, context.Canceled)
}
