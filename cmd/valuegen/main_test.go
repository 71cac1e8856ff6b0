package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/valuegen/pkg/interpolation"
)

func TestValidateFlags(t *testing.T) {
	ok := interpolation.Range{StartValue: 0, EndValue: 10, StartTime: 0, EndTime: 100}
	degenerate := interpolation.Range{StartValue: 0, EndValue: 10, StartTime: 5, EndTime: 5}

	require.NoError(t, validateFlags(ok, 1, 1, true))
	require.NoError(t, validateFlags(degenerate, 1, 0, false))

	err := validateFlags(degenerate, 1, 1, true)
	require.Error(t, err)
	require.True(t, errors.Is(err, interpolation.ErrDegenerateTimeRange))

	err = validateFlags(degenerate, 0, -1, true)
	var mErr *multierror.Error
	require.True(t, errors.As(err, &mErr))
	require.Len(t, mErr.Errors, 3)
}

func TestWriteValues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeValues(&buf, []int32{0, 50, 150}, []float32{0, 5, 15}))
	require.Equal(t, "0\t0\n50\t5\n150\t15\n", buf.String())

	require.Error(t, writeValues(&buf, []int32{0}, nil))
}

func TestNewSampler(t *testing.T) {
	r := interpolation.Range{StartValue: 0, EndValue: 10, StartTime: 0, EndTime: 100}
	for _, workers := range []int{0, 1, 4} {
		s, err := newSampler(workers)
		require.NoError(t, err)

		values, err := s.Sample(context.Background(), r, []int32{50, 150})
		require.NoError(t, err)
		require.Equal(t, []float32{5, 15}, values)
	}
}
