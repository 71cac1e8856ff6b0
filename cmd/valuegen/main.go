package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/datacounter"
	"github.com/xaionaro-go/observability"
	"github.com/xaionaro-go/valuegen/pkg/interpolation"
	"github.com/xaionaro-go/valuegen/pkg/sampler"
	"github.com/xaionaro-go/valuegen/pkg/sampler/implementations/parallel"
	"github.com/xaionaro-go/valuegen/pkg/sampler/implementations/sequential"
)

func main() {
	loggerLevel := logger.LevelInfo
	pflag.Var(&loggerLevel, "log-level", "Log level")
	netPprofAddr := pflag.String("net-pprof-listen-addr", "", "an address to listen for incoming net/pprof connections")
	startValue := pflag.Float32("start-value", 0, "the value at --start-time")
	endValue := pflag.Float32("end-value", 1, "the value at --end-time")
	startTime := pflag.Int32("start-time", 0, "the instant of --start-value")
	endTime := pflag.Int32("end-time", 100, "the instant of --end-value")
	at := pflag.Int32Slice("at", nil, "the instants to evaluate at; if empty, the time range is swept with --step")
	step := pflag.Int32("step", 1, "the distance between swept instants")
	clamp := pflag.Bool("clamp", false, "limit the instants to the time range instead of extrapolating")
	strict := pflag.Bool("strict", false, "refuse a zero-length time range instead of printing non-finite values")
	workers := pflag.Int("workers", 1, "the amount of concurrent workers; 0 means GOMAXPROCS")
	pflag.Parse()

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	if *netPprofAddr != "" {
		observability.Go(ctx, func() { l.Error(http.ListenAndServe(*netPprofAddr, nil)) })
	}

	r := interpolation.Range{
		StartValue: *startValue,
		EndValue:   *endValue,
		StartTime:  *startTime,
		EndTime:    *endTime,
	}
	assertNoError(validateFlags(r, *step, *workers, *strict))
	if r.IsDegenerate() {
		logger.Warnf(ctx, "the time range %s has zero length, the values are not finite", r)
	}

	instants := *at
	if len(instants) == 0 {
		var err error
		instants, err = sampler.Instants(r.StartTime, r.EndTime, *step)
		assertNoError(err)
	}

	evalInstants := instants
	if *clamp {
		evalInstants = make([]int32, len(instants))
		for i, ts := range instants {
			evalInstants[i] = r.Clamp(ts)
		}
	}

	s, err := newSampler(*workers)
	assertNoError(err)

	logger.Debugf(ctx, "sampling %s at %d instants using %T", r, len(instants), s)
	values, err := s.Sample(ctx, r, evalInstants)
	assertNoError(err)

	wc := datacounter.NewWriterCounter(os.Stdout)
	assertNoError(writeValues(wc, instants, values))
	logger.Debugf(ctx, "written: %d", wc.Count())
}

func newSampler(workers int) (sampler.Sampler, error) {
	if workers == 1 {
		return sequential.New(), nil
	}
	return parallel.New(workers)
}

func validateFlags(
	r interpolation.Range,
	step int32,
	workers int,
	strict bool,
) error {
	var mErr *multierror.Error
	if step <= 0 {
		mErr = multierror.Append(mErr, fmt.Errorf("--step must be positive, but is %d", step))
	}
	if workers < 0 {
		mErr = multierror.Append(mErr, fmt.Errorf("--workers cannot be negative, but is %d", workers))
	}
	if strict {
		if err := r.Validate(); err != nil {
			mErr = multierror.Append(mErr, fmt.Errorf("invalid time range %s: %w", r, err))
		}
	}
	return mErr.ErrorOrNil()
}

func writeValues(
	w io.Writer,
	instants []int32,
	values []float32,
) error {
	if len(instants) != len(values) {
		return fmt.Errorf("the amount of instants (%d) does not match the amount of values (%d)", len(instants), len(values))
	}
	bw := bufio.NewWriter(w)
	for i, ts := range instants {
		if _, err := fmt.Fprintf(bw, "%d\t%v\n", ts, values[i]); err != nil {
			return fmt.Errorf("unable to write the value for instant %d: %w", ts, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("unable to flush the output: %w", err)
	}
	return nil
}

func assertNoError(err error) {
	if err != nil {
		panic(err)
	}
}
