package aoc

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aoclive/aoc/internal/errors"
	"github.com/aoclive/aoc/internal/logger"
)

// ErrSampleMismatch means a day produced the wrong answer for one of its
// samples.
var ErrSampleMismatch = errors.New("sample mismatch")

// Result is one solved part.
type Result struct {
	Day     int
	Part    int
	Answer  int
	Samples int // samples checked before the real input
	Elapsed time.Duration
}

func (r Result) String() string {
	return fmt.Sprintf("day %d part %d: %d", r.Day, r.Part, r.Answer)
}

// CheckSamples solves every sample of part and reports how many it ran.
func (d *Day) CheckSamples(part int) (int, error) {
	samples := d.SamplesFor(part)
	for _, s := range samples {
		got, err := d.Solve(part, []byte(s.Input))
		if err != nil {
			return 0, errors.Wrapf(err, "sample %s", Or(s.Name, "input"))
		}
		if got != s.Want {
			return 0, errors.Wrapf(ErrSampleMismatch, "day %d part %d %s: got %d, want %d",
				d.Number, part, Or(s.Name, "sample"), got, s.Want)
		}
	}
	return len(samples), nil
}

// Runner solves days against the inputs in a directory.
type Runner struct {
	Inputs   string
	Samples  bool               // check samples first
	Parallel int                // days solved at once by RunAll
	Log      *zap.SugaredLogger // defaults to logger.Logger
}

func (r *Runner) log() *zap.SugaredLogger {
	if r.Log == nil {
		return logger.Logger
	}
	return r.Log
}

// Run solves the given parts of d, or all of them when parts is empty.
func (r *Runner) Run(ctx context.Context, d *Day, parts ...int) ([]Result, error) {
	if len(parts) == 0 {
		for p := range d.Parts {
			parts = append(parts, p+1)
		}
	}

	var input []byte
	var results []Result
	for _, part := range parts {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res := Result{Day: d.Number, Part: part}

		if r.Samples {
			n, err := d.CheckSamples(part)
			if err != nil {
				return results, err
			}
			res.Samples = n
			if n == 0 {
				r.log().Warnw("no sample", "day", d.Number, "part", part)
			} else {
				r.log().Infow("samples ok", "day", d.Number, "part", part, "count", n)
			}
		}

		if input == nil {
			var err error
			if input, err = ReadInput(r.Inputs, d.Number); err != nil {
				return results, err
			}
		}
		start := time.Now()
		v, err := d.Solve(part, input)
		if err != nil {
			return results, err
		}
		res.Answer = v
		res.Elapsed = time.Since(start)
		r.log().Infow("solved", "day", d.Number, "part", part, "elapsed", res.Elapsed)
		results = append(results, res)
	}
	return results, nil
}

// RunAll solves every part of every day, at most r.Parallel days at a time.
// Results come back in day and part order. The first failure cancels the
// days not yet started.
func (r *Runner) RunAll(ctx context.Context, all []*Day) ([]Result, error) {
	perDay := make([][]Result, len(all))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.Parallel, 1))
	for i, d := range all {
		g.Go(func() error {
			res, err := r.Run(ctx, d)
			perDay[i] = res
			return err
		})
	}
	err := g.Wait()

	var results []Result
	for _, res := range perDay {
		results = append(results, res...)
	}
	return results, err
}
