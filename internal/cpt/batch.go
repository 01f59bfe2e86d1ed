package cpt

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/rcliao/gef-cpt/internal/model"
)

// Input is one file handed to ParseBatch.
type Input struct {
	Name string
	Data []byte
}

// Result holds the outcome for one Input.
type Result struct {
	Name    string
	Profile model.Profile
	Err     error
}

// ParseBatch parses inputs concurrently with at most workers in flight.
// Results are returned in input order. A failing file never stops the
// others; only ctx cancellation does, and inputs not yet started then carry
// the context error.
func ParseBatch(ctx context.Context, inputs []Input, workers int) []Result {
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, in := range inputs {
		results[i].Name = in.Name
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			p, err := ParseFile(in.Name, in.Data)
			results[i].Profile, results[i].Err = p, err
			if err != nil {
				slog.Warn("cpt parse failed", "file", in.Name, "err", err)
			} else {
				slog.Debug("cpt parsed", "file", in.Name, "rows", p.Rows())
			}
			return nil
		})
	}
	g.Wait()
	return results
}
