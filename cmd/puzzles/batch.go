package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/puzzlesolver/internal/config"
	"github.com/katalvlaran/puzzlesolver/internal/report"
)

// runBatch solves every job of the manifest at path, at most
// batch.parallelism at a time. Reports are printed in manifest order once
// all jobs have finished, followed by a summary table. A failed job does
// not stop the others; an interrupt does.
func (a *app) runBatch(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	m, err := config.Load(path)
	if err != nil {
		return err
	}
	jobs := m.Batch.Jobs
	if len(jobs) == 0 {
		return fmt.Errorf("%s: no batch jobs", path)
	}

	summaries := make([]report.Summary, len(jobs))
	outputs := make([]bytes.Buffer, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.Batch.Parallelism)
	for i, cj := range jobs {
		g.Go(func() error {
			summaries[i] = report.Summary{Name: cj.Name, Kind: cj.Kind}
			j, err := a.load(cj)
			if err != nil {
				summaries[i].Err = err
				a.log.Warn("job failed", "job", cj.Name, "error", err)
				return nil
			}
			sum, err := j.solve(gctx, &outputs[i])
			summaries[i] = sum
			if err != nil {
				a.log.Warn("job failed", "job", cj.Name, "error", err)
			}
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for i := range jobs {
		if summaries[i].Err != nil {
			failed++
			continue
		}
		if _, err := fmt.Fprintf(a.stdout, "== %s ==\n%s\n", jobs[i].Name, outputs[i].String()); err != nil {
			return err
		}
	}
	if err := report.WriteSummary(a.stdout, summaries); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d batch jobs failed", failed, len(jobs))
	}
	return nil
}
