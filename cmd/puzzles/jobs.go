package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/puzzlesolver/bfs"
	"github.com/katalvlaran/puzzlesolver/internal/config"
	"github.com/katalvlaran/puzzlesolver/internal/report"
	"github.com/katalvlaran/puzzlesolver/puzzles/astro"
	"github.com/katalvlaran/puzzlesolver/puzzles/clock"
	"github.com/katalvlaran/puzzlesolver/puzzles/dice"
	"github.com/katalvlaran/puzzlesolver/puzzles/hoppers"
	"github.com/katalvlaran/puzzlesolver/state"
)

// puzzle is a state the command can search and print.
type puzzle[S any] interface {
	state.State[S]
	fmt.Stringer
}

// job is a loaded puzzle ready to be solved. solve writes the report to w.
type job struct {
	solve func(ctx context.Context, w io.Writer) (report.Summary, error)
}

// load builds the starting state described by cj.
func (a *app) load(cj config.Job) (job, error) {
	switch cj.Kind {
	case config.KindClock:
		s, err := clock.Parse(cj.Args)
		if err != nil {
			return job{}, err
		}
		title := fmt.Sprintf("Hours: %d, Start: %d, End: %d", s.Hours(), s.Current(), s.Goal())
		return newJob(a, cj, title, s), nil

	case config.KindDice:
		if len(cj.Args) < 3 {
			return job{}, fmt.Errorf("dice: want start, end and at least one die, got %d args", len(cj.Args))
		}
		s, ds, err := dice.Load(cj.Dir, cj.Args[0], cj.Args[1], cj.Args[2:])
		if err != nil {
			return job{}, err
		}
		var sb strings.Builder
		for _, d := range ds {
			sb.WriteString(d.String())
		}
		fmt.Fprintf(&sb, "Start: %s, End: %s", s.Current(), s.Goal())
		return newJob(a, cj, sb.String(), s), nil

	case config.KindHoppers:
		s, err := hoppers.Load(cj.File)
		if err != nil {
			return job{}, err
		}
		return newJob(a, cj, "File: "+cj.File+"\n"+s.String(), s), nil

	case config.KindAstro:
		s, err := astro.Load(cj.File)
		if err != nil {
			return job{}, err
		}
		return newJob(a, cj, "File: "+cj.File+"\n"+s.String(), s), nil
	}
	return job{}, fmt.Errorf("unknown puzzle kind %q", cj.Kind)
}

func newJob[S puzzle[S]](a *app, cj config.Job, title string, start S) job {
	return job{
		solve: func(ctx context.Context, w io.Writer) (report.Summary, error) {
			return solve(ctx, a, cj, title, start, w)
		},
	}
}

// solve runs one bounded search and reports it. Search limits and the
// timeout come from the configuration; progress is logged per depth.
func solve[S puzzle[S]](ctx context.Context, a *app, cj config.Job, title string, start S, w io.Writer) (report.Summary, error) {
	sum := report.Summary{Name: cj.Name, Kind: cj.Kind}
	parent := ctx
	if t := a.cfg.Search.Timeout; t > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t)
		defer cancel()
	}

	log := a.log.With("puzzle", cj.Name)
	log.Info("search started", "kind", cj.Kind)
	depth := -1
	opts := append(a.cfg.SearchOptions(),
		bfs.WithContext(ctx),
		bfs.WithOnDequeue(func(key string, d int) {
			if d > depth {
				depth = d
				log.Debug("depth reached", "depth", d, "key", key)
			}
		}),
	)

	began := time.Now()
	res, err := bfs.Solve(start, opts...)
	sum.Elapsed = time.Since(began)
	if res != nil {
		sum.Found = res.Found
		sum.Steps = res.Steps()
		sum.Generated = res.Generated
		sum.Unique = res.Unique
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && parent.Err() == nil {
			err = fmt.Errorf("search timed out after %s: %w", a.cfg.Search.Timeout, err)
		}
		sum.Err = err
		return sum, fmt.Errorf("%s: %w", cj.Name, err)
	}

	if err := report.Write(w, title, res); err != nil {
		sum.Err = err
		return sum, fmt.Errorf("%s: %w", cj.Name, err)
	}
	return sum, nil
}
