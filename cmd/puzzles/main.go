// Command puzzles solves the clock, dice, hoppers and astro puzzles with a
// shortest-path search and prints the solution step by step.
//
// Usage:
//
//	puzzles [-config file] clock <hours> <start> <end>
//	puzzles [-config file] dice [-dir d] <start> <end> <die>...
//	puzzles [-config file] hoppers <file>
//	puzzles [-config file] astro <file>
//	puzzles [-config file] batch <manifest.yaml>
//
// An unsolvable puzzle is not an error: "No solution" is printed and the
// exit status is 0.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/puzzlesolver/internal/config"
	"github.com/katalvlaran/puzzlesolver/internal/logging"
)

// errUsage is returned after usage has been printed.
var errUsage = errors.New("invalid usage")

const usage = `Usage:
  puzzles [-config file] clock <hours> <start> <end>
  puzzles [-config file] dice [-dir d] <start> <end> <die>...
  puzzles [-config file] hoppers <file>
  puzzles [-config file] astro <file>
  puzzles [-config file] batch <manifest.yaml>
`

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		cancel()
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries what every sub-command needs.
type app struct {
	cfg    *config.Config
	log    *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("puzzles", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "YAML configuration file")
	fs.Usage = func() {
		_, _ = fmt.Fprint(stderr, usage)
		_, _ = fmt.Fprintln(stderr, "\nOptions:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return errUsage
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	log, err := logging.New(stderr, cfg.Log)
	if err != nil {
		return err
	}
	a := &app{cfg: cfg, log: log, stdout: stdout, stderr: stderr}

	cmd, cmdArgs := rest[0], rest[1:]
	switch cmd {
	case config.KindClock, config.KindDice, config.KindHoppers, config.KindAstro:
		j, err := a.parseCommand(cmd, cmdArgs)
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		if err != nil {
			return err
		}
		return a.runOne(ctx, j)
	case "batch":
		if len(cmdArgs) != 1 {
			_, _ = fmt.Fprintln(stderr, "Usage: puzzles batch <manifest.yaml>")
			return errUsage
		}
		return a.runBatch(ctx, cmdArgs[0])
	case "help", "-h", "--help":
		fs.Usage()
		return nil
	default:
		_, _ = fmt.Fprintf(stderr, "Unknown command: %s\n", cmd)
		fs.Usage()
		return errUsage
	}
}

// parseCommand turns sub-command arguments into a job description, the
// same shape batch manifests use.
func (a *app) parseCommand(kind string, args []string) (config.Job, error) {
	fs := flag.NewFlagSet(kind, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	dir := "."
	if kind == config.KindDice {
		fs.StringVar(&dir, "dir", ".", "directory holding die-<name>.txt files")
	}
	if err := fs.Parse(args); err != nil {
		return config.Job{}, err
	}
	rest := fs.Args()

	j := config.Job{Name: kind, Kind: kind}
	switch kind {
	case config.KindClock:
		if len(rest) != 3 {
			_, _ = fmt.Fprintln(a.stderr, "Usage: puzzles clock <hours> <start> <end>")
			return j, errUsage
		}
		j.Args = rest
	case config.KindDice:
		if len(rest) < 3 {
			_, _ = fmt.Fprintln(a.stderr, "Usage: puzzles dice [-dir d] <start> <end> <die>...")
			return j, errUsage
		}
		j.Args, j.Dir = rest, dir
	default:
		if len(rest) != 1 {
			_, _ = fmt.Fprintf(a.stderr, "Usage: puzzles %s <file>\n", kind)
			return j, errUsage
		}
		j.File = rest[0]
	}
	return j, nil
}

// runOne solves a single puzzle and prints its report to stdout.
func (a *app) runOne(ctx context.Context, cj config.Job) error {
	j, err := a.load(cj)
	if err != nil {
		return err
	}
	sum, err := j.solve(ctx, a.stdout)
	if err != nil {
		return err
	}
	a.log.Info("search finished",
		"puzzle", sum.Name,
		"found", sum.Found,
		"steps", sum.Steps,
		"generated", sum.Generated,
		"unique", sum.Unique,
		"elapsed", sum.Elapsed)
	return nil
}
