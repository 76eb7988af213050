// Package app implements the command-line front end shared by the mirage,
// part1 and part2 executables.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/katalvlaran/mirage/builder"
	"github.com/katalvlaran/mirage/config"
	"github.com/katalvlaran/mirage/extrapolate"
	"github.com/katalvlaran/mirage/history"
	"github.com/katalvlaran/mirage/solver"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1 // read, parse or compute failure, unreadable -config file
	ExitUsage = 2 // bad flags or settings values
)

// Program describes one executable.
// A Fixed program always runs in Direction and has no -mode flag.
type Program struct {
	Name      string
	Fixed     bool
	Direction extrapolate.Direction
}

// Mirage is the consolidated executable with a -mode flag.
var Mirage = Program{Name: "mirage"}

// Part1 always predicts the next value.
var Part1 = Program{Name: "part1", Fixed: true, Direction: extrapolate.Forward}

// Part2 always predicts the previous value.
var Part2 = Program{Name: "part2", Fixed: true, Direction: extrapolate.Backward}

// options collects flag values that are not part of config.Config.
type options struct {
	configPath string
	generate   int
	length     int
	degree     int
	seed       int64
}

// Run parses args (without the program name), executes the program and
// returns the process exit code. The answer goes to stdout as "Answer <sum>";
// diagnostics, logs and -stats go to stderr.
func (p Program) Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, opts, err := p.settings(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return ExitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", p.Name, err)
		// an unreadable -config file is a read failure, not misuse
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return ExitError
		}

		return ExitUsage
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if opts.generate > 0 {
		err = generate(stdout, opts)
	} else {
		err = p.solve(ctx, cfg, log, stdout, stderr)
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", p.Name, err)

		return ExitError
	}

	return ExitOK
}

// settings layers defaults, the optional config file and explicit flags.
func (p Program) settings(args []string, stderr io.Writer) (config.Config, options, error) {
	def := config.Default()
	var (
		flagCfg config.Config
		opts    options
	)
	flags := flag.NewFlagSet(p.Name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&flagCfg.Input, "input", def.Input, "histories file, one history per line")
	if !p.Fixed {
		flags.StringVar(&flagCfg.Mode, "mode", def.Mode, "extrapolation mode: next or previous")
	}
	flags.IntVar(&flagCfg.Workers, "workers", def.Workers, "number of solver goroutines")
	flags.BoolVar(&flagCfg.Verbose, "v", def.Verbose, "debug logging on stderr")
	flags.BoolVar(&flagCfg.Stats, "stats", def.Stats, "print a summary of extrapolated values on stderr")
	flags.StringVar(&opts.configPath, "config", "", "optional HCL settings file")
	flags.IntVar(&opts.generate, "generate", 0, "write `N` synthetic histories to stdout and exit")
	flags.IntVar(&opts.length, "length", 21, "values per generated history")
	flags.IntVar(&opts.degree, "degree", builder.DefaultDegree, "polynomial degree of generated histories")
	flags.Int64Var(&opts.seed, "seed", 1, "random seed for -generate")
	if err := flags.Parse(args); err != nil {
		return config.Config{}, options{}, err
	}
	if flags.NArg() > 0 {
		return config.Config{}, options{}, fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	cfg := def
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath, cfg); err != nil {
			return config.Config{}, options{}, err
		}
	}
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = flagCfg.Input
		case "mode":
			cfg.Mode = flagCfg.Mode
		case "workers":
			cfg.Workers = flagCfg.Workers
		case "v":
			cfg.Verbose = flagCfg.Verbose
		case "stats":
			cfg.Stats = flagCfg.Stats
		}
	})
	if p.Fixed {
		cfg.Mode = p.Direction.String()
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, options{}, err
	}

	return cfg, opts, nil
}

// solve reads cfg.Input, runs the solver and prints the answer.
func (p Program) solve(ctx context.Context, cfg config.Config, log *slog.Logger, stdout, stderr io.Writer) error {
	dir, err := cfg.Direction()
	if err != nil {
		return err
	}
	hs, err := history.ReadFile(cfg.Input)
	if err != nil {
		return err
	}
	log.Debug("read input", slog.String("path", cfg.Input), slog.Int("histories", len(hs)))

	res, err := solver.Solve(ctx, hs, solver.Options{
		Direction: dir,
		Workers:   cfg.Workers,
		Logger:    log,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Answer %d\n", res.Sum)
	if cfg.Stats {
		fmt.Fprintf(stderr, "%s\n", res.Summary)
	}

	return nil
}

// generate writes synthetic polynomial histories for -generate.
func generate(stdout io.Writer, opts options) error {
	if opts.degree < 0 {
		return fmt.Errorf("degree must be ≥ 0, got %d", opts.degree)
	}
	hs, err := builder.BuildHistories(opts.generate, opts.length, opts.seed, builder.WithDegree(opts.degree))
	if err != nil {
		return err
	}

	return history.Write(stdout, hs)
}
