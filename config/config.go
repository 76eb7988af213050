package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mirage/extrapolate"
)

// DefaultInput is the input path used when none is configured.
const DefaultInput = "input.txt"

// Config holds the settings of one run.
type Config struct {
	Input   string // path of the histories file
	Mode    string // next | previous (or an alias accepted by extrapolate.ParseDirection)
	Workers int    // solver goroutines, ≥ 1
	Verbose bool   // debug logging on stderr
	Stats   bool   // print a value summary on stderr
}

// Default returns the settings of a bare invocation.
func Default() Config {
	return Config{
		Input:   DefaultInput,
		Mode:    extrapolate.Forward.String(),
		Workers: 1,
	}
}

// Direction resolves Mode.
func (c Config) Direction() (extrapolate.Direction, error) {
	d, err := extrapolate.ParseDirection(c.Mode)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrUnknownMode, c.Mode)
	}

	return d, nil
}

// Validate checks Mode, Workers and Input.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.Direction(); err != nil {
		errs = append(errs, err)
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("%w, got %d", ErrBadWorkers, c.Workers))
	}
	if c.Input == "" {
		errs = append(errs, errors.New("config: input path is empty"))
	}

	return errors.Join(errs...)
}
