package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridprop/gridgraph"
)

// Exit codes returned by ExitCode.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

var (
	// ErrMissingArgument indicates no input path was given.
	ErrMissingArgument = errors.New("cli: missing input file argument")
	// ErrTooManyArguments indicates more than one positional argument.
	ErrTooManyArguments = errors.New("cli: too many arguments")
)

// IOError reports a failure to open or read the input file.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cli: read %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying os error.
func (e *IOError) Unwrap() error { return e.Err }

// InputPath extracts the single positional argument. prog is used in the
// usage hint carried by the error.
func InputPath(prog string, args []string) (string, error) {
	switch {
	case len(args) == 0:
		return "", fmt.Errorf("%w: usage: %s <input-file>", ErrMissingArgument, prog)
	case len(args) > 1:
		return "", fmt.Errorf("%w: usage: %s <input-file>, got %d arguments", ErrTooManyArguments, prog, len(args))
	}
	return args[0], nil
}

// LoadGrid reads path and parses it as a digit grid. Read failures come back
// as *IOError; parse failures keep their gridgraph error and gain the path.
func LoadGrid(path string) ([][]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	values, err := gridgraph.ParseDigits(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}

// ExitCode maps a run error to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrMissingArgument), errors.Is(err, ErrTooManyArguments):
		return ExitUsage
	default:
		return ExitFailure
	}
}

// NewLogger returns a text logger at info level writing to w.
func NewLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return log
}
