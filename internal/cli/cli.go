// Package cli carries the glue shared by the archive's binaries: logger
// bootstrap, the sort-utility runner, and the fixed usage texts. All
// user-facing output goes to the writer the caller supplies; logging
// goes to stderr and never touches the printed result.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/emirpasic/gods/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"algokata/internal/intlist"
	"algokata/internal/sorting"
)

// SortUsage is printed verbatim when a sort utility rejects its input.
const SortUsage = `Usage: please provide a list of at least two integers to sort in the format "1, 2, 3, 4, 5"`

// errMissingArgument marks an invocation without the list argument.
var errMissingArgument = errors.New("missing list argument")

// NewLogger builds the process logger. Verbose flips the level to debug.
// Every entry carries a short invocation id so interleaved runs can be
// told apart in aggregated logs.
func NewLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.With(zap.String("invocation", uuid.NewString()[:8])), nil
}

// RunSort implements the shared surface of the sort utilities: parse the
// single comma-separated list argument, require at least two elements,
// sort with algo, print the bracketed result. Any input problem prints
// SortUsage to w and returns the underlying error for the caller to map
// to exit status 1.
func RunSort(w io.Writer, algo sorting.Algorithm, args []string, logger *zap.Logger) error {
	xs, err := sortInput(args, logger)
	if err != nil {
		logger.Debug("rejecting input", zap.Error(err))
		fmt.Fprintln(w, SortUsage)
		return err
	}
	sorted := algo(xs, utils.IntComparator)
	logger.Debug("sorted",
		zap.Int("elements", len(sorted)),
		zap.Bool("ordered", sorting.IsSorted(sorted, utils.IntComparator)))
	fmt.Fprintln(w, intlist.Format(sorted))
	return nil
}

// sortInput validates the argv shape the sort utilities accept. Only the
// first argument is read; extras are ignored.
func sortInput(args []string, logger *zap.Logger) ([]int, error) {
	if len(args) == 0 {
		return nil, errMissingArgument
	}
	if len(args) > 1 {
		logger.Debug("ignoring extra arguments", zap.Strings("extra", args[1:]))
	}
	xs, err := intlist.Parse(args[0])
	if err != nil {
		return nil, err
	}
	if len(xs) < 2 {
		return nil, intlist.ErrTooFewElements
	}
	return xs, nil
}
