package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"algokata/internal/cli"
	"algokata/internal/rational"
)

// usage is printed verbatim when the argument shape is wrong.
const usage = "Usage: fraction-math operand1 operator operand2"

var (
	verbose bool

	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fraction-math",
	Short: "Evaluate a binary expression over exact rationals",
	Long: `fraction-math takes two rational operands and an operator,
evaluates the expression with exact fraction arithmetic, and prints the
result in lowest terms. Comparison operators print 1 (true) or 0 (false).

Operands accept the forms an exact rational literal can take: "1/2",
"-3", "2.5". Operators: + - * / == != < <= > >=.

Example:
  fraction-math 1/2 + 1/3`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			return nil
		}
		var err error
		logger, err = cli.NewLogger(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEvaluate(cmd.OutOrStdout(), args)
	},
}

// runEvaluate implements the evaluator surface: exactly three arguments,
// operands validated before the operator, every diagnostic on stdout with
// the error handed back for the exit status.
func runEvaluate(w io.Writer, args []string) error {
	if len(args) != 3 {
		logger.Debug("rejecting argument count", zap.Int("argc", len(args)))
		fmt.Fprintln(w, usage)
		return fmt.Errorf("expected 3 arguments, got %d", len(args))
	}

	a, err := rational.Parse(args[0])
	if err != nil {
		fmt.Fprintf(w, "Invalid operand: %s\n", args[0])
		return err
	}
	b, err := rational.Parse(args[2])
	if err != nil {
		fmt.Fprintf(w, "Invalid operand: %s\n", args[2])
		return err
	}
	op, err := rational.ParseOp(args[1])
	if err != nil {
		fmt.Fprintf(w, "Invalid operator: %s\n", args[1])
		return err
	}

	result, err := rational.Evaluate(a, op, b)
	if err != nil {
		fmt.Fprintln(w, err)
		return err
	}
	logger.Debug("evaluated",
		zap.String("operand1", a.String()),
		zap.String("operator", op.String()),
		zap.String("operand2", b.String()))
	fmt.Fprintln(w, result)
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
