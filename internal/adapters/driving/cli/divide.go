package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/warp/internal/core/domain"
	"github.com/custodia-labs/warp/internal/core/services"
)

var divideCmd = &cobra.Command{
	Use:   "divide <a> <b>",
	Short: "Divide two numbers",
	Long: `Divides a by b and prints the result.
A zero divisor prints a diagnostic and yields None. Use -- before
negative operands so they are not read as flags.`,
	Args: cobra.ExactArgs(2),
	RunE: runDivide,
}

func init() {
	rootCmd.AddCommand(divideCmd)
}

func runDivide(cmd *cobra.Command, args []string) error {
	pair, err := parseOperands(args[0], args[1])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	result := services.NewDividerService(out).Divide(pair.A, pair.B)
	_, err = fmt.Fprintf(out, "%s = %s\n", pair.Expression(), result)
	return err
}

func parseOperands(a, b string) (domain.OperandPair, error) {
	x, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return domain.OperandPair{}, fmt.Errorf("%w: %q", domain.ErrInvalidOperand, a)
	}
	y, err := strconv.ParseFloat(b, 64)
	if err != nil {
		return domain.OperandPair{}, fmt.Errorf("%w: %q", domain.ErrInvalidOperand, b)
	}
	return domain.OperandPair{A: x, B: y}, nil
}
