package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/warp/internal/core/domain"
)

func TestDivideCmd_Use(t *testing.T) {
	assert.Equal(t, "divide <a> <b>", divideCmd.Use)
}

func TestDivideCmd_RequiresTwoArgs(t *testing.T) {
	_, _, err := execute(t, "divide", "1")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestDivideCmd_PrintsQuotient(t *testing.T) {
	stdout, _, err := execute(t, "divide", "10", "4")

	require.NoError(t, err)
	assert.Equal(t, "divide(10, 4) = 2.5\n", stdout)
}

func TestDivideCmd_ZeroDivisor(t *testing.T) {
	stdout, _, err := execute(t, "divide", "10", "0")

	require.NoError(t, err)
	assert.Equal(t, "Error: Cannot divide by zero\ndivide(10, 0) = None\n", stdout)
}

func TestDivideCmd_NegativeOperands(t *testing.T) {
	stdout, _, err := execute(t, "divide", "--", "-9", "3")

	require.NoError(t, err)
	assert.Equal(t, "divide(-9, 3) = -3.0\n", stdout)
}

func TestDivideCmd_InvalidOperand(t *testing.T) {
	stdout, _, err := execute(t, "divide", "ten", "2")

	assert.ErrorIs(t, err, domain.ErrInvalidOperand)
	assert.Contains(t, err.Error(), `"ten"`)
	assert.Empty(t, stdout)
}

func TestParseOperands(t *testing.T) {
	pair, err := parseOperands("1.5", "1e2")

	require.NoError(t, err)
	assert.Equal(t, domain.OperandPair{A: 1.5, B: 100}, pair)

	_, err = parseOperands("1", "x")
	assert.ErrorIs(t, err, domain.ErrInvalidOperand)
}
