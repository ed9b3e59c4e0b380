package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"algokata/internal/cli"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	logger = zap.NewNop()
	if args == nil {
		args = []string{} // SetArgs(nil) would fall back to os.Args
	}

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestSortsList(t *testing.T) {
	out, err := execute(t, "5, 4, 3, 2, 1")
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 3, 4, 5]\n", out)
}

func TestSortsLongerList(t *testing.T) {
	out, err := execute(t, "8, 3, 10, 1, 9, 2, 7, 5, 4, 6")
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 3, 4, 5, 6, 7, 8, 9, 10]\n", out)
}

func TestExtraArgumentsIgnored(t *testing.T) {
	out, err := execute(t, "2, 1", "ignored")
	require.NoError(t, err)
	assert.Equal(t, "[1, 2]\n", out)
}

func TestRejectsMissingArgument(t *testing.T) {
	out, err := execute(t)
	require.Error(t, err)
	assert.Equal(t, cli.SortUsage+"\n", out)
}

func TestRejectsSingleElement(t *testing.T) {
	out, err := execute(t, "42")
	require.Error(t, err)
	assert.Equal(t, cli.SortUsage+"\n", out)
}

func TestRejectsEmptyList(t *testing.T) {
	out, err := execute(t, "")
	require.Error(t, err)
	assert.Equal(t, cli.SortUsage+"\n", out)
}
