package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridprop/gridgraph"
	"github.com/katalvlaran/gridprop/internal/cli"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestRun_Sample(t *testing.T) {
	t.Parallel()
	log, hook := logtest.NewNullLogger()
	out := &bytes.Buffer{}

	input := "2199943210\n3987894921\n9856789892\n8767896789\n9899965678\n"
	err := run([]string{writeInput(t, input)}, out, log)

	require.NoError(t, err)
	require.Equal(t, "Risk sum: 15\nBasin product: 1134\n", out.String())
	require.Equal(t, 4, hook.LastEntry().Data["low_points"])
}

func TestRun_FewerThanThreeBasins(t *testing.T) {
	t.Parallel()
	log, _ := logtest.NewNullLogger()
	out := &bytes.Buffer{}

	err := run([]string{writeInput(t, "219\n398\n973\n")}, out, log)

	require.NoError(t, err)
	require.Equal(t, "Risk sum: 6\nBasin product: 9\n", out.String())
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		args   func(t *testing.T) []string
		target error
	}{
		{"MissingArgument", func(*testing.T) []string { return []string{} }, cli.ErrMissingArgument},
		{"NonDigit", func(t *testing.T) []string { return []string{writeInput(t, "12\nab\n")} }, gridgraph.ErrInvalidDigit},
		{"Ragged", func(t *testing.T) []string { return []string{writeInput(t, "1\n23\n")} }, gridgraph.ErrNonRectangular},
		{"Missing", func(t *testing.T) []string { return []string{filepath.Join(t.TempDir(), "x")} }, os.ErrNotExist},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			log, _ := logtest.NewNullLogger()
			out := &bytes.Buffer{}

			err := run(tc.args(t), out, log)

			require.ErrorIs(t, err, tc.target)
			require.NotEqual(t, cli.ExitOK, cli.ExitCode(err))
			require.Empty(t, out.String())
		})
	}
}
