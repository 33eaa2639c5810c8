package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the root command with the given arguments and
// returns its combined output. Flag variables are reset first so tests do
// not leak state into each other.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	keepFlag = false
	holidayFile = ""
	useArgentine = false
	shiftDays, shiftMonths, shiftYears = 0, 0, 0
	benchRepeat, benchNumber = 1, 1

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestBetweenCommand(t *testing.T) {
	out, err := runCommand(t, "between", "2023-01-01", "2023-01-07")
	require.NoError(t, err)
	assert.Equal(t, "2023-01-02\n2023-01-03\n2023-01-04\n2023-01-05\n2023-01-06\n", out)
}

func TestBetweenCommand_EmptyRange(t *testing.T) {
	out, err := runCommand(t, "between", "2023-01-07", "2023-01-01")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestNextCommand(t *testing.T) {
	out, err := runCommand(t, "next", "2023-05-19")
	require.NoError(t, err)
	assert.Equal(t, "2023-05-22\n", out)
}

func TestNextCommand_Keep(t *testing.T) {
	out, err := runCommand(t, "next", "2023-05-19", "--keep")
	require.NoError(t, err)
	assert.Equal(t, "2023-05-19\n", out)
}

func TestPrevCommand(t *testing.T) {
	out, err := runCommand(t, "prev", "2023-05-20")
	require.NoError(t, err)
	assert.Equal(t, "2023-05-19\n", out)
}

func TestCheckCommand(t *testing.T) {
	out, err := runCommand(t, "check", "2023-05-19")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = runCommand(t, "check", "2023-05-20")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestCheckCommand_Argentine(t *testing.T) {
	// Revolución de Mayo 2023 fell on a Thursday.
	out, err := runCommand(t, "check", "2023-05-25", "--ar")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	out, err = runCommand(t, "check", "2023-05-24", "--ar")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestCheckCommand_HolidayFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidays.yaml")
	require.NoError(t, os.WriteFile(path, []byte("2023:\n  - 2023-05-19\n"), 0o644))

	out, err := runCommand(t, "check", "2023-05-19", "--holidays", path)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	out, err = runCommand(t, "check", "2023-05-18", "--holidays", path)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestShiftCommand(t *testing.T) {
	out, err := runCommand(t, "shift", "2023-01-01", "--days", "1", "--months", "1", "--years", "1")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-02\n", out)
}

func TestParseCommand(t *testing.T) {
	out, err := runCommand(t, "parse", "2023-05-19", "not-a-date")
	require.NoError(t, err)
	assert.Contains(t, out, "2023-05-19\t2023-05-19T00:00:00Z")
	assert.Contains(t, out, "not-a-date\tno match")
}

func TestEpochCommand(t *testing.T) {
	out, err := runCommand(t, "epoch", "2023-05-19")
	require.NoError(t, err)
	assert.Equal(t, "1684465200000\n", out)
}

func TestEpochCommand_Invalid(t *testing.T) {
	_, err := runCommand(t, "epoch", "not-a-date")
	require.Error(t, err)
}

func TestBenchCommand(t *testing.T) {
	out, err := runCommand(t, "bench", "2023-05-19", "--repeat", "2", "--number", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "`ParseDate` ran in an average of ")
	assert.Contains(t, out, "over 2 trials with 3 calls per trial")
}

func TestBenchCommand_NoMatch(t *testing.T) {
	out, err := runCommand(t, "bench", "not-a-date")
	require.NoError(t, err)
	assert.Contains(t, out, "not-a-date: no match")
}

func TestInvalidDateArgument(t *testing.T) {
	_, err := runCommand(t, "next", "not-a-date")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized date")
}
