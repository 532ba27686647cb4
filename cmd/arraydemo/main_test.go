package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/staticarrays/internal/scenario"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// ── Walkthrough ──────────────────────────────────────────────────────────────

func TestWalkthroughPlain(t *testing.T) {
	out, err := execute(t, "walkthrough", "--plain")
	require.NoError(t, err)

	for _, want := range []string{
		"━━━ Access — O(1) address arithmetic, empty slots ━━━",
		"Get(4) = _  present=false",
		"Get(5) → get: index 5 not in [0, 5): index out of range",
		"[0]=1 [1]=2 [2]=3 [3]=4 [4]=5",
		"second pass, sum = 15",
		"RemoveEnd() = 5  len=4 cap=5\n 0   1   2   3   4\n[1] [2] [3] [4] [_]",
		"RemoveEnd() on empty: ok=false len=0",
		"RemoveAt(1) = 2  len=4 cap=5\n 0   1   2   3   4\n[1] [3] [4] [5] [_]",
		"InsertEnd(9)  len=5 cap=5\n 0   1   2   3   4\n[1] [2] [3] [4] [9]",
		"InsertEnd(10) → insert end: array full at 5 slots: capacity exceeded",
		"InsertAt(1, 9)  len=5 cap=5\n 0   1   2   3   4\n[1] [9] [2] [3] [4]",
		"InsertAt(0, 7) → insert: array full at 5 slots: capacity exceeded",
		"RemoveAt(4): shifts=0",
		"RemoveAt(0): shifts=4",
		"InsertAt(4, 9): shifts=0",
		"InsertAt(0, 9): shifts=4",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRootDefaultsToWalkthrough(t *testing.T) {
	out, err := execute(t, "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "━━━ Cost — shifts grow with distance from the end ━━━")
}

func TestWalkthroughStyled(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Insert middle")
}

// ── Scenarios ────────────────────────────────────────────────────────────────

func TestRunScenarios(t *testing.T) {
	out, err := execute(t, "run", "--plain",
		"testdata/remove_end.yaml",
		"testdata/remove_middle.yaml",
		"testdata/insert_end.yaml",
		"testdata/insert_middle.yaml",
	)
	require.NoError(t, err)

	for _, want := range []string{
		"━━━ remove from the end ━━━",
		"#0 remove_end() → 5",
		"#1 get(4) → _",
		"final [1 2 3 4]",
		"#0 remove_at(1) → 2",
		"#1 remove_at(4) → error: remove: index 4 not in [0, 4): index out of range",
		"final [1 3 4 5]",
		"#1 insert_end(10) → error: insert end: array full at 5 slots: capacity exceeded",
		"final [1 2 3 4 9]",
		"#0 insert_at(1, 9)",
		"[1] [9] [2] [3] [4]",
		"final [1 9 2 3 4]",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRunWithConfig(t *testing.T) {
	out, err := execute(t, "run", "--config", "testdata/config.yaml", "testdata/insert_middle.yaml")
	require.NoError(t, err)

	// config.yaml turns on plain rendering and hides the index row.
	assert.Contains(t, out, "[1] [9] [2] [3] [4]")
	assert.NotContains(t, out, " 0   1   2   3   4")
}

func TestRunUnexpectedOutcome(t *testing.T) {
	_, err := execute(t, "run", "--plain", "testdata/wrong_expectation.yaml")
	require.ErrorIs(t, err, scenario.ErrUnexpectedOutcome)
}

func TestRunMissingFile(t *testing.T) {
	_, err := execute(t, "run", "testdata/does_not_exist.yaml")
	assert.Error(t, err)
}

func TestRunRequiresArgs(t *testing.T) {
	_, err := execute(t, "run")
	assert.Error(t, err)
}

func TestMissingConfig(t *testing.T) {
	_, err := execute(t, "--config", "testdata/missing.yaml")
	assert.Error(t, err)
}

func TestBadLogLevel(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("logging:\n  level: chatty\n"), 0o644))

	_, err := execute(t, "--config", cfg)
	assert.Error(t, err)
}
