package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdictlab/verdict/pkg/errors"
)

const testRuleset = `
rules:
  collection:
    any: [is-list, is-map]
  wordy:
    all: [is-string, non-empty]
`

func writeRuleset(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testRuleset), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestCheckCommand(t *testing.T) {
	t.Run("valid ruleset", func(t *testing.T) {
		out, err := run(t, "check", "--ruleset", writeRuleset(t))
		require.NoError(t, err)
		assert.Contains(t, out, "2 valid rule(s)")
	})

	t.Run("missing ruleset", func(t *testing.T) {
		_, err := run(t, "check", "--ruleset", filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRulesetLoad))
	})

	t.Run("invalid ruleset", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte("rules:\n  r: [nope]"), 0644))

		_, err := run(t, "check", "--ruleset", path)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRulesetInvalid))
	})
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "list", "--ruleset", writeRuleset(t))
	require.NoError(t, err)

	assert.Contains(t, out, "collection")
	assert.Contains(t, out, "wordy")
	assert.Contains(t, out, "is-string")
	assert.Contains(t, out, "all")
}

func TestEvalCommandPass(t *testing.T) {
	inputPath := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(inputPath, []byte(`[1, 2, 3]`), 0644))

	out, err := run(t, "eval", "collection", inputPath, "--ruleset", writeRuleset(t))
	require.NoError(t, err)
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "collection")
}

func TestEvalCommandFail(t *testing.T) {
	inputPath := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(inputPath, []byte(`42`), 0644))

	// A false outcome must surface as ErrRuleFailed, never terminate the
	// process, and still render the FAIL line.
	out, err := run(t, "eval", "collection", inputPath, "--ruleset", writeRuleset(t))
	require.ErrorIs(t, err, ErrRuleFailed)
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "collection")
}

func TestEvalCommandUnknownRule(t *testing.T) {
	inputPath := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(inputPath, []byte(`{}`), 0644))

	_, err := run(t, "eval", "missing", inputPath, "--ruleset", writeRuleset(t))
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestEvalCommandBadInput(t *testing.T) {
	inputPath := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(inputPath, []byte(`{not json`), 0644))

	_, err := run(t, "eval", "collection", inputPath, "--ruleset", writeRuleset(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestDocsCommand(t *testing.T) {
	out, err := run(t, "docs")
	require.NoError(t, err)
	assert.Contains(t, out, "verdict rules")
	assert.Contains(t, out, "func(any)")
}
