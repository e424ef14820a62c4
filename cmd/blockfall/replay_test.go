package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runReplayScript(t *testing.T, script string, trace bool) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o600))

	flagTrace = trace
	t.Cleanup(func() { flagTrace = false })

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	require.NoError(t, runReplay(cmd, []string{path}))
	return out.String()
}

func TestReplayPrintsFinalState(t *testing.T) {
	out := runReplayScript(t, "seed: 42\ndebris_seed: 3\ncurrent: O\nactions: [tick*19]\n", false)

	assert.Contains(t, out, ".....##...\n.....##...")
	assert.Contains(t, out, "score: 0\n")
	assert.Contains(t, out, "status: running")
}

func TestReplayTrace(t *testing.T) {
	out := runReplayScript(t, "seed: 1\nactions: [left, tick]\n", true)

	assert.Contains(t, out, "step 0: initial")
	assert.Contains(t, out, "step 1: left")
	assert.Contains(t, out, "step 2: tick")
	assert.Equal(t, 1, strings.Count(out, "status:"))
}

func TestReplayErrors(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	err := runReplay(cmd, []string{filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("actions: [jump]\n"), 0o600))
	assert.Error(t, runReplay(cmd, []string{path}))
}
