package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with the given arguments and captures stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writePrescription(t *testing.T, dir, id, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, id+".yml"), []byte(body), 0600))
}

func projectWithDPs(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	dpDir := filepath.Join(root, "dps")
	require.NoError(t, os.MkdirAll(dpDir, 0755))

	writePrescription(t, dpDir, "core", `
name: Core
priority: 10
`)
	writePrescription(t, dpDir, "api", `
name: API
priority: 5
dependencies:
  - core
`)
	writePrescription(t, dpDir, "docs", `
name: Docs
priority: 1
dependencies:
  - api
`)
	return root
}

func TestCompileStatusMarkWorkflow(t *testing.T) {
	root := projectWithDPs(t)

	out, err := execute(t, "compile", "--root", root, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Compiled 3 tasks into 3 levels")

	require.FileExists(t, filepath.Join(root, ".dpsmith", "yadasmith.json"))

	out, err = execute(t, "status", "--root", root, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "0 completed")
	assert.Contains(t, out, "3 pending")
	assert.Contains(t, out, "next: core")

	out, err = execute(t, "mark", "core", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Marked core completed")
	assert.Contains(t, out, "1/3 complete (33%)")

	out, err = execute(t, "status", "--root", root, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "next: api")
}

func TestMarkThroughAndReset(t *testing.T) {
	root := projectWithDPs(t)

	_, err := execute(t, "compile", "--root", root, "--no-color")
	require.NoError(t, err)

	out, err := execute(t, "mark", "api", "--through", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Marked completed through api")
	assert.Contains(t, out, "2/3 complete (67%)")
	require.NoError(t, markCmd.Flags().Set("through", "false"))

	out, err = execute(t, "reset", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "reset to pending")

	out, err = execute(t, "status", "--root", root, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "3 pending")
}

func TestMarkUnknownTask(t *testing.T) {
	root := projectWithDPs(t)

	_, err := execute(t, "compile", "--root", root, "--no-color")
	require.NoError(t, err)

	_, err = execute(t, "mark", "ghost", "--root", root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task not found")
}

func TestCompileRejectsCycle(t *testing.T) {
	root := t.TempDir()
	dpDir := filepath.Join(root, "dps")
	require.NoError(t, os.MkdirAll(dpDir, 0755))
	writePrescription(t, dpDir, "a", "name: A\ndependencies: [b]\n")
	writePrescription(t, dpDir, "b", "name: B\ndependencies: [a]\n")

	_, err := execute(t, "compile", "--root", root, "--no-color")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	assert.NoFileExists(t, filepath.Join(root, ".dpsmith", "yadasmith.json"))
}

func TestValidateReportsFindings(t *testing.T) {
	root := t.TempDir()
	dpDir := filepath.Join(root, "dps")
	require.NoError(t, os.MkdirAll(dpDir, 0755))
	writePrescription(t, dpDir, "a", "name: A\ndependencies: [missing]\n")

	_, err := execute(t, "validate", "--root", root, "--no-color")
	require.Error(t, err)
}

func TestGraphMermaid(t *testing.T) {
	root := projectWithDPs(t)

	out, err := execute(t, "graph", "--root", root, "--format", "mermaid")
	require.NoError(t, err)
	assert.Contains(t, out, "graph TD")
	assert.Contains(t, out, "core --> api")

	// Reset the persistent flag for later executions.
	require.NoError(t, rootCmd.PersistentFlags().Set("format", "text"))
}

func TestStatusJSON(t *testing.T) {
	root := projectWithDPs(t)

	_, err := execute(t, "compile", "--root", root, "--no-color")
	require.NoError(t, err)

	out, err := execute(t, "status", "--root", root, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"total": 3`)
	assert.Contains(t, out, `"next_task": "core"`)

	require.NoError(t, rootCmd.PersistentFlags().Set("format", "text"))
}
