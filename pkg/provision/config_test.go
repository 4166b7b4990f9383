package provision

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePlanFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "provision.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadPlan(t *testing.T) {
	t.Run("Parses Steps In Order", func(t *testing.T) {
		path := writePlanFile(t, `
name: custom
steps:
  - name: update index
    command: apt-get
    args: ["update"]
  - name: install browser
    command: apt-get
    args: ["install", "-y", "chromium"]
    env:
      DEBIAN_FRONTEND: noninteractive
`)
		plan, err := LoadPlan(path)
		require.NoError(t, err)
		assert.Equal(t, "custom", plan.Name)
		require.Len(t, plan.Steps, 2)
		assert.Equal(t, "update index", plan.Steps[0].Name())
		assert.Equal(t, "install browser", plan.Steps[1].Name())
	})

	t.Run("Defaults Step Name To Command", func(t *testing.T) {
		path := writePlanFile(t, `
steps:
  - command: pip
    args: ["install", "-r", "requirements.txt"]
`)
		plan, err := LoadPlan(path)
		require.NoError(t, err)
		assert.Equal(t, "pip", plan.Steps[0].Name())
		assert.Equal(t, path, plan.Name, "plan name falls back to the file path")
	})

	t.Run("Rejects Empty Plan", func(t *testing.T) {
		path := writePlanFile(t, "steps: []\n")
		_, err := LoadPlan(path)
		assert.ErrorContains(t, err, "no steps")
	})

	t.Run("Rejects Step Without Command", func(t *testing.T) {
		path := writePlanFile(t, `
steps:
  - name: broken
`)
		_, err := LoadPlan(path)
		assert.ErrorContains(t, err, "no command")
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := LoadPlan(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestBuiltinPlan(t *testing.T) {
	pw, err := BuiltinPlan(PlanPlaywright)
	require.NoError(t, err)
	assert.Len(t, pw.Steps, 1)

	sys, err := BuiltinPlan(PlanSystem)
	require.NoError(t, err)
	assert.Len(t, sys.Steps, 2)
	assert.Equal(t, "update package index", sys.Steps[0].Name())

	_, err = BuiltinPlan("vagrant")
	assert.Error(t, err)
}
