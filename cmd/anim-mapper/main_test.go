package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `{
  "asset": {"version": "2.0"},
  "animations": [
    {"name": "Armature.001|walk01_loop_251104", "channels": [], "samplers": []},
    {"name": "Armature.002|walk01_start_251151", "channels": [], "samplers": []},
    {"name": "Armature.004|crouch_walk_r_againstwall", "channels": [], "samplers": []},
    {"name": "Armature.009|idle_251087", "channels": [], "samplers": []},
    {"name": "Armature.015|stand-to-sit_251123", "channels": [], "samplers": []},
    {"name": "Armature.015|stand-to-sit_251123.reverse", "channels": [], "samplers": []}
  ]
}`

func assetDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rb4.gltf"), []byte(fixture), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.gltf"), []byte(`{"asset":{"version":"2.0"}}`), 0o644))

	return dir
}

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer

	code := run(args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRunGenJS(t *testing.T) {
	code, out, _ := runCLI("gen", "-assets", assetDir(t), "rb4")
	require.Equal(t, 0, code)

	assert.Contains(t, out, "// Animation mapping for rb4")
	assert.Contains(t, out, "{ name: 'WalkLoop', index: 0, next: null },")
	assert.Contains(t, out, "{ name: 'WalkStart', index: 1, next: 'WalkLoop' },")
	assert.Contains(t, out, "name: 'StandToSit', description: 'Stand to sit', icon: '🪑', index: 4, next: 'StandToSitRev'")
	assert.Contains(t, out, "name: 'StandToSitRev', description: 'Stand to sit (reverse)', icon: '🪑', index: 5, next: 'Idle'")
	assert.NotContains(t, out, "CrouchWalk")
}

func TestRunGenToDir(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "gen")

	code, _, _ := runCLI("gen", "-assets", assetDir(t), "-format", "go", "-dir", outDir, "rb4")
	require.Equal(t, 0, code)

	data, err := os.ReadFile(filepath.Join(outDir, "rb4_animations.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "var WalkAnimations = []Animation{")
}

func TestRunGenEmptyAsset(t *testing.T) {
	code, out, errOut := runCLI("gen", "-assets", assetDir(t), "empty")

	assert.Equal(t, 0, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "No animations found.")
}

func TestRunMissingAsset(t *testing.T) {
	code, _, errOut := runCLI("map", "-assets", assetDir(t), "rb9")

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "asset source unavailable")
}

func TestRunList(t *testing.T) {
	code, out, _ := runCLI("list", "-assets", assetDir(t), "rb4")
	require.Equal(t, 0, code)

	assert.Contains(t, out, "Found 6 animations in rb4:")
	assert.Contains(t, out, "  2: Armature.004|crouch_walk_r_againstwall")
}

func TestRunMap(t *testing.T) {
	code, out, _ := runCLI("map", "-assets", assetDir(t), "rb4")
	require.Equal(t, 0, code)

	assert.Contains(t, out, "rb4 walk animations:\n  WalkLoop: 0\n  WalkStart: 1\n  Idle: 3\n")
	assert.Contains(t, out, "rb4 general animations:\n  StandToSit: 4\n  StandToSitRev: 5\n")
}

func TestRunCheck(t *testing.T) {
	code, out, errOut := runCLI("check", "-v", "-assets", assetDir(t), "rb4")
	require.Equal(t, 0, code)

	assert.Contains(t, out, "rb4: 6 clips, 3 walk, 2 general, 1 unmatched, 0 dangling")
	assert.Contains(t, errOut, "clip_unmatched")
}

func TestRunTables(t *testing.T) {
	code, out, _ := runCLI("tables")
	require.Equal(t, 0, code)

	assert.Contains(t, out, "locomotion_indicators:")
	assert.Contains(t, out, "keyword: walk01_loop")
}

func TestRunTablesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")

	code, out, _ := runCLI("tables", "-o", path)
	require.Equal(t, 0, code)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "keyword: stand-to-sit")
}

func TestRunFlagAfterAsset(t *testing.T) {
	code, out, errOut := runCLI("gen", "-assets", assetDir(t), "rb4", "-format", "go")

	assert.Equal(t, 2, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "flags go before assets")
}

func TestRunInvalidTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locomotion:\n  - keyword: \"\"\n    name: X\n"), 0o644))

	code, _, errOut := runCLI("tables", "-tables", path)

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid_table")
}

func TestRunUsage(t *testing.T) {
	code, _, errOut := runCLI()

	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "usage: anim-mapper")
}
