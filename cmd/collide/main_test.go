package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = `
rectangles:
  - {name: a, x: 0, y: 0, width: 10, height: 10}
  - {name: b, x: 5, y: 5, width: 10, height: 10}
  - {name: c, x: 100, y: 100, width: 4, height: 4, angle: 20}
polygons:
  - name: room
    points: [[-20, -20], [60, -20], [60, 60], [-20, 60]]
`

func setup(t *testing.T) (dir, configPath, scenePath string) {
	dir = t.TempDir()
	configPath = filepath.Join(dir, "collide.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("color: false\nlog:\n  level: error\n"), 0o644))
	scenePath = filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(scenePath, []byte(testScene), 0o644))
	return
}

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), err
}

func TestCheck(t *testing.T) {
	_, configPath, scenePath := setup(t)
	out, err := runCLI(t, "", "--config", configPath, "check", scenePath)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"a × b: overlap",
		"a × c: apart",
		"b × c: apart",
		"a in room: within",
		"b in room: within",
		"c in room: outside",
		"",
	}, "\n"), out)
}

func TestCheckStdin(t *testing.T) {
	_, configPath, _ := setup(t)
	out, err := runCLI(t, testScene, "--config", configPath, "--plain", "check", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "a × b: overlap\n")
}

func TestClip(t *testing.T) {
	dir, configPath, scenePath := setup(t)
	output := filepath.Join(dir, "clip.png")
	out, err := runCLI(t, "", "--config", configPath, "clip", scenePath, "a", "b", "--render", output)
	require.NoError(t, err)
	assert.Contains(t, out, "area:     25\n")
	assert.Contains(t, out, "centroid: (2.5, 2.5)\n")

	info, err := os.Stat(output)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestClipApart(t *testing.T) {
	_, configPath, scenePath := setup(t)
	out, err := runCLI(t, "", "--config", configPath, "clip", scenePath, "a", "c")
	require.NoError(t, err)
	assert.Equal(t, "polygon:  []\narea:     0\n", out)
}

func TestClipUnknownRectangle(t *testing.T) {
	_, configPath, scenePath := setup(t)
	_, err := runCLI(t, "", "--config", configPath, "clip", scenePath, "a", "nope")
	assert.EqualError(t, err, `no rectangle named "nope"`)

	// Polygons can't be clipped
	_, err = runCLI(t, "", "--config", configPath, "clip", scenePath, "room", "a")
	assert.Error(t, err)
}

func TestDump(t *testing.T) {
	_, configPath, scenePath := setup(t)
	out, err := runCLI(t, "", "--config", configPath, "dump", scenePath)
	require.NoError(t, err)
	assert.Contains(t, out, `Name:`)
	assert.Contains(t, out, `"room"`)
}

func TestBadArgs(t *testing.T) {
	_, err := runCLI(t, "", "frobnicate")
	assert.Error(t, err)

	_, configPath, _ := setup(t)
	_, err = runCLI(t, "", "--config", configPath, "check", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
