package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const marksYAML = `
- name: Main Gate
  position: [0, 0, 0]
- name: Clock Tower
  position: [6, 0, 8]
- name: Library
  position: [6, 0, 10]
`

func authorCampus(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "marks.yaml")
	out := filepath.Join(dir, "campus.json")
	require.NoError(t, os.WriteFile(in, []byte(marksYAML), 0o600))

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"author", "-in", in, "-out", out}, &stdout, &stderr), stderr.String())
	assert.Contains(t, stdout.String(), "3 landmarks, 4 connections")

	return out
}

func TestRoute_EndToEnd(t *testing.T) {
	mapPath := authorCampus(t)
	svgPath := filepath.Join(filepath.Dir(mapPath), "campus.svg")

	var stdout, stderr bytes.Buffer
	err := run([]string{"route", "-map", mapPath, "-from", "main_gate", "-to", "library",
		"-speed", "6", "-fps", "30", "-follow", "-trace", "-svg", svgPath}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "main_gate -> library: routed")
	assert.Contains(t, out, " 1. Start at Main Gate")
	assert.Contains(t, out, " 2. Go to Clock Tower (10.00)")
	assert.Contains(t, out, " 3. Reach Library (2.00)")
	assert.Contains(t, out, "cost 12.00")
	assert.Contains(t, out, "eye (")
	assert.Contains(t, out, "walk finished")

	svg, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(svg), `id="route"`)
}

func TestRoute_Unknown(t *testing.T) {
	mapPath := authorCampus(t)

	var stdout, stderr bytes.Buffer
	err := run([]string{"route", "-map", mapPath, "-to", "gym"}, &stdout, &stderr)
	assert.ErrorIs(t, err, errNoRoute)
	assert.Contains(t, stdout.String(), "unknown landmark")
}

func TestRoute_ConfigFile(t *testing.T) {
	mapPath := authorCampus(t)
	cfgPath := filepath.Join(filepath.Dir(mapPath), "nav.yaml")
	cfg := "map: " + mapPath + "\nstart: library\nend: main_gate\nplayback: {speed: 12}\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"route", "-config", cfgPath}, &stdout, &stderr), stderr.String())
	assert.Contains(t, stdout.String(), "library -> main_gate: routed")
	assert.Contains(t, stdout.String(), "Reach Main Gate (10.00)")
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.ErrorIs(t, run(nil, &stdout, &stderr), errUsage)
	assert.Error(t, run([]string{"fly"}, &stdout, &stderr))
	assert.NoError(t, run([]string{"help"}, &stdout, &stderr))
	assert.True(t, strings.Contains(stdout.String(), "author"))
}

func TestReadMarks_BadPosition(t *testing.T) {
	_, err := readMarks(strings.NewReader(`[{"name": "Gate", "position": [0, 0]}]`))
	assert.ErrorContains(t, err, "3 coordinates")
}

func TestLevelFromFlags(t *testing.T) {
	tests := []struct {
		v, vv, q bool
		want     slog.Level
	}{
		{false, false, false, slog.LevelWarn},
		{true, false, false, slog.LevelInfo},
		{true, true, false, slog.LevelDebug},
		{true, true, true, slog.LevelError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, levelFromFlags(tt.v, tt.vv, tt.q, slog.LevelWarn))
	}
}

func TestCheck(t *testing.T) {
	mapPath := authorCampus(t)
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"check", "-map", mapPath}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "3 landmarks, 4 connections\nok\n")

	broken := filepath.Join(t.TempDir(), "broken.json")
	doc := `{"nodes": {"a": {"x":0,"y":0,"z":0,"label":"A"}, "b": {"x":1,"y":0,"z":0,"label":"B"}, "c": {"x":9,"y":0,"z":0,"label":"C"}},
	 "edges": [["a","b",1], ["b","ghost",2]]}`
	require.NoError(t, os.WriteFile(broken, []byte(doc), 0o600))

	stdout.Reset()
	err := run([]string{"check", "-map", broken}, &stdout, &stderr)
	assert.ErrorIs(t, err, errMapProblems)
	out := stdout.String()
	assert.Contains(t, out, "dangling:")
	assert.Contains(t, out, "one-way: a -> b (1.00)")
	assert.Contains(t, out, "island 2: [c]")
}

func TestAuthor_Spanning(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "marks.yaml")
	out := filepath.Join(dir, "campus.yaml")
	// Library recorded first; the spanning set still routes via the tower.
	shuffled := "- {name: Library, position: [6, 0, 10]}\n- {name: Main Gate, position: [0, 0, 0]}\n- {name: Clock Tower, position: [6, 0, 8]}\n"
	require.NoError(t, os.WriteFile(in, []byte(shuffled), 0o600))

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"author", "-in", in, "-out", out, "-spanning"}, &stdout, &stderr), stderr.String())
	assert.Contains(t, stdout.String(), "3 landmarks, 4 connections")

	stdout.Reset()
	require.NoError(t, run([]string{"route", "-map", out, "-from", "main_gate", "-to", "library"}, &stdout, &stderr), stderr.String())
	assert.Contains(t, stdout.String(), " 2. Go to Clock Tower (10.00)")
}
