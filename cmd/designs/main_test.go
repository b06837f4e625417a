package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"battleships/game"
	"battleships/storage"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTool(t *testing.T) (*tool, *bytes.Buffer) {
	t.Helper()
	store, err := storage.OpenSqlite(filepath.Join(t.TempDir(), "designs.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	var out bytes.Buffer
	return &tool{store: store, parts: game.BuiltinCatalog(), out: &out, log: zerolog.Nop()}, &out
}

const lancer = `{
  "version": "1.0",
  "name": "Lancer",
  "team": "player",
  "sections": [
    {"id": "core_medium", "localX": 0, "localY": 0, "rotation": 0},
    {"id": "railgun", "localX": 30, "localY": 0, "rotation": 0},
    {"id": "warp_drive", "localX": -30, "localY": 0, "rotation": 0}
  ]
}`

func TestImportListExport(t *testing.T) {
	tl, out := newTool(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "lancer.json")
	require.NoError(t, os.WriteFile(path, []byte(lancer), 0o644))

	require.NoError(t, tl.run("import", []string{path}))
	assert.Contains(t, out.String(), `unknown part: "warp_drive"`)
	assert.Contains(t, out.String(), "imported Lancer (3 sections)")

	out.Reset()
	require.NoError(t, tl.run("list", nil))
	assert.Contains(t, out.String(), "Lancer")
	assert.Contains(t, out.String(), "player")

	exported, err := tl.export("Lancer", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "lancer.json"), exported)

	data, err := os.ReadFile(exported)
	require.NoError(t, err)
	d, err := game.ParseDesign(data)
	require.NoError(t, err)
	assert.Equal(t, "Lancer", d.Name)
	assert.Len(t, d.Sections, 3)

	require.NoError(t, tl.run("delete", []string{"Lancer"}))
	assert.ErrorIs(t, tl.run("delete", []string{"Lancer"}), storage.ErrNotFound)
}

func TestImport_NameFromFile(t *testing.T) {
	tl, _ := newTool(t)
	path := filepath.Join(t.TempDir(), "scout.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0","sections":[{"id":"laser"}]}`), 0o644))

	require.NoError(t, tl.importFile(path))
	d, err := tl.store.LoadDesign("scout")
	require.NoError(t, err)
	assert.Len(t, d.Sections, 1)
}

func TestStats(t *testing.T) {
	tl, out := newTool(t)
	require.NoError(t, tl.store.RecordRun(game.RunStats{Mode: game.ModeSkirmish, Score: 500, Kills: 5, WaveReached: 3, SurvivalTime: 61}))

	require.NoError(t, tl.run("stats", nil))
	assert.Contains(t, out.String(), "skirmish")
	assert.Contains(t, out.String(), "500")
}

func TestRun_Errors(t *testing.T) {
	tl, _ := newTool(t)
	assert.Error(t, tl.run("import", nil))
	assert.Error(t, tl.run("export", nil))
	assert.Error(t, tl.run("frobnicate", nil))
}

func TestCheckScripts(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.js")
	bad := filepath.Join(dir, "bad.js")
	require.NoError(t, os.WriteFile(good, []byte(`function selectTarget(ctx) { return null; }`), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte(`var nothing = 1;`), 0o644))

	var out bytes.Buffer
	assert.NoError(t, checkScripts(&out, []string{good}))
	assert.Error(t, checkScripts(&out, []string{good, bad}))
	assert.Contains(t, out.String(), "FAIL "+bad)
	assert.Error(t, checkScripts(&out, nil))
}
