package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"battleships/game"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
  "sprites": {
    "weapons": [
      {"id": "heavy_cannon", "name": "Heavy Cannon", "file": "heavy_cannon.png", "type": "cannon", "damage": 35, "fireRate": 900},
      {"id": "beam", "name": "Beam", "file": "beam.png", "type": "plasma"},
      {"id": "heavy_cannon", "type": "armor"}
    ],
    "cores": [
      {"id": "core_titan", "name": "Titan Core", "file": "core.png", "type": "core", "size": "large", "health": 400},
      {"name": "nameless", "type": "core"}
    ]
  }
}`

func TestParse(t *testing.T) {
	cat, warnings, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Len(t, cat, 2)
	assert.Len(t, warnings, 3, "unknown type, missing id and duplicate id")

	hc, ok := cat.Part("heavy_cannon")
	require.True(t, ok)
	assert.Equal(t, game.SectionCannon, hc.Type)
	assert.Equal(t, "weapons", hc.Category)
	assert.Equal(t, 35.0, hc.Damage)
	assert.Equal(t, 900.0, hc.FireRate)

	core, ok := cat.Part("core_titan")
	require.True(t, ok)
	assert.Equal(t, game.SizeLarge, core.Size)
	assert.Equal(t, 400.0, core.Health)

	_, _, err = Parse([]byte(`{"sprites": [`))
	assert.Error(t, err)
}

func TestLoad_FallsBackToBuiltin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	cat := Load(path, zerolog.Nop())

	_, ok := cat.Part("heavy_cannon")
	assert.True(t, ok)
	_, ok = cat.Part("laser")
	assert.True(t, ok, "builtin parts stay reachable")

	missing := Load(filepath.Join(dir, "absent.json"), zerolog.Nop())
	_, ok = missing.Part("core_medium")
	assert.True(t, ok)
	_, ok = missing.Part("heavy_cannon")
	assert.False(t, ok)
}

func TestSorted(t *testing.T) {
	parts := Sorted(game.BuiltinCatalog())
	require.NotEmpty(t, parts)
	assert.Equal(t, "cores", parts[0].Category)
	for i := 1; i < len(parts); i++ {
		prev, cur := parts[i-1], parts[i]
		assert.True(t, prev.Category < cur.Category || (prev.Category == cur.Category && prev.ID < cur.ID))
	}
}
