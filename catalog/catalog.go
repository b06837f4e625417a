// Package catalog loads the sprite catalog describing the parts a ship
// design may reference.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"battleships/game"

	"github.com/rs/zerolog"
)

// entry mirrors one part in the catalog file
type entry struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	File           string  `json:"file"`
	Type           string  `json:"type"`
	Size           string  `json:"size"`
	Health         float64 `json:"health"`
	Damage         float64 `json:"damage"`
	FireRate       float64 `json:"fireRate"`
	Thrust         float64 `json:"thrust"`
	ShieldStrength float64 `json:"shieldStrength"`
	ArmorValue     float64 `json:"armorValue"`
	Mass           float64 `json:"mass"`
}

type file struct {
	Sprites map[string][]entry `json:"sprites"`
}

// Parse decodes catalog JSON.
// Entries without an id, with an unknown type, or repeating an earlier id are
// skipped and reported as warnings.
func Parse(data []byte) (game.MapCatalog, []error, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("parsing catalog: %w", err)
	}

	categories := make([]string, 0, len(f.Sprites))
	for c := range f.Sprites {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	cat := make(game.MapCatalog)
	var warnings []error
	for _, category := range categories {
		for i, e := range f.Sprites[category] {
			if e.ID == "" {
				warnings = append(warnings, fmt.Errorf("%s[%d]: missing id", category, i))
				continue
			}
			t, ok := game.ParseSectionType(e.Type)
			if !ok {
				warnings = append(warnings, fmt.Errorf("%s/%s: unknown section type %q", category, e.ID, e.Type))
				continue
			}
			if _, dup := cat[e.ID]; dup {
				warnings = append(warnings, fmt.Errorf("%s/%s: duplicate id", category, e.ID))
				continue
			}
			cat[e.ID] = game.Part{
				ID:             e.ID,
				Name:           e.Name,
				Category:       category,
				File:           e.File,
				Type:           t,
				Size:           game.ParseSizeClass(e.Size),
				Health:         e.Health,
				Damage:         e.Damage,
				FireRate:       e.FireRate,
				Thrust:         e.Thrust,
				ShieldStrength: e.ShieldStrength,
				ArmorValue:     e.ArmorValue,
				Mass:           e.Mass,
			}
		}
	}
	return cat, warnings, nil
}

// Load reads the catalog at path and layers it over the builtin parts.
// An empty path, or a file that cannot be read, yields the builtin parts alone.
func Load(path string, log zerolog.Logger) game.Catalog {
	builtin := game.BuiltinCatalog()
	if path == "" {
		return builtin
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Sprite catalog unavailable, using builtin parts")
		return builtin
	}
	parts, warnings, err := Parse(data)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Sprite catalog invalid, using builtin parts")
		return builtin
	}
	for _, w := range warnings {
		log.Warn().Err(w).Msg("Skipping catalog entry")
	}
	log.Info().Int("parts", len(parts)).Str("path", path).Msg("Loaded sprite catalog")
	return game.Fallback{Primary: parts, Secondary: builtin}
}

// Sorted returns the parts ordered by category then id
func Sorted(c game.MapCatalog) []game.Part {
	out := make([]game.Part, 0, len(c))
	for _, p := range c {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].ID < out[j].ID
	})
	return out
}
