// Package catalog builds the immutable per-discipline material catalogs at
// process start. Defaults mirror the production tracks; a YAML file can
// replace them entirely for other deployments.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/losdealla/members-api/internal/core/domain"
)

// Built-in tracks. Level numbers gate cumulative visibility: a member at
// category N sees every item from level 0 through N.
var yogaFacialLevels = map[int][]string{
	0:  {"Clase introductoria"},
	1:  {"Masaje periférico"},
	2:  {"Masaje de reseteo facial"},
	3:  {"Masaje de preparación facial", "Clase 1"},
	4:  {"Rutina 1 - pdf"},
	5:  {"Rutina 1 - video"},
	6:  {"Rutina 2 - pdf"},
	7:  {"Rutina 2 - video"},
	8:  {"Masaje guasha"},
	9:  {"Clase 2"},
	10: {"Rutina 3 - pdf"},
	11: {"Rutina 3 - video"},
	12: {"Masaje relajante"},
	13: {"Rutina 4 - pdf"},
	14: {"Rutina 4 - video"},
	15: {"Clase 3"},
	16: {"Rutina 5 - pdf"},
	17: {"Rutina 5 - video"},
	18: {"Masaje acupresión - pdf"},
	19: {"Acupresión avanzados - video"},
	20: {"Kinesiotape"},
}

var casinoLevels = map[int][]string{
	0: {""},
	1: {"Nivel Básico"},
	2: {"Nivel Principiante"},
	3: {"Nivel Intermedio"},
	4: {"Nivel Avanzado"},
}

// Defaults returns the built-in catalog set.
func Defaults() *domain.CatalogSet {
	return domain.NewCatalogSet(
		domain.NewCatalog("yoga_facial", yogaFacialLevels),
		domain.NewCatalog("casino", casinoLevels),
	)
}

type catalogFile struct {
	Disciplines map[string]map[int][]string `yaml:"disciplines"`
}

// Load returns the catalog set for the process. When path is empty the
// built-in defaults are used; otherwise the YAML file replaces them. A
// malformed file is a startup error, not a fallback.
func Load(path string) (*domain.CatalogSet, error) {
	if path == "" {
		return Defaults(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	if len(cf.Disciplines) == 0 {
		return nil, fmt.Errorf("catalog file %s defines no disciplines", path)
	}

	catalogs := make([]*domain.Catalog, 0, len(cf.Disciplines))
	for name, levels := range cf.Disciplines {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("catalog file %s: empty discipline name", path)
		}
		for lvl := range levels {
			if lvl < 0 {
				return nil, fmt.Errorf("catalog %s: negative level %d", name, lvl)
			}
		}
		catalogs = append(catalogs, domain.NewCatalog(name, levels))
	}

	return domain.NewCatalogSet(catalogs...), nil
}
