// Package taxonomy holds the static series and brand tables and resolves
// brands to the series they belong to.
package taxonomy

import (
	"fmt"
	"strings"

	"diecast/internal/model"
)

// Brand is one entry in a series brand list.
type Brand struct {
	ID          string
	DisplayName string
}

// Config is the raw table set a Taxonomy is built from. Tables are injected
// so tests can substitute smaller fixtures.
type Config struct {
	// SeriesBrands maps a series ID to its brand list in declaration order.
	SeriesBrands map[string][]Brand
	// CategorySeries maps a category to its known series IDs.
	CategorySeries map[model.Category][]string
	// SeriesPriority is the resolution order for brands that appear in more
	// than one series. Earlier entries win.
	SeriesPriority []string
}

// Taxonomy is an immutable view over validated tables.
type Taxonomy struct {
	brandSeries    map[string]string
	brandDisplay   map[string]string
	seriesBrands   map[string][]Brand
	categorySeries map[model.Category][]string
	seriesCategory map[string]model.Category
}

// New validates the tables and builds a Taxonomy. A brand listed twice
// within one series, a series missing from SeriesPriority, or a priority
// entry without a category owner all fail fast. Brands shared across
// series are legal and resolve via SeriesPriority.
func New(cfg Config) (*Taxonomy, error) {
	seriesCategory := make(map[string]model.Category)
	for cat, series := range cfg.CategorySeries {
		for _, id := range series {
			if owner, ok := seriesCategory[id]; ok {
				return nil, fmt.Errorf("series %q belongs to both %q and %q", id, owner, cat)
			}
			seriesCategory[id] = cat
		}
	}

	for _, id := range cfg.SeriesPriority {
		if _, ok := seriesCategory[id]; !ok {
			return nil, fmt.Errorf("priority entry %q is not a known series", id)
		}
	}

	prioritized := make(map[string]bool, len(cfg.SeriesPriority))
	for _, id := range cfg.SeriesPriority {
		prioritized[id] = true
	}
	for id, brands := range cfg.SeriesBrands {
		if _, ok := seriesCategory[id]; !ok {
			return nil, fmt.Errorf("brand table references unknown series %q", id)
		}
		if len(brands) > 0 && !prioritized[id] {
			return nil, fmt.Errorf("series %q carries brands but has no priority rank", id)
		}
	}

	brandSeries := make(map[string]string)
	brandDisplay := make(map[string]string)
	for _, seriesID := range cfg.SeriesPriority {
		seen := make(map[string]bool)
		for _, b := range cfg.SeriesBrands[seriesID] {
			id := NormalizeBrand(b.ID)
			if seen[id] {
				return nil, fmt.Errorf("brand %q duplicated within series %q", id, seriesID)
			}
			seen[id] = true
			// First series in priority order wins for shared brands.
			if _, ok := brandSeries[id]; !ok {
				brandSeries[id] = seriesID
			}
			if _, ok := brandDisplay[id]; !ok {
				brandDisplay[id] = b.DisplayName
			}
		}
	}

	return &Taxonomy{
		brandSeries:    brandSeries,
		brandDisplay:   brandDisplay,
		seriesBrands:   cfg.SeriesBrands,
		categorySeries: cfg.CategorySeries,
		seriesCategory: seriesCategory,
	}, nil
}

// MustNew is New but panics on invalid tables. Intended for the static
// default tables, which are covered by tests.
func MustNew(cfg Config) *Taxonomy {
	t, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return t
}

// NormalizeBrand canonicalizes a brand identifier: lowercase with
// underscores for spaces and hyphens.
func NormalizeBrand(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// SeriesForBrand resolves a brand to its owning series. Brands present in
// several series resolve to the highest-priority one.
func (t *Taxonomy) SeriesForBrand(brand string) (string, bool) {
	series, ok := t.brandSeries[NormalizeBrand(brand)]
	return series, ok
}

// DisplayName returns the display form of a brand identifier.
func (t *Taxonomy) DisplayName(brand string) (string, bool) {
	name, ok := t.brandDisplay[NormalizeBrand(brand)]
	return name, ok
}

// CategoryForSeries returns the category that owns a series ID.
func (t *Taxonomy) CategoryForSeries(series string) (model.Category, bool) {
	cat, ok := t.seriesCategory[series]
	return cat, ok
}

// SeriesBelongs reports whether series is a known series of category.
// Results carrying a series must pass this check before being emitted.
func (t *Taxonomy) SeriesBelongs(category model.Category, series string) bool {
	cat, ok := t.seriesCategory[series]
	return ok && cat == category
}

// SeriesFor returns the known series IDs of a category.
func (t *Taxonomy) SeriesFor(category model.Category) []string {
	return t.categorySeries[category]
}

// BrandsForSeries returns the brand list of a series in declaration order.
func (t *Taxonomy) BrandsForSeries(series string) []Brand {
	return t.seriesBrands[series]
}
