package application

import (
	"fmt"

	"i18nextract/internal/domain/entities"
	"i18nextract/internal/ports/output"
)

// Expander synthesizes one key variant per plural category of a locale.
type Expander struct {
	oracle output.PluralOracle
}

func NewExpander(oracle output.PluralOracle) *Expander {
	return &Expander{oracle: oracle}
}

// Expand returns the locale's variants of key. Keys without a count marker,
// and locales whose only cardinal category is "other", pass through
// unchanged. Keys that already carry a plural category are never re-expanded.
func (e *Expander) Expand(key entities.Key, locale string) ([]entities.Key, error) {
	if !key.HasCount || key.PluralCategory != "" {
		return []entities.Key{key}, nil
	}
	categories, err := e.oracle.Categories(locale)
	if err != nil {
		return nil, fmt.Errorf("plural categories for %q: %w", locale, err)
	}
	if len(categories) == 1 && categories[0] == "other" {
		return []entities.Key{key}, nil
	}
	variants := make([]entities.Key, 0, len(categories))
	for _, category := range categories {
		v := key
		v.PluralCategory = category
		variants = append(variants, v)
	}
	return variants, nil
}
