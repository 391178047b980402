package application

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"i18nextract/internal/domain/entities"
)

// fakeOracle serves fixed category sets per locale.
type fakeOracle struct {
	categories map[string][]string
}

func (f *fakeOracle) Categories(locale string) ([]string, error) {
	set, ok := f.categories[locale]
	if !ok {
		return nil, fmt.Errorf("no categories for %q", locale)
	}
	return set, nil
}

func newFakeOracle() *fakeOracle {
	return &fakeOracle{categories: map[string][]string{
		"en": {"one", "other"},
		"fr": {"one", "many", "other"},
		"ja": {"other"},
		"ru": {"one", "few", "many", "other"},
	}}
}

func TestExpandWithoutCountPassesThrough(t *testing.T) {
	e := NewExpander(newFakeOracle())
	key := entities.Key{Path: []string{"title"}}

	variants, err := e.Expand(key, "en")
	require.NoError(t, err)
	require.Len(t, variants, 1)
	assert.Empty(t, variants[0].PluralCategory)
}

func TestExpandPerCategory(t *testing.T) {
	e := NewExpander(newFakeOracle())
	key := entities.Key{Path: []string{"item"}, HasCount: true}

	variants, err := e.Expand(key, "en")
	require.NoError(t, err)
	require.Len(t, variants, 2)
	assert.Equal(t, "one", variants[0].PluralCategory)
	assert.Equal(t, "other", variants[1].PluralCategory)

	variants, err = e.Expand(key, "ru")
	require.NoError(t, err)
	require.Len(t, variants, 4)
}

func TestExpandOtherOnlyLocaleKeepsBareKey(t *testing.T) {
	e := NewExpander(newFakeOracle())
	key := entities.Key{Path: []string{"item"}, HasCount: true}

	variants, err := e.Expand(key, "ja")
	require.NoError(t, err)
	require.Len(t, variants, 1)
	assert.Empty(t, variants[0].PluralCategory, "single-category locales keep the unsuffixed key")
}

func TestExpandNeverReexpands(t *testing.T) {
	e := NewExpander(newFakeOracle())
	key := entities.Key{Path: []string{"item"}, HasCount: true, PluralCategory: "one"}

	variants, err := e.Expand(key, "en")
	require.NoError(t, err)
	require.Len(t, variants, 1)
	assert.Equal(t, "one", variants[0].PluralCategory)
}

func TestExpandUnknownLocaleFails(t *testing.T) {
	e := NewExpander(newFakeOracle())
	key := entities.Key{Path: []string{"item"}, HasCount: true}

	_, err := e.Expand(key, "xx")
	assert.Error(t, err)
}
