package plurals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	tests := []struct {
		locale string
		want   []string
	}{
		{"en", []string{"one", "other"}},
		{"de", []string{"one", "other"}},
		{"fr", []string{"one", "many", "other"}},
		{"pt", []string{"one", "many", "other"}},
		{"ja", []string{"other"}},
		{"zh", []string{"other"}},
		{"ru", []string{"one", "few", "many", "other"}},
		{"pl", []string{"one", "few", "many", "other"}},
		{"lv", []string{"zero", "one", "other"}},
		{"ar", []string{"zero", "one", "two", "few", "many", "other"}},
		{"he", []string{"one", "two", "many", "other"}},
	}
	oracle := NewOracle()
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			got, err := oracle.Categories(tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoriesRegionalVariants(t *testing.T) {
	oracle := NewOracle()
	for _, locale := range []string{"en-US", "en_GB", "pt-BR", "zh-Hans"} {
		got, err := oracle.Categories(locale)
		require.NoError(t, err, locale)
		base, err := oracle.Categories(locale[:2])
		require.NoError(t, err)
		assert.Equal(t, base, got, "%s must match its base language", locale)
	}
}

func TestCategoriesUnknownLocaleFallsBack(t *testing.T) {
	oracle := NewOracle()
	got, err := oracle.Categories("tlh")
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "other"}, got)
}

func TestCategoriesAlwaysIncludeOther(t *testing.T) {
	oracle := NewOracle()
	for _, locale := range []string{"en", "fr", "ja", "ru", "ar", "cy", "gd", "mt"} {
		got, err := oracle.Categories(locale)
		require.NoError(t, err)
		assert.Equal(t, "other", got[len(got)-1], locale)
	}
}
