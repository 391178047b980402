package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"i18nextract/internal/config"
	"i18nextract/internal/domain"
	"i18nextract/internal/domain/entities"
)

func TestNormalizeSplitsNamespaceAndPath(t *testing.T) {
	cfg := config.Default()

	key, err := Normalize(entities.Occurrence{RawKey: "common:button.save"}, cfg)
	require.NoError(t, err)
	assert.Equal(t, "common", key.Namespace)
	assert.Equal(t, []string{"button", "save"}, key.Path)
}

func TestNormalizeDefaultNamespace(t *testing.T) {
	cfg := config.Default()

	key, err := Normalize(entities.Occurrence{RawKey: "title"}, cfg)
	require.NoError(t, err)
	assert.Equal(t, "translation", key.Namespace)
	assert.Equal(t, []string{"title"}, key.Path)
}

func TestNormalizeExplicitNamespaceWins(t *testing.T) {
	cfg := config.Default()

	// an ambient or ns-option namespace suppresses separator splitting
	key, err := Normalize(entities.Occurrence{RawKey: "common:save", RawNamespace: "menu"}, cfg)
	require.NoError(t, err)
	assert.Equal(t, "menu", key.Namespace)
	assert.Equal(t, []string{"common:save"}, key.Path)
}

func TestNormalizeDisabledSeparators(t *testing.T) {
	cfg := config.Default()
	cfg.NamespaceSeparator = config.DisabledSep()
	cfg.KeySeparator = config.DisabledSep()

	key, err := Normalize(entities.Occurrence{RawKey: "common:button.save"}, cfg)
	require.NoError(t, err)
	assert.Equal(t, "translation", key.Namespace)
	assert.Equal(t, []string{"common:button.save"}, key.Path)
}

func TestNormalizeTrimsTrailingKeySeparator(t *testing.T) {
	cfg := config.Default()

	key, err := Normalize(entities.Occurrence{RawKey: "button.save."}, cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"button", "save"}, key.Path)
}

func TestNormalizeDropsEmptySegments(t *testing.T) {
	cfg := config.Default()

	key, err := Normalize(entities.Occurrence{RawKey: "a..b"}, cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, key.Path)
}

func TestNormalizeRejectsEmptyKey(t *testing.T) {
	cfg := config.Default()

	for _, raw := range []string{"", ".", "..", "common:"} {
		_, err := Normalize(entities.Occurrence{RawKey: raw}, cfg)
		assert.ErrorIs(t, err, domain.ErrInvalidKey, "raw=%q", raw)
	}
}

func TestNormalizeUnescapesDoubleEscapes(t *testing.T) {
	cfg := config.Default()

	key, err := Normalize(entities.Occurrence{RawKey: `line\\nbreak`}, cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{`line\nbreak`}, key.Path)
}

func TestNormalizeCarriesMetadata(t *testing.T) {
	cfg := config.Default()

	key, err := Normalize(entities.Occurrence{
		RawKey:       "greeting",
		DefaultValue: "Hello",
		HasDefault:   true,
		Context:      "formal",
		HasContext:   true,
		HasCount:     true,
		File:         "src/app.tsx",
	}, cfg)
	require.NoError(t, err)
	assert.Equal(t, "Hello", key.DefaultValue)
	assert.True(t, key.HasDefault)
	assert.Equal(t, "formal", key.Context)
	assert.True(t, key.HasCount)
	assert.Equal(t, "src/app.tsx", key.File)
}
