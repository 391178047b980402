package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslatorRendersTemplates(t *testing.T) {
	tr := NewTranslator("en")

	msg := tr.T("en", "run_scanned", map[string]any{"Files": 3, "Keys": 7})
	assert.Equal(t, "Scanned 3 files, found 7 translation keys.", msg)
}

func TestTranslatorLocaleFallback(t *testing.T) {
	tr := NewTranslator("en")

	fr := tr.T("fr", "run_dry", nil)
	assert.Contains(t, fr, "Simulation")

	// unknown locales fall back to the default language
	de := tr.T("de", "run_dry", nil)
	assert.Contains(t, de, "Dry run")
}

func TestTranslatorUnknownKeyReturnsKey(t *testing.T) {
	tr := NewTranslator("en")
	assert.Equal(t, "no_such_message", tr.T("en", "no_such_message", nil))
	assert.Equal(t, "", tr.T("en", "", nil))
}
