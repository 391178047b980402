// Package plurals implements the CLDR cardinal plural-category oracle.
//
// golang.org/x/text evaluates plural rules but does not export the set of
// categories a locale uses, so the sets are carried as an embedded table
// derived from CLDR cardinal data, keyed by base language.
package plurals

import (
	"strings"

	"golang.org/x/text/language"

	"i18nextract/internal/ports/output"
)

// Ensure Oracle implements the output.PluralOracle port.
var _ output.PluralOracle = (*Oracle)(nil)

type Oracle struct{}

func NewOracle() *Oracle {
	return &Oracle{}
}

// Categories returns the locale's cardinal categories in CLDR order. Locales
// absent from the table use {one, other}; the result always includes other.
func (o *Oracle) Categories(locale string) ([]string, error) {
	key := baseLanguage(locale)
	if set, ok := categoryTable[key]; ok {
		return set, nil
	}
	return setOneOther, nil
}

func baseLanguage(locale string) string {
	tag, err := language.Parse(locale)
	if err == nil {
		base, conf := tag.Base()
		if conf > language.No {
			return base.String()
		}
	}
	// tolerate tags x/text rejects; i18next locale folders are free-form
	lower := strings.ToLower(locale)
	if idx := strings.IndexAny(lower, "-_"); idx > 0 {
		return lower[:idx]
	}
	return lower
}

var (
	setOther        = []string{"other"}
	setOneOther     = []string{"one", "other"}
	setOneManyOther = []string{"one", "many", "other"}
	setOneFewOther  = []string{"one", "few", "other"}
	setZeroOneOther = []string{"zero", "one", "other"}
	setSlavic       = []string{"one", "few", "many", "other"}
	setOneTwoFew    = []string{"one", "two", "few", "other"}
	setArabic       = []string{"zero", "one", "two", "few", "many", "other"}
)

// categoryTable maps base languages to their CLDR cardinal category sets.
var categoryTable = map[string][]string{
	// no plural distinction
	"id": setOther, "ja": setOther, "jv": setOther, "km": setOther,
	"ko": setOther, "lo": setOther, "ms": setOther, "my": setOther,
	"th": setOther, "vi": setOther, "yo": setOther, "zh": setOther,

	// one/other
	"af": setOneOther, "az": setOneOther, "bg": setOneOther, "bn": setOneOther,
	"da": setOneOther, "de": setOneOther, "el": setOneOther, "en": setOneOther,
	"eo": setOneOther, "et": setOneOther, "eu": setOneOther, "fa": setOneOther,
	"fi": setOneOther, "gl": setOneOther, "gu": setOneOther, "hi": setOneOther,
	"hu": setOneOther, "hy": setOneOther, "is": setOneOther, "ka": setOneOther,
	"kk": setOneOther, "kn": setOneOther, "ky": setOneOther, "ml": setOneOther,
	"mn": setOneOther, "mr": setOneOther, "nb": setOneOther, "ne": setOneOther,
	"nl": setOneOther, "nn": setOneOther, "no": setOneOther, "pa": setOneOther,
	"sq": setOneOther, "sv": setOneOther, "sw": setOneOther, "ta": setOneOther,
	"te": setOneOther, "tk": setOneOther, "tr": setOneOther, "ur": setOneOther,
	"uz": setOneOther, "zu": setOneOther,

	// one/many/other (CLDR 42+ added many for the 1e6 range)
	"ca": setOneManyOther, "es": setOneManyOther, "fr": setOneManyOther,
	"it": setOneManyOther, "pt": setOneManyOther,

	// one/few/other
	"bs": setOneFewOther, "hr": setOneFewOther, "ro": setOneFewOther,
	"sr": setOneFewOther, "sh": setOneFewOther,

	// zero/one/other
	"lv": setZeroOneOther,

	// one/few/many/other
	"be": setSlavic, "cs": setSlavic, "lt": setSlavic, "pl": setSlavic,
	"ru": setSlavic, "sk": setSlavic, "uk": setSlavic,

	// one/two/few/other
	"gd": setOneTwoFew, "sl": setOneTwoFew,

	"he": {"one", "two", "many", "other"},
	"ga": {"one", "two", "few", "many", "other"},
	"mt": {"one", "two", "few", "many", "other"},
	"br": {"one", "two", "few", "many", "other"},
	"ar": setArabic,
	"cy": setArabic,
	"kw": setArabic,
}
