package output

// PluralOracle resolves the CLDR cardinal plural categories of a locale.
type PluralOracle interface {
	// Categories returns the locale's cardinal category names in CLDR order
	// (subset of zero, one, two, few, many, other; always includes other).
	Categories(locale string) ([]string, error)
}
