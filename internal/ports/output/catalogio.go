package output

import "i18nextract/internal/domain/entities"

// CatalogIO persists catalogs. Implementations resolve (locale, namespace)
// pairs to files through the configured output path template.
type CatalogIO interface {
	// Namespaces lists the namespaces that already have a catalog file for
	// the locale, in file-name order. Old-catalog backups are not namespaces.
	Namespaces(locale string) ([]string, error)

	// Load reads one catalog. A missing file yields (nil, nil).
	Load(locale, namespace string) (*entities.Catalog, error)

	// Write serializes one catalog, creating parent directories as needed.
	Write(locale, namespace string, c *entities.Catalog) error

	// WriteOld serializes the removed-keys catalog next to the main one.
	WriteOld(locale, namespace string, c *entities.Catalog) error
}
