// Package catalogio persists catalogs as JSON or YAML files resolved through
// the configured output path template.
package catalogio

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"i18nextract/internal/domain/entities"
	"i18nextract/internal/ports/output"
)

// Ensure Store implements the output.CatalogIO port.
var _ output.CatalogIO = (*Store)(nil)

// Store reads and writes catalogs under an afero filesystem. The template
// must contain $LOCALE and $NAMESPACE; its extension selects the format.
type Store struct {
	fs         afero.Fs
	template   string
	lineEnding string
}

func NewStore(fs afero.Fs, template, lineEnding string) *Store {
	return &Store{fs: fs, template: template, lineEnding: lineEnding}
}

func (s *Store) path(locale, namespace string) string {
	path := strings.ReplaceAll(s.template, "$LOCALE", locale)
	return strings.ReplaceAll(path, "$NAMESPACE", namespace)
}

// oldPath derives the removed-keys file next to the catalog: name_old.ext.
func (s *Store) oldPath(locale, namespace string) string {
	path := s.path(locale, namespace)
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_old" + ext
}

func (s *Store) yaml() bool {
	switch strings.ToLower(filepath.Ext(s.template)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Namespaces lists namespaces that already have a catalog file for locale.
func (s *Store) Namespaces(locale string) ([]string, error) {
	probe := s.path(locale, "\x00")
	dir := filepath.Dir(probe)
	base := filepath.Base(probe)
	idx := strings.IndexByte(base, '\x00')
	prefix, suffix := base[:idx], base[idx+1:]

	infos, err := afero.ReadDir(s.fs, dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var namespaces []string
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		name := info.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, suffix) {
			continue
		}
		ns := name[len(prefix) : len(name)-len(suffix)]
		if ns == "" || strings.HasSuffix(ns, "_old") {
			continue
		}
		namespaces = append(namespaces, ns)
	}
	sort.Strings(namespaces)
	return namespaces, nil
}

// Load reads one catalog; a missing file yields (nil, nil).
func (s *Store) Load(locale, namespace string) (*entities.Catalog, error) {
	data, err := afero.ReadFile(s.fs, s.path(locale, namespace))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if s.yaml() {
		return DecodeYAML(data)
	}
	return DecodeJSON(data)
}

func (s *Store) Write(locale, namespace string, c *entities.Catalog) error {
	return s.writeFile(s.path(locale, namespace), c)
}

func (s *Store) WriteOld(locale, namespace string, c *entities.Catalog) error {
	return s.writeFile(s.oldPath(locale, namespace), c)
}

func (s *Store) writeFile(path string, c *entities.Catalog) error {
	var data []byte
	var err error
	if s.yaml() {
		data, err = EncodeYAML(c)
	} else {
		data, err = EncodeJSON(c)
	}
	if err != nil {
		return err
	}
	data = applyLineEnding(data, s.lineEnding)

	if dir := filepath.Dir(path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return afero.WriteFile(s.fs, path, data, 0o644)
}

func applyLineEnding(data []byte, lineEnding string) []byte {
	switch lineEnding {
	case "crlf":
		return bytes.ReplaceAll(data, []byte("\n"), []byte("\r\n"))
	case "cr":
		return bytes.ReplaceAll(data, []byte("\n"), []byte("\r"))
	default:
		// auto and lf both keep LF
		return data
	}
}
