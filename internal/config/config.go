package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"i18nextract/internal/domain"
)

// Separator is a configurable key-shape separator. A config value of false
// disables splitting entirely, which is distinct from leaving the field unset
// (that uses the documented default).
type Separator struct {
	Disabled bool
	Value    string
}

func Sep(value string) Separator {
	return Separator{Value: value}
}

func DisabledSep() Separator {
	return Separator{Disabled: true}
}

// Config is the resolved configuration of one run.
type Config struct {
	WorkingDir string

	Locales []string
	Input   []string
	Output  string

	DefaultNamespace string
	DefaultValue     string

	NamespaceSeparator Separator
	KeySeparator       Separator
	ContextSeparator   string
	PluralSeparator    string

	Sort              bool
	KeepRemoved       bool
	CreateOldCatalogs bool
	FailOnWarnings    bool
	FailOnUpdate      bool

	CustomValueTemplate     string
	ResetDefaultValueLocale string

	LineEnding string
	Verbose    bool
}

// Default returns the configuration used when no config file is found.
func Default() *Config {
	return &Config{
		WorkingDir:         ".",
		Locales:            []string{"en"},
		Input:              []string{"src/**/*.{js,jsx,ts,tsx}"},
		Output:             filepath.Join("locales", "$LOCALE", "$NAMESPACE.json"),
		DefaultNamespace:   "translation",
		NamespaceSeparator: Sep(":"),
		KeySeparator:       Sep("."),
		ContextSeparator:   "_",
		PluralSeparator:    "_",
		LineEnding:         "auto",
	}
}

// Primary returns the locale that supplies default values to the others.
func (c *Config) Primary() string {
	return c.Locales[0]
}

// rawConfig mirrors the i18next-parser config file surface. Separator fields
// are any because a literal false is the disable sentinel.
type rawConfig struct {
	Locales                 []string `json:"locales" yaml:"locales" toml:"locales"`
	Input                   []string `json:"input" yaml:"input" toml:"input"`
	Output                  *string  `json:"output" yaml:"output" toml:"output"`
	DefaultNamespace        *string  `json:"defaultNamespace" yaml:"defaultNamespace" toml:"defaultNamespace"`
	DefaultValue            *string  `json:"defaultValue" yaml:"defaultValue" toml:"defaultValue"`
	NamespaceSeparator      any      `json:"namespaceSeparator" yaml:"namespaceSeparator" toml:"namespaceSeparator"`
	KeySeparator            any      `json:"keySeparator" yaml:"keySeparator" toml:"keySeparator"`
	ContextSeparator        *string  `json:"contextSeparator" yaml:"contextSeparator" toml:"contextSeparator"`
	PluralSeparator         *string  `json:"pluralSeparator" yaml:"pluralSeparator" toml:"pluralSeparator"`
	Sort                    *bool    `json:"sort" yaml:"sort" toml:"sort"`
	KeepRemoved             *bool    `json:"keepRemoved" yaml:"keepRemoved" toml:"keepRemoved"`
	CreateOldCatalogs       *bool    `json:"createOldCatalogs" yaml:"createOldCatalogs" toml:"createOldCatalogs"`
	FailOnWarnings          *bool    `json:"failOnWarnings" yaml:"failOnWarnings" toml:"failOnWarnings"`
	FailOnUpdate            *bool    `json:"failOnUpdate" yaml:"failOnUpdate" toml:"failOnUpdate"`
	CustomValueTemplate     *string  `json:"customValueTemplate" yaml:"customValueTemplate" toml:"customValueTemplate"`
	ResetDefaultValueLocale *string  `json:"resetDefaultValueLocale" yaml:"resetDefaultValueLocale" toml:"resetDefaultValueLocale"`
	LineEnding              *string  `json:"lineEnding" yaml:"lineEnding" toml:"lineEnding"`
	Verbose                 *bool    `json:"verbose" yaml:"verbose" toml:"verbose"`
}

// configFiles lists the recognized config file names, most specific first.
var configFiles = []string{
	".i18next-parser.json",
	".i18next-parser.yaml",
	".i18next-parser.yml",
	".i18next-parser.toml",
	"i18next-parser.json",
	"i18next-parser.yaml",
	"i18next-parser.yml",
	"i18next-parser.toml",
}

// Load builds the configuration for workingDir: defaults, then the first
// config file found there, then environment overrides. A missing config file
// is not an error.
func Load(fsys afero.Fs, workingDir string) (*Config, error) {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	cfg := Default()
	cfg.WorkingDir = workingDir

	for _, name := range configFiles {
		path := filepath.Join(workingDir, name)
		ok, err := afero.Exists(fsys, path)
		if err != nil || !ok {
			continue
		}
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := cfg.applyFile(name, data); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
		break
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyFile(name string, data []byte) error {
	var raw rawConfig
	var err error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		err = json.Unmarshal(data, &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	default:
		err = fmt.Errorf("unsupported config format %q", filepath.Ext(name))
	}
	if err != nil {
		return err
	}
	return c.apply(&raw)
}

func (c *Config) apply(raw *rawConfig) error {
	if raw.Locales != nil {
		c.Locales = raw.Locales
	}
	if raw.Input != nil {
		c.Input = raw.Input
	}
	setString(&c.Output, raw.Output)
	setString(&c.DefaultNamespace, raw.DefaultNamespace)
	setString(&c.DefaultValue, raw.DefaultValue)
	setString(&c.ContextSeparator, raw.ContextSeparator)
	setString(&c.PluralSeparator, raw.PluralSeparator)
	setString(&c.CustomValueTemplate, raw.CustomValueTemplate)
	setString(&c.ResetDefaultValueLocale, raw.ResetDefaultValueLocale)
	setString(&c.LineEnding, raw.LineEnding)
	setBool(&c.Sort, raw.Sort)
	setBool(&c.KeepRemoved, raw.KeepRemoved)
	setBool(&c.CreateOldCatalogs, raw.CreateOldCatalogs)
	setBool(&c.FailOnWarnings, raw.FailOnWarnings)
	setBool(&c.FailOnUpdate, raw.FailOnUpdate)
	setBool(&c.Verbose, raw.Verbose)

	if err := applySeparator(&c.NamespaceSeparator, raw.NamespaceSeparator, "namespaceSeparator"); err != nil {
		return err
	}
	return applySeparator(&c.KeySeparator, raw.KeySeparator, "keySeparator")
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func applySeparator(dst *Separator, v any, field string) error {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		if val == "" {
			*dst = DisabledSep()
		} else {
			*dst = Sep(val)
		}
		return nil
	case bool:
		if val {
			return fmt.Errorf("%s: true is not a separator; use a string or false", field)
		}
		*dst = DisabledSep()
		return nil
	default:
		return fmt.Errorf("%s: expected string or false, got %T", field, v)
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("I18NEXTRACT_LOCALES"); v != "" {
		var locales []string
		for _, l := range strings.Split(v, ",") {
			if l = strings.TrimSpace(l); l != "" {
				locales = append(locales, l)
			}
		}
		if len(locales) > 0 {
			c.Locales = locales
		}
	}
	if v := os.Getenv("I18NEXTRACT_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("I18NEXTRACT_VERBOSE"); v == "1" || strings.EqualFold(v, "true") {
		c.Verbose = true
	}
}

// Validate applies all business rules on the loaded configuration.
func (c *Config) Validate() error {
	if len(c.Locales) == 0 {
		return domain.ErrNoLocales
	}
	if c.ResetDefaultValueLocale != "" && !c.hasLocale(c.ResetDefaultValueLocale) {
		return fmt.Errorf("config: resetDefaultValueLocale %q: %w", c.ResetDefaultValueLocale, domain.ErrUnknownLocale)
	}
	switch c.LineEnding {
	case "auto", "lf", "crlf", "cr":
	default:
		return fmt.Errorf("config: lineEnding %q: %w", c.LineEnding, domain.ErrUnknownLineEnding)
	}
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("config: output must not be empty")
	}
	if !strings.Contains(c.Output, "$LOCALE") || !strings.Contains(c.Output, "$NAMESPACE") {
		return fmt.Errorf("config: output %q must contain $LOCALE and $NAMESPACE", c.Output)
	}
	return nil
}

func (c *Config) hasLocale(locale string) bool {
	for _, l := range c.Locales {
		if l == locale {
			return true
		}
	}
	return false
}
