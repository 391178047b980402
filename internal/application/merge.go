package application

import (
	"strings"

	"i18nextract/internal/config"
	"i18nextract/internal/domain"
	"i18nextract/internal/domain/entities"
	"i18nextract/internal/ports/output"
	"i18nextract/pkg/chardiff"
)

// CatalogSet holds catalogs per locale and namespace.
type CatalogSet map[string]map[string]*entities.Catalog

func (s CatalogSet) put(locale, namespace string, c *entities.Catalog) {
	if s[locale] == nil {
		s[locale] = map[string]*entities.Catalog{}
	}
	s[locale][namespace] = c
}

// Get returns the catalog for a pair, or nil.
func (s CatalogSet) Get(locale, namespace string) *entities.Catalog {
	return s[locale][namespace]
}

// PairStats summarizes one (locale, namespace) merge.
type PairStats struct {
	Locale     string
	Namespace  string
	UniqueKeys int
	PluralKeys int
	Added      int
	Updated    int
	Removed    int
	Kept       int
}

// MergeOutcome is everything one merge pass produced.
type MergeOutcome struct {
	Updated CatalogSet
	Old     CatalogSet
	Stats   []PairStats
	Report  *domain.Report
}

// Merger reconciles discovered keys against existing catalogs.
type Merger struct {
	cfg      *config.Config
	expander *Expander
}

func NewMerger(cfg *config.Config, oracle output.PluralOracle) *Merger {
	return &Merger{cfg: cfg, expander: NewExpander(oracle)}
}

// resolvedKey is one fully finalized key: context and plural category baked
// into the path, identity computed.
type resolvedKey struct {
	key  entities.Key
	path []string
	id   string
}

func keyID(namespace string, path []string) string {
	return namespace + "\x1f" + strings.Join(path, "\x1f")
}

// Merge runs the engine once per (locale, namespace) pair present in either
// the discovered key set or the existing catalogs. existing holds the loaded
// pre-run snapshot; nsOrder lists each locale's on-disk namespaces in load
// order; skip marks pairs whose catalog could not be read and must be left
// untouched.
func (m *Merger) Merge(keys []entities.Key, existing CatalogSet, nsOrder map[string][]string, skip map[string]map[string]bool) (*MergeOutcome, error) {
	outcome := &MergeOutcome{
		Updated: CatalogSet{},
		Old:     CatalogSet{},
		Report:  &domain.Report{},
	}
	primary := m.cfg.Primary()
	// primary is merged first so its resolved values can seed other locales.
	primaryValues := map[string]string{}

	for _, locale := range m.cfg.Locales {
		resolved, namespaces, err := m.resolveForLocale(keys, locale, outcome.Report, locale == primary)
		if err != nil {
			return nil, err
		}
		for _, ns := range nsOrder[locale] {
			if _, ok := resolved[ns]; !ok {
				namespaces = append(namespaces, ns)
				resolved[ns] = nil
			}
		}

		for _, ns := range namespaces {
			if skip[locale][ns] {
				continue
			}
			m.mergePair(locale, ns, resolved[ns], existing.Get(locale, ns), primaryValues, outcome)
		}
	}

	if len(outcome.Stats) == 0 {
		return nil, domain.ErrNothingProcessed
	}
	return outcome, nil
}

// resolveForLocale expands plurals for the locale, finalizes context/plural
// segments and deduplicates by key identity, keeping first-seen order.
// Conflicting defaults are reported once, while the primary locale resolves.
func (m *Merger) resolveForLocale(keys []entities.Key, locale string, report *domain.Report, reportConflicts bool) (map[string][]*resolvedKey, []string, error) {
	byNamespace := map[string][]*resolvedKey{}
	seen := map[string]*resolvedKey{}
	var namespaces []string

	for _, key := range keys {
		variants, err := m.expander.Expand(key, locale)
		if err != nil {
			return nil, nil, err
		}
		for _, v := range variants {
			path := v.Finalize(m.cfg.ContextSeparator, m.cfg.PluralSeparator)
			id := keyID(v.Namespace, path)
			if prev, ok := seen[id]; ok {
				if reportConflicts && prev.key.HasDefault && v.HasDefault && prev.key.DefaultValue != v.DefaultValue {
					report.Add(domain.Warning{
						Kind:      domain.WarnValueConflict,
						File:      v.File,
						Namespace: v.Namespace,
						Key:       strings.Join(path, m.keySeparator()),
						Detail:    chardiff.Diff(prev.key.DefaultValue, v.DefaultValue),
					})
				}
				// first occurrence wins, but a later default fills a missing one
				if !prev.key.HasDefault && v.HasDefault {
					prev.key.DefaultValue = v.DefaultValue
					prev.key.HasDefault = true
				}
				continue
			}
			if _, ok := byNamespace[v.Namespace]; !ok {
				namespaces = append(namespaces, v.Namespace)
			}
			rk := &resolvedKey{key: v, path: path, id: id}
			byNamespace[v.Namespace] = append(byNamespace[v.Namespace], rk)
			seen[id] = rk
		}
	}
	return byNamespace, namespaces, nil
}

func (m *Merger) mergePair(locale, ns string, discovered []*resolvedKey, existing *entities.Catalog, primaryValues map[string]string, outcome *MergeOutcome) {
	updated := entities.NewCatalog()
	if existing != nil {
		updated = existing.Clone()
	}
	old := entities.NewCatalog()
	stats := PairStats{Locale: locale, Namespace: ns, UniqueKeys: len(discovered)}
	isPrimary := locale == m.cfg.Primary()
	reset := m.cfg.ResetDefaultValueLocale == locale

	for _, rk := range discovered {
		if rk.key.PluralCategory != "" {
			stats.PluralKeys++
		}
		value := m.resolveValue(locale, ns, rk, primaryValues)
		joined := strings.Join(rk.path, m.keySeparator())

		entry, ok := updated.Get(rk.path)
		switch {
		case !ok:
			updated.SetEntry(rk.path, entities.Entry{Value: value, LastExtracted: true})
			stats.Added++
			outcome.Report.Add(domain.Warning{
				Kind: domain.WarnKeyAdded, Locale: locale, Namespace: ns, Key: joined, File: rk.key.File,
			})
		case entry.Value == "" && value != "":
			entry.Value = value
			entry.LastExtracted = true
			stats.Updated++
			outcome.Report.Add(domain.Warning{
				Kind: domain.WarnValueUpdated, Locale: locale, Namespace: ns, Key: joined,
				Detail: chardiff.Diff("", value),
			})
		case reset && value != "" && entry.Value != value:
			// the one sanctioned overwrite of a human translation
			detail := chardiff.Diff(entry.Value, value)
			entry.Value = value
			entry.LastExtracted = true
			stats.Updated++
			outcome.Report.Add(domain.Warning{
				Kind: domain.WarnValueUpdated, Locale: locale, Namespace: ns, Key: joined, Detail: detail,
			})
		default:
			entry.LastExtracted = true
		}

		if isPrimary {
			if entry, ok := updated.Get(rk.path); ok {
				primaryValues[rk.id] = entry.Value
			}
		}
	}

	// anything the scan did not mark is a removal candidate
	for _, path := range updated.LeafPaths() {
		entry, ok := updated.Get(path)
		if !ok || entry.LastExtracted {
			continue
		}
		if m.cfg.KeepRemoved {
			stats.Kept++
			continue
		}
		if m.cfg.CreateOldCatalogs {
			old.SetEntry(path, *entry)
		}
		updated.Delete(path)
		stats.Removed++
		outcome.Report.Add(domain.Warning{
			Kind: domain.WarnKeyRemoved, Locale: locale, Namespace: ns,
			Key: strings.Join(path, m.keySeparator()),
		})
	}

	if m.cfg.Sort {
		updated.SortLexicographic()
		old.SortLexicographic()
	}

	outcome.Updated.put(locale, ns, updated)
	if !old.IsEmpty() {
		outcome.Old.put(locale, ns, old)
	}
	outcome.Stats = append(outcome.Stats, stats)
}

// resolveValue applies the value resolution order for a key that needs one:
// custom template first, then the captured default (primary locale), then the
// primary locale's resolved value (resetDefaultValueLocale), then empty.
// The template and the reset source compose: the template shapes the final
// value and the reset source feeds its ${defaultValue} placeholder.
func (m *Merger) resolveValue(locale, ns string, rk *resolvedKey, primaryValues map[string]string) string {
	var base string
	switch {
	case locale == m.cfg.Primary():
		if rk.key.HasDefault {
			base = rk.key.DefaultValue
		} else {
			base = m.cfg.DefaultValue
		}
	case m.cfg.ResetDefaultValueLocale == locale:
		base = primaryValues[rk.id]
	}

	if m.cfg.CustomValueTemplate == "" {
		return base
	}
	return strings.NewReplacer(
		"${defaultValue}", base,
		"${key}", strings.Join(rk.path, m.keySeparator()),
		"${namespace}", ns,
		"${locale}", locale,
		"${filePath}", rk.key.File,
	).Replace(m.cfg.CustomValueTemplate)
}

func (m *Merger) keySeparator() string {
	if m.cfg.KeySeparator.Disabled {
		return "."
	}
	return m.cfg.KeySeparator.Value
}
