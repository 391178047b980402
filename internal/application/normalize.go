package application

import (
	"strings"

	"i18nextract/internal/config"
	"i18nextract/internal/domain"
	"i18nextract/internal/domain/entities"
)

// source keys may carry doubly escaped whitespace sequences; one level of
// escaping is removed so catalog keys match what the runtime looks up.
var keyUnescaper = strings.NewReplacer(
	`\\n`, `\n`,
	`\\r`, `\r`,
	`\\t`, `\t`,
	`\\\\`, `\\`,
)

// Normalize turns one raw occurrence into a structured key. Deterministic and
// pure; the only failure mode is an empty key path.
func Normalize(occ entities.Occurrence, cfg *config.Config) (entities.Key, error) {
	raw := keyUnescaper.Replace(occ.RawKey)

	namespace := occ.RawNamespace
	if namespace == "" {
		sep := cfg.NamespaceSeparator
		if !sep.Disabled {
			if idx := strings.Index(raw, sep.Value); idx >= 0 {
				namespace = raw[:idx]
				raw = raw[idx+len(sep.Value):]
			}
		}
	}
	if namespace == "" {
		namespace = cfg.DefaultNamespace
	}

	keySep := cfg.KeySeparator
	if !keySep.Disabled {
		raw = strings.TrimSuffix(raw, keySep.Value)
	}

	var path []string
	if keySep.Disabled {
		if raw != "" {
			path = []string{raw}
		}
	} else {
		for _, seg := range strings.Split(raw, keySep.Value) {
			if seg != "" {
				path = append(path, seg)
			}
		}
	}
	if len(path) == 0 {
		return entities.Key{}, domain.ErrInvalidKey
	}

	key := entities.Key{
		Namespace:    namespace,
		Path:         path,
		DefaultValue: occ.DefaultValue,
		HasDefault:   occ.HasDefault,
		HasCount:     occ.HasCount,
		File:         occ.File,
	}
	if occ.HasContext {
		key.Context = occ.Context
	}
	return key, nil
}
