package domain

import "fmt"

// WarningKind classifies everything a run can complain about without failing.
type WarningKind int

const (
	// WarnParseFailure - a source file could not be turned into a syntax tree.
	WarnParseFailure WarningKind = iota
	// WarnUnreadableFile - a source file could not be read.
	WarnUnreadableFile
	// WarnUnreadableCatalog - an existing catalog file could not be decoded.
	WarnUnreadableCatalog
	// WarnInvalidKey - a key was empty after normalization.
	WarnInvalidKey
	// WarnDynamicKey - a key argument could not be resolved statically.
	WarnDynamicKey
	// WarnKeyAdded - a key was discovered that had no catalog entry.
	WarnKeyAdded
	// WarnValueUpdated - an existing entry's value was overwritten.
	WarnValueUpdated
	// WarnKeyRemoved - a catalog entry was no longer referenced by the source.
	WarnKeyRemoved
	// WarnValueConflict - one key was extracted twice with different defaults.
	WarnValueConflict
)

func (k WarningKind) String() string {
	switch k {
	case WarnParseFailure:
		return "parse failure"
	case WarnUnreadableFile:
		return "unreadable file"
	case WarnUnreadableCatalog:
		return "unreadable catalog"
	case WarnInvalidKey:
		return "invalid key"
	case WarnDynamicKey:
		return "dynamic key"
	case WarnKeyAdded:
		return "key added"
	case WarnValueUpdated:
		return "value updated"
	case WarnKeyRemoved:
		return "key removed"
	case WarnValueConflict:
		return "value conflict"
	default:
		return "unknown"
	}
}

// Warning is one diagnostic produced while extracting or merging.
// Fields that do not apply to the kind stay empty.
type Warning struct {
	Kind      WarningKind
	File      string
	Locale    string
	Namespace string
	Key       string
	Detail    string
}

func (w Warning) String() string {
	s := w.Kind.String()
	if w.File != "" {
		s += " " + w.File
	}
	if w.Locale != "" || w.Namespace != "" {
		s += fmt.Sprintf(" [%s/%s]", w.Locale, w.Namespace)
	}
	if w.Key != "" {
		s += " " + w.Key
	}
	if w.Detail != "" {
		s += ": " + w.Detail
	}
	return s
}

// Report accumulates warnings in the order they were produced. It is passed
// around explicitly so parallel extraction never shares one instance.
type Report struct {
	warnings []Warning
}

func (r *Report) Add(w Warning) {
	r.warnings = append(r.warnings, w)
}

func (r *Report) Addf(kind WarningKind, file, key, format string, args ...any) {
	r.Add(Warning{Kind: kind, File: file, Key: key, Detail: fmt.Sprintf(format, args...)})
}

// Append moves all warnings from other into r, keeping their order.
func (r *Report) Append(other *Report) {
	if other != nil {
		r.warnings = append(r.warnings, other.warnings...)
	}
}

func (r *Report) Warnings() []Warning {
	return r.warnings
}

func (r *Report) Len() int {
	return len(r.warnings)
}

func (r *Report) Has(kind WarningKind) bool {
	for _, w := range r.warnings {
		if w.Kind == kind {
			return true
		}
	}
	return false
}

func (r *Report) Count(kind WarningKind) int {
	n := 0
	for _, w := range r.warnings {
		if w.Kind == kind {
			n++
		}
	}
	return n
}
