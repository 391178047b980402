package cli

import (
	"fmt"
	"io"

	"i18nextract/internal/application"
	"i18nextract/internal/domain"
	"i18nextract/internal/ports/output"
)

// Printer renders run results for the terminal, localized through the
// Translator port.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	t      output.Translator
	locale string
}

func NewPrinter(out, errOut io.Writer, t output.Translator, locale string) *Printer {
	return &Printer{out: out, errOut: errOut, t: t, locale: locale}
}

// Warnings writes diagnostics to stderr. Merge bookkeeping kinds (added,
// updated, removed) only show up in verbose mode; real problems always print.
func (p *Printer) Warnings(report *domain.Report, verbose bool) {
	for _, w := range report.Warnings() {
		if !verbose && isBookkeeping(w.Kind) {
			continue
		}
		fmt.Fprintln(p.errOut, p.t.T(p.locale, "run_warning_line", map[string]any{"Message": w.String()}))
	}
}

func isBookkeeping(kind domain.WarningKind) bool {
	switch kind {
	case domain.WarnKeyAdded, domain.WarnValueUpdated, domain.WarnKeyRemoved:
		return true
	}
	return false
}

// Summary writes the per-pair merge statistics and the run totals to stdout.
func (p *Printer) Summary(result *application.RunResult, dryRun bool) {
	fmt.Fprintln(p.out, p.t.T(p.locale, "run_scanned", map[string]any{
		"Files": result.FilesScanned,
		"Keys":  result.KeysFound,
	}))

	changed := false
	for _, s := range result.Stats {
		if s.Added > 0 || s.Updated > 0 || s.Removed > 0 {
			changed = true
		}
		fmt.Fprintln(p.out, p.t.T(p.locale, "run_pair", map[string]any{
			"Locale":    s.Locale,
			"Namespace": s.Namespace,
			"Unique":    s.UniqueKeys,
			"Plural":    s.PluralKeys,
			"Added":     s.Added,
			"Updated":   s.Updated,
			"Removed":   s.Removed,
		}))
	}

	if !changed {
		fmt.Fprintln(p.out, p.t.T(p.locale, "run_no_changes", nil))
	}
	if n := result.Report.Len(); n > 0 {
		fmt.Fprintln(p.out, p.t.T(p.locale, "run_warnings", map[string]any{"Count": n}))
	}
	if dryRun {
		fmt.Fprintln(p.out, p.t.T(p.locale, "run_dry", nil))
	}
}
