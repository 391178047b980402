package application

import (
	"context"
	"fmt"
	"log"
	"runtime"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"i18nextract/internal/config"
	"i18nextract/internal/domain"
	"i18nextract/internal/domain/entities"
	"i18nextract/internal/ports/output"
)

// Runner executes the whole pipeline: find sources, extract keys on a
// bounded worker pool, merge against the loaded catalogs, write results.
type Runner struct {
	cfg      *config.Config
	fs       afero.Fs
	finder   output.SourceFinder
	trees    output.TreeProvider
	catalogs output.CatalogIO
	merger   *Merger

	// DryRun computes and reports everything but writes nothing.
	DryRun bool
}

func NewRunner(
	cfg *config.Config,
	fs afero.Fs,
	finder output.SourceFinder,
	trees output.TreeProvider,
	catalogs output.CatalogIO,
	oracle output.PluralOracle,
) *Runner {
	return &Runner{
		cfg:      cfg,
		fs:       fs,
		finder:   finder,
		trees:    trees,
		catalogs: catalogs,
		merger:   NewMerger(cfg, oracle),
	}
}

// RunResult is what the CLI needs to report and to decide the exit status.
type RunResult struct {
	FilesScanned int
	KeysFound    int
	Stats        []PairStats
	Report       *domain.Report
}

type fileResult struct {
	keys   []entities.Key
	report *domain.Report
}

// Run performs one extract-and-merge pass. Catalogs are only written after
// the full merge succeeds, so a cancelled run never leaves partial output.
func (r *Runner) Run(ctx context.Context) (*RunResult, error) {
	files, err := r.finder.Find(ctx, r.cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("resolve input patterns: %w", err)
	}
	if r.cfg.Verbose {
		log.Printf("scanning %d files", len(files))
	}

	// Extraction is independent per file; results are reassembled in
	// traversal order so merge input stays deterministic.
	results := make([]fileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.extractFile(file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &domain.Report{}
	var keys []entities.Key
	for _, res := range results {
		report.Append(res.report)
		keys = append(keys, res.keys...)
	}

	existing, nsOrder, skip := r.loadCatalogs(report)

	outcome, err := r.merger.Merge(keys, existing, nsOrder, skip)
	if err != nil {
		return nil, err
	}
	// merge warnings follow extraction warnings, in merge order
	report.Append(outcome.Report)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !r.DryRun {
		if err := r.write(outcome); err != nil {
			return nil, err
		}
	}

	return &RunResult{
		FilesScanned: len(files),
		KeysFound:    len(keys),
		Stats:        outcome.Stats,
		Report:       report,
	}, nil
}

func (r *Runner) extractFile(file string) fileResult {
	res := fileResult{report: &domain.Report{}}

	src, err := afero.ReadFile(r.fs, file)
	if err != nil {
		res.report.Addf(domain.WarnUnreadableFile, file, "", "%v", err)
		return res
	}
	tree, err := r.trees.Parse(file, src)
	if err != nil {
		res.report.Addf(domain.WarnParseFailure, file, "", "%v", err)
		return res
	}

	for _, occ := range Recognize(file, tree, res.report) {
		key, err := Normalize(occ, r.cfg)
		if err != nil {
			res.report.Addf(domain.WarnInvalidKey, file, occ.RawKey, "%v", err)
			continue
		}
		res.keys = append(res.keys, key)
	}
	if r.cfg.Verbose {
		log.Printf("%s: %d keys", file, len(res.keys))
	}
	return res
}

// loadCatalogs snapshots every existing catalog before the merge mutates
// anything. Pairs whose file exists but cannot be decoded are skipped
// entirely so a rewrite cannot destroy them.
func (r *Runner) loadCatalogs(report *domain.Report) (CatalogSet, map[string][]string, map[string]map[string]bool) {
	existing := CatalogSet{}
	nsOrder := map[string][]string{}
	skip := map[string]map[string]bool{}

	for _, locale := range r.cfg.Locales {
		namespaces, err := r.catalogs.Namespaces(locale)
		if err != nil {
			report.Add(domain.Warning{Kind: domain.WarnUnreadableCatalog, Locale: locale, Detail: err.Error()})
			continue
		}
		for _, ns := range namespaces {
			cat, err := r.catalogs.Load(locale, ns)
			if err != nil {
				report.Add(domain.Warning{
					Kind: domain.WarnUnreadableCatalog, Locale: locale, Namespace: ns, Detail: err.Error(),
				})
				if skip[locale] == nil {
					skip[locale] = map[string]bool{}
				}
				skip[locale][ns] = true
				continue
			}
			if cat == nil {
				continue
			}
			existing.put(locale, ns, cat)
			nsOrder[locale] = append(nsOrder[locale], ns)
		}
	}
	return existing, nsOrder, skip
}

func (r *Runner) write(outcome *MergeOutcome) error {
	for _, locale := range r.cfg.Locales {
		for ns, cat := range outcome.Updated[locale] {
			if err := r.catalogs.Write(locale, ns, cat); err != nil {
				return fmt.Errorf("write catalog %s/%s: %w", locale, ns, err)
			}
		}
		for ns, cat := range outcome.Old[locale] {
			if err := r.catalogs.WriteOld(locale, ns, cat); err != nil {
				return fmt.Errorf("write old catalog %s/%s: %w", locale, ns, err)
			}
		}
	}
	return nil
}
