// Package cli is the command-line adapter. It wires ports: infrastructure
// adapters -> application (use cases) -> terminal output.
package cli

import (
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"i18nextract/internal/application"
	"i18nextract/internal/config"
	"i18nextract/internal/domain"
	"i18nextract/internal/infrastructure/catalogio"
	"i18nextract/internal/infrastructure/i18n"
	"i18nextract/internal/infrastructure/plurals"
	"i18nextract/internal/infrastructure/sourcefs"
	"i18nextract/internal/infrastructure/sourcetree"
	"i18nextract/internal/ports/input"
)

// Ensure the application runner satisfies the input port the CLI drives.
var _ input.RunnerUseCase = (*application.Runner)(nil)

// NewRootCommand builds the i18nextract command. The optional positional
// argument is the project directory; config discovery, input globs and output
// paths all resolve relative to it.
func NewRootCommand() *cobra.Command {
	var (
		dryRun         bool
		verbose        bool
		failOnWarnings bool
		failOnUpdate   bool
	)

	cmd := &cobra.Command{
		Use:   "i18nextract [path]",
		Short: "Extract translation keys from source files and update locale catalogs",
		Long: `i18nextract scans JS/TS/JSX sources for translation usages, derives the
full key set (namespaces, contexts, plural forms) and reconciles it with the
JSON or YAML catalogs on disk, preserving existing translations.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			workingDir := "."
			if len(args) == 1 {
				workingDir = args[0]
			}

			osFs := afero.NewOsFs()
			cfg, err := config.Load(osFs, workingDir)
			if err != nil {
				return err
			}
			// flags win over the config file
			if cmd.Flags().Changed("verbose") {
				cfg.Verbose = verbose
			}
			if cmd.Flags().Changed("fail-on-warnings") {
				cfg.FailOnWarnings = failOnWarnings
			}
			if cmd.Flags().Changed("fail-on-update") {
				cfg.FailOnUpdate = failOnUpdate
			}

			projectFs := afero.NewBasePathFs(osFs, workingDir)
			runner := application.NewRunner(
				cfg,
				projectFs,
				sourcefs.NewFinder(projectFs),
				sourcetree.NewProvider(),
				catalogio.NewStore(projectFs, cfg.Output, cfg.LineEnding),
				plurals.NewOracle(),
			)
			runner.DryRun = dryRun

			result, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}

			printer := NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), i18n.NewTranslator("en"), messageLocale())
			printer.Warnings(result.Report, cfg.Verbose)
			printer.Summary(result, dryRun)

			return exitPolicy(cfg, result)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "compute and report changes without writing any file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log per-file progress and every warning")
	cmd.Flags().BoolVar(&failOnWarnings, "fail-on-warnings", false, "exit non-zero when any warning was emitted")
	cmd.Flags().BoolVar(&failOnUpdate, "fail-on-update", false, "exit non-zero when any existing catalog value was updated")

	return cmd
}

// exitPolicy turns a successful run into a failure when the configuration
// demands a clean state. Warnings take precedence over updates; the update
// gate trips on overwritten values only, never on added or removed keys.
func exitPolicy(cfg *config.Config, result *application.RunResult) error {
	if cfg.FailOnWarnings && result.Report.Len() > 0 {
		return domain.ErrWarningsPresent
	}
	if cfg.FailOnUpdate && result.Report.Has(domain.WarnValueUpdated) {
		return domain.ErrUpdatesPresent
	}
	return nil
}

// messageLocale picks the locale for the tool's own messages from the
// environment, defaulting to English.
func messageLocale() string {
	for _, name := range []string{"I18NEXTRACT_LANG", "LC_ALL", "LANG"} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		if i := strings.IndexAny(v, "._"); i > 0 {
			v = v[:i]
		}
		return v
	}
	return "en"
}
