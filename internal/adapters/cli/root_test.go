package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"i18nextract/internal/application"
	"i18nextract/internal/config"
	"i18nextract/internal/domain"
)

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommandWritesCatalogs(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"src/app.ts": `t("app.title", "My App")`,
	})
	t.Setenv("I18NEXTRACT_LANG", "en")

	out, _, err := runCommand(t, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Scanned 1 files")

	data, err := os.ReadFile(filepath.Join(dir, "locales", "en", "translation.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title": "My App"`)
}

func TestRootCommandDryRun(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"src/app.ts": `t("key", "V")`,
	})

	_, _, err := runCommand(t, dir, "--dry-run")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "locales"))
	assert.True(t, os.IsNotExist(err))
}

func TestRootCommandFailOnUpdateIgnoresAdditions(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"src/app.ts": `t("key", "V")`,
	})

	_, _, err := runCommand(t, dir, "--fail-on-update", "--dry-run")
	assert.NoError(t, err, "brand-new keys are additions, not updates")
}

func TestRootCommandFailOnUpdate(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"src/app.ts":                  `t("key", "V")`,
		"locales/en/translation.json": `{"key": ""}`,
	})

	_, _, err := runCommand(t, dir, "--fail-on-update", "--dry-run")
	assert.ErrorIs(t, err, domain.ErrUpdatesPresent, "filling an empty value is an update")
}

func TestRootCommandReadsConfigFile(t *testing.T) {
	dir := writeProject(t, map[string]string{
		".i18next-parser.json": `{"locales": ["en", "fr"], "input": ["app/**/*.ts"]}`,
		"app/main.ts":          `t("k", "V")`,
	})

	_, _, err := runCommand(t, dir)
	require.NoError(t, err)

	for _, locale := range []string{"en", "fr"} {
		_, err := os.Stat(filepath.Join(dir, "locales", locale, "translation.json"))
		assert.NoError(t, err, locale)
	}
}

func TestExitPolicy(t *testing.T) {
	cfg := config.Default()
	clean := &application.RunResult{Report: &domain.Report{}}
	assert.NoError(t, exitPolicy(cfg, clean))

	warned := &application.RunResult{Report: &domain.Report{}}
	warned.Report.Add(domain.Warning{Kind: domain.WarnDynamicKey})
	assert.NoError(t, exitPolicy(cfg, warned))

	cfg.FailOnWarnings = true
	assert.ErrorIs(t, exitPolicy(cfg, warned), domain.ErrWarningsPresent)

	cfg.FailOnWarnings = false
	cfg.FailOnUpdate = true
	added := &application.RunResult{
		Report: &domain.Report{},
		Stats:  []application.PairStats{{Added: 1, Removed: 1}},
	}
	assert.NoError(t, exitPolicy(cfg, added),
		"only overwritten values trip the update gate")

	updated := &application.RunResult{Report: &domain.Report{}}
	updated.Report.Add(domain.Warning{Kind: domain.WarnValueUpdated})
	assert.ErrorIs(t, exitPolicy(cfg, updated), domain.ErrUpdatesPresent)
	assert.NoError(t, exitPolicy(cfg, clean))
}

func TestMessageLocale(t *testing.T) {
	t.Setenv("I18NEXTRACT_LANG", "")
	t.Setenv("LC_ALL", "")
	t.Setenv("LANG", "fr_FR.UTF-8")
	assert.Equal(t, "fr", messageLocale())

	t.Setenv("I18NEXTRACT_LANG", "de")
	assert.Equal(t, "de", messageLocale())
}
