package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meryerevan.am/internal/i18n"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, i18n.Armenian, cfg.DefaultLanguage)
	assert.Equal(t, 2*time.Second, cfg.ContactCloseDelay)
	assert.Equal(t, 2500*time.Millisecond, cfg.SuggestCloseDelay)
	assert.Equal(t, time.Second, cfg.AssistantReplyDelay)
	assert.Equal(t, i18n.Russian, cfg.Catalogue.PrimaryLanguage)
	assert.Len(t, cfg.Catalogue.Projects, 6)
	assert.Len(t, cfg.CityMap.Pins, 6)
	assert.Equal(t, "Budget", cfg.Translations.T(i18n.English, "budget"))
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("DEFAULT_LANG", "en")
	t.Setenv("CONTACT_CLOSE_DELAY", "3s")
	t.Setenv("CHAT_RATE_BURST", "2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, i18n.English, cfg.DefaultLanguage)
	assert.Equal(t, 3*time.Second, cfg.ContactCloseDelay)
	assert.Equal(t, 2, cfg.ChatRateBurst)
}

func TestLoadRejectsUnsupportedLanguage(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DEFAULT_LANG", "fr")

	_, err := Load()
	assert.Error(t, err)
}

func TestFromSettingsCatalogueOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "projects.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
primary_language: en
projects:
  - id: a
    stage: fundraising
    title: {en: Bench}
  - id: b
    stage: construction
    title: {en: Bridge}
`), 0o644))

	cfg, err := FromSettings(Settings{DefaultLang: "ru", CataloguePath: path})
	require.NoError(t, err)
	require.Len(t, cfg.Catalogue.Projects, 2)
	assert.Equal(t, "sponsorship", string(cfg.Catalogue.Projects[0].Stage))
	assert.NotEmpty(t, cfg.Warnings)
}

func TestFromSettingsInvalidCatalogue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "projects.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
primary_language: en
projects:
  - id: a
    stage: concept
    title: {en: A}
  - id: a
    stage: concept
    title: {en: B}
`), 0o644))

	_, err := FromSettings(Settings{DefaultLang: "en", CataloguePath: path})
	assert.Error(t, err)

	_, err = FromSettings(Settings{DefaultLang: "en", CataloguePath: filepath.Join(dir, "missing.yaml")})
	assert.Error(t, err)
}
