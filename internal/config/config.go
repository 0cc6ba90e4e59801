package config

import (
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"meryerevan.am/internal/data"
	"meryerevan.am/internal/i18n"
	"meryerevan.am/internal/models"
)

// Settings holds the environment-driven settings
type Settings struct {
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`
	AppEnv     string `env:"APP_ENV" envDefault:"development"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"LOG_FORMAT" envDefault:"console"`

	DefaultLang   string `env:"DEFAULT_LANG" envDefault:"am"`
	CataloguePath string `env:"CATALOGUE_PATH"`
	CityMapPath   string `env:"CITYMAP_PATH"`

	GeminiAPIKey        string        `env:"GEMINI_API_KEY"`
	GeminiModel         string        `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	AssistantTimeout    time.Duration `env:"ASSISTANT_TIMEOUT" envDefault:"20s"`
	AssistantReplyDelay time.Duration `env:"ASSISTANT_REPLY_DELAY" envDefault:"1s"`

	ContactCloseDelay time.Duration `env:"CONTACT_CLOSE_DELAY" envDefault:"2s"`
	SuggestCloseDelay time.Duration `env:"SUGGEST_CLOSE_DELAY" envDefault:"2500ms"`

	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"2h"`
	SessionSweep    time.Duration `env:"SESSION_SWEEP" envDefault:"5m"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	ChatRateLimit float64 `env:"CHAT_RATE_LIMIT" envDefault:"1"`
	ChatRateBurst int     `env:"CHAT_RATE_BURST" envDefault:"5"`
}

// Config holds all application configuration and the static site content
type Config struct {
	Settings

	DefaultLanguage i18n.Language
	Catalogue       *models.Catalogue
	CityMap         *models.CityMap
	Translations    *i18n.Resolver
	// Warnings collects non-fatal content problems found while loading.
	Warnings []string
}

// Load reads .env (when present) and the environment, then loads the site
// content.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var s Settings
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return FromSettings(s)
}

// FromSettings loads the site content described by s.
func FromSettings(s Settings) (*Config, error) {
	lang, ok := i18n.Parse(s.DefaultLang)
	if !ok {
		return nil, fmt.Errorf("unsupported DEFAULT_LANG %q", s.DefaultLang)
	}

	translations, err := i18n.LoadFS(data.FS, data.LocalesDir)
	if err != nil {
		return nil, err
	}

	catalogue, err := loadCatalogue(s.CataloguePath)
	if err != nil {
		return nil, err
	}
	warnings, err := catalogue.Validate(i18n.Supported())
	if err != nil {
		return nil, err
	}

	cityMap, err := loadCityMap(s.CityMapPath)
	if err != nil {
		return nil, err
	}

	return &Config{
		Settings:        s,
		DefaultLanguage: lang,
		Catalogue:       catalogue,
		CityMap:         cityMap,
		Translations:    translations,
		Warnings:        warnings,
	}, nil
}

// loadCatalogue reads the project catalogue, from path when set or from the
// embedded copy otherwise
func loadCatalogue(path string) (*models.Catalogue, error) {
	raw, err := readContent(path, data.CataloguePath)
	if err != nil {
		return nil, fmt.Errorf("load catalogue: %w", err)
	}

	var catalogue models.Catalogue
	if err := yaml.Unmarshal(raw, &catalogue); err != nil {
		return nil, fmt.Errorf("parse catalogue: %w", err)
	}
	return &catalogue, nil
}

// loadCityMap reads the city map pins
func loadCityMap(path string) (*models.CityMap, error) {
	raw, err := readContent(path, data.CityMapPath)
	if err != nil {
		return nil, fmt.Errorf("load city map: %w", err)
	}

	var cityMap models.CityMap
	if err := yaml.Unmarshal(raw, &cityMap); err != nil {
		return nil, fmt.Errorf("parse city map: %w", err)
	}
	return &cityMap, nil
}

func readContent(override, embedded string) ([]byte, error) {
	if override != "" {
		return os.ReadFile(override)
	}
	return fs.ReadFile(data.FS, embedded)
}
