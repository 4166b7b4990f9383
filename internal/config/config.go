package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config carries the runtime settings of the service.
// Precedence: defaults < config file < environment.
type Config struct {
	URL            string        `mapstructure:"url"`
	DataDir        string        `mapstructure:"data_dir"`
	Port           int           `mapstructure:"port"`
	ScrapeInterval time.Duration `mapstructure:"scrape_interval"`
	CacheTTL       time.Duration `mapstructure:"cache_ttl"`
	MaxClicks      int           `mapstructure:"max_clicks"`

	BusinessStart int    `mapstructure:"business_start"`
	BusinessEnd   int    `mapstructure:"business_end"`
	Timezone      string `mapstructure:"timezone"`

	DiscordWebhook string `mapstructure:"discord_webhook"`

	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Defaults mirrors the original deployment: trashion.fi, 5-minute checks,
// Finland business hours 12:00-19:00.
func Defaults() Config {
	return Config{
		URL:            "https://trashion.fi",
		DataDir:        ".",
		Port:           5000,
		ScrapeInterval: 5 * time.Minute,
		CacheTTL:       5 * time.Minute,
		MaxClicks:      20,
		BusinessStart:  12,
		BusinessEnd:    19,
		Timezone:       "Europe/Helsinki",
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// NotificationsEnabled reports whether a Discord webhook is configured.
func (c Config) NotificationsEnabled() bool {
	return c.DiscordWebhook != ""
}

// Load assembles the configuration. If envFile is non-empty it is loaded into
// the process environment first (missing file is an error); otherwise a local
// .env is loaded when present. A YAML config file, if given, is applied on top
// of the defaults before the environment.
func Load(envFile, configFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else {
		// Best effort: a .env beside the binary is a convenience, not a requirement.
		_ = godotenv.Load()
	}

	cfg := Defaults()

	if configFile != "" {
		if err := applyFile(&cfg, configFile); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.BusinessStart < 0 || cfg.BusinessStart > 23 || cfg.BusinessEnd < 1 || cfg.BusinessEnd > 24 {
		return Config{}, fmt.Errorf("invalid business hours %d-%d", cfg.BusinessStart, cfg.BusinessEnd)
	}

	return cfg, nil
}

// applyFile merges a YAML config file over cfg.
// The file is decoded into a generic map first so unknown keys fail loudly.
func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      cfg,
		ErrorUnused: true,
		DecodeHook:  mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides cfg from the process environment, using the same
// variable names as the original deployment.
func applyEnv(cfg *Config) error {
	setString(&cfg.URL, "TRASHION_URL")
	setString(&cfg.DataDir, "DATA_DIR")
	setString(&cfg.Timezone, "TIMEZONE")
	setString(&cfg.DiscordWebhook, "DISCORD_WEBHOOK")
	setString(&cfg.RedisAddr, "REDIS_ADDR")
	setString(&cfg.RedisPassword, "REDIS_PASSWORD")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.LogFormat, "LOG_FORMAT")

	if err := setInt(&cfg.Port, "PORT"); err != nil {
		return err
	}
	if err := setInt(&cfg.BusinessStart, "BUSINESS_START"); err != nil {
		return err
	}
	if err := setInt(&cfg.BusinessEnd, "BUSINESS_END"); err != nil {
		return err
	}
	if err := setInt(&cfg.MaxClicks, "MAX_CLICKS"); err != nil {
		return err
	}
	if err := setInt(&cfg.RedisDB, "REDIS_DB"); err != nil {
		return err
	}
	if err := setSeconds(&cfg.ScrapeInterval, "SCRAPE_INTERVAL"); err != nil {
		return err
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}

// setSeconds parses an env var holding whole seconds, like the original
// SCRAPE_INTERVAL.
func setSeconds(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = time.Duration(n) * time.Second
	return nil
}
