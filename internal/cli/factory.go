package cli

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	trashion "github.com/totobolto-dev/trashion-api"
	"github.com/totobolto-dev/trashion-api/internal/config"
	"github.com/totobolto-dev/trashion-api/internal/logging"
	"github.com/totobolto-dev/trashion-api/internal/metrics"
	"github.com/totobolto-dev/trashion-api/internal/notify"
	"github.com/totobolto-dev/trashion-api/internal/store"
	filestore "github.com/totobolto-dev/trashion-api/internal/store/file"
	redisstore "github.com/totobolto-dev/trashion-api/internal/store/redis"
	"github.com/totobolto-dev/trashion-api/pkg/scrape"
)

// NewLogger builds the application logger from the config.
func NewLogger(cfg config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(cfg.LogFormat, level)
}

// NewService wires a Service from the config: scraper, snapshot store
// (Redis when configured, filesystem otherwise), business hours, notifier,
// and Prometheus metrics.
func NewService(cfg config.Config, logger *slog.Logger) (*trashion.Service, error) {
	hours, err := scrape.NewHours(cfg.BusinessStart, cfg.BusinessEnd, cfg.Timezone)
	if err != nil {
		return nil, err
	}

	var snapshots store.SnapshotStore
	if cfg.RedisAddr != "" {
		snapshots = redisstore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		logger.Info("using redis snapshot store", "addr", cfg.RedisAddr)
	} else {
		snapshots = filestore.New(cfg.DataDir)
		logger.Info("using file snapshot store", "dir", cfg.DataDir)
	}

	scraper := scrape.New(cfg.URL,
		scrape.WithMaxClicks(cfg.MaxClicks),
		scrape.WithLogger(logger),
	)

	notifier := notify.NewDiscord(cfg.DiscordWebhook, notify.WithLogger(logger))
	if notifier.Enabled() {
		logger.Info("discord notifications enabled")
	}

	svc := trashion.NewService(scraper, snapshots,
		trashion.WithHours(hours),
		trashion.WithInterval(cfg.ScrapeInterval),
		trashion.WithCacheTTL(cfg.CacheTTL),
		trashion.WithNotifier(notifier),
		trashion.WithLogger(logger),
		trashion.WithMetrics(metrics.New(prometheus.DefaultRegisterer)),
	)
	return svc, nil
}

// LoadConfig reads the configuration, failing with a friendly error.
func LoadConfig(envFile, configFile string) (config.Config, error) {
	cfg, err := config.Load(envFile, configFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}
