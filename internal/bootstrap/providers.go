package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"stocksinfo/internal/application"
	"stocksinfo/internal/config"
	httpserver "stocksinfo/internal/infrastructure/http"
	"stocksinfo/internal/infrastructure/httpx"
	leveldbstore "stocksinfo/internal/infrastructure/leveldb"
	"stocksinfo/internal/infrastructure/logx"
	"stocksinfo/internal/infrastructure/netmon"
	"stocksinfo/internal/infrastructure/pg"
	"stocksinfo/internal/infrastructure/provider"
	redisstore "stocksinfo/internal/infrastructure/redis"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var ErrMissingDBURL = errors.New("DATABASE_URL is required for SETTINGS_BACKEND=pg")

// SettingsStore is a settings backend the process owns.
type SettingsStore interface {
	application.Settings
	Ping(ctx context.Context) error
	Close() error
}

// API is the assembled HTTP process.
type API struct {
	Handler http.Handler
	Monitor application.Worker
	Config  config.Config
	Log     *zap.Logger
}

// CLI is the assembled terminal process.
type CLI struct {
	Flow    *application.SelectionFlow
	Monitor application.Worker
	Log     *zap.Logger
}

func ProvideLogger() *zap.Logger { return logx.L() }

func ProvideConfig() config.Config { return config.Load() }

func ProvideSettings(ctx context.Context, log *zap.Logger, cfg config.Config) (SettingsStore, func(), error) {
	var (
		store SettingsStore
		err   error
	)
	switch cfg.SettingsBackend {
	case "", "leveldb":
		store, err = leveldbstore.Open(cfg.SettingsPath)
	case "memory":
		store, err = leveldbstore.OpenMemory()
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		store = redisstore.New(client, cfg.RedisPrefix)
	case "pg":
		store, err = providePG(ctx, cfg)
	default:
		err = fmt.Errorf("unsupported SETTINGS_BACKEND=%q", cfg.SettingsBackend)
	}
	if err != nil {
		return nil, func() {}, err
	}
	log.Info("settings.opened", zap.String("backend", cfg.SettingsBackend))
	cleanup := func() {
		if err := store.Close(); err != nil {
			log.Warn("settings.close_failed", zap.Error(err))
		}
	}
	return store, cleanup, nil
}

func providePG(ctx context.Context, cfg config.Config) (*pg.SettingsRepo, error) {
	if cfg.DatabaseURL == "" {
		return nil, ErrMissingDBURL
	}
	db, err := pg.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := pg.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return pg.NewSettingsRepo(db), nil
}

func ProvideHTTPClient(cfg config.Config, log *zap.Logger) *httpx.Client {
	return httpx.New(cfg.RequestTimeout, log)
}

func ProvideQuoteClient(cfg config.Config, hc *httpx.Client, log *zap.Logger) (application.QuoteClient, error) {
	switch cfg.Provider {
	case "", "iexcloud":
		return &provider.IEXCloud{BaseURL: cfg.IEXBaseURL, Client: hc, Log: log}, nil
	case "fake":
		return provider.NewFake(), nil
	default:
		return nil, fmt.Errorf("unsupported PROVIDER=%q", cfg.Provider)
	}
}

func ProvideMonitor(cfg config.Config, log *zap.Logger) *netmon.Monitor {
	return netmon.New(cfg.NetmonPoll, log)
}

// ProvideFlow builds the selection flow and restores persisted state.
func ProvideFlow(
	ctx context.Context,
	client application.QuoteClient,
	settings SettingsStore,
	mon *netmon.Monitor,
	prompter application.TokenPrompter,
	cfg config.Config,
	log *zap.Logger,
) *application.SelectionFlow {
	flow := application.NewSelectionFlow(client,
		application.NewQuoteCache(settings, log),
		application.NewTokenStore(settings),
		application.WithConnectivity(mon),
		application.WithPrompter(prompter),
		application.WithSeedToken(cfg.IEXToken),
		application.WithLogger(log),
	)
	flow.Restore(ctx)
	return flow
}

// ProvideNoPrompter is used by the HTTP process, where tokens arrive via PUT /token.
func ProvideNoPrompter() application.TokenPrompter { return nil }

func ProvideAPIServer(flow *application.SelectionFlow, settings SettingsStore, log *zap.Logger) *httpserver.Server {
	srv := httpserver.NewServer(flow, log)
	srv.SetReadyCheck(settings.Ping)
	return srv
}

func ProvideAPI(srv *httpserver.Server, mon *netmon.Monitor, cfg config.Config, log *zap.Logger) *API {
	return &API{Handler: httpserver.NewRouter(srv), Monitor: mon, Config: cfg, Log: log}
}

func ProvideCLI(flow *application.SelectionFlow, mon *netmon.Monitor, log *zap.Logger) *CLI {
	return &CLI{Flow: flow, Monitor: mon, Log: log}
}
