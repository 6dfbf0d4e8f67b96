package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/haierkeys/memos-mirror/global"
	"github.com/haierkeys/memos-mirror/internal/dao"
	"github.com/haierkeys/memos-mirror/internal/memos"
	"github.com/haierkeys/memos-mirror/internal/mirror"
	"github.com/haierkeys/memos-mirror/pkg/logger"
	"github.com/haierkeys/memos-mirror/pkg/storage"
)

// App is the application container. It owns every long-lived
// dependency and hands the wired sync engine to the commands.
type App struct {
	config *AppConfig
	logger *zap.Logger

	Store  storage.Storager
	Dao    *dao.Dao
	Client *memos.Client
	Syncer *mirror.Syncer
}

// NewApp wires the container from a loaded configuration.
func NewApp(cfg *AppConfig) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lg, err := logger.NewLogger(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}
	global.Logger = lg

	store, err := storage.NewClient(&cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}

	a := &App{
		config: cfg,
		logger: lg,
		Store:  store,
	}

	if cfg.Database.Enabled {
		d, err := dao.New(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to init database: %w", err)
		}
		a.Dao = d
	}

	a.Client = memos.NewClient(cfg.Sync.NormalizedAPIURL(), cfg.Sync.AccessToken,
		memos.WithLogger(lg))

	var rec mirror.Recorder
	if a.Dao != nil {
		rec = a.Dao
	}
	a.Syncer = mirror.New(cfg.Sync.MirrorConfig(), a.Client, store, rec, lg)

	lg.Info("app container initialized",
		zap.String("storage", cfg.Storage.Type),
		zap.String("cadence", cfg.Sync.Cadence),
		zap.Bool("database", cfg.Database.Enabled))
	return a, nil
}

// Close releases container resources.
func (a *App) Close() error {
	if a.Dao != nil {
		sqlDB, err := a.Dao.DB().DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	_ = a.logger.Sync()
	return nil
}

func (a *App) Config() *AppConfig {
	return a.config
}

func (a *App) Logger() *zap.Logger {
	return a.logger
}
