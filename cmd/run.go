package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/aimarketcap/internal/app"
	"github.com/abhisek/aimarketcap/internal/config"
	"github.com/abhisek/aimarketcap/internal/logging"
	"github.com/abhisek/aimarketcap/internal/onboarding"
	"github.com/abhisek/aimarketcap/internal/store"
)

// newLogger builds the file logger described by cfg and --debug.
func newLogger(cmd *cobra.Command, cfg config.Config) (*zap.Logger, error) {
	debug, _ := cmd.Flags().GetBool("debug")
	log, err := logging.New(cfg.LogPath, cfg.LogLevel, debug)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	return log, nil
}

// openService opens the store and wraps it in an onboarding service. The
// returned close func is never nil.
func openService(cmd *cobra.Command, cfg config.Config, log *zap.Logger) (*onboarding.Service, func() error, error) {
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, func() error { return nil }, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, func() error { return nil }, fmt.Errorf("open store: %w", err)
	}
	log.Debug("store opened", zap.String("path", dbPath))
	return onboarding.NewService(st.OnboardingRepo(), log), st.Close, nil
}

// runApp loads config, opens the store, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	svc, closeStore, err := openService(cmd, cfg, log)
	if err != nil {
		// The questionnaire still works; its outcome just won't survive a restart.
		fmt.Fprintln(os.Stderr, "Storage unavailable:", err)
		fmt.Fprintln(os.Stderr, "Your answers will not be saved this session.")
		log.Warn("falling back to in-memory storage", zap.Error(err))
		svc = onboarding.NewService(store.NewOnboardingRepo(store.NewMemoryKV()), log)
	}
	defer closeStore()

	opts := app.Options{
		Config: cfg,
		State:  svc.Load(ctx),
		Hook:   svc,
		Logger: log,
	}
	log.Info("starting",
		zap.String("version", version),
		zap.Bool("onboarding_completed", opts.State.Completed))

	return app.Run(opts)
}
