package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/csheth/tubescout/internal/backend"
	"github.com/csheth/tubescout/internal/config"
	"github.com/csheth/tubescout/internal/logger"
	"github.com/csheth/tubescout/internal/prefs"
	"github.com/csheth/tubescout/internal/tabs"
	"github.com/csheth/tubescout/internal/theme"
	"github.com/csheth/tubescout/internal/tui"
)

// options holds the command-line flags. Flags only override the loaded
// configuration when they were set explicitly.
type options struct {
	configPath  string
	backendMode string
	endpoint    string
	timeout     time.Duration
	language    string
	prefsPath   string
	logFile     string
	logLevel    string
	noAltScreen bool
}

func main() {
	cmd, _ := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tubescout:", err)
		os.Exit(1)
	}
}

func newRootCommand() (*cobra.Command, *options) {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "tubescout",
		Short:         "Summarize YouTube videos from the terminal",
		Long:          "TubeScout turns a YouTube link into a summary, structured notes, a mind map and Q&A.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default is "+config.DefaultPath()+")")
	flags.StringVar(&opts.backendMode, "backend", "", "processing backend: demo or http")
	flags.StringVar(&opts.endpoint, "endpoint", "", "summarization service base URL (http backend)")
	flags.DurationVar(&opts.timeout, "timeout", 0, "maximum time to wait for a summary")
	flags.StringVar(&opts.language, "language", "", "initial output language code")
	flags.StringVar(&opts.prefsPath, "prefs", "", "preference file; empty keeps preferences in memory")
	flags.StringVar(&opts.logFile, "log-file", "", "log destination; empty disables logging")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVar(&opts.noAltScreen, "no-alt-screen", false, "disable the alternate screen buffer")
	return cmd, opts
}

func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend.Mode = opts.backendMode
	}
	if flags.Changed("endpoint") {
		cfg.Backend.Endpoint = opts.endpoint
	}
	if flags.Changed("timeout") {
		cfg.Backend.Timeout = config.Duration{Duration: opts.timeout}
	}
	if flags.Changed("language") {
		cfg.UI.DefaultLanguage = opts.language
	}
	if flags.Changed("prefs") {
		cfg.Preferences.Path = opts.prefsPath
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if opts.noAltScreen {
		cfg.UI.AltScreen = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, File: cfg.Log.File, Development: cfg.Log.Development})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	client, err := backend.New(cfg.BackendOptions())
	if err != nil {
		return fmt.Errorf("backend: %w", err)
	}

	var store prefs.Store = prefs.NewMemoryStore()
	var changes <-chan struct{}
	if cfg.Preferences.Path != "" {
		fileStore := prefs.NewFileStore(cfg.Preferences.Path)
		store = fileStore
		if cfg.Preferences.Watch {
			changes, err = fileStore.Watch(ctx)
			if err != nil {
				// Live reload is optional; the stored preference still applies at startup.
				log.Warn("preference watch disabled", logger.String("path", fileStore.Path()), logger.Error(err))
				changes = nil
			}
		}
	}

	defaultTab, _ := tabs.Parse(cfg.UI.DefaultTab)
	log.Info("starting",
		logger.String("backend", client.Name()),
		logger.String("language", cfg.UI.DefaultLanguage),
		logger.Duration("timeout", cfg.Backend.Timeout.Duration),
		logger.Bool("alt_screen", cfg.UI.AltScreen),
		logger.Bool("prefs_watch", changes != nil),
	)

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Backend:      client,
			Theme:        theme.NewManager(store, log),
			Logger:       log,
			Timeout:      cfg.Backend.Timeout.Duration,
			Language:     cfg.UI.DefaultLanguage,
			DefaultTab:   defaultTab,
			PrefsChanges: changes,
			ColorProfile: termenv.EnvColorProfile(),
		}),
		opts...,
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}
