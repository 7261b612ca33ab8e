package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"wedding-planner/internal/config"
	"wedding-planner/internal/export"
	"wedding-planner/internal/handler"
	"wedding-planner/internal/httpview"
	"wedding-planner/internal/logging"
	"wedding-planner/internal/logic"
	"wedding-planner/internal/parser"
	"wedding-planner/internal/planner"
	"wedding-planner/internal/shell"
	"wedding-planner/internal/storage"
	"wedding-planner/internal/whatsapp"
)

// replyQueueSize bounds RSVP replies waiting for the shell loop.
const replyQueueSize = 32

type flags struct {
	dataDir   string
	prefsFile string
	logLevel  string
	logFormat string
	httpAddr  string
	whatsapp  bool
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "wedding-planner",
		Short:         "Plan weddings: guests, RSVPs and seating",
		Long:          "Interactive planner for wedding guests, RSVPs, dietary restrictions and table seating.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, f)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.dataDir, "data-dir", "", "directory for data files (env WEDDING_DATA_DIR)")
	pf.StringVar(&f.prefsFile, "prefs", "", "preferences file (env WEDDING_PREFS_FILE)")
	pf.StringVar(&f.logLevel, "log-level", "", "trace, debug, info, warn or error (env WEDDING_LOG_LEVEL)")
	pf.StringVar(&f.logFormat, "log-format", "", "console or json (env WEDDING_LOG_FORMAT)")
	cmd.Flags().StringVar(&f.httpAddr, "http-addr", "", "serve a read-only JSON view on this address (env WEDDING_HTTP_ADDR)")
	cmd.Flags().BoolVar(&f.whatsapp, "whatsapp", false, "connect to WhatsApp for invitations and RSVP replies (env WHATSAPP_ENABLED)")

	cmd.AddCommand(newExportCmd(&f), newVersionCmd())
	return cmd
}

// app holds everything loaded before a command runs.
type app struct {
	cfg   *config.Config
	log   zerolog.Logger
	prefs config.UserPrefs
	store storage.Storage
	model *planner.Manager
}

// loadConfig reads the environment and lets changed flags win.
func loadConfig(cmd *cobra.Command, f flags) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	fl := cmd.Flags()
	if fl.Changed("data-dir") {
		cfg.DataDir = f.dataDir
	}
	if fl.Changed("prefs") {
		cfg.PrefsFile = f.prefsFile
	}
	if fl.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fl.Changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
	if fl.Changed("http-addr") {
		cfg.HTTPAddr = f.httpAddr
	}
	if fl.Changed("whatsapp") {
		cfg.WhatsAppEnabled = f.whatsapp
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setup(ctx context.Context, cmd *cobra.Command, f flags) (*app, error) {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return nil, err
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	prefs, err := config.LoadUserPrefs(cfg.PrefsPath(), config.DefaultUserPrefs(cfg.DataDir))
	if err != nil {
		return nil, err
	}

	store, err := storage.New(prefs)
	if err != nil {
		return nil, err
	}
	ab, err := store.Load(ctx)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to load %s: %w", store.Path(), err)
	}
	log.Info().Str("path", store.Path()).Str("backend", prefs.StorageBackend).Msg("Address book loaded")

	model, err := planner.NewManager(ab, prefs, log)
	if err != nil {
		store.Close()
		return nil, err
	}
	return &app{cfg: cfg, log: log, prefs: prefs, store: store, model: model}, nil
}

func runShell(cmd *cobra.Command, f flags) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := setup(ctx, cmd, f)
	if err != nil {
		return err
	}
	defer a.store.Close()

	var (
		opts    []logic.Option
		replies chan handler.Reply
	)
	if a.cfg.WhatsAppEnabled {
		svc, err := whatsapp.NewService(ctx, &whatsapp.Config{
			DataDir:            a.cfg.WhatsAppDataDir,
			DefaultCountryCode: a.cfg.CountryCode,
		}, a.log)
		if err != nil {
			return fmt.Errorf("failed to initialize WhatsApp: %w", err)
		}
		replies = make(chan handler.Reply, replyQueueSize)
		rsvp := handler.NewRSVPHandler(svc, replies, a.log)
		svc.SetMessageHandler(rsvp.HandleMessage)

		fmt.Fprintln(cmd.OutOrStdout(), "Connecting to WhatsApp...")
		if err := svc.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to WhatsApp: %w", err)
		}
		defer svc.Disconnect()
		fmt.Fprintln(cmd.OutOrStdout(), "✅ Connected to WhatsApp!")

		opts = append(opts,
			logic.WithInviter(svc),
			logic.WithConfirmer(rsvp),
			logic.WithCountryCode(a.cfg.CountryCode),
		)
	}

	l := logic.New(a.model, parser.New(a.log), a.store, export.NewWriter(a.prefs.ExportDir), a.log, opts...)

	if a.cfg.HTTPAddr != "" {
		srv := httpview.New(a.model.View(), a.log)
		a.model.Subscribe(srv.Publish)
		go func() {
			if err := srv.ListenAndServe(ctx, a.cfg.HTTPAddr); err != nil {
				a.log.Error().Err(err).Msg("View server stopped")
			}
		}()
	}

	runErr := shell.New(l, cmd.InOrStdin(), cmd.OutOrStdout(), replies, a.log).Run(ctx)

	if err := config.SaveUserPrefs(a.cfg.PrefsPath(), a.model.UserPrefs()); err != nil {
		a.log.Error().Err(err).Msg("Failed to save preferences")
	}
	return runErr
}
