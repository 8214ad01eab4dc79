package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/phonebook/core/internal/adapters/persistence"
	"github.com/phonebook/core/internal/adapters/repository"
	"github.com/phonebook/core/internal/application/services"
	"github.com/phonebook/core/internal/infrastructure/config"
	"github.com/phonebook/core/internal/infrastructure/logger"
	"github.com/phonebook/core/internal/infrastructure/server"
)

// Set at build time with -ldflags "-X .../commands.Version=..."
var (
	Version   = "1.0.0"
	BuildDate = "unknown"
	GitCommit = "development"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the Phonebook API server",
		Long:  "Load the phonebook file and serve it over HTTP until interrupted. SIGHUP reloads the file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if file, _ := cmd.Flags().GetString("file"); file != "" {
				cfg.Storage.Path = file
			}
			if port, _ := cmd.Flags().GetInt("port"); port != 0 {
				cfg.Server.Port = port
			}
			return runServer(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringP("file", "f", "", "phonebook file (overrides storage.path)")
	cmd.Flags().IntP("port", "p", 0, "listen port (overrides server.port)")
	return cmd
}

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check that a phonebook file loads",
		Long:  "Load a phonebook file the way the server does at startup and report the number of entries or the error.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			} else {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				path = cfg.Storage.Path
			}

			store, err := persistence.Load(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries\n", path, store.Len())
			return nil
		},
	}
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print Phonebook version",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Phonebook v%s\n", Version)
			fmt.Fprintf(out, "Build Date: %s\n", BuildDate)
			fmt.Fprintf(out, "Git Commit: %s\n", GitCommit)
		},
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func runServer(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer appLogger.Close()

	if cfg.Storage.CreateIfMissing {
		created, err := persistence.EnsureFile(cfg.Storage.Path)
		if err != nil {
			return fmt.Errorf("failed to create phonebook file: %w", err)
		}
		if created {
			appLogger.Infow("Created empty phonebook file", "path", cfg.Storage.Path)
		}
	}

	// The file is read before the listener opens; a bad file stops startup.
	store, err := persistence.Load(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to load phonebook: %w", err)
	}
	appLogger.Infow("Phonebook loaded", "path", cfg.Storage.Path, "entries", store.Len())

	registry := prometheus.NewRegistry()
	writer := persistence.NewWriter(cfg.Storage.Path, appLogger,
		persistence.WithMetrics(persistence.NewMetrics(registry)),
	)
	defer writer.Close()

	repo := repository.NewContactRepository(store)
	contactService := services.NewContactService(repo, writer, appLogger, cfg.Storage.SaveTimeout)
	srv := server.New(cfg, contactService, registry, appLogger)

	appLogger.Infow("Starting Phonebook API server",
		"port", cfg.Server.Port,
		"environment", cfg.App.Environment,
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Start(cfg.Server.Address())
	})

	g.Go(func() error {
		for {
			select {
			case <-hup:
				n, err := contactService.Reload(gCtx)
				if err != nil {
					appLogger.Errorw("Reload on SIGHUP failed", "error", err.Error())
					continue
				}
				appLogger.Infow("Reloaded phonebook on SIGHUP", "entries", n)
			case <-gCtx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Errorw("Server stopped with error", "error", err.Error())
		return err
	}

	appLogger.Infow("Server stopped")
	return nil
}
