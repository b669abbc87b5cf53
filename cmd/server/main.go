package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rohits-web03/medrecords/internal/api"
	"github.com/rohits-web03/medrecords/internal/api/handlers"
	"github.com/rohits-web03/medrecords/internal/api/services"
	"github.com/rohits-web03/medrecords/internal/config"
	"github.com/rohits-web03/medrecords/internal/index"
	"github.com/rohits-web03/medrecords/internal/repositories"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "medrecords",
		Short:        "Clinical records API server",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var skipMigrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build the patient index and start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, skipMigrate)
		},
	}
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not create or update tables on start")
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the user, patient and history tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, db, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB(db, logger)

			if err := repositories.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			logger.Info().Str("driver", cfg.DBDriver).Msg("migrations applied")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load patient fixtures from a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, db, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB(db, logger)

			if file == "" {
				file = cfg.SeedFile
			}
			if file == "" {
				return fmt.Errorf("no seed file: pass --file or set SEED_FILE")
			}

			patients, err := repositories.LoadSeedFile(file)
			if err != nil {
				return err
			}
			if err := repositories.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			if err := repositories.NewPatientRepository(db).Upsert(cmd.Context(), patients); err != nil {
				return err
			}
			logger.Info().Str("file", file).Int("patients", len(patients)).Msg("patients seeded")
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "YAML file with a top level patients list")
	return cmd
}

func newLogger(env, level string) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if env == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return logger.Level(lvl)
}

func bootstrap(ctx context.Context) (*config.Config, zerolog.Logger, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		logger := newLogger(os.Getenv("ENV"), "info")
		logger.Error().Err(err).Msg("failed to load config")
		return nil, logger, nil, err
	}

	logger := newLogger(cfg.Environment, cfg.LogLevel)
	if cfg.EnvFile != "" {
		logger.Info().Str("file", cfg.EnvFile).Msg("loaded env file")
	}

	db, err := repositories.ConnectDatabase(ctx, cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to connect to database")
		return nil, logger, nil, err
	}
	return cfg, logger, db, nil
}

func closeDB(db *gorm.DB, logger zerolog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Warn().Err(err).Msg("closing database")
	}
}

func runServer(ctx context.Context, skipMigrate bool) error {
	cfg, logger, db, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer closeDB(db, logger)

	if !skipMigrate {
		if err := repositories.Migrate(ctx, db); err != nil {
			logger.Error().Err(err).Msg("migration failed")
			return err
		}
	}

	users := repositories.NewUserRepository(db)
	patients := repositories.NewPatientRepository(db)
	history := repositories.NewHistoryRepository(db)

	// The index is a startup snapshot; without it search cannot be served.
	patientIndex, err := index.Build(ctx, patients, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build patient index")
		return err
	}

	ollama, err := services.NewOllamaClient(cfg.OllamaHost)
	if err != nil {
		logger.Error().Err(err).Msg("invalid OLLAMA_HOST")
		return err
	}

	router := api.SetupRouter(cfg, logger, api.Routes{
		Auth:     handlers.NewAuthHandler(services.NewAuthService(users, cfg.BcryptCost, logger)),
		Search:   handlers.NewSearchHandler(patientIndex),
		Patients: handlers.NewPatientHandler(patients),
		History:  handlers.NewHistoryHandler(history, time.Now),
		Chat:     handlers.NewChatHandler(services.NewChatService(ollama, cfg.ChatModel, cfg.ChatTimeout, logger)),
		DBHealth: repositories.HealthHandler(db),
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.ChatTimeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", server.Addr).Str("model", cfg.ChatModel).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", server.Addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("server stopped with error")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
