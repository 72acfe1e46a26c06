package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"model-binder/core/config"
	"model-binder/core/loader"
	"model-binder/core/logger"
	"model-binder/core/middleware/auth"
	"model-binder/core/middleware/rayid"
	"model-binder/core/storage"
	"model-binder/feature/modelbind"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the model binder server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, problems, err := config.LoadConfig(configDir)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		logger.LogProblems(logg, "Configuration problem", problems)

		// Storage is optional; object binding answers with an error without it
		var store storage.Client
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Optional storage client unavailable", zap.Error(err))
		} else {
			store = client
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			if err := storage.Ping(ctx, store, cfg.Storage.Bucket); err != nil {
				logg.Warn("Document bucket not reachable", zap.String("bucket", cfg.Storage.Bucket), zap.Error(err))
			}
			cancel()
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimitBytes,
			ReadTimeout:           cfg.Server.ReadTimeout,
		})

		mgr := loader.NewManager()
		mgr.Register(modelbind.NewFeature(store, cfg.Storage, logg))

		// RayID first so every later log line can carry it
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		if cfg.Server.AuthEnabled() {
			app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
		} else {
			logg.Warn("API key not set, bind endpoints are unprotected")
		}

		if err := mgr.LoadAll(app); err != nil {
			return fmt.Errorf("failed to load features: %w", err)
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			errCh <- app.Listen(cfg.Server.Addr())
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-c:
		}

		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
