package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"particle-audit/core/config"
	"particle-audit/core/loader"
	"particle-audit/core/logger"
	"particle-audit/core/metrics"
	"particle-audit/core/middleware/auth"
	"particle-audit/core/middleware/rayid"
	"particle-audit/core/reconcile"
	"particle-audit/feature/audit"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const metricsPath = "/metrics"

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve reconciliation reports over HTTP",
	Long:  `Starts the HTTP server exposing the audit endpoints and Prometheus metrics.`,
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logg, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logg.Sync() }()
	zap.ReplaceGlobals(logg)

	src, err := newSource(cfg)
	if err != nil {
		return err
	}

	spec := &reconcile.Spec{
		Source:   src,
		Tables:   cfg.Tables,
		CacheTTL: time.Duration(cfg.Tables.CacheTTLSeconds) * time.Second,
	}

	app, err := newApp(cfg, spec, metrics.New(), logg)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info("Starting server",
			zap.String("port", cfg.Server.Port),
			zap.String("simulation", src.Describe(cfg.Tables.Simulation)),
			zap.String("reference", src.Describe(cfg.Tables.Reference)),
			zap.Bool("auth", cfg.Server.AuthEnabled()),
		)
		errCh <- app.Listen(cfg.Server.Address())
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-sig:
		logg.Info("Shutting down server...")
		return app.Shutdown()
	}
}

// newApp wires middleware, metrics and features into a fiber application.
func newApp(cfg *config.Config, spec *reconcile.Spec, m *metrics.Metrics, logg *zap.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// RayID first so every later log line can carry it.
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		start := time.Now()
		err := c.Next()
		l.Info("Request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("elapsed", time.Since(start)),
		)
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Use(auth.New(auth.Config{
		ApiKey: cfg.Server.ApiKey,
		Skip:   []string{metricsPath},
	}))

	app.Get(metricsPath, m.Handler())

	mgr := loader.NewManager(logg)
	mgr.Register(audit.NewFeature(spec, logg, m))
	if err := mgr.LoadAll(app); err != nil {
		return nil, fmt.Errorf("failed to load features: %w", err)
	}

	return app, nil
}
