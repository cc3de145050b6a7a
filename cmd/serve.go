package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"aoe4-sync/core/loader"
	"aoe4-sync/core/logger"
	"aoe4-sync/core/metrics"
	"aoe4-sync/core/middleware/auth"
	"aoe4-sync/core/middleware/rayid"
	"aoe4-sync/core/server"
	"aoe4-sync/feature/integrity"
	"aoe4-sync/feature/stats"
	syncer "aoe4-sync/feature/sync"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "aoe4-sync/docs/swagger"
)

// @title AoE4 Sync API
// @version 1.0
// @description Read API over synced Age of Empires IV statistics, with sync triggers and integrity checks.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long:  `Starts the HTTP server, loads every enabled feature and, when SYNC_INTERVAL is set, the sync scheduler.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

// newApp builds the fiber app: request ids, request logging, public docs and
// metrics, then the API key guard in front of every feature route.
func newApp(cfg server.Config, mgr *loader.Manager, logg *zap.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
	})

	// Ray id comes first so every later log line carries it.
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

	// Registered ahead of auth so the docs stay public.
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Use(auth.New(auth.Config{ApiKey: cfg.ApiKey, Skip: []string{"/metrics"}}))
	app.Get("/metrics", metrics.Handler())

	loaded, err := mgr.LoadAll(app)
	if err != nil {
		return nil, fmt.Errorf("failed to load features: %w", err)
	}
	logg.Info("Features loaded", zap.Strings("features", loaded))
	return app, nil
}

func runServe() error {
	cfg, logg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	db, err := connect(cfg, logg)
	if err != nil {
		return err
	}

	svc, err := syncer.NewFromConfig(cfg.API, cfg.Sync, cfg.Storage, db, logg)
	if err != nil {
		return err
	}
	store := stats.NewStore(db, logg.Named("stats"))

	mgr := loader.NewManager()
	mgr.Register(stats.NewFeature(store, logg))
	mgr.Register(syncer.NewFeature(svc, logg))
	mgr.Register(integrity.NewFeature(db, svc.Archive(), logg))

	app, err := newApp(cfg.Server, mgr, logg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Sync.Interval > 0 {
		go svc.Schedule(ctx, cfg.Sync.Interval)
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info("Starting server", zap.String("addr", cfg.Server.Addr()))
		errCh <- app.Listen(cfg.Server.Addr())
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logg.Info("Shutting down server...")
	return app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout())
}
