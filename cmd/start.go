package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jalsetu/core/loader"
	"jalsetu/core/logger"
	"jalsetu/core/middleware/auth"
	"jalsetu/core/middleware/rayid"

	"jalsetu/feature/billing"
	"jalsetu/feature/complaints"
	"jalsetu/feature/integrity"
	"jalsetu/feature/management"
	"jalsetu/feature/overview"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "jalsetu/docs/swagger"
)

// @title Jalsetu API
// @version 1.0
// @description Billing, staff, complaint and overview dashboards for Panchayat water supply.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the dashboard server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		rt, err := bootstrap(false)
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		loc := rt.cfg.Server.Location()

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ReadTimeout:           30 * time.Second,
			WriteTimeout:          30 * time.Second,
		})

		mgr := loader.NewManager()
		mgr.Register(billing.NewFeature(rt.loader, logg, loc))
		mgr.Register(management.NewFeature(rt.loader, rt.store, logg))
		mgr.Register(complaints.NewFeature(rt.loader, rt.store, logg))
		mgr.Register(overview.NewFeature(rt.loader, logg, loc))
		if rt.client != nil {
			mgr.Register(integrity.NewFeature(rt.client, rt.cfg.Storage.Bucket, rt.cfg.Snapshot.Prefix, logg, rt.db))
		} else {
			logg.Warn("Integrity feature disabled: object storage unavailable")
		}

		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			start := time.Now()
			err := c.Next()
			fields := []zap.Field{
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("latency", time.Since(start)),
			}
			if err != nil {
				l.Error("Request error", append(fields, zap.Error(err))...)
			} else {
				l.Info("Request completed", fields...)
			}
			return err
		})

		// Swagger documentation stays public
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			if err := app.Listen(":" + rt.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
