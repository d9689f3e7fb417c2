package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"pss-assistant/core/loader"
	"pss-assistant/core/logger"
	"pss-assistant/core/metrics"
	"pss-assistant/core/middleware/rayid"
	"pss-assistant/core/server"
	"pss-assistant/feature/crew"
	"pss-assistant/feature/integrity"
	"pss-assistant/feature/item"
	"pss-assistant/feature/wiki"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "pss-assistant/docs/swagger"
)

// @title PSS Assistant API
// @version 1.0
// @description Details of Pixel Starships rooms, items and crew, and wiki data exports.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the assistant server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load configuration, logger, bucket client and retrievers
		r, err := newRuntime()
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		logg := r.logg
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !r.cfg.Server.IsValidFormat() {
			logg.Fatal("Invalid response format", zap.String("format", r.cfg.Server.Format))
		}

		// 2. Connect to Database (Optional, export history only)
		r.connectDB()

		// 3. Initialize Fiber App
		app := fiber.New(server.AppConfig())

		// 4. Initialize Feature Loader
		mgr := loader.NewManager(logg)

		rooms, err := r.roomFeature()
		if err != nil {
			logg.Fatal("Failed to initialize rooms", zap.Error(err))
		}
		wikiSvc, err := r.wikiService()
		if err != nil {
			logg.Fatal("Failed to initialize wiki export", zap.Error(err))
		}

		mgr.Register(rooms)
		mgr.Register(item.NewFeature(r.items, r.cfg.Server, logg))
		mgr.Register(crew.NewFeature(r.characters, r.collections, r.cfg.Server, logg))
		mgr.Register(wiki.NewFeature(wikiSvc))
		mgr.Register(integrity.NewFeature(r.integrityService()))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with the ray id
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

		// 3. Swagger Documentation and metrics
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", r.cfg.Server.Port), zap.String("source", r.cfg.API.Source))
			if err := app.Listen(":" + r.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
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
