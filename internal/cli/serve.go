package cli

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/youruser/pokecatalog/internal/api"
	"github.com/youruser/pokecatalog/internal/config"
)

// serveCmd runs the catalog HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the catalog HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		logger, err := newLogger()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logger.Sync()

		st := newStore(cfg, logger)
		r := gin.Default()
		api.RegisterRoutes(r, api.New(st, logger, api.Config{
			ImageDir:      cfg.ImageDir,
			ImageLocale:   cfg.ImageLocale,
			PublicBaseURL: cfg.PublicBaseURL,
		}))

		logger.Info("starting server",
			zap.String("addr", ":"+cfg.Port),
			zap.String("data_dir", cfg.DataDir),
			zap.String("source_url", cfg.SourceURL))
		if err := r.Run(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}
