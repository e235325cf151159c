package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/youruser/pokecatalog/internal/config"
	"github.com/youruser/pokecatalog/internal/source"
	"github.com/youruser/pokecatalog/internal/store"
)

var (
	cfgPath string
	verbose bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "pokecat",
	Short: "Serve and lint Pokémon TCG card set data",
	Long: `Pokecat serves assembled Pokémon TCG card sets over HTTP and validates
authored set documents, resolving every reference card against the printing
it borrows its gameplay data from.`,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgPath, "config", "pokecat.toml", "path to config file")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	RootCmd.AddCommand(serveCmd)
	RootCmd.AddCommand(validateCmd)
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func newStore(cfg *config.Config, logger *zap.Logger) *store.Store {
	var src source.Source
	if cfg.SourceURL != "" {
		src = source.NewHTTPSource(cfg.SourceURL, cfg.FetchTimeout())
	} else {
		src = source.NewFileSource(cfg.DataDir)
	}
	return store.New(src, logger,
		store.WithFetchTimeout(cfg.FetchTimeout()),
		store.WithMaxRefDepth(cfg.MaxRefDepth))
}
