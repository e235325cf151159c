package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/youruser/pokecatalog/internal/config"
	"github.com/youruser/pokecatalog/internal/source"
	"github.com/youruser/pokecatalog/internal/store"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check that every authored set assembles cleanly",
	Long: `Validate loads each set document in a data directory and assembles it,
following every card reference. Dangling references, unreadable documents
and over-deep reference chains are reported per set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		dir := cfg.DataDir
		if len(args) == 1 {
			dir = args[0]
		}

		src := source.NewFileSource(dir)
		codes, err := src.Codes()
		if err != nil {
			return fmt.Errorf("reading %s: %w", dir, err)
		}
		if len(codes) == 0 {
			return fmt.Errorf("no set documents found in %s", dir)
		}

		st := store.New(src, zap.NewNop(), store.WithMaxRefDepth(cfg.MaxRefDepth))
		ok := color.New(color.FgGreen).SprintFunc()
		bad := color.New(color.FgRed).SprintFunc()

		failures := 0
		for _, code := range codes {
			set, err := st.BuildSet(cmd.Context(), code)
			if err != nil {
				failures++
				fmt.Printf("%s %s: %v\n", bad("✗"), code, err)
				continue
			}
			fmt.Printf("%s %s: %d cards\n", ok("✓"), code, len(set.Cards))
		}
		if failures > 0 {
			return fmt.Errorf("%d of %d sets failed validation", failures, len(codes))
		}
		return nil
	},
}
