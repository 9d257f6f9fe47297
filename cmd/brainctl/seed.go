package main

import (
	"fmt"

	"BrainTrainer/internal/catalog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in exercise catalog",
	Long: `Insert or update the exercises and learning content that ship with the
binary. Rows are keyed by id, so running seed twice is safe.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		exercises, articles, err := cat.Seed(cmd.Context(), s)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		color.Green("✓ seeded %d exercises and %d learning articles", exercises, articles)
		return nil
	},
}
