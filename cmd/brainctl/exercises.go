package main

import (
	"fmt"
	"io"
	"strings"

	"BrainTrainer/internal/models"
	"BrainTrainer/internal/storage"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	exCategory   string
	exDifficulty string
	exLimit      int
)

var exercisesCmd = &cobra.Command{
	Use:     "exercises",
	Aliases: []string{"ls"},
	Short:   "List exercises in the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := storage.ExerciseFilter{Limit: exLimit}
		if exCategory != "" {
			for _, part := range strings.Split(exCategory, ",") {
				cat := models.Category(strings.TrimSpace(part))
				if !cat.Valid() {
					return fmt.Errorf("unknown category: %s", cat)
				}
				filter.Categories = append(filter.Categories, cat)
			}
		}
		if exDifficulty != "" {
			filter.Difficulty = models.Difficulty(exDifficulty)
			if !filter.Difficulty.Valid() {
				return fmt.Errorf("unknown difficulty: %s", exDifficulty)
			}
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		list, err := s.ListExercises(cmd.Context(), filter)
		if err != nil {
			return fmt.Errorf("list exercises: %w", err)
		}
		if len(list) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No exercises found. Run 'brainctl seed' first.")
			return nil
		}
		printExercises(cmd.OutOrStdout(), list)
		return nil
	},
}

func init() {
	exercisesCmd.Flags().StringVarP(&exCategory, "category", "c", "", "comma separated categories")
	exercisesCmd.Flags().StringVarP(&exDifficulty, "difficulty", "d", "", "easy, medium or hard")
	exercisesCmd.Flags().IntVarP(&exLimit, "limit", "n", 0, "maximum rows (0 = all)")
}

func printExercises(w io.Writer, list []models.Exercise) {
	faint := color.New(color.Faint)
	for _, e := range list {
		fmt.Fprintf(w, "%-18s %s %s %3d min  %s\n",
			e.ID,
			padRight(string(e.Category), 16),
			difficultyColor(e.Difficulty).Sprint(padRight(string(e.Difficulty), 6)),
			e.Duration,
			faint.Sprint(e.Title))
	}
}

func difficultyColor(d models.Difficulty) *color.Color {
	switch d {
	case models.DifficultyEasy:
		return color.New(color.FgGreen)
	case models.DifficultyHard:
		return color.New(color.FgRed)
	}
	return color.New(color.FgYellow)
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
