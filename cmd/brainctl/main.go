package main

import (
	"fmt"
	"os"

	"BrainTrainer/internal/config"
	"BrainTrainer/internal/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "brainctl",
	Short: "BrainTrainer admin tool",
	Long: `brainctl manages the BrainTrainer database outside the API server.

  $ brainctl migrate              # create the schema
  $ brainctl seed                 # load the built-in exercise catalog
  $ brainctl exercises -c memory  # list exercises in the database

The database path comes from --db, then DATABASE_PATH (.env is read), then
./braintrainer.db.`,
	SilenceUsage: true,
}

func init() {
	_ = godotenv.Load()
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "sqlite database path")
	rootCmd.AddCommand(migrateCmd, seedCmd, exercisesCmd)
}

// openStore opens the database selected by --db or the environment.
func openStore() (*storage.Store, error) {
	path := dbPath
	if path == "" {
		path = config.Load().DatabasePath
	}
	s, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return s, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
