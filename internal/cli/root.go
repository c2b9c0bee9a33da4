// Package cli implements the command-line interface for ncube.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cubeforge/ncube/internal/app/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "ncube",
	Short: "N×N×N slice-rotation puzzle",
	Long: `ncube - an N×N×N slice-rotation puzzle (a generalized Rubik's cube)
for your terminal.

Play interactively with animated slice turns, generate scrambles for any
cube size, and review past play sessions recorded to a local database.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.ncube/ncube.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// openDB opens the session database from the --db flag or the default
// path, and applies pending migrations.
func openDB() (*storage.DB, error) {
	var (
		db  *storage.DB
		err error
	)
	if dbPath != "" {
		db, err = storage.Open(dbPath)
	} else {
		db, err = storage.OpenDefault()
	}
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}
