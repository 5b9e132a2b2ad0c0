// Package cmd wires the atelier engine into a command line interface.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/atelierlabs/atelier/internal/config"
	"github.com/atelierlabs/atelier/internal/engine"
	"github.com/atelierlabs/atelier/internal/store"
)

var (
	flagDB      string
	flagSlot    string
	flagBalance string
)

var rootCmd = &cobra.Command{
	Use:   "atelier",
	Short: "A once-per-day atelier simulation",
	Long: `atelier is a small daily progression game: each real calendar day brings a
new in-game day with a deterministic, date-seeded stream of events. Play it
from the terminal or serve it over HTTP.`,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "atelier.db", "path to the save database")
	rootCmd.PersistentFlags().StringVar(&flagSlot, "slot", "default", "save slot name")
	rootCmd.PersistentFlags().StringVar(&flagBalance, "balance", "", "optional yaml balance override file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// openSession opens the store and restores (or creates) the engine for the
// configured slot.
func openSession(dbPath, slot, balancePath string) (*engine.Engine, *store.SQLiteStore, error) {
	balance, err := config.LoadBalance(balancePath)
	if err != nil {
		return nil, nil, err
	}

	db, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, nil, err
	}

	snapshot, err := db.LoadSnapshot(slot)
	if errors.Is(err, store.ErrNotFound) {
		return engine.New(balance, time.Now), db, nil
	}
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	eng, err := engine.Load(balance, time.Now, snapshot)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("restore slot %q: %w", slot, err)
	}
	return eng, db, nil
}
