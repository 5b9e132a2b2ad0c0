package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atelierlabs/atelier/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase the save slot and start over",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.NewSQLiteStore(flagDB)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.Migrate(); err != nil {
			return err
		}
		if err := db.DeleteSnapshot(flagSlot); err != nil {
			return err
		}
		fmt.Printf("Slot %q erased. The atelier awaits a fresh start.\n", flagSlot)
		return nil
	},
}
