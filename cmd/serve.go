package cmd

import (
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/atelierlabs/atelier/internal/api"
	"github.com/atelierlabs/atelier/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game over HTTP",
	Long: `Starts the HTTP server. Configuration is read from the environment
(ATELIER_ADDR, ATELIER_DB, ATELIER_SLOT, ATELIER_BALANCE); the persistent
flags override it when set explicitly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadServer()
		if err != nil {
			return err
		}
		if rootCmd.PersistentFlags().Changed("db") {
			cfg.DBPath = flagDB
		}
		if rootCmd.PersistentFlags().Changed("slot") {
			cfg.Slot = flagSlot
		}
		if rootCmd.PersistentFlags().Changed("balance") {
			cfg.BalancePath = flagBalance
		}

		eng, db, err := openSession(cfg.DBPath, cfg.Slot, cfg.BalancePath)
		if err != nil {
			return err
		}
		defer db.Close()

		server := api.NewServer(eng, db, cfg.Slot)
		logger := log.New(os.Stdout, "[SERVE] ", log.LstdFlags)
		logger.Printf("listening on %s (slot %q, db %s)", cfg.Addr, cfg.Slot, cfg.DBPath)
		return http.ListenAndServe(cfg.Addr, server.Routes())
	},
}
