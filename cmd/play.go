package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atelierlabs/atelier/internal/engine"
	"github.com/atelierlabs/atelier/internal/state"
	"github.com/atelierlabs/atelier/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game interactively in the terminal",
	Long: `Starts an interactive session. Pick choices by number; type "skip" to
advance the day manually, "stats" to inspect the atelier, and "quit" to
leave (progress is saved after every move).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, db, err := openSession(flagDB, flagSlot, flagBalance)
		if err != nil {
			return err
		}
		defer db.Close()

		if res, rolled := eng.SyncDay(); rolled {
			persistCLI(eng, db, "rollover", res.Message)
			fmt.Println(res.Message)
		}

		scanner := bufio.NewScanner(os.Stdin)
		printStats(eng)
		printChoices(eng.Choices())

		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())

			switch line {
			case "":
				continue
			case "quit", "exit":
				return nil
			case "stats":
				printStats(eng)
				continue
			case "skip":
				res, err := eng.ManualAdvance()
				if err != nil {
					fmt.Println(err)
					continue
				}
				persistCLI(eng, db, "rollover", res.Message)
				fmt.Println(res.Message)
				printChoices(res.Choices)
				continue
			}

			choices := eng.Choices()
			n, err := strconv.Atoi(line)
			if err != nil || n < 1 || n > len(choices) {
				fmt.Println("Pick a choice by number, or: stats, skip, quit.")
				continue
			}

			choice := choices[n-1]
			res, err := eng.Dispatch(choice.Action, choice.Params)
			persistCLI(eng, db, "action", res.Message)
			if err != nil {
				fmt.Println(err)
			}
			if res.Message != "" {
				fmt.Println(res.Message)
			}
			if len(res.Choices) == 0 {
				fmt.Println("The story ends here. Run `atelier reset` to begin again.")
				return nil
			}
			printChoices(res.Choices)
		}
	},
}

func persistCLI(eng *engine.Engine, db store.Store, kind, message string) {
	data, err := eng.Snapshot()
	if err != nil {
		return
	}
	_ = db.SaveSnapshot(flagSlot, data)
	if message != "" {
		_ = db.AppendJournal(store.JournalEntry{
			Slot:    flagSlot,
			Day:     eng.State().Day,
			Kind:    kind,
			Message: message,
		})
	}
}

func printStats(eng *engine.Engine) {
	st := eng.State()
	fmt.Printf("Day %d — focus %d/%d\n", st.Day, st.ActionPoints, st.MaxActionPoints)
	for _, s := range state.AllStats {
		fmt.Printf("  %s: %d", s, st.Stats[s])
	}
	fmt.Println()
	fmt.Printf("  paints %d, inspiration %d, reputation %d, fragments %d\n",
		st.Resources[state.ResourcePaints],
		st.Resources[state.ResourceInspiration],
		st.Resources[state.ResourceReputation],
		st.Resources[state.ResourceFragments])
	for _, m := range st.Muses {
		fmt.Printf("  muse %s (%s) — connection %d\n", m.Name, m.Skill, m.Connection)
	}
	for _, k := range state.FacilityKeys {
		if f := st.Facilities[k]; f.Built {
			fmt.Printf("  work %s — durability %d\n", k, f.Durability)
		}
	}
}

func printChoices(choices []engine.Choice) {
	for i, c := range choices {
		fmt.Printf("  %d) %s\n", i+1, c.Label)
	}
}
