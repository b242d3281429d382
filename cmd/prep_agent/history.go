package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved analyses",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, closeStore, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	entries, hadCorrupted, err := store.List(cmd.Context())
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No saved analyses.")
	} else {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCOMPANY\tROLE\tBASE\tFINAL\tCREATED")
		for _, entry := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
				entry.ID, entry.Company, entry.Role, entry.BaseScore, entry.FinalScore, entry.CreatedAt)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if hadCorrupted {
		fmt.Fprintln(os.Stderr, "Warning: some stored records were corrupt and have been skipped.")
	}
	return nil
}
