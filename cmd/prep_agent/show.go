package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iamkaran-ai/kodnest-premium-app/internal/observability"
	"github.com/iamkaran-ai/kodnest-premium-app/internal/types"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one saved analysis",
	Long:  `Show prints the full report for one saved analysis. With no id, the currently selected or most recent analysis is shown.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, closeStore, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	var entry *types.AnalysisEntry
	if len(args) == 1 {
		entry, err = store.Get(cmd.Context(), args[0])
	} else {
		entry, err = store.SelectedOrLatest(cmd.Context())
	}
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("no matching analysis found")
	}

	observability.NewPrinter(os.Stdout).PrintEntry(entry)
	return nil
}
