package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iamkaran-ai/kodnest-premium-app/internal/observability"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export one saved analysis as a plain-text report",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write the report to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, closeStore, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	entry, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("analysis not found: %s", args[0])
	}

	out := os.Stdout
	if exportOutput != "" {
		file, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = file.Close() }()
		out = file
	}

	observability.NewPrinter(out).PrintEntry(entry)
	return nil
}
