package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iamkaran-ai/kodnest-premium-app/internal/types"
)

var confidenceCmd = &cobra.Command{
	Use:   "confidence <id> <skill> <know|practice>",
	Short: "Set your confidence for one detected skill",
	Long:  `Confidence marks one skill of a saved analysis as "know" or "practice" and recomputes the final readiness score.`,
	Args:  cobra.ExactArgs(3),
	RunE:  runConfidence,
}

func init() {
	rootCmd.AddCommand(confidenceCmd)
}

func runConfidence(cmd *cobra.Command, args []string) error {
	id, skill, value := args[0], args[1], args[2]
	if value != string(types.ConfidenceKnow) && value != string(types.ConfidencePractice) {
		return fmt.Errorf("confidence must be %q or %q", types.ConfidenceKnow, types.ConfidencePractice)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, closeStore, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	entry, err := store.SetConfidence(cmd.Context(), id, skill, types.Confidence(value))
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("analysis not found: %s", id)
	}

	fmt.Printf("Final score for %s is now %d/100\n", entry.ID, entry.FinalScore)
	return nil
}
