// Package main provides the entry point for the interview prep CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prep_agent",
	Short: "Interview preparation analysis engine",
	Long:  "prep_agent turns job description text into a structured interview preparation plan: detected skills, a readiness score, a round-by-round interview map, a revision checklist, a 7-day study plan, and likely questions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
