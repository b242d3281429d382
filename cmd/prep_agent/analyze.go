package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iamkaran-ai/kodnest-premium-app/internal/analysis"
	"github.com/iamkaran-ai/kodnest-premium-app/internal/fetch"
	"github.com/iamkaran-ai/kodnest-premium-app/internal/observability"
)

var (
	analyzeCompany string
	analyzeRole    string
	analyzeJob     string
	analyzeJobURL  string
	analyzeNoSave  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job description and save the prep plan",
	Long:  `Analyze reads a job description from a file or URL, extracts skills, derives the readiness score and prep plan, prints the report, and saves the entry to history.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCompany, "company", "", "Company name (optional context)")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "Role title (optional context)")
	analyzeCmd.Flags().StringVar(&analyzeJob, "job", "", "Path to job description text file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job description from")
	analyzeCmd.Flags().BoolVar(&analyzeNoSave, "no-save", false, "Print the report without saving to history")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if analyzeJob == "" && analyzeJobURL == "" {
		return fmt.Errorf("either --job or --job-url is required")
	}
	if analyzeJob != "" && analyzeJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	var jdText string
	if analyzeJob != "" {
		data, err := os.ReadFile(analyzeJob)
		if err != nil {
			return fmt.Errorf("failed to read job file: %w", err)
		}
		jdText = string(data)
	} else {
		fetched, err := fetch.JobText(cmd.Context(), analyzeJobURL, nil)
		if err != nil {
			return err
		}
		jdText = fetched
	}

	if strings.TrimSpace(jdText) == "" {
		return fmt.Errorf("job description is empty")
	}

	result := analysis.Analyze(analyzeCompany, analyzeRole, jdText)
	printer := observability.NewPrinter(os.Stdout)
	printer.PrintResult(result)

	if analyzeNoSave {
		return nil
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

	entry := analysis.NewEntry(result, analyzeCompany, analyzeRole, jdText, time.Now())
	if err := store.Save(cmd.Context(), entry); err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	fmt.Printf("Saved analysis %s\n", entry.ID)
	return nil
}
