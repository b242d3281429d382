// Package observability provides formatted plain-text output for analysis
// results and persisted entries.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/iamkaran-ai/kodnest-premium-app/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted text output for analysis reports.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "└%s┘\n", border)
	fmt.Fprint(p.out, content)
	fmt.Fprintln(p.out)
}

// PrintSkills outputs the detected skills grouped by category. Empty
// categories are skipped.
func (p *Printer) PrintSkills(skills types.ExtractedSkills) {
	var sb strings.Builder
	for _, category := range types.Categories() {
		labels := skills[category]
		if len(labels) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-10s %s\n", string(category)+":", strings.Join(labels, ", ")))
	}
	p.printBox("Detected Skills", sb.String())
}

// PrintScore outputs the readiness scores.
func (p *Printer) PrintScore(baseScore, finalScore int) {
	content := fmt.Sprintf("Base readiness: %d/100\nFinal score:    %d/100\n", baseScore, finalScore)
	p.printBox("Readiness", content)
}

// PrintRoundMapping outputs the round-by-round interview map.
func (p *Printer) PrintRoundMapping(rounds []types.RoundFocus) {
	var sb strings.Builder
	for _, round := range rounds {
		sb.WriteString(fmt.Sprintf("%s\n", round.RoundTitle))
		sb.WriteString(fmt.Sprintf("  Focus: %s\n", strings.Join(round.FocusAreas, ", ")))
		sb.WriteString(fmt.Sprintf("  Why:   %s\n", round.WhyItMatters))
	}
	p.printBox("Interview Rounds", sb.String())
}

// PrintChecklist outputs the revision checklist per round.
func (p *Printer) PrintChecklist(checklist []types.RoundChecklist) {
	var sb strings.Builder
	for _, round := range checklist {
		sb.WriteString(fmt.Sprintf("%s\n", round.RoundTitle))
		for _, item := range round.Items {
			sb.WriteString(fmt.Sprintf("  • %s\n", item))
		}
	}
	p.printBox("Revision Checklist", sb.String())
}

// PrintPlan outputs the 7-day study plan.
func (p *Printer) PrintPlan(plan []types.DayPlan) {
	var sb strings.Builder
	for _, day := range plan {
		sb.WriteString(fmt.Sprintf("%s — %s\n", day.Day, day.Focus))
		for _, task := range day.Tasks {
			sb.WriteString(fmt.Sprintf("  • %s\n", task))
		}
	}
	p.printBox("7-Day Plan", sb.String())
}

// PrintQuestions outputs the numbered likely-question list.
func (p *Printer) PrintQuestions(questions []string) {
	var sb strings.Builder
	for i, question := range questions {
		sb.WriteString(fmt.Sprintf("%2d. %s\n", i+1, question))
	}
	p.printBox("Likely Questions", sb.String())
}

// PrintCompanyIntel outputs the heuristic company profile, if present.
func (p *Printer) PrintCompanyIntel(intel *types.CompanyIntel) {
	if intel == nil {
		return
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", intel.CompanyName))
	sb.WriteString(fmt.Sprintf("Industry: %s\n", intel.Industry))
	sb.WriteString(fmt.Sprintf("Size:     %s\n", intel.SizeCategory))
	sb.WriteString(fmt.Sprintf("Hiring:   %s\n", intel.HiringFocus))
	sb.WriteString(fmt.Sprintf("Note:     %s\n", intel.Note))
	p.printBox("Company Intel", sb.String())
}

// PrintResult outputs a full analysis report.
func (p *Printer) PrintResult(result *types.AnalysisResult) {
	if result == nil {
		return
	}
	p.PrintSkills(result.ExtractedSkills)
	p.PrintScore(result.BaseScore, result.BaseScore)
	p.PrintCompanyIntel(result.CompanyIntel)
	p.PrintRoundMapping(result.RoundMapping)
	p.PrintChecklist(result.Checklist)
	p.PrintPlan(result.Plan7Days)
	p.PrintQuestions(result.Questions)
}

// PrintEntry outputs a full report for a persisted entry, including the
// confidence-adjusted final score.
func (p *Printer) PrintEntry(entry *types.AnalysisEntry) {
	if entry == nil {
		return
	}
	header := fmt.Sprintf("Company: %s\nRole:    %s\nSaved:   %s\n", entry.Company, entry.Role, entry.CreatedAt)
	p.printBox(fmt.Sprintf("Analysis %s", entry.ID), header)
	p.PrintSkills(entry.ExtractedSkills)
	p.PrintScore(entry.BaseScore, entry.FinalScore)
	p.PrintCompanyIntel(entry.CompanyIntel)
	p.PrintRoundMapping(entry.RoundMapping)
	p.PrintChecklist(entry.Checklist)
	p.PrintPlan(entry.Plan7Days)
	p.PrintQuestions(entry.Questions)
}
