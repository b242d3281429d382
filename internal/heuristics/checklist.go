package heuristics

import (
	"fmt"

	"github.com/iamkaran-ai/kodnest-premium-app/internal/types"
)

const (
	minRoundItems = 5
	maxRoundItems = 8
)

// genericRoundFallback tops up a round's checklist when the merged base and
// contextual items land below the minimum usable size.
var genericRoundFallback = []string{
	"Revise mistakes from previous practice sessions.",
	"Prepare concise explanations with one real example each.",
	"Create a 30-minute rapid revision checklist for this round.",
	"Track weak areas and schedule one focused improvement block.",
}

// coreTopics are the core-CS labels that feed round 2's contextual items.
var coreTopics = []string{"DSA", "OOP", "DBMS", "OS", "Networks"}

// stackTopics are the stack labels that feed round 3's contextual items.
var stackTopics = []string{
	"React", "Next.js", "Node.js", "Express", "REST", "GraphQL",
	"SQL", "MongoDB", "PostgreSQL", "MySQL", "Redis",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "CI/CD", "Linux",
	"Selenium", "Cypress", "Playwright", "JUnit", "PyTest",
}

// buildRoundItems merges a fixed base list with contextual items, dropping
// exact duplicates while keeping insertion order. If the merged list already
// has at least minRoundItems entries it is truncated to maxRoundItems;
// otherwise the generic fallback is appended before truncating.
func buildRoundItems(base, contextual []string) []string {
	merged := uniqueStrings(append(append([]string{}, base...), contextual...))
	if len(merged) >= minRoundItems {
		return truncate(merged, maxRoundItems)
	}
	merged = uniqueStrings(append(merged, genericRoundFallback...))
	return truncate(merged, maxRoundItems)
}

// Checklist builds the four fixed interview-round checklists, enriching
// rounds 2 and 3 with items contextual to the detected skills.
func Checklist(skills types.ExtractedSkills) []types.RoundChecklist {
	round1 := buildRoundItems([]string{
		"Revise percentages, probability, ratio, and time-work fundamentals.",
		"Practice 20 aptitude questions with strict timer.",
		"Prepare 60-second self-introduction and role-fit pitch.",
		"Review resume basics: measurable impact and concise bullets.",
		"Revise communication basics: clarity, structure, and brevity.",
	}, nil)

	var round2Context []string
	for _, topic := range coreTopics {
		if skills.Has(topic) {
			round2Context = append(round2Context,
				fmt.Sprintf("Solve and explain 4 focused problems/concepts for %s.", topic))
		}
	}
	round2 := buildRoundItems([]string{
		"Solve medium-level coding problems with complexity analysis.",
		"Practice writing edge cases before coding each solution.",
		"Explain one optimized approach verbally before implementation.",
		"Revise core CS interview notes and common pitfalls.",
		"Run one 45-minute timed DSA mock round.",
	}, round2Context)

	var round3Context []string
	for _, topic := range stackTopics {
		if skills.Has(topic) {
			round3Context = append(round3Context,
				fmt.Sprintf("Prepare one project talking point that demonstrates hands-on %s usage.", topic))
		}
	}
	round3 := buildRoundItems([]string{
		"Map each project feature to relevant role skills.",
		"Prepare architecture explanation: tradeoffs and alternatives considered.",
		"Rehearse debugging story with clear root-cause and fix.",
		"Align top 4 resume bullets with likely technical interview focus.",
		"Prepare deployment and monitoring explanation for one project.",
	}, round3Context)

	round4 := buildRoundItems([]string{
		"Prepare behavioral answers using STAR format for ownership and teamwork.",
		"Draft answers for conflict resolution and learning-from-failure scenarios.",
		"Explain motivation for this company and role in one concise narrative.",
		"Prepare compensation and joining discussion pointers professionally.",
		"Practice two mock HR conversations with confidence and clarity.",
	}, nil)

	return []types.RoundChecklist{
		{RoundTitle: "Round 1: Aptitude / Basics", Items: round1},
		{RoundTitle: "Round 2: DSA + Core CS", Items: round2},
		{RoundTitle: "Round 3: Tech interview (projects + stack)", Items: round3},
		{RoundTitle: "Round 4: Managerial / HR", Items: round4},
	}
}

// uniqueStrings drops exact duplicates while preserving first-seen order.
func uniqueStrings(items []string) []string {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		result = append(result, item)
	}
	return result
}

func truncate(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
