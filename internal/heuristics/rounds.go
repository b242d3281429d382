package heuristics

import (
	"github.com/iamkaran-ai/kodnest-premium-app/internal/types"
)

// RoundMapping builds the narrative round-by-round interview map. The
// template (4 rounds for enterprise and mid-size, 3 for startups) is chosen
// by company size; the focus areas of each round branch on the detected
// skill mix. A nil intel defaults the size category to startup.
func RoundMapping(intel *types.CompanyIntel, skills types.ExtractedSkills) []types.RoundFocus {
	hasDSA := skills.Has("DSA")
	hasCore := skills.HasAny("OOP", "DBMS", "OS", "Networks")
	hasWebStack := skills.HasAny("React", "Next.js", "Node.js", "Express")
	hasData := skills.HasAny("SQL", "MongoDB", "PostgreSQL", "MySQL", "Redis")

	sizeCategory := types.SizeStartup
	if intel != nil {
		sizeCategory = intel.SizeCategory
	}

	switch sizeCategory {
	case types.SizeEnterprise:
		return []types.RoundFocus{
			{
				RoundTitle:   "Round 1: Online Test",
				FocusAreas:   pick(hasDSA, []string{"DSA", "Aptitude"}, []string{"Aptitude", "Programming basics"}),
				WhyItMatters: "Large hiring funnels use standardized tests to filter for consistency at scale.",
			},
			{
				RoundTitle:   "Round 2: Technical",
				FocusAreas:   pick(hasCore, []string{"DSA", "Core CS"}, []string{"Coding", "Fundamentals"}),
				WhyItMatters: "Interviewers validate depth in problem solving and conceptual computer science fundamentals.",
			},
			{
				RoundTitle:   "Round 3: Tech + Projects",
				FocusAreas:   pick(hasWebStack || hasData, []string{"Project architecture", "Stack decisions"}, []string{"Project execution", "Debugging depth"}),
				WhyItMatters: "This round checks real-world delivery skills beyond theoretical knowledge.",
			},
			{
				RoundTitle:   "Round 4: HR",
				FocusAreas:   []string{"Behavioral fit", "Communication"},
				WhyItMatters: "Final alignment on role expectations, teamwork style, and long-term fit.",
			},
		}
	case types.SizeMidSize:
		return []types.RoundFocus{
			{
				RoundTitle:   "Round 1: Coding Screen",
				FocusAreas:   pick(hasDSA, []string{"Problem solving", "DSA"}, []string{"Practical coding", "Logic"}),
				WhyItMatters: "Mid-size teams prioritize engineers who can contribute quickly with sound coding judgment.",
			},
			{
				RoundTitle:   "Round 2: Technical Deep Dive",
				FocusAreas:   pick(hasCore, []string{"Core CS", "Implementation tradeoffs"}, []string{"Design decisions", "Code quality"}),
				WhyItMatters: "The team evaluates whether you can reason through tradeoffs in realistic technical scenarios.",
			},
			{
				RoundTitle:   "Round 3: Projects + Team Fit",
				FocusAreas:   pick(hasWebStack || hasData, []string{"Project architecture walkthrough"}, []string{"Impact and ownership stories"}),
				WhyItMatters: "They need confidence that you can deliver with cross-functional teams.",
			},
			{
				RoundTitle:   "Round 4: HR / Managerial",
				FocusAreas:   []string{"Culture alignment", "Growth potential"},
				WhyItMatters: "Confirms communication, accountability, and long-term contribution expectations.",
			},
		}
	default:
		return []types.RoundFocus{
			{
				RoundTitle:   "Round 1: Practical Coding",
				FocusAreas:   pick(hasWebStack, []string{"Feature-focused coding on your stack"}, []string{"Hands-on coding", "Debugging"}),
				WhyItMatters: "Startups optimize for immediate execution, so applied coding ability is prioritized early.",
			},
			{
				RoundTitle:   "Round 2: System Discussion",
				FocusAreas:   pick(hasWebStack || hasData, []string{"Architecture", "API/data tradeoffs"}, []string{"Problem decomposition", "Implementation plan"}),
				WhyItMatters: "Small teams need engineers who can make pragmatic design decisions independently.",
			},
			{
				RoundTitle:   "Round 3: Culture Fit",
				FocusAreas:   []string{"Ownership mindset", "Collaboration"},
				WhyItMatters: "High-velocity teams look for accountability, communication, and adaptability.",
			},
		}
	}
}

func pick(cond bool, yes, no []string) []string {
	if cond {
		return yes
	}
	return no
}
