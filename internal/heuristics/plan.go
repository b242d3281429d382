package heuristics

import (
	"github.com/iamkaran-ai/kodnest-premium-app/internal/types"
)

// SevenDayPlan builds the 7-day study plan. Two divergent templates exist:
// a communication/basics plan for input with no detected technical skills,
// and a technical plan whose Day 2/5/6/7 tasks substitute one line each
// depending on the detected SQL, React/Next, Node/Express, and cloud skills.
func SevenDayPlan(skills types.ExtractedSkills, hasDetectedTechnicalSkills bool) []types.DayPlan {
	if !hasDetectedTechnicalSkills {
		return noSignalPlan()
	}

	hasReact := skills.Has("React")
	hasNext := skills.Has("Next.js")
	hasNode := skills.HasAny("Node.js", "Express")
	hasSQL := skills.HasAny("SQL", "PostgreSQL", "MySQL")
	hasCloud := skills.HasAny("AWS", "Azure", "GCP", "Docker", "Kubernetes", "CI/CD")

	day2Task := "Practice DBMS schema and normalization questions."
	if hasSQL {
		day2Task = "Review SQL joins, indexing, and query optimization basics."
	}

	day5Project := "Prepare backend/module architecture explanation for your strongest project."
	if hasReact || hasNext {
		day5Project = "Revise frontend architecture, state flow, and performance optimization for your project."
	}
	day5Resume := "Align 4 resume bullets with measurable technical impact."
	if hasNode {
		day5Resume = "Prepare API design tradeoffs from your Node/Express work."
	}

	day6Task := "Prepare debugging and collaboration examples from project work."
	if hasCloud {
		day6Task = "Prepare deployment, CI/CD, and incident handling examples."
	}

	day7Task := "Do final core CS and DSA revision sprint."
	if hasReact {
		day7Task = "Do final frontend revision sprint (components, hooks, state management)."
	}

	return []types.DayPlan{
		{
			Day:   "Day 1",
			Focus: "Basics + core CS",
			Tasks: []string{
				"Revise OOP/DBMS/OS/networking core notes.",
				"Create one-page quick revision sheet for fundamentals.",
			},
		},
		{
			Day:   "Day 2",
			Focus: "Basics + core CS",
			Tasks: []string{
				"Practice conceptual questions from core CS topics.",
				day2Task,
			},
		},
		{
			Day:   "Day 3",
			Focus: "DSA + coding practice",
			Tasks: []string{
				"Solve 4 medium problems on arrays, strings, and binary search.",
				"Write complexity notes for each approach.",
			},
		},
		{
			Day:   "Day 4",
			Focus: "DSA + coding practice",
			Tasks: []string{
				"Run one 60-minute timed coding set.",
				"Review mistakes and create retry list for weak patterns.",
			},
		},
		{
			Day:   "Day 5",
			Focus: "Project + resume alignment",
			Tasks: []string{
				day5Project,
				day5Resume,
			},
		},
		{
			Day:   "Day 6",
			Focus: "Mock interview questions",
			Tasks: []string{
				"Do one technical mock and one HR mock round.",
				day6Task,
			},
		},
		{
			Day:   "Day 7",
			Focus: "Revision + weak areas",
			Tasks: []string{
				"Revise all weak topics found during mocks.",
				day7Task,
			},
		},
	}
}

// noSignalPlan is the 7-day template for job descriptions with no detectable
// technical skills: communication, basics, and project storytelling.
func noSignalPlan() []types.DayPlan {
	return []types.DayPlan{
		{
			Day:   "Day 1",
			Focus: "Communication + self-introduction",
			Tasks: []string{
				"Draft and rehearse a 60-second self-introduction.",
				"Write a one-paragraph summary of each project on your resume.",
			},
		},
		{
			Day:   "Day 2",
			Focus: "Aptitude basics",
			Tasks: []string{
				"Practice 20 aptitude questions on percentages and ratios.",
				"Review time-work and probability shortcuts.",
			},
		},
		{
			Day:   "Day 3",
			Focus: "Basic coding",
			Tasks: []string{
				"Solve 5 easy problems on loops, arrays, and strings.",
				"Explain each solution out loud in plain language.",
			},
		},
		{
			Day:   "Day 4",
			Focus: "Projects deep dive",
			Tasks: []string{
				"Prepare a walkthrough of your strongest project end to end.",
				"List the decisions you made and one alternative for each.",
			},
		},
		{
			Day:   "Day 5",
			Focus: "Problem solving",
			Tasks: []string{
				"Work through 3 logic puzzles with structured reasoning.",
				"Practice decomposing one vague problem into concrete steps.",
			},
		},
		{
			Day:   "Day 6",
			Focus: "Mock interviews",
			Tasks: []string{
				"Do one HR mock round with a friend or recorder.",
				"Review the recording for filler words and unclear answers.",
			},
		},
		{
			Day:   "Day 7",
			Focus: "Revision + confidence",
			Tasks: []string{
				"Revise all notes from the week in one sitting.",
				"Prepare questions to ask the interviewer about the role.",
			},
		},
	}
}
