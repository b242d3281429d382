package heuristics

const maxQuestions = 10

// questionBank maps each catalog skill label to its interview question.
// Skills without an entry are skipped.
var questionBank = map[string]string{
	"DSA":        "How would you optimize search in sorted data and compare binary search with linear scan?",
	"OOP":        "How do encapsulation and abstraction differ in object-oriented design?",
	"DBMS":       "What normalization level is usually enough for OLTP systems, and why?",
	"OS":         "What causes a context switch and how does it affect latency?",
	"Networks":   "What happens across layers when a browser makes an HTTPS request?",
	"Java":       "How do HashMap and ConcurrentHashMap differ for multi-threaded use?",
	"Python":     "What are Python generators and when are they better than lists?",
	"JavaScript": "Explain event loop phases and how microtasks affect execution order.",
	"TypeScript": "How do union types and type guards improve API safety in TypeScript?",
	"C":          "How do pointers and array indexing relate in C memory layout?",
	"C++":        "What is RAII and how does it prevent resource leaks in C++?",
	"C#":         "How does async/await in C# avoid blocking threads in I/O-heavy code?",
	"Go":         "How do goroutines and channels coordinate concurrent workflows in Go?",
	"React":      "Explain state management options in React and when to choose each.",
	"Next.js":    "When would you choose server components or SSR in Next.js?",
	"Node.js":    "How do you handle CPU-heavy work in Node.js without blocking the event loop?",
	"Express":    "How would you structure Express middleware for auth, validation, and error handling?",
	"REST":       "How do idempotent REST methods influence retry behavior in clients?",
	"GraphQL":    "How do you prevent over-fetching and N+1 issues in GraphQL resolvers?",
	"SQL":        "Explain indexing and when it helps for read-heavy workloads.",
	"MongoDB":    "How would you model one-to-many relations efficiently in MongoDB?",
	"PostgreSQL": "When would you use a composite index in PostgreSQL and why order matters?",
	"MySQL":      "How does MySQL transaction isolation affect phantom reads?",
	"Redis":      "Where is Redis best used in a system design and what are eviction tradeoffs?",
	"AWS":        "How would you design a scalable web app on AWS with cost awareness?",
	"Azure":      "Which Azure services would you pick for app hosting and monitoring, and why?",
	"GCP":        "How would you use managed GCP services to reduce operational overhead?",
	"Docker":     "What should go into a production-ready Dockerfile for a Node or React service?",
	"Kubernetes": "How do readiness and liveness probes improve reliability in Kubernetes?",
	"CI/CD":      "How would you design a CI/CD pipeline with tests, linting, and safe deployment gates?",
	"Linux":      "Which Linux commands do you use most for debugging high CPU and memory usage?",
	"Selenium":   "When is Selenium preferable over newer testing frameworks?",
	"Cypress":    "How do you make Cypress tests stable and less flaky in CI?",
	"Playwright": "What advantages does Playwright provide for cross-browser E2E testing?",
	"JUnit":      "How do you structure JUnit tests to keep them isolated and maintainable?",
	"PyTest":     "How do fixtures in PyTest help scale test suites cleanly?",
}

// technicalFallbackQuestions round out the question set for technical JDs.
var technicalFallbackQuestions = []string{
	"Walk through one project you built and justify the key architecture decisions.",
	"If this feature slows down in production, how would you profile and fix it?",
	"How do you prioritize bugs, tech debt, and feature work under tight deadlines?",
	"What metrics would you track to prove your feature improved user outcomes?",
	"Describe a time you disagreed technically with teammates and how you resolved it.",
	"How would you tailor your resume bullets to this role's must-have skills?",
}

// generalFallbackQuestions are used when the JD yields no technical signal.
var generalFallbackQuestions = []string{
	"Walk through one project you built and explain what you contributed personally.",
	"Describe a problem you solved where the first approach did not work.",
	"How do you break a vague task into concrete steps you can start on today?",
	"Tell me about a time you had to explain something technical to a non-technical person.",
	"What do you do when you are stuck on a problem for more than an hour?",
	"Why this company and role, and what do you want to learn in your first six months?",
}

// Questions builds the likely-question list: one bank question per detected
// skill, topped up with the fallback pool for the detected/non-detected
// branch, deduplicated and capped at 10.
func Questions(flatSkills []string, hasDetectedTechnicalSkills bool) []string {
	var picked []string
	for _, skill := range flatSkills {
		if q, ok := questionBank[skill]; ok {
			picked = append(picked, q)
		}
	}

	fallback := generalFallbackQuestions
	if hasDetectedTechnicalSkills {
		fallback = technicalFallbackQuestions
	}

	return truncate(uniqueStrings(append(picked, fallback...)), maxQuestions)
}
