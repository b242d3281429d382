// Package catalog defines the fixed skill detection table and the text
// matcher that extracts skills by category from job description text.
package catalog

import (
	"regexp"

	"github.com/iamkaran-ai/kodnest-premium-app/internal/types"
)

// Entry is one detectable skill: a display label plus the patterns that
// trigger it. A label is detected when any pattern matches the input text.
type Entry struct {
	Label    string
	Patterns []*regexp.Regexp
}

// CategoryEntries pairs a category with its catalog entries in definition order.
type CategoryEntries struct {
	Category types.SkillCategory
	Entries  []Entry
}

func entry(label string, patterns ...string) Entry {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		compiled = append(compiled, regexp.MustCompile("(?i)"+pattern))
	}
	return Entry{Label: label, Patterns: compiled}
}

// categorySkills is the immutable detection table, loaded once at process
// start. Order within a category determines output order.
var categorySkills = []CategoryEntries{
	{
		Category: types.CategoryCoreCS,
		Entries: []Entry{
			entry("DSA", `\bdsa\b`, `\bdata structures?\b`, `\balgorithms?\b`),
			entry("OOP", `\boop\b`, `\bobject[- ]oriented\b`),
			entry("DBMS", `\bdbms\b`, `\bdatabase management\b`),
			entry("OS", `\bos\b`, `\boperating systems?\b`),
			entry("Networks", `\bnetworks?\b`, `\bcomputer networks?\b`),
		},
	},
	{
		Category: types.CategoryLanguages,
		Entries: []Entry{
			entry("Java", `\bjava\b`),
			entry("Python", `\bpython\b`),
			entry("JavaScript", `\bjavascript\b`, `\bjs\b`),
			entry("TypeScript", `\btypescript\b`, `\bts\b`),
			entry("C", `(?:^|[^a-z0-9])c(?:[^a-z0-9]|$)`),
			entry("C++", `\bc\+\+`),
			entry("C#", `\bc#`, `\bc sharp\b`),
			entry("Go", `\bgo\b`, `\bgolang\b`),
		},
	},
	{
		Category: types.CategoryWeb,
		Entries: []Entry{
			entry("React", `\breact\b`),
			entry("Next.js", `\bnext(?:\.js)?\b`),
			entry("Node.js", `\bnode(?:\.js)?\b`),
			entry("Express", `\bexpress\b`),
			entry("REST", `\brest\b`, `\brestful\b`),
			entry("GraphQL", `\bgraphql\b`),
		},
	},
	{
		Category: types.CategoryData,
		Entries: []Entry{
			entry("SQL", `\bsql\b`),
			entry("MongoDB", `\bmongodb\b`),
			entry("PostgreSQL", `\bpostgresql\b`, `\bpostgres\b`),
			entry("MySQL", `\bmysql\b`),
			entry("Redis", `\bredis\b`),
		},
	},
	{
		Category: types.CategoryCloud,
		Entries: []Entry{
			entry("AWS", `\baws\b`),
			entry("Azure", `\bazure\b`),
			entry("GCP", `\bgcp\b`, `\bgoogle cloud\b`),
			entry("Docker", `\bdocker\b`),
			entry("Kubernetes", `\bkubernetes\b`, `\bk8s\b`),
			entry("CI/CD", `\bci/?cd\b`, `continuous integration`),
			entry("Linux", `\blinux\b`),
		},
	},
	{
		Category: types.CategoryTesting,
		Entries: []Entry{
			entry("Selenium", `\bselenium\b`),
			entry("Cypress", `\bcypress\b`),
			entry("Playwright", `\bplaywright\b`),
			entry("JUnit", `\bjunit\b`),
			entry("PyTest", `\bpytest\b`),
		},
	},
}

// Table returns the detection table in catalog order.
func Table() []CategoryEntries {
	return categorySkills
}
