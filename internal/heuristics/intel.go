package heuristics

import (
	"regexp"
	"strings"

	"github.com/iamkaran-ai/kodnest-premium-app/internal/types"
)

// enterpriseCompanies and midSizeCompanies classify company size by
// substring membership of the lowercased company name. Anything else is a
// startup.
var enterpriseCompanies = []string{
	"amazon", "infosys", "tcs", "wipro", "accenture", "ibm", "microsoft",
	"google", "meta", "oracle", "cognizant", "hcl", "deloitte", "capgemini",
}

var midSizeCompanies = []string{
	"zoho", "freshworks", "razorpay", "postman", "swiggy", "zomato", "paytm", "cred",
}

// industryRule is one (pattern, label) pair of the industry classification
// chain. Rules are evaluated in order; the first match wins and later rules
// never override it.
type industryRule struct {
	pattern *regexp.Regexp
	label   string
}

var industryRules = []industryRule{
	{regexp.MustCompile(`\b(bank|finance|fintech|payments?)\b`), "FinTech"},
	{regexp.MustCompile(`\bhealth|hospital|medtech|pharma\b`), "Healthcare Tech"},
	{regexp.MustCompile(`\be-?commerce|retail|marketplace\b`), "E-commerce"},
	{regexp.MustCompile(`\bedtech|education|learning\b`), "EdTech"},
	{regexp.MustCompile(`\bcloud|saas|platform\b`), "Cloud / SaaS"},
}

const defaultIndustry = "Technology Services"

// CompanyIntel infers a heuristic company profile from the company name and
// the role/JD context. Returns nil when no company name is given after trim.
func CompanyIntel(company, role, jdText string) *types.CompanyIntel {
	name := strings.TrimSpace(company)
	if name == "" {
		return nil
	}

	nameLower := strings.ToLower(name)
	context := strings.ToLower(name + " " + role + " " + jdText)

	sizeCategory := types.SizeStartup
	if containsAny(nameLower, enterpriseCompanies) {
		sizeCategory = types.SizeEnterprise
	} else if containsAny(nameLower, midSizeCompanies) {
		sizeCategory = types.SizeMidSize
	}

	industry := defaultIndustry
	for _, rule := range industryRules {
		if rule.pattern.MatchString(context) {
			industry = rule.label
			break
		}
	}

	return &types.CompanyIntel{
		CompanyName:  name,
		Industry:     industry,
		SizeCategory: sizeCategory,
		HiringFocus:  hiringFocusForSize(sizeCategory),
		Note:         "Company intel generated heuristically from fixed name and keyword tables.",
	}
}

func hiringFocusForSize(sizeCategory string) string {
	switch sizeCategory {
	case types.SizeEnterprise:
		return "Structured DSA rounds with strong core fundamentals and consistent communication."
	case types.SizeStartup:
		return "Practical problem solving, ownership mindset, and stack depth for fast execution."
	default:
		return "Balanced evaluation: coding fundamentals, applied project depth, and collaboration skills."
	}
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
