package analyzer

import (
	"regexp"
	"strings"
)

// Numeric experience patterns, most specific first. The first match wins, so
// the order must not change.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?(?:experience|exp)`),
	regexp.MustCompile(`(\d+)\+?\s*yrs?\s*(?:of\s*)?(?:experience|exp)`),
	regexp.MustCompile(`experience\s*(?:of\s*)?(\d+)\+?\s*years?`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*in\s*(?:the\s*)?(?:field|industry|role)`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:working|work)`),
	regexp.MustCompile(`over\s*(\d+)\s*years?`),
	regexp.MustCompile(`more\s*than\s*(\d+)\s*years?`),
}

// Seniority keyword tiers, checked in this order when no numeric pattern hits.
var (
	seniorKeywords = []string{"senior", "lead", "principal", "architect"}
	entryKeywords  = []string{"junior", "entry", "graduate", "intern"}
	midKeywords    = []string{"mid", "intermediate"}
)

const experienceNotSpecified = "Not specified"

// ExtractExperience detects a years-of-experience statement in the text.
// Numeric patterns produce "N+ years"; otherwise seniority keywords map to a
// categorical level; otherwise "Not specified".
func ExtractExperience(text string) string {
	if text == "" {
		return experienceNotSpecified
	}

	lower := strings.ToLower(text)
	for _, re := range experiencePatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			return m[1] + "+ years"
		}
	}

	if containsAny(lower, seniorKeywords) {
		return "Senior level (5+ years)"
	}
	if containsAny(lower, entryKeywords) {
		return "Entry level (0-2 years)"
	}
	if containsAny(lower, midKeywords) {
		return "Mid level (2-5 years)"
	}
	return experienceNotSpecified
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
