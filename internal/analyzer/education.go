package analyzer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Education patterns: degree phrases, institution phrases, graduation
// phrases. Pattern order decides the order of results.
var educationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:bachelor|master|phd|b\.s\.|m\.s\.|b\.a\.|m\.a\.|b\.tech|m\.tech|mba).*?(?:in|of)\s*([^,\n.]+)`),
	regexp.MustCompile(`(?:university|college|institute).*?([^,\n.]+)`),
	regexp.MustCompile(`(?:degree|graduate|graduated).*?(?:in|from)\s*([^,\n.]+)`),
	regexp.MustCompile(`(?:bs|ms|ba|ma|phd)\s+(?:in\s+)?([^,\n.]+)`),
}

const maxEducationEntries = 3

// ExtractEducation pulls up to three distinct education phrases out of the
// text. Captures shorter than 4 or longer than 49 runes are discarded; the
// rest are title-cased. When nothing qualifies the result is a single
// "Not specified" entry.
func ExtractEducation(text string) []string {
	if text == "" {
		return []string{"Not specified"}
	}

	lower := strings.ToLower(text)
	titler := cases.Title(language.English)
	seen := make(map[string]bool)
	var results []string

	for _, re := range educationPatterns {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			captured := strings.TrimSpace(m[1])
			n := utf8.RuneCountInString(captured)
			if n <= 3 || n >= 50 {
				continue
			}
			phrase := titler.String(captured)
			key := strings.ToLower(phrase)
			if seen[key] {
				continue
			}
			seen[key] = true
			results = append(results, phrase)
		}
	}

	if len(results) == 0 {
		return []string{"Not specified"}
	}
	if len(results) > maxEducationEntries {
		results = results[:maxEducationEntries]
	}
	return results
}
