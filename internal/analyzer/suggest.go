package analyzer

import (
	"fmt"
	"strings"
)

// buildSuggestions produces improvement advice from the match outcome. Rules
// are cumulative; the "great match" fallback only applies when nothing else
// fired.
func buildSuggestions(missingSkills, matchedSkills []string, overallScore int) []string {
	var suggestions []string

	if len(missingSkills) > 0 {
		if len(missingSkills) <= 3 {
			suggestions = append(suggestions,
				"Consider gaining experience in: "+strings.Join(missingSkills, ", "))
		} else {
			suggestions = append(suggestions, fmt.Sprintf(
				"Focus on developing skills in: %s and %d others",
				strings.Join(missingSkills[:3], ", "), len(missingSkills)-3))
		}
	}

	if overallScore < 70 {
		suggestions = append(suggestions,
			"Enhance your resume with more relevant keywords from the job description",
			"Add quantifiable achievements and specific project examples")
	}

	if overallScore < 50 {
		suggestions = append(suggestions,
			"Consider gaining more experience in the required domain",
			"Add relevant certifications to strengthen your profile")
	}

	if len(matchedSkills) < 3 {
		suggestions = append(suggestions,
			"Highlight more technical skills that align with the job requirements")
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions,
			"Great match! Consider emphasizing your relevant experience and achievements")
	}

	return suggestions
}
