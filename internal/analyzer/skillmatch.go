package analyzer

import "strings"

// MatchSkills compares resume skills against job skills. A job skill counts
// as matched when some resume skill equals it or contains it (or the other
// way around) after lowercasing and trimming. Both output lists preserve the
// job skills' original casing and order. The percentage is matched over total
// job skills. Either list empty short-circuits to (0, [], []).
//
// Substring matching in both directions is intentionally loose: "java"
// matches "javascript". That is inherited scoring behavior, kept as is.
func MatchSkills(resumeSkills, jobSkills []string) (matchPercent float64, matched, missing []string) {
	matched = []string{}
	missing = []string{}
	if len(resumeSkills) == 0 || len(jobSkills) == 0 {
		return 0.0, matched, missing
	}

	normalized := make([]string, len(resumeSkills))
	for i, s := range resumeSkills {
		normalized[i] = strings.ToLower(strings.TrimSpace(s))
	}

	for _, jobSkill := range jobSkills {
		jn := strings.ToLower(strings.TrimSpace(jobSkill))
		found := false
		for _, rn := range normalized {
			if jn == rn || strings.Contains(rn, jn) || strings.Contains(jn, rn) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, jobSkill)
		} else {
			missing = append(missing, jobSkill)
		}
	}

	matchPercent = float64(len(matched)) / float64(len(jobSkills)) * 100
	return matchPercent, matched, missing
}
