package analyzer

import (
	"log"
	"strings"
	"unicode/utf8"
)

// maxSkills caps the extracted skill set.
const maxSkills = 25

// Entity labels accepted as skill candidates.
var skillEntityLabels = map[string]bool{
	"ORG":     true,
	"PRODUCT": true,
}

// ExtractSkills scans the cleaned text for catalog skills and augments the
// result with organization/product entities from the recognizer. Skills are
// recorded lowercased, deduplicated case-insensitively, in discovery order,
// capped at maxSkills. Recognizer failures are logged and ignored: they only
// reduce recall, never abort extraction.
func (a *Analyzer) ExtractSkills(text string) []string {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	var found []string
	add := func(skill string) {
		if skill == "" || seen[skill] {
			return
		}
		seen[skill] = true
		found = append(found, skill)
	}

	for _, skill := range technicalSkills {
		if strings.Contains(lower, skill) {
			add(skill)
		}
	}
	for _, skill := range softSkills {
		if strings.Contains(lower, skill) {
			add(skill)
		}
	}

	// Entity recognition runs over the original-case text: casing carries
	// most of the signal for names of products and organizations.
	ents, err := a.recognizer.Entities(text)
	if err != nil {
		log.Printf("entity recognition failed, keeping vocabulary matches only: %v", err)
	} else {
		for _, ent := range ents {
			if !skillEntityLabels[ent.Label] {
				continue
			}
			n := utf8.RuneCountInString(ent.Text)
			if n <= 2 || n >= 20 {
				continue
			}
			add(strings.TrimSpace(strings.ToLower(ent.Text)))
		}
	}

	if len(found) > maxSkills {
		found = found[:maxSkills]
	}
	return found
}
