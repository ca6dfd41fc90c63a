package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchSkills(t *testing.T) {
	tests := []struct {
		name         string
		resumeSkills []string
		jobSkills    []string
		wantPercent  float64
		wantMatched  []string
		wantMissing  []string
	}{
		{
			name:         "exact matches ignore case and padding",
			resumeSkills: []string{" python ", "REACT"},
			jobSkills:    []string{"Python", "React"},
			wantPercent:  100,
			wantMatched:  []string{"Python", "React"},
			wantMissing:  []string{},
		},
		{
			name:         "partial overlap",
			resumeSkills: []string{"python"},
			jobSkills:    []string{"Python", "Kubernetes"},
			wantPercent:  50,
			wantMatched:  []string{"Python"},
			wantMissing:  []string{"Kubernetes"},
		},
		{
			name: "substring matches both directions",
			// Known loose heuristic: "java" and "javascript" match each other.
			resumeSkills: []string{"javascript"},
			jobSkills:    []string{"Java", "Script"},
			wantPercent:  100,
			wantMatched:  []string{"Java", "Script"},
			wantMissing:  []string{},
		},
		{
			name:         "resume skill contained in job skill",
			resumeSkills: []string{"sql"},
			jobSkills:    []string{"PostgreSQL"},
			wantPercent:  100,
			wantMatched:  []string{"PostgreSQL"},
			wantMissing:  []string{},
		},
		{
			name:         "no overlap",
			resumeSkills: []string{"php"},
			jobSkills:    []string{"Rust", "Haskell"},
			wantPercent:  0,
			wantMatched:  []string{},
			wantMissing:  []string{"Rust", "Haskell"},
		},
		{
			name:         "empty job skills short-circuits",
			resumeSkills: []string{"python"},
			jobSkills:    nil,
			wantPercent:  0,
			wantMatched:  []string{},
			wantMissing:  []string{},
		},
		{
			name:         "empty resume skills short-circuits",
			resumeSkills: nil,
			jobSkills:    []string{"Python"},
			wantPercent:  0,
			wantMatched:  []string{},
			wantMissing:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			percent, matched, missing := MatchSkills(tt.resumeSkills, tt.jobSkills)
			assert.InDelta(t, tt.wantPercent, percent, 1e-9)
			assert.Equal(t, tt.wantMatched, matched)
			assert.Equal(t, tt.wantMissing, missing)
		})
	}
}

func TestMatchSkillsPartitionsJobSkills(t *testing.T) {
	jobSkills := []string{"Python", "Rust", "React", "Terraform"}
	_, matched, missing := MatchSkills([]string{"python", "react"}, jobSkills)

	// matched + missing reconstruct jobSkills in original order and casing.
	assert.Equal(t, len(jobSkills), len(matched)+len(missing))
	assert.Equal(t, []string{"Python", "React"}, matched)
	assert.Equal(t, []string{"Rust", "Terraform"}, missing)
}
