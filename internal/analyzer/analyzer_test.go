package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseText(t *testing.T) {
	a := New(NoopRecognizer{})

	parsed, err := a.ParseText("Senior Python developer, 5+ years of experience. " +
		"Bachelor's degree in Computer Science from MIT.")
	require.NoError(t, err)

	assert.Contains(t, parsed.Skills, "python")
	assert.Equal(t, "5+ years", parsed.Experience)
	require.NotEmpty(t, parsed.Education)
	assert.True(t, strings.HasPrefix(parsed.Education[0], "Computer Science"))
	assert.Greater(t, parsed.TextLength, 0)
}

func TestParseTextEmptyInput(t *testing.T) {
	a := New(NoopRecognizer{})

	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := a.ParseText(input)
		assert.ErrorIs(t, err, ErrEmptyText)
	}
}

func TestComputeMatchMissingText(t *testing.T) {
	a := New(NoopRecognizer{})

	_, err := a.ComputeMatch("", "job text", nil, nil)
	assert.ErrorIs(t, err, ErrMissingText)

	_, err = a.ComputeMatch("resume text", "   ", nil, nil)
	assert.ErrorIs(t, err, ErrMissingText)
}

func TestComputeMatchEndToEnd(t *testing.T) {
	a := New(NoopRecognizer{})

	result, err := a.ComputeMatch(
		"Python developer with React experience",
		"Looking for Python and React developer",
		[]string{"Python", "React"},
		nil, // resume skills derived from text
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"Python", "React"}, result.MatchedSkills)
	assert.Empty(t, result.MissingSkills)
	assert.InDelta(t, 100.0, result.SkillMatch, 1e-9)
	assert.Greater(t, result.OverallScore, 0)
	assert.Equal(t, result.OverallScore, result.ATSScore)

	// Fewer than 3 matched skills fired rule 4, so the fallback must not appear.
	assert.Contains(t, result.Suggestions,
		"Highlight more technical skills that align with the job requirements")
	assert.NotContains(t, result.Suggestions,
		"Great match! Consider emphasizing your relevant experience and achievements")
}

func TestComputeMatchEmptyJobSkills(t *testing.T) {
	a := New(NoopRecognizer{})

	result, err := a.ComputeMatch(
		"Python developer with React experience",
		"Looking for Python and React developer",
		nil,
		[]string{"python", "react"},
	)
	require.NoError(t, err)

	assert.Zero(t, result.SkillMatch)
	assert.Empty(t, result.MatchedSkills)
	assert.Empty(t, result.MissingSkills)
}

func TestComputeMatchScoreClamped(t *testing.T) {
	a := New(NoopRecognizer{})

	// Identical texts and full skill overlap push the weighted sum to its
	// ceiling; the score must stay within [0, 100].
	text := "python react aws docker kubernetes engineer"
	skills := []string{"python", "react", "aws", "docker", "kubernetes"}

	result, err := a.ComputeMatch(text, text, skills, skills)
	require.NoError(t, err)

	assert.Equal(t, 100, result.OverallScore)
	assert.Equal(t, 100, result.ATSScore)
}

func TestComputeMatchScoreRange(t *testing.T) {
	a := New(NoopRecognizer{})

	cases := []struct {
		resume, job string
		jobSkills   []string
	}{
		{"python developer", "rust position", []string{"Rust"}},
		{"backend engineer", "backend engineer", nil},
		{"short", "another text entirely", []string{"X", "Y", "Z"}},
	}
	for _, c := range cases {
		result, err := a.ComputeMatch(c.resume, c.job, c.jobSkills, nil)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.OverallScore, 0)
		assert.LessOrEqual(t, result.OverallScore, 100)
	}
}

func TestBuildSuggestions(t *testing.T) {
	tests := []struct {
		name    string
		missing []string
		matched []string
		score   int
		want    []string
	}{
		{
			name:    "few missing skills named individually",
			missing: []string{"Rust", "Terraform"},
			matched: []string{"Python", "React", "AWS"},
			score:   80,
			want:    []string{"Consider gaining experience in: Rust, Terraform"},
		},
		{
			name:    "many missing skills summarized",
			missing: []string{"A1", "B2", "C3", "D4", "E5"},
			matched: []string{"Python", "React", "AWS"},
			score:   75,
			want:    []string{"Focus on developing skills in: A1, B2, C3 and 2 others"},
		},
		{
			name:    "low score adds keyword and achievement advice",
			missing: nil,
			matched: []string{"Python", "React", "AWS"},
			score:   60,
			want: []string{
				"Enhance your resume with more relevant keywords from the job description",
				"Add quantifiable achievements and specific project examples",
			},
		},
		{
			name:    "very low score stacks domain and certification advice",
			missing: nil,
			matched: []string{"Python", "React", "AWS"},
			score:   40,
			want: []string{
				"Enhance your resume with more relevant keywords from the job description",
				"Add quantifiable achievements and specific project examples",
				"Consider gaining more experience in the required domain",
				"Add relevant certifications to strengthen your profile",
			},
		},
		{
			name:    "few matched skills",
			missing: nil,
			matched: []string{"Python"},
			score:   85,
			want:    []string{"Highlight more technical skills that align with the job requirements"},
		},
		{
			name:    "great match fallback",
			missing: nil,
			matched: []string{"Python", "React", "AWS"},
			score:   90,
			want:    []string{"Great match! Consider emphasizing your relevant experience and achievements"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildSuggestions(tt.missing, tt.matched, tt.score))
		})
	}
}
