// Package analyzer scores how well a resume matches a job description.
//
// The pipeline is deterministic and rule-based: a fixed skill catalog plus
// regex extraction for experience and education, TF-IDF cosine similarity
// between the two texts, and substring-based skill matching, combined into a
// weighted 0-100 score with generated improvement suggestions. Every call is
// a pure function of its inputs; the only shared state is the read-only
// entity-recognition model.
package analyzer

import (
	"errors"
	"math"
	"strings"
	"sync"
	"unicode/utf8"
)

var (
	// ErrEmptyText rejects parse requests with no usable text.
	ErrEmptyText = errors.New("empty input text")
	// ErrMissingText rejects match requests missing the resume or job text.
	ErrMissingText = errors.New("missing resume or job description text")
)

// Score weights: skill overlap dominates raw text similarity.
const (
	textWeight  = 0.4
	skillWeight = 0.6
)

// Analyzer runs the scoring pipeline. Safe for concurrent use.
type Analyzer struct {
	recognizer Recognizer
}

// New builds an Analyzer around the given entity recognizer. A nil
// recognizer disables enrichment (vocabulary-only skill extraction).
func New(rec Recognizer) *Analyzer {
	if rec == nil {
		rec = NoopRecognizer{}
	}
	return &Analyzer{recognizer: rec}
}

// ParseResult is the structured outcome of parsing one text.
type ParseResult struct {
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Education  []string `json:"education"`
	TextLength int      `json:"text_length"`
}

// MatchResult is the outcome of scoring a resume against a job description.
type MatchResult struct {
	OverallScore   int      `json:"match_score"`
	ATSScore       int      `json:"ats_score"`
	MatchedSkills  []string `json:"matched_skills"`
	MissingSkills  []string `json:"missing_skills"`
	Suggestions    []string `json:"suggestions"`
	TextSimilarity float64  `json:"text_similarity"`
	SkillMatch     float64  `json:"skill_match_percentage"`
}

// ParseText cleans the raw text and extracts skills, experience and
// education from it. Empty or whitespace-only input returns ErrEmptyText.
func (a *Analyzer) ParseText(rawText string) (*ParseResult, error) {
	cleaned := CleanText(rawText)
	if cleaned == "" {
		return nil, ErrEmptyText
	}
	return &ParseResult{
		Skills:     a.ExtractSkills(cleaned),
		Experience: ExtractExperience(cleaned),
		Education:  ExtractEducation(cleaned),
		TextLength: utf8.RuneCountInString(cleaned),
	}, nil
}

// ComputeMatch scores resumeText against jobText. When resumeSkills is
// empty the skills are derived from the resume text. Text similarity and
// skill matching are independent and run concurrently; both feed the
// weighted overall score. Empty required text returns ErrMissingText.
func (a *Analyzer) ComputeMatch(resumeText, jobText string, jobSkills, resumeSkills []string) (*MatchResult, error) {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobText) == "" {
		return nil, ErrMissingText
	}

	if len(resumeSkills) == 0 {
		if parsed, err := a.ParseText(resumeText); err == nil {
			resumeSkills = parsed.Skills
		}
	}

	var (
		wg         sync.WaitGroup
		similarity float64
		skillPct   float64
		matched    []string
		missing    []string
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		similarity = TextSimilarity(resumeText, jobText)
	}()
	go func() {
		defer wg.Done()
		skillPct, matched, missing = MatchSkills(resumeSkills, jobSkills)
	}()
	wg.Wait()

	weighted := similarity*textWeight*100 + skillPct*skillWeight
	overall := int(math.Min(100, math.Max(0, weighted)))

	return &MatchResult{
		OverallScore:   overall,
		ATSScore:       overall, // placeholder until a dedicated ATS heuristic exists
		MatchedSkills:  matched,
		MissingSkills:  missing,
		Suggestions:    buildSuggestions(missing, matched, overall),
		TextSimilarity: round2(similarity * 100),
		SkillMatch:     round2(skillPct),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
