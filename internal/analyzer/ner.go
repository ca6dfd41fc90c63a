package analyzer

import (
	"sync"

	prose "github.com/jdkato/prose/v2"
)

// Entity is a labeled span produced by a named-entity recognizer.
type Entity struct {
	Text  string
	Label string
}

// Recognizer labels spans of text with semantic categories. It is an
// enrichment source only: extraction must keep working when no recognizer
// is available or when recognition fails.
type Recognizer interface {
	Entities(text string) ([]Entity, error)
}

// NoopRecognizer is the fallback used when the NER model is unavailable
// (and in tests). It never returns entities.
type NoopRecognizer struct{}

func (NoopRecognizer) Entities(string) ([]Entity, error) { return nil, nil }

// proseRecognizer wraps the prose NLP pipeline. The underlying model data is
// compiled into the package, so it is loaded once per process and is safe for
// concurrent reads.
type proseRecognizer struct{}

func (proseRecognizer) Entities(text string) ([]Entity, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, err
	}
	ents := doc.Entities()
	out := make([]Entity, 0, len(ents))
	for _, e := range ents {
		out = append(out, Entity{Text: e.Text, Label: e.Label})
	}
	return out, nil
}

var (
	recognizerOnce    sync.Once
	defaultRecognizer Recognizer
)

// LoadRecognizer returns the process-wide recognizer, initializing it on
// first use. Callers that need determinism (tests) should construct an
// Analyzer with an explicit Recognizer instead.
func LoadRecognizer() Recognizer {
	recognizerOnce.Do(func() {
		defaultRecognizer = proseRecognizer{}
	})
	return defaultRecognizer
}
