package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", " \t\n  ", ""},
		{"collapses whitespace", "a  b\tc\nd", "a b c d"},
		{"strips punctuation", "hello, world! (really)", "hello world really"},
		{"keeps hyphen and period", "node.js scikit-learn", "node.js scikit-learn"},
		{"trims ends", "  padded  ", "padded"},
		{"punctuation runs collapse", "a!!b", "a b"},
		{"mixed", "Senior Engineer,\n5+ years @ Acme", "Senior Engineer 5 years Acme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}

func TestCleanTextIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"messy,, text!! with?? punctuation..",
		"c++ and c# develop3r \t tabs\nnewlines",
		"  already clean text  ",
	}
	for _, in := range inputs {
		once := CleanText(in)
		assert.Equal(t, once, CleanText(once), "cleaning must be idempotent for %q", in)
	}
}
