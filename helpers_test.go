package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractResumeTextPlain(t *testing.T) {
	text, err := ExtractResumeText("text/plain", []byte("plain resume body"))
	require.NoError(t, err)
	assert.Equal(t, "plain resume body", text)
}

func TestExtractResumeTextUnsupportedMime(t *testing.T) {
	_, err := ExtractResumeText("image/png", []byte{0x89, 0x50})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestExtractResumeTextCorruptPDF(t *testing.T) {
	_, err := ExtractResumeText("application/pdf", []byte("not a pdf"))
	assert.Error(t, err)
}

func TestExtractResumeTextCorruptDocx(t *testing.T) {
	mime := "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	_, err := ExtractResumeText(mime, []byte("not a zip archive"))
	assert.Error(t, err)
}
