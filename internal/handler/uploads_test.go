package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUploadPath_SanitizesFilename(t *testing.T) {
	p := uploadPath("", "My Résumé (final).PDF")
	// Lowercased, disallowed runes replaced, original extension kept.
	assert.True(t, strings.HasSuffix(p, ".pdf"), p)
	assert.NotContains(t, p, " ")
	assert.NotContains(t, p, "(")
}

func TestUploadPath_FolderPrefix(t *testing.T) {
	p := uploadPath("hero", "a.png")
	assert.True(t, strings.HasPrefix(p, "hero/"), p)

	// Stray slashes around the folder are trimmed.
	p = uploadPath("/projects/", "a.png")
	assert.True(t, strings.HasPrefix(p, "projects/"), p)
	assert.False(t, strings.HasPrefix(p, "/"), p)
}

func TestUploadPath_Unique(t *testing.T) {
	assert.NotEqual(t, uploadPath("", "a.png"), uploadPath("", "a.png"))
}
