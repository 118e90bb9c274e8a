package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	assert.Equal(t,
		"https://storage.googleapis.com/images/hero/a.png",
		PublicURL("https://storage.googleapis.com", "images", "hero/a.png"))

	// Stray slashes on either side collapse to a single separator.
	assert.Equal(t,
		"https://storage.googleapis.com/images/hero/a.png",
		PublicURL("https://storage.googleapis.com/", "images", "/hero/a.png"))
}

func TestPathFromURL(t *testing.T) {
	base := "https://storage.googleapis.com"

	path, ok := PathFromURL(base, "images", "https://storage.googleapis.com/images/hero/a.png")
	assert.True(t, ok)
	assert.Equal(t, "hero/a.png", path)

	// Round trip.
	url := PublicURL(base, "images", "projects/shot.webp")
	path, ok = PathFromURL(base, "images", url)
	assert.True(t, ok)
	assert.Equal(t, "projects/shot.webp", path)

	// Foreign hosts and other buckets are not ours to delete.
	_, ok = PathFromURL(base, "images", "https://cdn.example.com/images/hero/a.png")
	assert.False(t, ok)
	_, ok = PathFromURL(base, "images", "https://storage.googleapis.com/portfolio-files/resume.pdf")
	assert.False(t, ok)

	// A bare bucket prefix carries no object path.
	_, ok = PathFromURL(base, "images", "https://storage.googleapis.com/images/")
	assert.False(t, ok)
}
