package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ilyamorozov/portfolio-cms/internal/model"
)

func strptr(s string) *string { return &s }

func TestHeroViewFrom_NilProfileYieldsDefaults(t *testing.T) {
	v := HeroViewFrom(nil)

	assert.Equal(t, "Hi, I'm a Developer", v.Title)
	assert.Equal(t, "Full Stack Web Developer", v.Subtitle)
	assert.Equal(t, "I create amazing digital experiences with modern technologies.", v.Description)
	assert.Equal(t, "D", v.AvatarInitial)
	assert.Empty(t, v.AvatarURL)
	assert.Empty(t, v.ResumeURL)

	// Read failures serve the same complete view.
	assert.Equal(t, v, DefaultHeroView())
}

func TestHeroViewFrom_FallbackChain(t *testing.T) {
	// No dedicated hero copy: subtitle falls back to the professional title,
	// description to the bio.
	p := &model.Profile{
		FullName: "Ada Lovelace",
		Title:    "Software Engineer",
		Bio:      "I write engines.",
		Email:    "ada@example.com",
	}
	v := HeroViewFrom(p)

	assert.Equal(t, "Hi, I'm a Developer", v.Title)
	assert.Equal(t, "Software Engineer", v.Subtitle)
	assert.Equal(t, "I write engines.", v.Description)
	assert.Equal(t, "A", v.AvatarInitial)
	assert.Equal(t, "ada@example.com", v.Email)

	// Dedicated hero copy wins over the fallbacks.
	p.HeroTitle = strptr("Hello there")
	p.HeroSubtitle = strptr("Engine Whisperer")
	p.HeroDescription = strptr("Engines, mostly.")
	v = HeroViewFrom(p)
	assert.Equal(t, "Hello there", v.Title)
	assert.Equal(t, "Engine Whisperer", v.Subtitle)
	assert.Equal(t, "Engines, mostly.", v.Description)
}

func TestHeroViewFrom_AvatarChain(t *testing.T) {
	p := &model.Profile{
		FullName:  "Ada Lovelace",
		AvatarURL: strptr("https://cdn.example.com/avatar.png"),
	}
	v := HeroViewFrom(p)
	assert.Equal(t, "https://cdn.example.com/avatar.png", v.AvatarURL)
	assert.Equal(t, "Ada Lovelace", v.AvatarAlt)

	// A resolved hero image takes precedence over the legacy avatar URL.
	p.HeroImage = &model.Image{
		URL:     "https://cdn.example.com/hero.png",
		AltText: strptr("Ada at her desk"),
	}
	v = HeroViewFrom(p)
	assert.Equal(t, "https://cdn.example.com/hero.png", v.AvatarURL)
	assert.Equal(t, "Ada at her desk", v.AvatarAlt)

	// An image row with an empty URL is treated as absent.
	p.HeroImage = &model.Image{URL: ""}
	v = HeroViewFrom(p)
	assert.Equal(t, "https://cdn.example.com/avatar.png", v.AvatarURL)
}

func TestAboutViewFrom(t *testing.T) {
	v := AboutViewFrom(nil)
	assert.Equal(t, "Full Stack Developer", v.Name)
	assert.Equal(t, "Web Developer", v.Title)
	assert.Equal(t, "Profile Image", v.ImageAlt)
	assert.Equal(t, v, DefaultAboutView())

	p := &model.Profile{
		FullName:        "Ada Lovelace",
		HeroDescription: strptr("Engines, mostly."),
	}
	got := AboutViewFrom(p)
	assert.Equal(t, "Ada Lovelace", got.Name)
	// Empty bio falls back to the hero description before the literal.
	assert.Equal(t, "Engines, mostly.", got.Bio)

	p.AboutImage = &model.Image{URL: "https://cdn.example.com/about.png"}
	got = AboutViewFrom(p)
	assert.Equal(t, "https://cdn.example.com/about.png", got.ImageURL)
	assert.Equal(t, "Ada Lovelace", got.ImageAlt)
}

func TestFooterViewFrom(t *testing.T) {
	v := FooterViewFrom(nil)
	assert.Equal(t, "DevPortfolio", v.SiteName)
	assert.Equal(t, "Passionate web developer creating amazing digital experiences with modern technologies.", v.Bio)
	assert.Equal(t, v, DefaultFooterView())

	p := &model.Profile{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Phone:    strptr("+1 555 0100"),
		Location: strptr("London"),
	}
	got := FooterViewFrom(p)
	assert.Equal(t, "Ada Lovelace", got.SiteName)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.Equal(t, "+1 555 0100", got.Phone)
	assert.Equal(t, "London", got.Location)
}

func TestContactInfoFrom(t *testing.T) {
	// The contact section hides empty lines, so nil maps to the zero view.
	assert.Equal(t, ContactInfoView{}, ContactInfoFrom(nil))
	assert.Equal(t, ContactInfoView{}, DefaultContactInfoView())

	p := &model.Profile{
		Email:       "ada@example.com",
		Phone:       strptr("+1 555 0100"),
		Location:    strptr("London"),
		GithubURL:   strptr("https://github.com/ada"),
		LinkedinURL: strptr("https://linkedin.com/in/ada"),
	}
	got := ContactInfoFrom(p)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.Equal(t, "+1 555 0100", got.Phone)
	assert.Equal(t, "London", got.Location)
	assert.Equal(t, "https://github.com/ada", got.GithubURL)
	assert.Equal(t, "https://linkedin.com/in/ada", got.LinkedinURL)
	assert.Empty(t, got.TwitterURL)
}
