// Package viewmodel maps raw profile records onto the view models rendered
// by the public site. Optional and legacy fields collapse through an explicit
// fallback chain (record field, secondary field, hard-coded literal) in one
// place, so render code never touches a missing value. Mapping a nil record
// yields the complete default view, which is also what public endpoints serve
// when a read fails.
package viewmodel

import "github.com/ilyamorozov/portfolio-cms/internal/model"

// Literal defaults for the hero and about sections. They mirror the copy the
// site shipped with before any profile row existed.
const (
	defaultHeroTitle       = "Hi, I'm a Developer"
	defaultHeroSubtitle    = "Full Stack Web Developer"
	defaultHeroDescription = "I create amazing digital experiences with modern technologies."
	defaultAboutName       = "Full Stack Developer"
	defaultAboutTitle      = "Web Developer"
	defaultAboutBio        = "Passionate developer with expertise in modern web technologies, creating innovative solutions that make a difference."
	defaultFooterBio       = "Passionate web developer creating amazing digital experiences with modern technologies."
	defaultSiteName        = "DevPortfolio"
	defaultAvatarInitial   = "D"
	defaultImageAlt        = "Profile Image"
)

// HeroView is everything the hero section renders. Optional links are empty
// strings when absent; AvatarInitial is the placeholder shown when no image
// is available.
type HeroView struct {
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	Description   string `json:"description"`
	AvatarURL     string `json:"avatar_url"`
	AvatarAlt     string `json:"avatar_alt"`
	AvatarInitial string `json:"avatar_initial"`
	ResumeURL     string `json:"resume_url"`
	GithubURL     string `json:"github_url"`
	LinkedinURL   string `json:"linkedin_url"`
	Email         string `json:"email"`
}

// AboutView is everything the about section renders.
type AboutView struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url"`
	ImageAlt string `json:"image_alt"`
}

// FooterView carries the footer's identity and contact lines.
type FooterView struct {
	SiteName    string `json:"site_name"`
	Bio         string `json:"bio"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	GithubURL   string `json:"github_url"`
	LinkedinURL string `json:"linkedin_url"`
	TwitterURL  string `json:"twitter_url"`
}

// HeroViewFrom materializes the hero fallback chain once. Accepts nil.
func HeroViewFrom(p *model.Profile) HeroView {
	v := HeroView{
		Title:         defaultHeroTitle,
		Subtitle:      defaultHeroSubtitle,
		Description:   defaultHeroDescription,
		AvatarInitial: defaultAvatarInitial,
	}
	if p == nil {
		return v
	}
	v.Title = firstOf(deref(p.HeroTitle), defaultHeroTitle)
	v.Subtitle = firstOf(deref(p.HeroSubtitle), p.Title, defaultHeroSubtitle)
	v.Description = firstOf(deref(p.HeroDescription), p.Bio, defaultHeroDescription)
	if p.HeroImage != nil && p.HeroImage.URL != "" {
		v.AvatarURL = p.HeroImage.URL
		v.AvatarAlt = firstOf(deref(p.HeroImage.AltText), p.FullName)
	} else if deref(p.AvatarURL) != "" {
		v.AvatarURL = deref(p.AvatarURL)
		v.AvatarAlt = p.FullName
	}
	if p.FullName != "" {
		v.AvatarInitial = string([]rune(p.FullName)[0])
	}
	v.ResumeURL = deref(p.ResumeURL)
	v.GithubURL = deref(p.GithubURL)
	v.LinkedinURL = deref(p.LinkedinURL)
	v.Email = p.Email
	return v
}

// AboutViewFrom materializes the about fallback chain once. Accepts nil.
func AboutViewFrom(p *model.Profile) AboutView {
	v := AboutView{
		Name:     defaultAboutName,
		Title:    defaultAboutTitle,
		Bio:      defaultAboutBio,
		ImageAlt: defaultImageAlt,
	}
	if p == nil {
		return v
	}
	v.Name = firstOf(p.FullName, defaultAboutName)
	v.Title = firstOf(p.Title, defaultAboutTitle)
	v.Bio = firstOf(p.Bio, deref(p.HeroDescription), defaultAboutBio)
	if p.AboutImage != nil && p.AboutImage.URL != "" {
		v.ImageURL = p.AboutImage.URL
		v.ImageAlt = firstOf(deref(p.AboutImage.AltText), p.FullName, defaultImageAlt)
	} else if deref(p.AvatarURL) != "" {
		v.ImageURL = deref(p.AvatarURL)
		v.ImageAlt = firstOf(p.FullName, defaultImageAlt)
	}
	return v
}

// ContactInfoView carries the contact section's reach-me lines. Unlike the
// hero and about views it has no literal defaults: the section hides any line
// whose value is empty.
type ContactInfoView struct {
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	GithubURL   string `json:"github_url"`
	LinkedinURL string `json:"linkedin_url"`
	TwitterURL  string `json:"twitter_url"`
}

// ContactInfoFrom maps the profile's contact fields onto the view. Accepts nil.
func ContactInfoFrom(p *model.Profile) ContactInfoView {
	if p == nil {
		return ContactInfoView{}
	}
	return ContactInfoView{
		Email:       p.Email,
		Phone:       deref(p.Phone),
		Location:    deref(p.Location),
		GithubURL:   deref(p.GithubURL),
		LinkedinURL: deref(p.LinkedinURL),
		TwitterURL:  deref(p.TwitterURL),
	}
}

// FooterViewFrom materializes the footer fallback chain once. Accepts nil.
func FooterViewFrom(p *model.Profile) FooterView {
	v := FooterView{
		SiteName: defaultSiteName,
		Bio:      defaultFooterBio,
	}
	if p == nil {
		return v
	}
	v.SiteName = firstOf(p.FullName, defaultSiteName)
	v.Bio = firstOf(p.Bio, defaultFooterBio)
	v.Email = p.Email
	v.Phone = deref(p.Phone)
	v.Location = deref(p.Location)
	v.GithubURL = deref(p.GithubURL)
	v.LinkedinURL = deref(p.LinkedinURL)
	v.TwitterURL = deref(p.TwitterURL)
	return v
}

// DefaultHeroView is the complete hard-coded hero record served on read
// failure so rendering never special-cases "no data".
func DefaultHeroView() HeroView { return HeroViewFrom(nil) }

// DefaultAboutView is the defaulted about record served on read failure.
func DefaultAboutView() AboutView { return AboutViewFrom(nil) }

// DefaultFooterView is the defaulted footer record served on read failure.
func DefaultFooterView() FooterView { return FooterViewFrom(nil) }

// DefaultContactInfoView is the empty contact record served on read failure.
func DefaultContactInfoView() ContactInfoView { return ContactInfoFrom(nil) }

// firstOf returns the first non-empty value in the chain.
func firstOf(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
