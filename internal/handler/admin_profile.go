package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ilyamorozov/portfolio-cms/internal/repository"
)

type profileReq struct {
	FullName        string `json:"full_name"`
	Title           string `json:"title"`
	Bio             string `json:"bio"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Location        string `json:"location"`
	AvatarURL       string `json:"avatar_url"`
	LinkedinURL     string `json:"linkedin_url"`
	GithubURL       string `json:"github_url"`
	TwitterURL      string `json:"twitter_url"`
	WebsiteURL      string `json:"website_url"`
	ResumeURL       string `json:"resume_url"`
	HeroTitle       string `json:"hero_title"`
	HeroSubtitle    string `json:"hero_subtitle"`
	HeroDescription string `json:"hero_description"`
}

// GetProfile handles GET /v1/admin/profile. The admin sees the raw record
// (or null when none exists), not the defaulted public view.
func (h *AdminHandler) GetProfile(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.ProfileRepo.Get(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"profile": p})
}

// UpdateProfile handles PUT /v1/admin/profile. Creates the profile when none
// exists yet, so the first save from a fresh database succeeds.
func (h *AdminHandler) UpdateProfile(c echo.Context) error {
	var req profileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.FullName) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "full_name is required"})
	}

	draft := repository.ProfileDraft{
		FullName:        strings.TrimSpace(req.FullName),
		Title:           strings.TrimSpace(req.Title),
		Bio:             strings.TrimSpace(req.Bio),
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:           optional(req.Phone),
		Location:        optional(req.Location),
		AvatarURL:       optional(req.AvatarURL),
		LinkedinURL:     optional(req.LinkedinURL),
		GithubURL:       optional(req.GithubURL),
		TwitterURL:      optional(req.TwitterURL),
		WebsiteURL:      optional(req.WebsiteURL),
		ResumeURL:       optional(req.ResumeURL),
		HeroTitle:       optional(req.HeroTitle),
		HeroSubtitle:    optional(req.HeroSubtitle),
		HeroDescription: optional(req.HeroDescription),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.ProfileRepo.Upsert(ctx, draft)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not save profile"})
	}
	return c.JSON(http.StatusOK, p)
}

// SetProfileImages handles PATCH /v1/admin/profile/images: attach or clear the
// hero/about image associations. A field absent from the body leaves that
// association untouched; an explicit null clears it. Requires an existing
// profile. The body binds into a map because a struct pointer cannot tell
// "absent" from "null".
func (h *AdminHandler) SetProfileImages(c echo.Context) error {
	var req map[string]*uint64
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.ProfileRepo.SetImages(ctx, imageRefFrom(req, "hero_image_id"), imageRefFrom(req, "about_image_id"))
	if err != nil {
		if errors.Is(err, repository.ErrNoProfile) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no profile found to update"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update profile images"})
	}
	return c.JSON(http.StatusOK, p)
}

func imageRefFrom(body map[string]*uint64, key string) repository.ImageRef {
	id, ok := body[key]
	return repository.ImageRef{ID: id, Set: ok}
}

// optional maps an empty trimmed string to nil so the column is stored as
// NULL rather than "".
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
