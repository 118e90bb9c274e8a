// Public site handlers. Every read endpoint here follows the same policy:
// fetch, and on failure log and serve a complete default payload with HTTP
// 200. Visitors never see a read error. The one write, the contact form, is
// validated before any database work.
package handler

import (
	"context"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ilyamorozov/portfolio-cms/internal/derive"
	"github.com/ilyamorozov/portfolio-cms/internal/model"
	"github.com/ilyamorozov/portfolio-cms/internal/queue"
	"github.com/ilyamorozov/portfolio-cms/internal/repository"
	queue_publisher "github.com/ilyamorozov/portfolio-cms/internal/service"
	"github.com/ilyamorozov/portfolio-cms/internal/utils"
	"github.com/ilyamorozov/portfolio-cms/internal/viewmodel"
)

// Contact form limits enforced before any network or database call.
const (
	minContactNameLen    = 2
	minContactMessageLen = 10
	techFilterLimit      = 6
)

// SiteHandler aggregates repositories for the unauthenticated site surface.
type SiteHandler struct {
	ProfileRepo *repository.ProfileRepo
	SkillRepo   *repository.SkillRepo
	ProjectRepo *repository.ProjectRepo
	ImageRepo   *repository.ImageRepo
	ContactRepo *repository.ContactRepo
	// PublishEvents gates the best-effort notification publish; disabled in
	// tests and when no broker is configured.
	PublishEvents bool
}

// GetHero returns the hero section view model.
func (h *SiteHandler) GetHero(c echo.Context) error {
	p, err := h.ProfileRepo.Get(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("site: load profile: %v", err)
		return c.JSON(http.StatusOK, viewmodel.DefaultHeroView())
	}
	return c.JSON(http.StatusOK, viewmodel.HeroViewFrom(p))
}

// GetAbout returns the about section view model.
func (h *SiteHandler) GetAbout(c echo.Context) error {
	p, err := h.ProfileRepo.Get(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("site: load profile: %v", err)
		return c.JSON(http.StatusOK, viewmodel.DefaultAboutView())
	}
	return c.JSON(http.StatusOK, viewmodel.AboutViewFrom(p))
}

// GetFooter returns the footer view model.
func (h *SiteHandler) GetFooter(c echo.Context) error {
	p, err := h.ProfileRepo.Get(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("site: load profile: %v", err)
		return c.JSON(http.StatusOK, viewmodel.DefaultFooterView())
	}
	return c.JSON(http.StatusOK, viewmodel.FooterViewFrom(p))
}

// GetContactInfo returns the contact section's reach-me lines.
func (h *SiteHandler) GetContactInfo(c echo.Context) error {
	p, err := h.ProfileRepo.Get(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("site: load profile: %v", err)
		return c.JSON(http.StatusOK, viewmodel.DefaultContactInfoView())
	}
	return c.JSON(http.StatusOK, viewmodel.ContactInfoFrom(p))
}

// GetSkills returns skills grouped by category plus the section's summary
// numbers. A failed read degrades to an empty grid.
func (h *SiteHandler) GetSkills(c echo.Context) error {
	skills, err := h.SkillRepo.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("site: load skills: %v", err)
		skills = nil
	}
	groups := derive.GroupSkillsByCategory(skills)
	stats := derive.DashboardStats(nil, skills, nil)
	return c.JSON(http.StatusOK, echo.Map{
		"groups":          groups,
		"total":           len(skills),
		"categories":      len(groups),
		"avg_skill_level": stats.AvgSkillLevel,
	})
}

// GetProjects returns published projects, optionally narrowed by the
// ?filter= query: "featured" keeps featured projects, anything else matches
// the tech stack case-insensitively. The tech filter bar options ride along.
func (h *SiteHandler) GetProjects(c echo.Context) error {
	projects, err := h.ProjectRepo.List(c.Request().Context(), false)
	if err != nil {
		c.Logger().Errorf("site: load projects: %v", err)
		projects = nil
	}
	filters := derive.TechFilters(projects, techFilterLimit)

	filtered := projects
	switch f := strings.TrimSpace(c.QueryParam("filter")); {
	case f == "" || strings.EqualFold(f, "all"):
	case strings.EqualFold(f, "featured"):
		filtered = derive.FilterFeatured(projects)
	default:
		filtered = derive.FilterProjectsByTech(projects, f)
	}
	if filtered == nil {
		filtered = []*model.Project{}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": filtered, "tech_filters": filters})
}

// GetImages returns active images, optionally restricted to one section.
func (h *SiteHandler) GetImages(c echo.Context) error {
	images, err := h.ImageRepo.List(c.Request().Context(), strings.TrimSpace(c.QueryParam("section")))
	if err != nil {
		c.Logger().Errorf("site: load images: %v", err)
		images = nil
	}
	out := make([]*model.Image, 0, len(images))
	for _, img := range images {
		if img.IsActive {
			out = append(out, img)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContact handles the public contact form. Validation happens before
// any write; a well-formed submission creates exactly one unread message,
// stamped with the caller's IP and user agent.
func (h *SiteHandler) SubmitContact(c echo.Context) error {
	var req contactReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	if len([]rune(req.Name)) < minContactNameLen {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name must be at least 2 characters"})
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "valid email is required"})
	}
	if len([]rune(req.Message)) < minContactMessageLen {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "message must be at least 10 characters"})
	}

	m := &model.Contact{
		Name:    req.Name,
		Email:   strings.ToLower(req.Email),
		Message: req.Message,
	}
	if req.Subject != "" {
		m.Subject = &req.Subject
	}
	if ip := clientIP(c); ip != "" {
		m.IPAddress = &ip
	}
	if ua := c.Request().UserAgent(); ua != "" {
		m.UserAgent = &ua
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	created, err := h.ContactRepo.Create(ctx, m)
	if err != nil {
		c.Logger().Errorf("contact: create: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not send message"})
	}

	if h.PublishEvents {
		// Notification fan-out is best effort; a broker outage never fails
		// the submission.
		evt := queue.ContactReceivedEvent{
			ContactID:  created.ID,
			Name:       created.Name,
			Email:      created.Email,
			Message:    created.Message,
			ReceivedAt: created.CreatedAt.UTC().Format(time.RFC3339),
		}
		if created.Subject != nil {
			evt.Subject = *created.Subject
		}
		if err := queue_publisher.PublishContactReceived(ctx, evt); err != nil {
			c.Logger().Warnf("contact: publish event: %v", err)
		}
	}

	return c.JSON(http.StatusCreated, created)
}

// clientIP resolves the submitter's address: the request's real IP when
// present, else one tolerant call to the public IP echo service. Failure
// leaves the field empty (stored as null).
func clientIP(c echo.Context) string {
	if ip := c.RealIP(); ip != "" {
		return ip
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()
	ip, err := utils.LookupPublicIP(ctx)
	if err != nil {
		c.Logger().Warnf("contact: ip lookup: %v", err)
		return ""
	}
	return ip
}
