package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ilyamorozov/portfolio-cms/internal/model"
)

type projectReq struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"short_description"`
	ImageURL         string   `json:"image_url"`
	DemoURL          string   `json:"demo_url"`
	RepoURL          string   `json:"repo_url"`
	TechStack        []string `json:"tech_stack"`
	Status           string   `json:"status"`
	IsFeatured       bool     `json:"is_featured"`
	SortOrder        int      `json:"sort_order"`
}

func (r *projectReq) toModel() (*model.Project, string) {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return nil, "title is required"
	}
	status := strings.TrimSpace(r.Status)
	if status == "" {
		status = model.ProjectStatusDraft
	}
	if status != model.ProjectStatusPublished && status != model.ProjectStatusDraft {
		return nil, "status must be published or draft"
	}
	stack := make([]string, 0, len(r.TechStack))
	for _, t := range r.TechStack {
		if t = strings.TrimSpace(t); t != "" {
			stack = append(stack, t)
		}
	}
	p := &model.Project{
		Title:            title,
		Description:      strings.TrimSpace(r.Description),
		ShortDescription: strings.TrimSpace(r.ShortDescription),
		TechStack:        stack,
		Status:           status,
		IsFeatured:       r.IsFeatured,
		SortOrder:        r.SortOrder,
	}
	p.ImageURL = optional(r.ImageURL)
	p.DemoURL = optional(r.DemoURL)
	p.RepoURL = optional(r.RepoURL)
	return p, ""
}

// ListProjects handles GET /v1/admin/projects. Drafts are included; the
// public listing filters them out, the admin one never does.
func (h *AdminHandler) ListProjects(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.ProjectRepo.List(ctx, true)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetProject handles GET /v1/admin/projects/:id.
func (h *AdminHandler) GetProject(c echo.Context) error {
	id, err := pathParamID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.ProjectRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "project not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, p)
}

// CreateProject handles POST /v1/admin/projects.
func (h *AdminHandler) CreateProject(c echo.Context) error {
	var req projectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	p, msg := req.toModel()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	created, err := h.ProjectRepo.Create(ctx, p)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create project"})
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateProject handles PUT /v1/admin/projects/:id. A replaced screenshot
// that lived in our storage is removed best-effort once the row is saved.
func (h *AdminHandler) UpdateProject(c echo.Context) error {
	id, err := pathParamID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req projectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	p, msg := req.toModel()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	prev, err := h.ProjectRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "project not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	updated, err := h.ProjectRepo.Update(ctx, id, p)
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "project not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}

	if prev.ImageURL != nil && (updated.ImageURL == nil || *updated.ImageURL != *prev.ImageURL) {
		h.cleanupStoredFile(c, h.imageBucketName(), *prev.ImageURL)
	}
	return c.JSON(http.StatusOK, updated)
}

type projectStatusReq struct {
	Status string `json:"status"`
}

// SetProjectStatus handles PATCH /v1/admin/projects/:id/status, moving a
// project between published and draft.
func (h *AdminHandler) SetProjectStatus(c echo.Context) error {
	id, err := pathParamID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req projectStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	status := strings.TrimSpace(req.Status)
	if status != model.ProjectStatusPublished && status != model.ProjectStatusDraft {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be published or draft"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	updated, err := h.ProjectRepo.SetStatus(ctx, id, status)
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "project not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteProject handles DELETE /v1/admin/projects/:id. The stored screenshot
// is removed from storage best-effort after the row is gone.
func (h *AdminHandler) DeleteProject(c echo.Context) error {
	id, err := pathParamID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.ProjectRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "project not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if err := h.ProjectRepo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "project not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	if p.ImageURL != nil {
		h.cleanupStoredFile(c, h.imageBucketName(), *p.ImageURL)
	}
	return c.NoContent(http.StatusNoContent)
}
