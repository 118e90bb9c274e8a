package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ilyamorozov/portfolio-cms/internal/model"
)

type skillReq struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Level      int    `json:"level"`
	IconURL    string `json:"icon_url"`
	Color      string `json:"color"`
	SortOrder  int    `json:"sort_order"`
	IsFeatured bool   `json:"is_featured"`
}

func (r *skillReq) toModel() (*model.Skill, string) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return nil, "name is required"
	}
	if r.Level < 0 || r.Level > 100 {
		return nil, "level must be between 0 and 100"
	}
	s := &model.Skill{
		Name:       name,
		Category:   strings.TrimSpace(r.Category),
		Level:      r.Level,
		Color:      strings.TrimSpace(r.Color),
		SortOrder:  r.SortOrder,
		IsFeatured: r.IsFeatured,
	}
	if s.Category == "" {
		s.Category = "Other"
	}
	if s.Color == "" {
		s.Color = "#3B82F6"
	}
	s.IconURL = optional(r.IconURL)
	return s, ""
}

// ListSkills handles GET /v1/admin/skills.
func (h *AdminHandler) ListSkills(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.SkillRepo.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CreateSkill handles POST /v1/admin/skills.
func (h *AdminHandler) CreateSkill(c echo.Context) error {
	var req skillReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	s, msg := req.toModel()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	created, err := h.SkillRepo.Create(ctx, s)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create skill"})
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateSkill handles PUT /v1/admin/skills/:id. When the update replaces a
// remote-stored icon, the superseded object is removed best-effort after the
// row is persisted.
func (h *AdminHandler) UpdateSkill(c echo.Context) error {
	id, err := pathParamID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req skillReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	s, msg := req.toModel()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	prev, err := h.SkillRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "skill not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	updated, err := h.SkillRepo.Update(ctx, id, s)
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "skill not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}

	if prev.IconURL != nil && (updated.IconURL == nil || *updated.IconURL != *prev.IconURL) {
		h.cleanupStoredFile(c, h.imageBucketName(), *prev.IconURL)
	}
	return c.JSON(http.StatusOK, updated)
}

// ToggleSkillFeatured handles PATCH /v1/admin/skills/:id/featured.
func (h *AdminHandler) ToggleSkillFeatured(c echo.Context) error {
	id, err := pathParamID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.SkillRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "skill not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if err := h.SkillRepo.SetFeatured(ctx, id, !s.IsFeatured); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	updated, err := h.SkillRepo.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteSkill handles DELETE /v1/admin/skills/:id. A remote-stored icon is
// removed from storage best-effort after the row is gone.
func (h *AdminHandler) DeleteSkill(c echo.Context) error {
	id, err := pathParamID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.SkillRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "skill not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if err := h.SkillRepo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "skill not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	if s.IconURL != nil {
		h.cleanupStoredFile(c, h.imageBucketName(), *s.IconURL)
	}
	return c.NoContent(http.StatusNoContent)
}

// ----- skill categories -----

type skillCategoryReq struct {
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

// ListSkillCategories handles GET /v1/admin/skill-categories (active only,
// which is all the select box needs).
func (h *AdminHandler) ListSkillCategories(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.SkillCategoryRepo.ListActive(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CreateSkillCategory handles POST /v1/admin/skill-categories.
func (h *AdminHandler) CreateSkillCategory(c echo.Context) error {
	var req skillCategoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	cat := &model.SkillCategory{Name: name, SortOrder: req.SortOrder, IsActive: true}
	if req.IsActive != nil {
		cat.IsActive = *req.IsActive
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	created, err := h.SkillCategoryRepo.Create(ctx, cat)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create category"})
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateSkillCategory handles PUT /v1/admin/skill-categories/:id.
func (h *AdminHandler) UpdateSkillCategory(c echo.Context) error {
	id, err := pathParamID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req skillCategoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	cat := &model.SkillCategory{Name: name, SortOrder: req.SortOrder, IsActive: true}
	if req.IsActive != nil {
		cat.IsActive = *req.IsActive
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	updated, err := h.SkillCategoryRepo.Update(ctx, id, cat)
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteSkillCategory handles DELETE /v1/admin/skill-categories/:id. Skills
// keep their free-text category; deleting the normalization row only removes
// the select-box entry.
func (h *AdminHandler) DeleteSkillCategory(c echo.Context) error {
	id, err := pathParamID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.SkillCategoryRepo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// imageBucketName is the bucket icons and images live in; empty when no
// storage gateway is configured.
func (h *AdminHandler) imageBucketName() string {
	if h.Buckets == nil {
		return ""
	}
	return h.Buckets.ImageBucket()
}
