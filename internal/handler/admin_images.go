package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ilyamorozov/portfolio-cms/internal/model"
)

func validImageSection(s string) bool {
	switch s {
	case model.ImageSectionHero, model.ImageSectionAbout, model.ImageSectionPortfolio, model.ImageSectionGeneral:
		return true
	}
	return false
}

type imageReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	AltText     string `json:"alt_text"`
	Section     string `json:"section"`
	StoragePath string `json:"storage_path"`
	IsActive    *bool  `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

func (r *imageReq) toModel() (*model.Image, string) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return nil, "name is required"
	}
	url := strings.TrimSpace(r.URL)
	if url == "" {
		return nil, "url is required"
	}
	section := strings.TrimSpace(r.Section)
	if section == "" {
		section = model.ImageSectionGeneral
	}
	if !validImageSection(section) {
		return nil, "section must be one of hero, about, portfolio, general"
	}
	img := &model.Image{
		Name:      name,
		URL:       url,
		Section:   section,
		IsActive:  true,
		SortOrder: r.SortOrder,
	}
	if r.IsActive != nil {
		img.IsActive = *r.IsActive
	}
	img.Description = optional(r.Description)
	img.AltText = optional(r.AltText)
	img.StoragePath = optional(r.StoragePath)
	return img, ""
}

// ListImages handles GET /v1/admin/images, every section and inactive rows
// included. ?section= narrows to one section.
func (h *AdminHandler) ListImages(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	section := strings.TrimSpace(c.QueryParam("section"))
	if section != "" && !validImageSection(section) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "section must be one of hero, about, portfolio, general"})
	}

	var (
		items []*model.Image
		err   error
	)
	if section == "" {
		items, err = h.ImageRepo.ListAll(ctx)
	} else {
		items, err = h.ImageRepo.List(ctx, section)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CreateImage handles POST /v1/admin/images. The URL usually comes from the
// upload endpoint, but external URLs are accepted as-is.
func (h *AdminHandler) CreateImage(c echo.Context) error {
	var req imageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	img, msg := req.toModel()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	created, err := h.ImageRepo.Create(ctx, img)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create image"})
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateImage handles PUT /v1/admin/images/:id. When the file behind the row
// changes, the superseded object is removed best-effort.
func (h *AdminHandler) UpdateImage(c echo.Context) error {
	id, err := pathParamID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req imageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	img, msg := req.toModel()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	prev, err := h.ImageRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "image not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	updated, err := h.ImageRepo.Update(ctx, id, img)
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "image not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}

	if prev.URL != updated.URL {
		h.cleanupStoredFile(c, h.imageBucketName(), prev.URL)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteImage handles DELETE /v1/admin/images/:id. Profile associations
// pointing at the row are cleared by the repository; the stored object is
// removed best-effort afterwards.
func (h *AdminHandler) DeleteImage(c echo.Context) error {
	id, err := pathParamID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	img, err := h.ImageRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "image not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if err := h.ImageRepo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "image not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	h.cleanupStoredFile(c, h.imageBucketName(), img.URL)
	return c.NoContent(http.StatusNoContent)
}
