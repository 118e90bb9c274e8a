package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// ListContacts handles GET /v1/admin/contacts, newest first.
func (h *AdminHandler) ListContacts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.ContactRepo.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

type contactReadReq struct {
	IsRead *bool `json:"is_read"`
}

// SetContactRead handles PATCH /v1/admin/contacts/:id/read. With no body the
// message is marked read; an explicit is_read flag sets the state directly,
// which is how the inbox un-reads a message.
func (h *AdminHandler) SetContactRead(c echo.Context) error {
	id, err := pathParamID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	read := true
	var req contactReadReq
	if err := c.Bind(&req); err == nil && req.IsRead != nil {
		read = *req.IsRead
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	updated, err := h.ContactRepo.SetRead(ctx, id, read)
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "contact not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteContact handles DELETE /v1/admin/contacts/:id.
func (h *AdminHandler) DeleteContact(c echo.Context) error {
	id, err := pathParamID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.ContactRepo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "contact not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
