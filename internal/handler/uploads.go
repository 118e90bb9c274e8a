package handler

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

const maxUploadBytes = 10 << 20 // 10 MiB

var allowedUploadExt = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".webp": true, ".svg": true, ".pdf": true,
}

// Upload handles POST /v1/admin/uploads. The multipart field "file" is
// written to object storage under a collision-free path and the public URL
// comes back in the response. kind=file routes documents (resumes) to the
// file bucket; everything else goes to the image bucket. An optional "folder"
// field prefixes the object path.
func (h *AdminHandler) Upload(c echo.Context) error {
	if h.Buckets == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "storage not configured"})
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file is required"})
	}
	if fh.Size > maxUploadBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, echo.Map{"error": "file exceeds 10MB limit"})
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedUploadExt[ext] {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unsupported file type"})
	}

	bucket := h.Buckets.ImageBucket()
	if c.FormValue("kind") == "file" || ext == ".pdf" {
		bucket = h.Buckets.FileBucket()
	}

	path := uploadPath(c.FormValue("folder"), fh.Filename)

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "could not read file"})
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	contentType := fh.Header.Get("Content-Type")
	if err := h.Buckets.UploadFile(ctx, bucket, path, src, contentType); err != nil {
		c.Logger().Errorf("upload %s/%s: %v", bucket, path, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "upload failed"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"url":          h.Buckets.PublicURL(bucket, path),
		"storage_path": path,
		"bucket":       bucket,
	})
}

// uploadPath builds a unique object path: optional folder, then a timestamp
// and random suffix in front of a sanitized filename.
func uploadPath(folder, filename string) string {
	base := strings.ToLower(filepath.Base(filename))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		}
		return '-'
	}, base)

	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	name := fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), hex.EncodeToString(buf), base)

	folder = strings.Trim(strings.TrimSpace(folder), "/")
	if folder == "" {
		return name
	}
	return folder + "/" + name
}
