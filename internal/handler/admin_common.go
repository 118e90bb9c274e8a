package handler // handler defines http handlers

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ilyamorozov/portfolio-cms/internal/repository"
	"github.com/ilyamorozov/portfolio-cms/internal/storage"
)

// AdminHandler bundles the repositories and the storage gateway used by the
// authenticated dashboard. Every handler on it assumes the JWT and role
// middleware already ran.
type AdminHandler struct {
	ProfileRepo       *repository.ProfileRepo
	SkillRepo         *repository.SkillRepo
	SkillCategoryRepo *repository.SkillCategoryRepo
	ProjectRepo       *repository.ProjectRepo
	ContactRepo       *repository.ContactRepo
	ImageRepo         *repository.ImageRepo
	Buckets           *storage.Buckets
	PublicBaseURL     string // storage public base, for recognizing our own URLs
}

// NewAdminHandler constructs an AdminHandler and panics if a repository is nil.
func NewAdminHandler(profiles *repository.ProfileRepo, skills *repository.SkillRepo,
	categories *repository.SkillCategoryRepo, projects *repository.ProjectRepo,
	contacts *repository.ContactRepo, images *repository.ImageRepo,
	buckets *storage.Buckets, publicBaseURL string) *AdminHandler {
	if profiles == nil || skills == nil || categories == nil || projects == nil || contacts == nil || images == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{
		ProfileRepo:       profiles,
		SkillRepo:         skills,
		SkillCategoryRepo: categories,
		ProjectRepo:       projects,
		ContactRepo:       contacts,
		ImageRepo:         images,
		Buckets:           buckets,
		PublicBaseURL:     publicBaseURL,
	}
}

// pathParamID parses the :id route parameter.
func pathParamID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// cleanupStoredFile best-effort deletes a superseded or orphaned object when
// its URL points into the given bucket of our storage. Failures are logged
// and swallowed; they never fail the mutation that triggered the cleanup.
func (h *AdminHandler) cleanupStoredFile(c echo.Context, bucket, url string) {
	if h.Buckets == nil || url == "" {
		return
	}
	path, ok := storage.PathFromURL(h.PublicBaseURL, bucket, url)
	if !ok {
		return // externally hosted, nothing to clean up
	}
	if err := h.Buckets.DeleteFile(c.Request().Context(), bucket, path); err != nil {
		c.Logger().Warnf("cleanup %s/%s: %v", bucket, path, err)
	}
}

// isNotFound reports whether err is the repository's not-found sentinel.
func isNotFound(err error) bool { return errors.Is(err, repository.ErrNotFound) }
