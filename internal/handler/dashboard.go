package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ilyamorozov/portfolio-cms/internal/derive"
	"github.com/ilyamorozov/portfolio-cms/internal/model"
)

const (
	dashboardTimeout    = 10 * time.Second
	dashboardRecentSize = 5
)

// Dashboard handles GET /v1/admin/dashboard. Projects, skills and contacts
// are fetched concurrently; if any fetch fails or the whole load takes longer
// than the deadline, the response degrades to zero stats and an empty recent
// list instead of an error.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dashboardTimeout)
	defer cancel()

	var (
		projects []*model.Project
		skills   []*model.Skill
		contacts []*model.Contact
	)
	errs := make(chan error, 3)
	go func() {
		var err error
		projects, err = h.ProjectRepo.List(ctx, true)
		errs <- err
	}()
	go func() {
		var err error
		skills, err = h.SkillRepo.List(ctx)
		errs <- err
	}()
	go func() {
		var err error
		contacts, err = h.ContactRepo.List(ctx)
		errs <- err
	}()

	var loadErr error
	for i := 0; i < 3; i++ {
		select {
		case err := <-errs:
			if err != nil {
				loadErr = err
			}
		case <-ctx.Done():
			loadErr = ctx.Err()
		}
		if loadErr != nil {
			break
		}
	}
	if loadErr != nil {
		c.Logger().Warnf("dashboard load degraded: %v", loadErr)
		return c.JSON(http.StatusOK, echo.Map{
			"stats":           derive.DashboardStats(nil, nil, nil),
			"recent_contacts": []*model.Contact{},
		})
	}

	recent := derive.RecentContacts(contacts, dashboardRecentSize)
	if recent == nil {
		recent = []*model.Contact{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"stats":           derive.DashboardStats(projects, skills, contacts),
		"recent_contacts": recent,
	})
}
