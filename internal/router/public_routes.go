package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/ilyamorozov/portfolio-cms/internal/handler" // public site handlers
)

// RegisterPublic registers the unauthenticated site endpoints on the provided
// Echo instance.  The SiteHandler returns render-ready section data for
// guests; no JWT or role middleware is applied.  Extra middleware (rate
// limiting, response caching) can be passed in and is applied to the whole
// group.
func RegisterPublic(e *echo.Echo, s *handler.SiteHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1/site", mw...)

	// Section view models.  These always answer 200 with complete data, even
	// when the backing store is unreachable.
	g.GET("/hero", s.GetHero)
	g.GET("/about", s.GetAbout)
	g.GET("/footer", s.GetFooter)
	g.GET("/contact-info", s.GetContactInfo)

	// Collections.  Skills come grouped by category; projects accept a
	// ?filter= query (all, featured, or a tech substring); images accept an
	// optional ?section= filter and only active rows are returned.
	g.GET("/skills", s.GetSkills)
	g.GET("/projects", s.GetProjects)
	g.GET("/images", s.GetImages)

	// The contact form is the one public write.  It is registered outside the
	// cached group so submissions are never served from or stored in cache.
	e.POST("/v1/contact", s.SubmitContact)
}
