package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/ilyamorozov/portfolio-cms/internal/handler"    // admin handlers
	"github.com/ilyamorozov/portfolio-cms/internal/middleware" // JWT + role middlewares
)

// RegisterAdmin registers ADMIN-scoped endpoints under /v1/admin.
// All routes require a valid JWT and ADMIN role.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	// Attach middlewares at group construction time for clarity.
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
	)

	// ---- Dashboard ----
	g.GET("/dashboard", a.Dashboard)

	// ---- Profile ----
	// The profile is a singleton; there is no :id addressing and no delete.
	g.GET("/profile", a.GetProfile)
	g.PUT("/profile", a.UpdateProfile)
	g.PATCH("/profile", a.UpdateProfile) // allow partial/semantic updates via PATCH as well
	g.PATCH("/profile/images", a.SetProfileImages)

	// ---- Skills ----
	g.GET("/skills", a.ListSkills)
	g.POST("/skills", a.CreateSkill)
	g.PUT("/skills/:id", a.UpdateSkill)
	g.PATCH("/skills/:id", a.UpdateSkill)
	g.PATCH("/skills/:id/featured", a.ToggleSkillFeatured)
	g.DELETE("/skills/:id", a.DeleteSkill)

	// ---- Skill categories ----
	g.GET("/skill-categories", a.ListSkillCategories)
	g.POST("/skill-categories", a.CreateSkillCategory)
	g.PUT("/skill-categories/:id", a.UpdateSkillCategory)
	g.DELETE("/skill-categories/:id", a.DeleteSkillCategory)

	// ---- Projects ----
	g.GET("/projects", a.ListProjects)
	g.GET("/projects/:id", a.GetProject)
	g.POST("/projects", a.CreateProject)
	g.PUT("/projects/:id", a.UpdateProject)
	g.PATCH("/projects/:id", a.UpdateProject)
	g.PATCH("/projects/:id/status", a.SetProjectStatus)
	g.DELETE("/projects/:id", a.DeleteProject)

	// ---- Contacts ----
	g.GET("/contacts", a.ListContacts)
	g.PATCH("/contacts/:id/read", a.SetContactRead)
	g.DELETE("/contacts/:id", a.DeleteContact)

	// ---- Images ----
	g.GET("/images", a.ListImages)
	g.POST("/images", a.CreateImage)
	g.PUT("/images/:id", a.UpdateImage)
	g.PATCH("/images/:id", a.UpdateImage)
	g.DELETE("/images/:id", a.DeleteImage)

	// ---- Uploads ----
	g.POST("/uploads", a.Upload)
}
