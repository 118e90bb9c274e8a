package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/ilyamorozov/portfolio-cms/internal/handler"    // import the handlers that implement business logic
	"github.com/ilyamorozov/portfolio-cms/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware.  Unauthenticated operations live under /v1/auth,
// while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Operations that do not require an existing session (login, refresh,
	// logout).  Each of these handlers is responsible for generating or
	// exchanging tokens.  There is no self-serve registration; admin accounts
	// are provisioned at startup or by hand.
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)
	// Refreshing rotates the refresh token.
	g.POST("/refresh", a.Refresh)
	// Logout accepts a JSON body containing a `refresh_token` and invalidates
	// it.  The response is 204 regardless of whether the token was live, so
	// the endpoint leaks nothing about token validity.
	g.POST("/logout", a.Logout)

	// Routes that require a valid access token.  All handlers registered on
	// this group execute the JWTAuth middleware before being invoked.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("ADMIN"))
	// Return the authenticated user's information.
	auth.GET("/me", a.Me)
}
