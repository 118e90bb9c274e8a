package main // Entry point package

import (
	"context" // Context for startup-scoped operations
	"log"     // Logging library
	"time"    // Timeouts for startup tasks

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/ilyamorozov/portfolio-cms/internal/config"     // Internal config loader
	"github.com/ilyamorozov/portfolio-cms/internal/database"   // MySQL connection pool
	"github.com/ilyamorozov/portfolio-cms/internal/handler"    // HTTP handlers
	"github.com/ilyamorozov/portfolio-cms/internal/middleware" // Rate limit + cache middleware
	"github.com/ilyamorozov/portfolio-cms/internal/queue"      // Contact event consumer
	"github.com/ilyamorozov/portfolio-cms/internal/repository" // Data access layer
	"github.com/ilyamorozov/portfolio-cms/internal/router"     // Route registration
	"github.com/ilyamorozov/portfolio-cms/internal/storage"    // Object storage gateway
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on process environment")
	}
	cfg := config.Load() // Load environment config, fatal on missing required vars

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	startupCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	buckets, err := storage.New(startupCtx, cfg)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	// Repositories share the one pool.
	profiles := repository.NewProfileRepo(db)
	skills := repository.NewSkillRepo(db)
	categories := repository.NewSkillCategoryRepo(db)
	projects := repository.NewProjectRepo(db)
	contacts := repository.NewContactRepo(db)
	images := repository.NewImageRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)

	// Provision the bootstrap admin when credentials are configured.  An
	// already-existing account with that email is left untouched.
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := users.EnsureAdmin(startupCtx, cfg.AdminEmail, cfg.AdminPassword, cfg.BcryptCost); err != nil {
			log.Fatalf("bootstrap admin: %v", err)
		}
	}

	authH := handler.NewAuthHandler(cfg, users, tokens)
	adminH := handler.NewAdminHandler(profiles, skills, categories, projects, contacts, images, buckets, cfg.StoragePublicBaseURL)
	siteH := &handler.SiteHandler{
		ProfileRepo:   profiles,
		SkillRepo:     skills,
		ProjectRepo:   projects,
		ImageRepo:     images,
		ContactRepo:   contacts,
		PublishEvents: true,
	}

	// Redis backs the rate limiter and the public response cache.  A failed
	// connection returns nil and both middlewares degrade to pass-through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, rate limiting and response cache disabled")
	}
	rateLimit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	respCache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	e := echo.New()
	e.Use(rateLimit) // applies to every route; public reads additionally cached

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, siteH, respCache)
	router.RegisterAdmin(e, adminH, cfg.JWTSecret)

	// Background consumer mirrors contact submissions to a local audit log.
	// It reconnects forever and never takes the server down.
	go func() {
		if err := queue.StartContactConsumer(); err != nil {
			log.Printf("contact consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
