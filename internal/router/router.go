package router

import (
	"time"

	"github.com/gobro228/ambulance-site/internal/config"
	"github.com/gobro228/ambulance-site/internal/handler"
	"github.com/gobro228/ambulance-site/internal/middleware"
	"github.com/gobro228/ambulance-site/internal/repository"
	"github.com/gobro228/ambulance-site/internal/service"
	"github.com/gobro228/ambulance-site/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	kitRepo := repository.NewKitRepository(db)
	usageRepo := repository.NewUsageRepository(db)
	callRepo := repository.NewCallRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	catalogSvc := service.NewCatalogService(itemRepo, categoryRepo)
	kitSvc := service.NewKitService(kitRepo, itemRepo)
	stockSvc := service.NewStockService(itemRepo, categoryRepo, usageRepo, callRepo, kitSvc, dispatcher, nil)
	callSvc := service.NewCallService(callRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	itemsH := handler.NewItemsHandler(catalogSvc, stockSvc)
	categoriesH := handler.NewCategoriesHandler(catalogSvc)
	kitsH := handler.NewKitsHandler(kitSvc)
	usageH := handler.NewUsageHandler(stockSvc)
	callsH := handler.NewCallsHandler(callSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Roles: dispatcher, medic, admin — declared per-endpoint
		anyRole := middleware.RequireRole("dispatcher", "medic", "admin")

		inv := v1.Group("/inventory")
		{
			// Reads — any authenticated role
			inv.GET("/items", anyRole, itemsH.List)
			inv.GET("/items/low-stock", anyRole, itemsH.LowStock)
			inv.GET("/items/:id", anyRole, itemsH.Get)
			inv.GET("/categories", anyRole, categoriesH.List)
			inv.GET("/kits", anyRole, kitsH.List)
			inv.GET("/kits/by-call-type", anyRole, kitsH.GetByCallType)
			inv.GET("/usage", anyRole, usageH.List)

			// Usage recording — medics do this in the field
			inv.POST("/usage", middleware.RequireRole("medic", "admin"), usageH.Record)

			// Catalog writes and replenishment — admin only
			inv.POST("/items", middleware.RequireRole("admin"), itemsH.Create)
			inv.PUT("/items/:id", middleware.RequireRole("admin"), itemsH.Update)
			inv.POST("/items/:id/replenish", middleware.RequireRole("admin"), itemsH.Replenish)
		}

		calls := v1.Group("/calls")
		{
			calls.POST("", middleware.RequireRole("dispatcher", "admin"), callsH.Create)
			calls.GET("", anyRole, callsH.List)
			calls.GET("/:id", anyRole, callsH.Get)
			calls.PATCH("/:id/status", anyRole, callsH.UpdateStatus)
			calls.DELETE("/:id", middleware.RequireRole("admin"), callsH.Delete)
		}
	}

	return r
}
