package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/amanahdev/ramadan-companion/config"
	"github.com/amanahdev/ramadan-companion/controllers"
	"github.com/amanahdev/ramadan-companion/middleware"
	"github.com/amanahdev/ramadan-companion/providers"
	"github.com/amanahdev/ramadan-companion/store"
	"github.com/amanahdev/ramadan-companion/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(st store.Store, verses *providers.VerseProvider, prayers *providers.PrayerProvider) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		utils.Sugar.Warnf("unknown timezone %q, falling back to UTC", cfg.Timezone)
		loc = time.UTC
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", utils.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	authController := controllers.NewAuthController()
	streakController := controllers.NewStreakController(st, loc)
	deedsController := controllers.NewDeedsController(st, loc)
	windowController := controllers.NewWindowController(st, loc)
	verseController := controllers.NewVerseController(st, verses, loc)
	prayerController := controllers.NewPrayerController(prayers, loc)
	statsController := controllers.NewStatsController(st, loc)

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware())
	authGroup.POST("/token", authController.Token)
	authGroup.POST("/logout", middleware.AuthRequired(), authController.Logout)

	// Read-only surface
	api.GET("/streak/status", streakController.Status)
	api.GET("/deeds", deedsController.List)
	api.GET("/deeds/:id/history", deedsController.History)
	api.GET("/window", windowController.Get)
	api.GET("/verse/daily", verseController.Daily)
	api.GET("/verse/read", verseController.ReadStatus)
	api.GET("/prayer/timings", prayerController.Timings)
	api.GET("/stats", statsController.Get)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(), middleware.RateLimitMiddleware())
	protected.POST("/streak/claim", streakController.DailyClaim)
	protected.POST("/deeds/:id/progress", deedsController.Adjust)
	protected.PUT("/deeds/:id", deedsController.Update)
	protected.PUT("/deeds/:id/target", deedsController.SetTarget)
	protected.PUT("/window", windowController.Set)
	protected.POST("/verse/read", verseController.MarkRead)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, 40400, "api route not found")
	})

	return r
}
