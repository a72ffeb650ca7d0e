package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"police-records-backend/internal/shared/middleware"
	"police-records-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigin),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))
		v1.GET("/db-test", databaseTestHandler(c))

		setupAuthRoutes(v1, c)
		setupPersonRoutes(v1, c)
		setupAddressRoutes(v1, c)
		setupLicenseRoutes(v1, c)
		setupCazierRoutes(v1, c)
		setupActivityRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.POST("/register", c.CredentialHandler.Register)
	v1.POST("/login", c.CredentialHandler.Login)

	auth := v1.Group("/auth")
	auth.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		auth.GET("/me", c.CredentialHandler.Me)
	}
}

// ========================================
// PERSON ROUTES
// ========================================
func setupPersonRoutes(v1 *gin.RouterGroup, c *container.Container) {
	persons := v1.Group("/persons")
	{
		persons.GET("", c.PersonHandler.Search)
		persons.POST("", c.PersonHandler.Register)
		persons.PUT("/:id", c.PersonHandler.Update)
		persons.DELETE("/:id", c.PersonHandler.Delete)
	}
}

// ========================================
// ADDRESS ROUTES
// ========================================
func setupAddressRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/addresses", c.AddressHandler.Lookup)
}

// ========================================
// LICENSE ROUTES
// ========================================
func setupLicenseRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/license-category-counts", c.LicenseHandler.CountByCategory)
	v1.GET("/persons-with-license", c.LicenseHandler.ListHolders)
	v1.GET("/licenses-extended", c.LicenseHandler.ListExtended)
	v1.GET("/category-catalog", c.LicenseHandler.Catalog)
	v1.GET("/licenses/:cnp", c.LicenseHandler.GetByCNP)
	v1.POST("/licenses", c.LicenseHandler.Issue)

	categories := v1.Group("/license-categories")
	{
		categories.POST("", c.LicenseHandler.AttachCategory)
		categories.PUT("", c.LicenseHandler.UpdateCategory)
		categories.DELETE("", c.LicenseHandler.DetachCategory)
	}
}

// ========================================
// CRIMINAL RECORD ROUTES
// ========================================
func setupCazierRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/criminal-record-stats", c.CazierHandler.Stats)
	v1.GET("/criminal-record-persons", c.CazierHandler.ListPersons)
	v1.GET("/criminal-record-active", c.CazierHandler.ListActive)
	v1.GET("/criminal-record-detail", c.CazierHandler.Detail)
	v1.GET("/offense-catalog", c.CazierHandler.Offenses)
	v1.POST("/criminal-records", c.CazierHandler.AddEntry)
}

// ========================================
// ACTIVITY ROUTES
// ========================================
func setupActivityRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/activities", c.ActivityHandler.ListByCNP)
	v1.GET("/institutions", c.ActivityHandler.SearchInstitutions)
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   getEnv("APP_VERSION", "1.0.0"),
			"services":  gin.H{},
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}

// ========================================
// DATABASE TEST HANDLER
// ========================================
func databaseTestHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Database not connected",
			})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var version string
		if err := appCtx.DB.Pool.QueryRow(ctx, "SELECT version()").Scan(&version); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Query failed: %v", err),
			})
			return
		}

		stats := appCtx.DB.Pool.Stat()

		c.JSON(http.StatusOK, gin.H{
			"message": "Database test successful",
			"database": gin.H{
				"postgres_version": version,
				"pool_stats": gin.H{
					"total_connections":    stats.TotalConns(),
					"idle_connections":     stats.IdleConns(),
					"acquired_connections": stats.AcquiredConns(),
					"max_connections":      stats.MaxConns(),
				},
			},
		})
	}
}
