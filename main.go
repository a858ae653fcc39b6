// main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/daifend/platform/config"
	"github.com/daifend/platform/endpoint"
	"github.com/daifend/platform/middleware"
	"github.com/daifend/platform/model"
	"github.com/daifend/platform/util"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load the configuration
	cfg := config.LoadConfig()

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		log.Fatalf("Error migrating schema: %v", err)
	}

	if cfg.SeedData {
		if err := model.Seed(db); err != nil {
			log.Fatalf("Error seeding database: %v", err)
		}
		log.Println("Database seeded with sample data")
	}

	// Redis is optional; the rate limiter fails open without it.
	if _, err := config.ConnectRedis(); err != nil {
		log.Printf("Redis unavailable, rate limiting disabled: %v", err)
	}

	// GeoIP is optional; without an mmdb file events carry no location.
	if err := util.InitGeoIP(cfg.GeoIPPath); err != nil {
		log.Printf("GeoIP unavailable: %v", err)
	}

	util.SetEventLoggerDB(db)
	endpoint.SetMailer(util.NewSMTPMailer(cfg))

	// Set Gin mode from config
	gin.SetMode(cfg.GinMode)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DatabaseMiddleware(db))

	api := router.Group("/api")
	api.Use(middleware.EndpointCallLogger())

	api.GET("/health", endpoint.HealthCheck)

	api.GET("/security-incidents", endpoint.ListSecurityIncidents)
	api.GET("/security-incidents/:id", endpoint.GetSecurityIncident)
	api.POST("/security-incidents", middleware.RateLimiter(middleware.RateLimitConfig{}), endpoint.CreateSecurityIncident)
	api.PATCH("/security-incidents/:id", middleware.RateLimiter(middleware.RateLimitConfig{}), endpoint.UpdateSecurityIncident)

	api.GET("/ai-models", endpoint.ListAIModels)
	api.POST("/ai-models", middleware.RateLimiter(middleware.RateLimitConfig{}), endpoint.CreateAIModel)
	api.PATCH("/ai-models/:id", middleware.RateLimiter(middleware.RateLimitConfig{}), endpoint.UpdateAIModel)

	api.GET("/threat-intelligence", endpoint.ListThreatIntelligence)
	api.POST("/threat-intelligence", middleware.RateLimiter(middleware.RateLimitConfig{}), endpoint.CreateThreatIntelligence)

	api.GET("/security-events", endpoint.ListSecurityEvents)
	api.POST("/security-events", middleware.RateLimiter(middleware.RateLimitConfig{}), endpoint.CreateSecurityEvent)

	api.GET("/ai-ethics-audits", endpoint.ListAIEthicsAudits)
	api.POST("/ai-ethics-audits", middleware.RateLimiter(middleware.RateLimitConfig{}), endpoint.CreateAIEthicsAudit)

	api.GET("/dashboard/stats", endpoint.GetDashboardStats)

	intakeLimit := middleware.RateLimiter(middleware.RateLimitConfig{Limit: 5, Window: 15 * time.Minute})
	api.POST("/contact", intakeLimit, endpoint.SubmitContact)
	api.POST("/careers/apply", intakeLimit, endpoint.SubmitApplication)

	// Static SPA build output with index.html fallback for client-side routes.
	router.Static("/assets", filepath.Join(cfg.StaticDir, "assets"))
	router.StaticFile("/favicon.ico", filepath.Join(cfg.StaticDir, "favicon.ico"))
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, util.APIError{Error: "Not found"})
			return
		}
		c.File(filepath.Join(cfg.StaticDir, "index.html"))
	})

	// Start server on specified port
	address := fmt.Sprintf(":%d", cfg.AppPort)
	if err := router.Run(address); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
