package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"loanhelp/internal/config"
	"loanhelp/internal/database"
	"loanhelp/internal/middleware"
	"loanhelp/internal/modules/calculator"
	"loanhelp/internal/modules/content"
	"loanhelp/internal/modules/leads"
	"loanhelp/internal/pkg/mailer"
	"loanhelp/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	leadRepo := repository.NewLeadRepository(db)

	var sender mailer.Sender
	if cfg.ResendAPIKey != "" {
		sender = mailer.NewResendSender(cfg.ResendAPIKey)
	} else {
		log.Println("RESEND_API_KEY not set, logging emails to console")
		sender = mailer.NewDevConsoleSender(true)
	}

	leadService := leads.NewService(leadRepo, sender, cfg)
	leadHandler := leads.NewHandler(leadService)

	calculatorHandler := calculator.NewHandler()
	contentHandler := content.NewHandler()

	r := gin.Default()
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	r.GET("/healthz", healthz(db))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		leadHandler.RegisterRoutes(v1)
		calculatorHandler.RegisterRoutes(v1)
		contentHandler.RegisterRoutes(v1)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func healthz(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			log.Printf("health probe failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
