package main

import (
	"net/http"
	"time"

	"symptom-checker/auth"
	"symptom-checker/classifier"
	"symptom-checker/config"
	"symptom-checker/handlers"
	"symptom-checker/middleware"
	"symptom-checker/routes"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := config.NewConfig()
	gin.SetMode(cfg.GinMode)

	// Initialize database (creates the data directory on first run)
	db, err := config.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	log.Info("✅ Database connected and migrated successfully")

	// Load the pre-trained model once; it is read-only for the process lifetime
	model, err := classifier.Load(cfg.ModelPath)
	if err != nil {
		log.Fatal("Failed to load model artifact: ", err)
	}
	log.Infof("✅ Model loaded: %d symptoms, %d conditions",
		len(model.Symptoms()), len(model.Conditions))

	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	sessions, err := auth.NewSessionStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, sessionTTL)
	if err != nil {
		log.Fatal("Failed to connect to session store: ", err)
	}
	defer sessions.Close()

	jwtSvc := auth.NewJWTService(cfg.JWTSecret, sessionTTL)
	h := handlers.New(db, model, sessions, jwtSvc, cfg)
	authSvc := &middleware.AuthService{JWT: jwtSvc, Sessions: sessions}

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()
	r.LoadHTMLGlob(cfg.TemplateGlob)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Symptom Checker",
			"version": "1.0.0",
		})
	})

	// Register all routes
	routes.SetupRoutes(r, h, authSvc)

	log.Infof("🚀 Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
