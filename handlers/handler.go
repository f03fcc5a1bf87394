package handlers

import (
	"symptom-checker/auth"
	"symptom-checker/classifier"
	"symptom-checker/config"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Handler carries the process-wide state every route needs: the database,
// the loaded model artifact (immutable after startup), the session store
// and the token service.
type Handler struct {
	DB       *gorm.DB
	Model    *classifier.Model
	Sessions *auth.SessionStore
	JWT      *auth.JWTService
	Config   *config.Config
}

func New(db *gorm.DB, model *classifier.Model, sessions *auth.SessionStore, jwtSvc *auth.JWTService, cfg *config.Config) *Handler {
	return &Handler{
		DB:       db,
		Model:    model,
		Sessions: sessions,
		JWT:      jwtSvc,
		Config:   cfg,
	}
}

// cookieTTL is the session cookie lifetime in seconds
func (h *Handler) cookieTTL() int {
	return h.Config.SessionTTLHours * 3600
}

// errorHandler reports a failure that is not worth a rendered page
func (h *Handler) errorHandler(c *gin.Context, statusCode int, err error) {
	logrus.Error(err.Error())
	c.JSON(statusCode, gin.H{"error": err.Error()})
}
