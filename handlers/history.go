package handlers

import (
	"net/http"

	"symptom-checker/middleware"
	"symptom-checker/models"

	"github.com/gin-gonic/gin"
)

// History renders all past checks of the logged-in user, most recent first
func (h *Handler) History(c *gin.Context) {
	results, err := h.userResults(c)
	if err != nil {
		h.errorHandler(c, http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "history.html", gin.H{
		"Results": results,
	})
}

// APIHistory returns the same history as JSON for bearer-token clients
func (h *Handler) APIHistory(c *gin.Context) {
	results, err := h.userResults(c)
	if err != nil {
		h.errorHandler(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(results),
		"results": results,
	})
}

func (h *Handler) userResults(c *gin.Context) ([]models.SymptomCheckResult, error) {
	userID := middleware.GetUserID(c)
	var results []models.SymptomCheckResult
	err := h.DB.Where("user_id = ?", userID).
		Order("date_checked desc").
		Find(&results).Error
	return results, err
}
