package handlers

import (
	"net/http"
	"time"

	"symptom-checker/middleware"
	"symptom-checker/models"

	"github.com/gin-gonic/gin"
)

type FeedbackRequest struct {
	ResultID       uint   `form:"result_id" binding:"required"`
	FeedbackText   string `form:"feedback_text" binding:"required"`
	Rating         int    `form:"rating" binding:"required,min=1,max=5"`
	SuggestionType string `form:"suggestion_type" binding:"required"`
}

// FeedbackForm lists the caller's results so they can pick one to comment on
func (h *Handler) FeedbackForm(c *gin.Context) {
	results, err := h.userResults(c)
	if err != nil {
		h.errorHandler(c, http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "feedback.html", gin.H{
		"Results": results,
	})
}

// Feedback stores feedback on one of the caller's own results
func (h *Handler) Feedback(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req FeedbackRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderFeedbackError(c, http.StatusBadRequest,
			"A result, feedback text, a rating between 1 and 5 and a suggestion type are required")
		return
	}

	// The referenced result must belong to the caller
	var result models.SymptomCheckResult
	if err := h.DB.Where("id = ? AND user_id = ?", req.ResultID, userID).
		First(&result).Error; err != nil {
		h.renderFeedbackError(c, http.StatusForbidden,
			"You can only leave feedback on your own results")
		return
	}

	feedback := models.Feedback{
		UserID:         userID,
		ResultID:       req.ResultID,
		FeedbackText:   req.FeedbackText,
		Rating:         req.Rating,
		SuggestionType: req.SuggestionType,
		Status:         models.FeedbackPending,
		FeedbackDate:   time.Now(),
	}
	if err := h.DB.Create(&feedback).Error; err != nil {
		h.errorHandler(c, http.StatusInternalServerError, err)
		return
	}

	c.Redirect(http.StatusFound, "/dashboard?feedback=1")
}

func (h *Handler) renderFeedbackError(c *gin.Context, statusCode int, msg string) {
	results, _ := h.userResults(c)
	c.HTML(statusCode, "feedback.html", gin.H{
		"Error":   msg,
		"Results": results,
	})
}
