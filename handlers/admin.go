package handlers

import (
	"net/http"
	"strconv"

	"symptom-checker/models"
	"symptom-checker/statemachine"

	"github.com/gin-gonic/gin"
)

// AdminDashboard shows the aggregate counts: total users, total checks
// and feedback still pending review
func (h *Handler) AdminDashboard(c *gin.Context) {
	var userCount, resultCount, pendingCount int64

	if err := h.DB.Model(&models.User{}).Count(&userCount).Error; err != nil {
		h.errorHandler(c, http.StatusInternalServerError, err)
		return
	}
	if err := h.DB.Model(&models.SymptomCheckResult{}).Count(&resultCount).Error; err != nil {
		h.errorHandler(c, http.StatusInternalServerError, err)
		return
	}
	if err := h.DB.Model(&models.Feedback{}).
		Where("status = ?", models.FeedbackPending).
		Count(&pendingCount).Error; err != nil {
		h.errorHandler(c, http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"Users":     userCount,
		"Results":   resultCount,
		"Feedbacks": pendingCount,
	})
}

// AdminFeedbackList shows every feedback entry for moderation
func (h *Handler) AdminFeedbackList(c *gin.Context) {
	h.renderFeedbackList(c, http.StatusOK, "")
}

// AdminUpdateFeedbackStatus moves a feedback entry along the moderation
// lifecycle (Pending -> Reviewed -> Resolved)
func (h *Handler) AdminUpdateFeedbackStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorHandler(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Status models.FeedbackStatus `form:"status" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		h.renderFeedbackList(c, http.StatusBadRequest, "A target status is required")
		return
	}

	var feedback models.Feedback
	if err := h.DB.First(&feedback, uint(id)).Error; err != nil {
		h.renderFeedbackList(c, http.StatusNotFound, "Feedback not found")
		return
	}

	if err := statemachine.CanTransition(feedback.Status, req.Status); err != nil {
		h.renderFeedbackList(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := h.DB.Model(&feedback).Update("status", req.Status).Error; err != nil {
		h.errorHandler(c, http.StatusInternalServerError, err)
		return
	}

	c.Redirect(http.StatusFound, "/admin/feedback")
}

func (h *Handler) renderFeedbackList(c *gin.Context, statusCode int, errMsg string) {
	var feedbacks []models.Feedback
	if err := h.DB.Preload("User").
		Order("feedback_date desc").
		Find(&feedbacks).Error; err != nil {
		h.errorHandler(c, http.StatusInternalServerError, err)
		return
	}
	data := gin.H{"Feedbacks": feedbacks}
	if errMsg != "" {
		data["Error"] = errMsg
	}
	c.HTML(statusCode, "admin_feedback.html", data)
}
