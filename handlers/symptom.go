package handlers

import (
	"net/http"
	"strings"
	"time"

	"symptom-checker/middleware"
	"symptom-checker/models"

	"github.com/gin-gonic/gin"
)

// SymptomCheckForm renders the symptom selection form with the model's
// full ordered symptom list
func (h *Handler) SymptomCheckForm(c *gin.Context) {
	c.HTML(http.StatusOK, "symptom_form.html", gin.H{
		"Symptoms": h.Model.Symptoms(),
	})
}

// SymptomCheck predicts a condition from the selected symptoms, persists
// the result and renders it. An empty selection is a valid input.
func (h *Handler) SymptomCheck(c *gin.Context) {
	userID := middleware.GetUserID(c)
	selected := c.PostFormArray("symptoms")

	vector := h.Model.FeatureVector(selected)
	condition, confidence, err := h.Model.Predict(vector)
	if err != nil {
		h.errorHandler(c, http.StatusInternalServerError, err)
		return
	}

	result := models.SymptomCheckResult{
		UserID:             userID,
		ReportedSymptoms:   strings.Join(selected, ", "),
		PredictedCondition: condition,
		ConfidenceScore:    confidence,
		RiskLevel:          models.RiskLevelModerate,
		DateChecked:        time.Now(),
	}
	if err := h.DB.Create(&result).Error; err != nil {
		h.errorHandler(c, http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, "symptom_form.html", gin.H{
		"Result":     condition,
		"Confidence": confidence,
		"RiskLevel":  result.RiskLevel,
		"Selected":   selected,
	})
}
