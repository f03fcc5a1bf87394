package models

import "time"

// RiskLevelModerate is the only risk level assigned in the current product.
// It is a fixed label, not derived from the prediction.
const RiskLevelModerate = "Moderate"

type SymptomCheckResult struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	UserID             uint      `json:"user_id" gorm:"not null;index"`
	User               User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ReportedSymptoms   string    `json:"reported_symptoms"` // comma-joined symptom labels
	PredictedCondition string    `json:"predicted_condition" gorm:"not null"`
	ConfidenceScore    float64   `json:"confidence_score"` // percentage, 0-100, 2 decimals
	RiskLevel          string    `json:"risk_level" gorm:"not null;default:'Moderate'"`
	DateChecked        time.Time `json:"date_checked"`
}
