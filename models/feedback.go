package models

import "time"

// FeedbackStatus represents all possible moderation states of a feedback entry
type FeedbackStatus string

const (
	FeedbackPending  FeedbackStatus = "Pending"
	FeedbackReviewed FeedbackStatus = "Reviewed"
	FeedbackResolved FeedbackStatus = "Resolved"
)

type Feedback struct {
	ID             uint               `json:"id" gorm:"primaryKey"`
	UserID         uint               `json:"user_id" gorm:"not null;index"`
	User           User               `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ResultID       uint               `json:"result_id" gorm:"not null"`
	Result         SymptomCheckResult `json:"result,omitempty" gorm:"foreignKey:ResultID"`
	FeedbackText   string             `json:"feedback_text" gorm:"not null"`
	Rating         int                `json:"rating"`
	SuggestionType string             `json:"suggestion_type"`
	Status         FeedbackStatus     `json:"status" gorm:"not null;default:'Pending'"`
	FeedbackDate   time.Time          `json:"feedback_date"`
}
