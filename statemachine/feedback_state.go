package statemachine

import (
	"errors"
	"symptom-checker/models"
)

// Transition defines a valid feedback moderation state change
type Transition struct {
	From models.FeedbackStatus
	To   models.FeedbackStatus
}

// validTransitions is the authoritative moderation lifecycle definition
var validTransitions = []Transition{
	// Admin marks feedback as looked at
	{From: models.FeedbackPending, To: models.FeedbackReviewed},
	// Admin can close feedback directly or after review
	{From: models.FeedbackPending, To: models.FeedbackResolved},
	{From: models.FeedbackReviewed, To: models.FeedbackResolved},
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[Transition]bool {
	m := make(map[Transition]bool)
	for _, t := range validTransitions {
		m[t] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.FeedbackStatus) []models.FeedbackStatus {
	var nexts []models.FeedbackStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanTransition checks whether feedback may move from one status to another
func CanTransition(from, to models.FeedbackStatus) error {
	if transitionMap[Transition{From: from, To: to}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " to " + string(to) +
			". Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.FeedbackStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}
