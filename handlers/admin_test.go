package handlers_test

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"symptom-checker/models"
)

func TestAdminRedirectsPatients(t *testing.T) {
	app := newTestApp(t)
	app.createUser(t, "a@x.com", "pw1234", models.RolePatient)
	cookie := app.login(t, "a@x.com", "pw1234")

	w := app.get("/admin", cookie)
	if w.Code != http.StatusFound {
		t.Fatalf("admin status for patient = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("admin redirect = %q, want /dashboard", loc)
	}
	if strings.Contains(w.Body.String(), "Total users") {
		t.Fatalf("aggregate counts leaked to a patient")
	}
}

func TestAdminDashboardCounts(t *testing.T) {
	app := newTestApp(t)
	app.createUser(t, "admin@x.com", "pw1234", models.RoleAdmin)
	patient := app.createUser(t, "a@x.com", "pw1234", models.RolePatient)

	result := seedResult(t, app, patient.ID)
	feedback := models.Feedback{
		UserID:       patient.ID,
		ResultID:     result.ID,
		FeedbackText: "ok",
		Rating:       3,
		Status:       models.FeedbackPending,
		FeedbackDate: time.Now(),
	}
	if err := app.DB.Create(&feedback).Error; err != nil {
		t.Fatalf("seed feedback: %v", err)
	}

	cookie := app.login(t, "admin@x.com", "pw1234")
	w := app.get("/admin", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("admin status = %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Total users: 2", "Total symptom checks: 1", "Pending feedback: 1"} {
		if !strings.Contains(body, want) {
			t.Fatalf("admin dashboard missing %q, body: %s", want, body)
		}
	}
}

func TestAdminFeedbackModeration(t *testing.T) {
	app := newTestApp(t)
	app.createUser(t, "admin@x.com", "pw1234", models.RoleAdmin)
	patient := app.createUser(t, "a@x.com", "pw1234", models.RolePatient)
	result := seedResult(t, app, patient.ID)

	feedback := models.Feedback{
		UserID:       patient.ID,
		ResultID:     result.ID,
		FeedbackText: "please review",
		Rating:       2,
		Status:       models.FeedbackPending,
		FeedbackDate: time.Now(),
	}
	if err := app.DB.Create(&feedback).Error; err != nil {
		t.Fatalf("seed feedback: %v", err)
	}

	cookie := app.login(t, "admin@x.com", "pw1234")
	statusPath := fmt.Sprintf("/admin/feedback/%d/status", feedback.ID)

	w := app.postForm(statusPath, url.Values{"status": {"Reviewed"}}, cookie)
	if w.Code != http.StatusFound {
		t.Fatalf("moderation status = %d, body: %s", w.Code, w.Body.String())
	}
	var reloaded models.Feedback
	app.DB.First(&reloaded, feedback.ID)
	if reloaded.Status != models.FeedbackReviewed {
		t.Fatalf("status after review = %q", reloaded.Status)
	}

	// Reviewed -> Pending is not part of the lifecycle
	w = app.postForm(statusPath, url.Values{"status": {"Pending"}}, cookie)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("invalid transition status = %d, want 422", w.Code)
	}

	w = app.postForm(statusPath, url.Values{"status": {"Resolved"}}, cookie)
	if w.Code != http.StatusFound {
		t.Fatalf("resolve status = %d", w.Code)
	}
	app.DB.First(&reloaded, feedback.ID)
	if reloaded.Status != models.FeedbackResolved {
		t.Fatalf("status after resolve = %q", reloaded.Status)
	}
}
