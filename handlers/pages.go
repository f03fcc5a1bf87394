package handlers

import (
	"net/http"

	"symptom-checker/middleware"

	"github.com/gin-gonic/gin"
)

// Index renders the public landing page
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// Dashboard renders the landing page for a logged-in user
func (h *Handler) Dashboard(c *gin.Context) {
	data := gin.H{
		"Email": middleware.GetEmail(c),
		"Role":  string(middleware.GetRole(c)),
	}
	if c.Query("feedback") == "1" {
		data["Notice"] = "Thanks for your feedback!"
	}
	c.HTML(http.StatusOK, "dashboard.html", data)
}
