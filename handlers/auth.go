package handlers

import (
	"net/http"
	"time"

	"symptom-checker/auth"
	"symptom-checker/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

// RegisterForm renders the registration page
func (h *Handler) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

// Register creates a new patient account and redirects to login
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{
			"Error": "Name, a valid email and a password of at least 6 characters are required",
		})
		return
	}

	// Check email uniqueness
	var existing models.User
	if result := h.DB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		c.HTML(http.StatusConflict, "register.html", gin.H{
			"Error": "Email already registered",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.errorHandler(c, http.StatusInternalServerError, err)
		return
	}

	user := models.User{
		Name:             req.Name,
		Email:            req.Email,
		PasswordHash:     string(hash),
		Role:             models.RolePatient,
		IsVerified:       true,
		RegistrationDate: time.Now(),
	}

	if err := h.DB.Create(&user).Error; err != nil {
		h.errorHandler(c, http.StatusInternalServerError, err)
		return
	}

	c.Redirect(http.StatusFound, "/login?registered=1")
}

// LoginForm renders the login page
func (h *Handler) LoginForm(c *gin.Context) {
	data := gin.H{}
	if c.Query("registered") == "1" {
		data["Notice"] = "Registration successful! Please log in."
	}
	c.HTML(http.StatusOK, "login.html", data)
}

// Login verifies credentials and establishes a session. The failure notice
// is the same whether the email is unknown or the password is wrong.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Error": "Email and password are required",
		})
		return
	}

	user, ok := h.verifyCredentials(req.Email, req.Password)
	if !ok {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Error": "Invalid email or password",
		})
		return
	}

	sessionID := uuid.New().String()
	data := auth.SessionData{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}
	if err := h.Sessions.Create(c.Request.Context(), sessionID, data); err != nil {
		h.errorHandler(c, http.StatusInternalServerError, err)
		return
	}
	c.SetCookie("session_id", sessionID, h.cookieTTL(), "/", "", false, true)

	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout clears the session and returns to the index page
func (h *Handler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie("session_id"); err == nil && sessionID != "" {
		_ = h.Sessions.Delete(c.Request.Context(), sessionID)
	}
	c.SetCookie("session_id", "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// APILogin authenticates a JSON client and returns a bearer token
func (h *Handler) APILogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := h.verifyCredentials(req.Email, req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := h.JWT.Generate(user)
	if err != nil {
		h.errorHandler(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

func (h *Handler) verifyCredentials(email, password string) (*models.User, bool) {
	var user models.User
	if err := h.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, false
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, false
	}
	return &user, true
}
