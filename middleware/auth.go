package middleware

import (
	"net/http"
	"strings"

	"symptom-checker/auth"
	"symptom-checker/models"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey = "userID"
	EmailKey  = "email"
	RoleKey   = "role"
)

// AuthService bundles the two ways a request can prove its identity:
// a bearer JWT or a server-held session referenced by cookie.
type AuthService struct {
	JWT      *auth.JWTService
	Sessions *auth.SessionStore
}

// authenticate resolves the caller's identity from a bearer token or the
// session cookie and injects it into the gin context. Session hits have
// their TTL extended.
func (a *AuthService) authenticate(c *gin.Context) bool {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if claims, err := a.JWT.Validate(tokenStr); err == nil {
			c.Set(UserIDKey, claims.UserID)
			c.Set(EmailKey, claims.Email)
			c.Set(RoleKey, string(claims.Role))
			return true
		}
	}

	sessionID, err := c.Cookie("session_id")
	if err != nil || sessionID == "" {
		return false
	}
	data, err := a.Sessions.Get(c.Request.Context(), sessionID)
	if err != nil || data == nil {
		return false
	}
	c.Set(UserIDKey, data.UserID)
	c.Set(EmailKey, data.Email)
	c.Set(RoleKey, string(data.Role))
	_ = a.Sessions.Extend(c.Request.Context(), sessionID)
	return true
}

// AuthRequired guards the server-rendered routes. An unauthenticated
// request is redirected to the login page, never shown an error.
func (a *AuthService) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.authenticate(c) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// APIAuthRequired guards the JSON routes, where a redirect would be useless.
func (a *AuthService) APIAuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.authenticate(c) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRequired sends non-admins back to their own dashboard rather than
// erroring, so admin pages never leak anything to patients.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) != models.RoleAdmin {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID extracts caller user ID from context
func GetUserID(c *gin.Context) uint {
	val, _ := c.Get(UserIDKey)
	id, _ := val.(uint)
	return id
}

// GetEmail extracts caller email from context
func GetEmail(c *gin.Context) string {
	val, _ := c.Get(EmailKey)
	email, _ := val.(string)
	return email
}

// GetRole extracts caller role from context
func GetRole(c *gin.Context) models.UserRole {
	val, _ := c.Get(RoleKey)
	role, _ := val.(string)
	return models.UserRole(role)
}
