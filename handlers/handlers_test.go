package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"symptom-checker/auth"
	"symptom-checker/classifier"
	"symptom-checker/config"
	"symptom-checker/handlers"
	"symptom-checker/middleware"
	"symptom-checker/models"
	"symptom-checker/routes"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testApp struct {
	Router *gin.Engine
	DB     *gorm.DB
	Model  *classifier.Model
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := config.InitDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("init db: %v", err)
	}

	model, err := classifier.Load("../model/trained_model.json")
	if err != nil {
		t.Fatalf("load model: %v", err)
	}

	mr := miniredis.RunT(t)
	sessions, err := auth.NewSessionStore(mr.Addr(), "", 0, time.Hour)
	if err != nil {
		t.Fatalf("session store: %v", err)
	}
	t.Cleanup(func() { _ = sessions.Close() })

	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	cfg := &config.Config{SessionTTLHours: 1}
	h := handlers.New(db, model, sessions, jwtSvc, cfg)
	authSvc := &middleware.AuthService{JWT: jwtSvc, Sessions: sessions}

	r := gin.New()
	r.LoadHTMLGlob("../templates/*.html")
	routes.SetupRoutes(r, h, authSvc)

	return &testApp{Router: r, DB: db, Model: model}
}

func (app *testApp) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

func (app *testApp) postForm(path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

func (app *testApp) postJSON(path, body, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

func (app *testApp) getJSON(path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "session_id" && c.Value != "" {
			return c
		}
	}
	t.Fatalf("no session cookie in response")
	return nil
}

func (app *testApp) register(t *testing.T, name, email, password string) {
	t.Helper()
	w := app.postForm("/register", url.Values{
		"name":     {name},
		"email":    {email},
		"password": {password},
	}, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("register status = %d, body: %s", w.Code, w.Body.String())
	}
}

func (app *testApp) login(t *testing.T, email, password string) *http.Cookie {
	t.Helper()
	w := app.postForm("/login", url.Values{
		"email":    {email},
		"password": {password},
	}, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("login status = %d, body: %s", w.Code, w.Body.String())
	}
	return sessionCookie(t, w)
}

func (app *testApp) createUser(t *testing.T, email, password string, role models.UserRole) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{
		Name:             "Test " + string(role),
		Email:            email,
		PasswordHash:     string(hash),
		Role:             role,
		IsVerified:       true,
		RegistrationDate: time.Now(),
	}
	if err := app.DB.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}
