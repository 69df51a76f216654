package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/sananasgarov/NummixAzBackend/config"
	"github.com/sananasgarov/NummixAzBackend/middleware"
	"github.com/sananasgarov/NummixAzBackend/models"
	"github.com/sananasgarov/NummixAzBackend/utils"
	"github.com/sananasgarov/NummixAzBackend/utils/mailer"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	// LoadJWTConfig caches on first use, so the secret has to be in place
	// before any test issues or verifies a token.
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

// setupTestDB swaps config.DB for a GORM handle backed by sqlmock.
func setupTestDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}

	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })

	return mock
}

// stubMailer records outgoing email instead of touching SMTP.
type stubMailer struct {
	mu sync.Mutex

	failAll       bool
	failAutoReply bool

	resetCodes    []string
	confirmations []string
	notifications []mailer.ContactMessage
	autoReplies   []string
}

func (s *stubMailer) SendContactNotification(msg mailer.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return errSMTP
	}
	s.notifications = append(s.notifications, msg)
	return nil
}

func (s *stubMailer) SendContactAutoReply(to, fullName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll || s.failAutoReply {
		return errSMTP
	}
	s.autoReplies = append(s.autoReplies, to)
	return nil
}

func (s *stubMailer) SendResetCodeEmail(to, name, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return errSMTP
	}
	s.resetCodes = append(s.resetCodes, code)
	return nil
}

func (s *stubMailer) SendResetConfirmation(to, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return errSMTP
	}
	s.confirmations = append(s.confirmations, to)
	return nil
}

var errSMTP = &smtpError{}

type smtpError struct{}

func (*smtpError) Error() string { return "smtp: connection refused" }

func setupStubMailer(t *testing.T) *stubMailer {
	t.Helper()
	stub := &stubMailer{}
	prev := mail
	mail = stub
	t.Cleanup(func() { mail = prev })
	return stub
}

func sessionTokenFor(t *testing.T, id uint, email string) string {
	t.Helper()
	admin := models.Admin{Model: gorm.Model{ID: id}, Name: "Test Admin", Email: email}
	token, _, err := utils.GenerateSessionToken(admin)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	return token
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return out
}

func perform(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

// authApp mounts the auth and password-reset surface.
func authApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/auth/register", Register)
	app.Post("/api/auth/login", Login)
	app.Post("/api/auth/check-email", CheckEmail)
	app.Get("/api/auth/verify", middleware.RequireAuth(), VerifyToken)
	app.Post("/api/auth/forgot-password", ForgotPassword)
	app.Post("/api/auth/verify-reset-code", VerifyResetCode)
	app.Post("/api/auth/reset-password", ResetPassword)
	app.Get("/api/admins", ListAdmins)
	app.Delete("/api/admins/:id", DeleteAdmin)
	app.Post("/api/contact", Contact)
	return app
}

// contentApp mounts the team/blog CRUD surface with the auth gate on writes.
func contentApp() *fiber.App {
	app := fiber.New()
	app.Get("/team", ListTeamMembers)
	app.Post("/team", middleware.RequireAuth(), CreateTeamMember)
	app.Put("/team/:id", middleware.RequireAuth(), UpdateTeamMember)
	app.Delete("/team/:id", middleware.RequireAuth(), DeleteTeamMember)
	app.Get("/blogs", ListBlogPosts)
	app.Get("/blogs/:id", GetBlogPostByID)
	app.Post("/blogs", middleware.RequireAuth(), CreateBlogPost)
	app.Put("/blogs/:id", middleware.RequireAuth(), UpdateBlogPost)
	app.Delete("/blogs/:id", middleware.RequireAuth(), DeleteBlogPost)
	return app
}

var (
	adminCols     = []string{"id", "name", "email", "password_hash", "created_at"}
	testCreatedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
)

func adminRows(t *testing.T, id uint, name, email, password string) *sqlmock.Rows {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	return sqlmock.NewRows(adminCols).AddRow(id, name, email, hash, testCreatedAt)
}
