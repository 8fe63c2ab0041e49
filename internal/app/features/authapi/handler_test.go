package authapi_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/campdir/internal/app/features/authapi"
	"github.com/dalemusser/campdir/internal/app/system/apierr"
	"github.com/dalemusser/campdir/internal/app/system/auth"
	"github.com/dalemusser/campdir/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func newHandler(t *testing.T, db *mongo.Database) *authapi.Handler {
	t.Helper()
	tokens, err := auth.NewManager("test-secret-0123456789", time.Hour, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	return authapi.NewHandler(db, tokens, zap.NewNop())
}

func uniqueEmailIndex(t *testing.T, db *mongo.Database) {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		t.Fatalf("create email index: %v", err)
	}
}

func register(t *testing.T, h *authapi.Handler, body string) *testutil.ResponseRecorder {
	t.Helper()
	handle := apierr.Wrap(zap.NewNop(), h.HandleRegister)
	rec := testutil.NewRecorder()
	handle(rec.ResponseRecorder, testutil.NewJSONRequest("POST", "/api/v1/auth/register", body))
	return rec
}

func login(t *testing.T, h *authapi.Handler, body string) *testutil.ResponseRecorder {
	t.Helper()
	handle := apierr.Wrap(zap.NewNop(), h.HandleLogin)
	rec := testutil.NewRecorder()
	handle(rec.ResponseRecorder, testutil.NewJSONRequest("POST", "/api/v1/auth/login", body))
	return rec
}

func TestHandleRegister(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(t, db)

	rec := register(t, h, `{"name":"Jane","email":"jane@example.com","password":"secret123","role":"publisher"}`)
	rec.AssertStatus(t, http.StatusCreated)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if body.Data.Token == "" {
		t.Error("expected a token in the response")
	}
	// The password never leaves the server, hashed or otherwise.
	for _, leak := range []string{"secret123", "password_hash", "$2a$"} {
		if strings.Contains(rec.Body.String(), leak) {
			t.Errorf("response leaks %q", leak)
		}
	}
}

func TestHandleRegister_AdminRoleRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(t, db)

	rec := register(t, h, `{"name":"Eve","email":"eve@example.com","password":"secret123","role":"admin"}`)
	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestHandleRegister_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	uniqueEmailIndex(t, db)
	h := newHandler(t, db)

	body := `{"name":"Jane","email":"jane@example.com","password":"secret123"}`
	register(t, h, body).AssertStatus(t, http.StatusCreated)

	rec := register(t, h, body)
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "already exists")
}

func TestHandleLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(t, db)

	register(t, h, `{"name":"Jane","email":"jane@example.com","password":"secret123"}`).
		AssertStatus(t, http.StatusCreated)

	rec := login(t, h, `{"email":"jane@example.com","password":"secret123"}`)
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"token"`)
}

func TestHandleLogin_InvalidCredentials(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(t, db)

	register(t, h, `{"name":"Jane","email":"jane@example.com","password":"secret123"}`).
		AssertStatus(t, http.StatusCreated)

	// Wrong password and unknown email read identically to the caller.
	for _, body := range []string{
		`{"email":"jane@example.com","password":"wrong-password"}`,
		`{"email":"nobody@example.com","password":"secret123"}`,
	} {
		rec := login(t, h, body)
		rec.AssertStatus(t, http.StatusUnauthorized)
		rec.AssertContains(t, "invalid credentials")
	}
}

func TestHandleLogin_RateLimited(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(t, db)

	body := `{"email":"target@example.com","password":"wrong"}`

	// Burn through the per-email budget with failed attempts.
	var rec *testutil.ResponseRecorder
	for i := 0; i < 10; i++ {
		rec = login(t, h, body)
		if rec.Code == http.StatusTooManyRequests {
			break
		}
	}
	rec.AssertStatus(t, http.StatusTooManyRequests)
}

func TestServeMe(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(t, db)
	handle := apierr.Wrap(zap.NewNop(), h.ServeMe)

	register(t, h, `{"name":"Jane","email":"jane@example.com","password":"secret123"}`).
		AssertStatus(t, http.StatusCreated)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	u, err := h.Users.GetByEmail(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("load registered user: %v", err)
	}

	req := testutil.NewAuthenticatedRequest("GET", "/api/v1/auth/me", testutil.TestUser{
		ID: u.ID.Hex(), Name: u.Name, Email: u.Email, Role: u.Role,
	})
	rec := testutil.NewRecorder()
	handle(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "jane@example.com")
}

func TestServeMe_GoneAccount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(t, db)
	handle := apierr.Wrap(zap.NewNop(), h.ServeMe)

	// A valid token whose account no longer exists.
	req := testutil.NewAuthenticatedRequest("GET", "/api/v1/auth/me", testutil.RegularUser())
	rec := testutil.NewRecorder()
	handle(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusUnauthorized)
}
