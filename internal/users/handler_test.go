package users_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"coach-backend/internal/shared/server/middleware"
	"coach-backend/internal/users"
)

const defaultRole = "00000000-0000-0000-0000-000000000001"

func newTestRouter(t *testing.T, policy users.ConflictPolicy) (*gin.Engine, *users.MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := users.NewMemoryRepo(defaultRole)
	handler := users.NewHandler(users.NewService(repo, defaultRole, policy))

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Recovery())
	handler.RegisterRoutes(router.Group("/api/v1"))
	handler.RegisterFunctionRoute(router)
	return router, repo
}

func post(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestSyncStoresDerivedProfile(t *testing.T) {
	router, repo := newTestRouter(t, users.ConflictError)

	before := time.Now().UTC().Add(-time.Second)
	resp := post(router, "/api/v1/webhooks/users", `{"record":{"id":"u1","email":"a.b@example.com"}}`)
	after := time.Now().UTC().Add(time.Second)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["message"] != "User synced" {
		t.Fatalf("unexpected body: %v", body)
	}

	stored, err := repo.GetByID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Email == nil || *stored.Email != "a.b@example.com" {
		t.Fatalf("unexpected email: %v", stored.Email)
	}
	if stored.FirstName == nil || *stored.FirstName != "a.b" {
		t.Fatalf("unexpected first name: %v", stored.FirstName)
	}
	if stored.LastName != "" || stored.RoleID != defaultRole {
		t.Fatalf("unexpected defaults: %+v", stored)
	}
	if stored.CreatedAt.Before(before) || stored.CreatedAt.After(after) {
		t.Fatalf("created_at %v outside test window", stored.CreatedAt)
	}
}

func TestSyncUserShapeWithoutEmail(t *testing.T) {
	router, repo := newTestRouter(t, users.ConflictError)

	resp := post(router, "/sync_auth_users", `{"user":{"id":"u2"}}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	stored, err := repo.GetByID(context.Background(), "u2")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.FirstName != nil || stored.Email != nil {
		t.Fatalf("expected null email and first name, got %+v", stored)
	}
}

func TestSyncWhitespaceIDIsStoredAsIs(t *testing.T) {
	router, repo := newTestRouter(t, users.ConflictError)

	resp := post(router, "/api/v1/webhooks/users", `{"record":{"id":" ","email":"a@b.c"}}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if repo.Len() != 1 {
		t.Fatalf("expected one row, got %d", repo.Len())
	}
	stored, err := repo.GetByID(context.Background(), " ")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.FirstName == nil || *stored.FirstName != "a" {
		t.Fatalf("unexpected first name: %v", stored.FirstName)
	}
}

func TestSyncMissingIdentityReturns400WithoutWrite(t *testing.T) {
	router, repo := newTestRouter(t, users.ConflictError)

	for _, body := range []string{
		`{}`,
		`{"record":{"email":"a@b.c"}}`,
		`{"record":null,"user":null,"new":{"id":""}}`,
		`[]`,
	} {
		resp := post(router, "/api/v1/webhooks/users", body)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, resp.Code)
		}
		if resp.Body.String() != "No user data in payload" {
			t.Fatalf("unexpected body: %q", resp.Body.String())
		}
	}
	if repo.Len() != 0 {
		t.Fatalf("expected no writes, got %d", repo.Len())
	}
}

func TestSyncInvalidJSONReturns500WithoutWrite(t *testing.T) {
	router, repo := newTestRouter(t, users.ConflictError)

	for _, body := range []string{`{"record":`, ``, `not json`} {
		resp := post(router, "/api/v1/webhooks/users", body)
		if resp.Code != http.StatusInternalServerError {
			t.Fatalf("body %q: expected 500, got %d", body, resp.Code)
		}
		if resp.Body.String() != "Server error" {
			t.Fatalf("unexpected body: %q", resp.Body.String())
		}
	}
	if repo.Len() != 0 {
		t.Fatalf("expected no writes, got %d", repo.Len())
	}
}

func TestSyncRedeliveryIsNotIdempotentByDefault(t *testing.T) {
	router, _ := newTestRouter(t, users.ConflictError)
	body := `{"record":{"id":"u1","email":"a.b@example.com"}}`

	if resp := post(router, "/api/v1/webhooks/users", body); resp.Code != http.StatusOK {
		t.Fatalf("first delivery: expected 200, got %d", resp.Code)
	}
	resp := post(router, "/api/v1/webhooks/users", body)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("redelivery: expected 500, got %d", resp.Code)
	}
	if resp.Body.String() != "Database insert failed" {
		t.Fatalf("unexpected body: %q", resp.Body.String())
	}
}

func TestSyncRedeliverySucceedsWithIgnorePolicy(t *testing.T) {
	router, repo := newTestRouter(t, users.ConflictIgnore)
	body := `{"record":{"id":"u1","email":"a.b@example.com"}}`

	for i := 0; i < 2; i++ {
		if resp := post(router, "/api/v1/webhooks/users", body); resp.Code != http.StatusOK {
			t.Fatalf("delivery %d: expected 200, got %d", i+1, resp.Code)
		}
	}
	if repo.Len() != 1 {
		t.Fatalf("expected one row, got %d", repo.Len())
	}
}
