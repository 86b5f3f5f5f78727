package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"claimvista/internal/api/handlers"
	"claimvista/internal/models"
	"claimvista/internal/repository"
	"claimvista/internal/service"
	"claimvista/internal/store"
	"claimvista/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubUserRepo struct {
	users map[string]*models.User
}

func (r *stubUserRepo) Create(_ context.Context, user *models.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func newTestApp(t *testing.T) (*fiber.App, *stubUserRepo) {
	t.Helper()

	logger := zap.NewNop()
	repo := &stubUserRepo{users: make(map[string]*models.User)}
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	authService := service.NewAuthService(repo, jwtManager, logger)
	refStore := store.NewReferenceStore()
	claimService := service.NewClaimService(store.NewClaimStore(logger), refStore, logger)

	app := SetupRouter(
		handlers.NewAuthHandler(authService, logger),
		handlers.NewClaimHandler(claimService, logger),
		handlers.NewReferenceHandler(refStore, logger),
		jwtManager,
		logger,
	)
	return app, repo
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, payload
}

func registerAccount(t *testing.T, app *fiber.App, name, email, role string) (token, id string) {
	t.Helper()

	resp, payload := doJSON(t, app, fiber.MethodPost, "/user/auth/register", "", fiber.Map{
		"name":     name,
		"email":    email,
		"password": "password",
		"role":     role,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(payload))

	var parsed struct {
		AccessToken string `json:"access_token"`
		User        struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(payload, &parsed))
	return parsed.AccessToken, parsed.User.ID
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{
		"/api/v1/claims",
		"/api/v1/claims/1",
		"/api/v1/hospitals",
		"/api/v1/agents",
		"/api/v1/dashboard/stats",
		"/api/v1/me",
	} {
		resp, _ := doJSON(t, app, fiber.MethodGet, path, "", nil)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)
	}

	resp, _ := doJSON(t, app, fiber.MethodGet, "/api/v1/claims", "garbage-token", nil)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRegisterLoginAndMe(t *testing.T) {
	app, repo := newTestApp(t)

	token, id := registerAccount(t, app, "Regular User", "user@example.com", "user")

	resp, payload := doJSON(t, app, fiber.MethodGet, "/api/v1/me", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var me struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(payload, &me))
	require.Equal(t, id, me.ID)
	require.Equal(t, "user@example.com", me.Email)
	require.Equal(t, "user", me.Role)

	// Login with the same credentials works; wrong password does not.
	resp, _ = doJSON(t, app, fiber.MethodPost, "/user/auth/login", "", fiber.Map{
		"email": "user@example.com", "password": "password",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, fiber.MethodPost, "/user/auth/login", "", fiber.Map{
		"email": "user@example.com", "password": "nope",
	})
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// A valid token whose account vanished resolves to no user.
	delete(repo.users, id)
	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/v1/me", token, nil)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRegister_ValidationFailures(t *testing.T) {
	app, _ := newTestApp(t)

	resp, payload := doJSON(t, app, fiber.MethodPost, "/user/auth/register", "", fiber.Map{
		"name": "X", "email": "not-an-email", "password": "pw", "role": "root",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var parsed struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(payload, &parsed))
	require.Contains(t, parsed.Fields, "email")
	require.Contains(t, parsed.Fields, "password")
	require.Contains(t, parsed.Fields, "role")
}

func TestClaimLifecycleOverHTTP(t *testing.T) {
	app, _ := newTestApp(t)

	userToken, userID := registerAccount(t, app, "Regular User", "user@example.com", "user")
	adminToken, _ := registerAccount(t, app, "Admin User", "admin@example.com", "admin")

	// Submit a claim as the user.
	resp, payload := doJSON(t, app, fiber.MethodPost, "/api/v1/claims", userToken, fiber.Map{
		"title":       "ER Visit",
		"description": "Emergency room visit",
		"amount":      1500,
		"hospital_id": "1",
		"agent_id":    "1",
		"documents":   []string{"report.pdf"},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(payload))

	var claim struct {
		ID     string `json:"id"`
		UserID string `json:"user_id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(payload, &claim))
	require.Equal(t, userID, claim.UserID)
	require.Equal(t, "pending", claim.Status)

	// Admins cannot submit claims.
	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/v1/claims", adminToken, fiber.Map{
		"title":       "X",
		"description": "Y",
		"amount":      1,
		"hospital_id": "1",
		"agent_id":    "1",
	})
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Admin decides for both parties.
	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/v1/claims/"+claim.ID+"/decision", adminToken, fiber.Map{
		"decision": "approved",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode) // acting_as required

	resp, payload = doJSON(t, app, fiber.MethodPost, "/api/v1/claims/"+claim.ID+"/decision", adminToken, fiber.Map{
		"decision":  "approved",
		"acting_as": "hospital",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(payload))
	var afterHospital struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(payload, &afterHospital))
	require.Equal(t, "in-review", afterHospital.Status)

	resp, payload = doJSON(t, app, fiber.MethodPost, "/api/v1/claims/"+claim.ID+"/decision", adminToken, fiber.Map{
		"decision":  "approved",
		"acting_as": "agent",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var afterAgent struct {
		Status           string `json:"status"`
		HospitalApproved bool   `json:"hospital_approved"`
		AgentApproved    bool   `json:"agent_approved"`
	}
	require.NoError(t, json.Unmarshal(payload, &afterAgent))
	require.Equal(t, "approved", afterAgent.Status)
	require.True(t, afterAgent.HospitalApproved)
	require.True(t, afterAgent.AgentApproved)

	// The user cannot decide their own claim.
	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/v1/claims/"+claim.ID+"/decision", userToken, fiber.Map{
		"decision": "rejected",
	})
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Unknown claim id is a 404, as is fetching one.
	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/v1/claims/999/decision", adminToken, fiber.Map{
		"decision": "approved", "acting_as": "hospital",
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/v1/claims/999", userToken, nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListClaimsAndReferenceData(t *testing.T) {
	app, _ := newTestApp(t)

	adminToken, _ := registerAccount(t, app, "Admin User", "admin@example.com", "admin")
	userToken, _ := registerAccount(t, app, "Fresh User", "fresh@example.com", "user")

	// Admin sees the seeded collection; a fresh user sees nothing.
	resp, payload := doJSON(t, app, fiber.MethodGet, "/api/v1/claims", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var adminClaims []json.RawMessage
	require.NoError(t, json.Unmarshal(payload, &adminClaims))
	require.Len(t, adminClaims, 3)

	resp, payload = doJSON(t, app, fiber.MethodGet, "/api/v1/claims", userToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var userClaims []json.RawMessage
	require.NoError(t, json.Unmarshal(payload, &userClaims))
	require.Empty(t, userClaims)

	// Status filter narrows, bad filter is rejected.
	resp, payload = doJSON(t, app, fiber.MethodGet, "/api/v1/claims?status=approved", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var approved []json.RawMessage
	require.NoError(t, json.Unmarshal(payload, &approved))
	require.Len(t, approved, 1)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/v1/claims?status=bogus", adminToken, nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Reference data is available to any authenticated account.
	resp, payload = doJSON(t, app, fiber.MethodGet, "/api/v1/hospitals", userToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var hospitals []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(payload, &hospitals))
	require.Len(t, hospitals, 3)
	require.Equal(t, "General Hospital", hospitals[0].Name)

	resp, payload = doJSON(t, app, fiber.MethodGet, "/api/v1/agents", userToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var agents []struct {
		Company string `json:"company"`
	}
	require.NoError(t, json.Unmarshal(payload, &agents))
	require.Len(t, agents, 3)
}

func TestDashboardStatsOverHTTP(t *testing.T) {
	app, _ := newTestApp(t)
	adminToken, _ := registerAccount(t, app, "Admin User", "admin@example.com", "admin")

	resp, payload := doJSON(t, app, fiber.MethodGet, "/api/v1/dashboard/stats", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stats struct {
		Role  string `json:"role"`
		Cards []struct {
			Title string `json:"title"`
			Value int    `json:"value"`
		} `json:"cards"`
	}
	require.NoError(t, json.Unmarshal(payload, &stats))
	require.Equal(t, "admin", stats.Role)
	require.Len(t, stats.Cards, 4)
	require.Equal(t, "Total Claims", stats.Cards[0].Title)
	require.Equal(t, 3, stats.Cards[0].Value)
}
