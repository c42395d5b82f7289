package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"biztrack/internal/config"
	"biztrack/internal/dto"
	"biztrack/internal/middleware"
	"biztrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
	}
}

func buildAuthSvc() (service.AuthService, *stubUserRepo) {
	repo := newStubUserRepo()
	return service.NewAuthService(repo, testConfig()), repo
}

func registerReq(username string) dto.RegisterRequest {
	return dto.RegisterRequest{
		Username:        username,
		Email:           username + "@example.com",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
	}
}

func TestRegister_DefaultsToStandardTier(t *testing.T) {
	svc, _ := buildAuthSvc()

	resp, err := svc.Register(context.Background(), registerReq("alice"))
	require.NoError(t, err)
	assert.Equal(t, "standard", resp.User.SubscriptionTier)
	assert.Equal(t, "sales", resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRegister_DuplicateUsernameRejected(t *testing.T) {
	svc, _ := buildAuthSvc()
	_, err := svc.Register(context.Background(), registerReq("alice"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerReq("alice"))
	assert.ErrorIs(t, err, service.ErrDuplicateUser)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := buildAuthSvc()
	_, err := svc.Register(context.Background(), registerReq("alice"))
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "nobody", Password: "hunter22"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLogin_DeactivatedUserRejected(t *testing.T) {
	svc, repo := buildAuthSvc()
	reg, err := svc.Register(context.Background(), registerReq("alice"))
	require.NoError(t, err)

	repo.users[uuid.MustParse(reg.User.ID)].Active = false

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "alice", Password: "hunter22"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestUpgradeSubscription(t *testing.T) {
	svc, repo := buildAuthSvc()
	reg, err := svc.Register(context.Background(), registerReq("alice"))
	require.NoError(t, err)
	userID := uuid.MustParse(reg.User.ID)

	resp, err := svc.UpgradeSubscription(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "premium", resp.SubscriptionTier)
	assert.Equal(t, "premium", repo.users[userID].SubscriptionTier)
}

// ── Middleware matrix: 401 / 403 / 402 ───────────────────────────────────────

func authTestRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api", middleware.JWTAuth(secret))
	api.GET("/open", func(c *gin.Context) { c.Status(http.StatusOK) })
	api.GET("/admin-only", middleware.RequireRole("admin"), func(c *gin.Context) { c.Status(http.StatusOK) })
	api.GET("/premium-only", middleware.RequireTier(middleware.TierPremium), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func tokenFor(t *testing.T, role, tier string) string {
	t.Helper()
	svc, repo := buildAuthSvc()
	resp, err := svc.Register(context.Background(), registerReq("user-"+role+"-"+tier))
	require.NoError(t, err)

	// Adjust role/tier and re-login so the claims reflect them.
	userID := uuid.MustParse(resp.User.ID)
	repo.users[userID].Role = role
	repo.users[userID].SubscriptionTier = tier
	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "user-" + role + "-" + tier,
		Password: "hunter22",
	})
	require.NoError(t, err)
	return login.AccessToken
}

func doRequest(r *gin.Engine, path, token string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestMiddleware_MissingTokenIs401(t *testing.T) {
	r := authTestRouter("test-secret")
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/api/open", ""))
}

func TestMiddleware_BadSignatureIs401(t *testing.T) {
	r := authTestRouter("different-secret")
	token := tokenFor(t, "sales", "standard")
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/api/open", token))
}

func TestMiddleware_WrongRoleIs403(t *testing.T) {
	r := authTestRouter("test-secret")
	token := tokenFor(t, "sales", "standard")
	assert.Equal(t, http.StatusForbidden, doRequest(r, "/api/admin-only", token))
	assert.Equal(t, http.StatusOK, doRequest(r, "/api/open", token))
}

func TestMiddleware_StandardTierIs402OnPremiumRoutes(t *testing.T) {
	r := authTestRouter("test-secret")
	standard := tokenFor(t, "sales", "standard")
	premium := tokenFor(t, "sales", "premium")

	assert.Equal(t, http.StatusPaymentRequired, doRequest(r, "/api/premium-only", standard))
	assert.Equal(t, http.StatusOK, doRequest(r, "/api/premium-only", premium))
}
