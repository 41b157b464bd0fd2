package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hirehub-backend/config"
	"hirehub-backend/internal/delivery/http/middleware"
	"hirehub-backend/internal/delivery/http/response"
	"hirehub-backend/internal/domain"
	"hirehub-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAuthUC struct {
	users map[string]*domain.User
}

func (f fakeAuthUC) GetCurrentUser(_ context.Context, id string) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	if id == "db-down" {
		return nil, apperror.Internal(errors.New("connection refused"))
	}
	return nil, apperror.Unauthorized("User not found")
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func signHS256(t *testing.T, sub string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub,
		"email": sub + "@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(middleware.RequestIDKey)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(w.Body.String())
	assert.NoError(t, err)
	assert.Equal(t, w.Body.String(), w.Header().Get(middleware.RequestIDHeader))

	inbound := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, inbound)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, inbound, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "<script>")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "<script>", w.Body.String())
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler())
	r.GET("/conflict", func(c *gin.Context) { c.Error(apperror.Conflict("Already applied")) })
	r.GET("/validation", func(c *gin.Context) { c.Error(apperror.Validation([]string{"Message is required"})) })
	r.GET("/internal", func(c *gin.Context) { c.Error(apperror.Internal(errors.New("pq: relation missing"))) })
	r.GET("/plain", func(c *gin.Context) { c.Error(errors.New("boom")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/conflict", nil))
	assert.Equal(t, http.StatusConflict, w.Code)
	body := decode(t, w)
	assert.False(t, body.Success)
	assert.Equal(t, "Already applied", body.Message)
	assert.NotEmpty(t, body.RequestID)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/validation", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []interface{}{"Message is required"}, decode(t, w).Error)

	for _, path := range []string{"/internal", "/plain"} {
		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "pq:")
		assert.NotContains(t, w.Body.String(), "boom")
	}
}

func TestRateLimitInMemory(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		Limit:     2,
		Window:    time.Minute,
		KeyPrefix: "test:",
		Store:     &middleware.MemoryStore{},
	}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
		if i == 2 {
			assert.NotEmpty(t, w.Header().Get("Retry-After"))
			assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
		}
	}
	assert.Equal(t, []int{200, 200, 429}, codes)
}

func TestMemoryStoreWindowResets(t *testing.T) {
	store := &middleware.MemoryStore{}
	now := time.Now()

	count, _ := store.Hit("k", time.Second, now)
	assert.Equal(t, 1, count)
	count, _ = store.Hit("k", time.Second, now)
	assert.Equal(t, 2, count)

	count, _ = store.Hit("k", time.Second, now.Add(2*time.Second))
	assert.Equal(t, 1, count)

	store.Sweep(now.Add(time.Hour))
	count, _ = store.Hit("k", time.Second, now.Add(time.Hour))
	assert.Equal(t, 1, count)
}

func TestRateLimitConfigsFromEnv(t *testing.T) {
	cfg := &config.Config{RateLimitWindowSeconds: 30, RateLimitGlobalThreshold: 100, ChatRateLimit: 5}

	global := middleware.GlobalRateLimitConfig(cfg)
	chat := middleware.ChatRateLimitConfig(cfg)

	assert.Equal(t, 100, global.Limit)
	assert.Equal(t, 5, chat.Limit)
	assert.Equal(t, 30*time.Second, chat.Window)
	assert.NotEqual(t, global.KeyPrefix, chat.KeyPrefix)
}

func authRouter(optional bool) *gin.Engine {
	cfg := &config.Config{JWTSecret: testSecret}
	authUC := fakeAuthUC{users: map[string]*domain.User{
		"u1": {ID: "u1", Username: "alice", Role: domain.RoleSeeker},
	}}

	mw := middleware.AuthMiddleware(nil, cfg, authUC)
	if optional {
		mw = middleware.OptionalAuth(nil, cfg, authUC)
	}

	r := gin.New()
	r.Use(middleware.ErrorHandler(), mw)
	r.GET("/", func(c *gin.Context) {
		v := middleware.ViewerFromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": v.UserID, "name": v.Username, "role": v.Role})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := authRouter(false)

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid bearer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signHS256(t, "u1"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"u1","name":"alice","role":"seeker"}`, w.Body.String())
	})

	t.Run("valid cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: signHS256(t, "u1")})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad signature", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signHS256(t, "u1")+"x")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid token", decode(t, w).Message)
	})

	t.Run("unknown user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signHS256(t, "ghost"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "User not found", decode(t, w).Message)
	})

	t.Run("user lookup failure is a server error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signHS256(t, "db-down"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, decode(t, w).Message, "connection refused")
	})
}

func TestOptionalAuth(t *testing.T) {
	r := authRouter(true)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"","name":"","role":""}`, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signHS256(t, "db-down"))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCSRFOnlyGuardsCookieSessions(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CSRFMiddleware())
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	// No session cookie
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Bearer token
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer x")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Cookie session without header
	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: "session"})
	req.AddCookie(&http.Cookie{Name: middleware.CSRFTokenCookieName, Value: "abc"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Cookie session with matching header
	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: "session"})
	req.AddCookie(&http.Cookie{Name: middleware.CSRFTokenCookieName, Value: "abc"})
	req.Header.Set(middleware.CSRFTokenHeaderName, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CORSMiddleware(&config.Config{FrontendURL: "https://hirehub.example", GinMode: "release"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://hirehub.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://hirehub.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code, "localhost is not allowed in production")
}
