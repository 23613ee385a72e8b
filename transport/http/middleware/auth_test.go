package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tavola/config"
	"tavola/infras/jwt"
	"tavola/infras/otel/mocks"
	"tavola/permissions"
	"tavola/shared/constant"
	"tavola/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	goJWT "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	accessSecret = "test-access-secret"
	apiKey       = "internal-key"
)

func token(t *testing.T, role string) string {
	t.Helper()

	claims := jwt.Claims{
		UserID: "user-1",
		Email:  "giulia@example.com",
		Role:   role,
		Type:   jwt.AccessToken,
		RegisteredClaims: goJWT.RegisteredClaims{
			ExpiresAt: goJWT.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	signed, err := goJWT.NewWithClaims(goJWT.SigningMethodHS256, claims).SignedString([]byte(accessSecret))
	require.NoError(t, err)

	return "Bearer " + signed
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.AccessSecret = accessSecret
	cfg.App.APIKey = apiKey

	authRole := middleware.NewAuthRoleMiddleware(jwt.New(cfg), mocks.NewOtel(), permissions.Get(), cfg)

	echoUser := func(w http.ResponseWriter, r *http.Request) {
		user, _ := r.Context().Value(constant.ContextKeyUserID).(string)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(user))
	}

	router := chi.NewRouter()
	router.Use(authRole.APIKey, authRole.Auth, authRole.RBAC)
	router.Route("/v1", func(r chi.Router) {
		r.Post("/booking/sessions/", echoUser)
		r.Get("/reservations/{id}", echoUser)
		r.Get("/catalog/packages", echoUser)
	})

	return router
}

func TestAuthRole(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name     string
		method   string
		path     string
		headers  map[string]string
		wantCode int
		wantUser string
	}{
		{
			name:     "guest starts a booking",
			method:   http.MethodPost,
			path:     "/v1/booking/sessions/",
			wantCode: http.StatusOK,
		},
		{
			name:     "member starts a booking",
			method:   http.MethodPost,
			path:     "/v1/booking/sessions/",
			headers:  map[string]string{constant.RequestHeaderAuthorization: token(t, constant.RoleUser)},
			wantCode: http.StatusOK,
			wantUser: "user-1",
		},
		{
			name:     "broken token is refused even where guests are allowed",
			method:   http.MethodPost,
			path:     "/v1/booking/sessions/",
			headers:  map[string]string{constant.RequestHeaderAuthorization: "Bearer nope"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "public catalog",
			method:   http.MethodGet,
			path:     "/v1/catalog/packages",
			wantCode: http.StatusOK,
		},
		{
			name:     "reservation without token",
			method:   http.MethodGet,
			path:     "/v1/reservations/r1",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "reservation as member",
			method:   http.MethodGet,
			path:     "/v1/reservations/r1",
			headers:  map[string]string{constant.RequestHeaderAuthorization: token(t, constant.RoleUser)},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "reservation as admin",
			method:   http.MethodGet,
			path:     "/v1/reservations/r1",
			headers:  map[string]string{constant.RequestHeaderAuthorization: token(t, constant.RoleAdmin)},
			wantCode: http.StatusOK,
			wantUser: "user-1",
		},
		{
			name:     "reservation as superadmin",
			method:   http.MethodGet,
			path:     "/v1/reservations/r1",
			headers:  map[string]string{constant.RequestHeaderAuthorization: token(t, constant.RoleSuperAdmin)},
			wantCode: http.StatusOK,
			wantUser: "user-1",
		},
		{
			name:     "reservation with internal api key",
			method:   http.MethodGet,
			path:     "/v1/reservations/r1",
			headers:  map[string]string{constant.RequestHeaderAPIKey: apiKey},
			wantCode: http.StatusOK,
		},
		{
			name:     "wrong api key",
			method:   http.MethodGet,
			path:     "/v1/reservations/r1",
			headers:  map[string]string{constant.RequestHeaderAPIKey: "guess"},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusOK {
				assert.Equal(t, tt.wantUser, rec.Body.String())
			}
		})
	}
}
