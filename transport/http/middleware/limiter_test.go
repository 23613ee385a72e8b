package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tavola/config"
	"tavola/infras/otel/mocks"
	cacheMocks "tavola/shared/cache/mocks"
	"tavola/shared/constant"
	"tavola/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAppMiddleware_RateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 3
	cfg.App.RateLimiter.WindowSeconds = 60

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	limited := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, mockCache).RateLimit()(ok)

	const key = "limiter:10.0.0.1:test-agent"

	tests := []struct {
		name          string
		setupMock     func()
		wantCode      int
		wantRemaining string
	}{
		{
			name: "first request",
			setupMock: func() {
				mockCache.EXPECT().Increment(gomock.Any(), key, 60).Return(int64(1), nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "2",
		},
		{
			name: "last allowed request",
			setupMock: func() {
				mockCache.EXPECT().Increment(gomock.Any(), key, 60).Return(int64(3), nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "0",
		},
		{
			name: "over the limit",
			setupMock: func() {
				mockCache.EXPECT().Increment(gomock.Any(), key, 60).Return(int64(4), nil)
			},
			wantCode:      http.StatusTooManyRequests,
			wantRemaining: "0",
		},
		{
			name: "cache unavailable",
			setupMock: func() {
				mockCache.EXPECT().Increment(gomock.Any(), key, 60).Return(int64(0), errors.New("connection refused"))
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := httptest.NewRequest(http.MethodGet, "/v1/catalog/packages", nil)
			req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 172.16.0.1")
			req.Header.Set(constant.RequestHeaderUserAgent, "test-agent")

			rec := httptest.NewRecorder()
			limited.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestAppMiddleware_RateLimitDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	limited := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, cacheMocks.NewMockRedisCache(ctrl)).RateLimit()(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }),
	)

	rec := httptest.NewRecorder()
	limited.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get(constant.RequestHeaderRateLimit))
}
