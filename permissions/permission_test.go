package permissions_test

import (
	"net/http"
	"testing"

	"tavola/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name   string
		path   string
		method string
		want   permissions.Permission
	}{
		{
			name:   "booking start accepts guests",
			path:   "/v1/booking/sessions/",
			method: http.MethodPost,
			want:   permissions.Permission{Path: "/v1/booking/sessions", Method: http.MethodPost, Optional: true},
		},
		{
			name:   "catalog is public",
			path:   "/v1/catalog/packages",
			method: http.MethodGet,
			want:   permissions.Permission{Path: "/v1/catalog/packages", Method: http.MethodGet, Skip: true},
		},
		{
			name:   "reservations need staff",
			path:   "/v1/reservations/{id}",
			method: http.MethodGet,
			want: permissions.Permission{
				Path:        "/v1/reservations/{id}",
				Method:      http.MethodGet,
				Permissions: []string{"admin", "superadmin"},
			},
		},
		{
			name:   "unknown route",
			path:   "/v1/unknown",
			method: http.MethodGet,
			want:   permissions.Permission{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, data.FindPermissions(tt.path, tt.method))
		})
	}
}
