package permissions

import (
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission describes who may call one route. Skip opens it to everyone; Optional lets
// guests through while still reading a member token when one is sent. Permissions lists
// the roles allowed, empty meaning any authenticated caller.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
	Optional    bool     `json:"optional"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]Permission
}

func key(method, path string) string {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	return method + " " + path
}

// FindPermissions looks a route pattern up. A trailing slash is ignored and an unknown
// route yields the zero Permission, which requires authentication.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	if r.index == nil {
		r.buildIndex()
	}

	return r.index[key(method, path)]
}

func (r *PermissionData) buildIndex() {
	r.index = make(map[string]Permission, len(r.Endpoints))

	for _, endpoint := range r.Endpoints {
		k := key(endpoint.Method, endpoint.Path)
		if _, exists := r.index[k]; exists {
			log.Warn().Str("endpoint", k).Msg("Duplicate permission entry, keeping the first")

			continue
		}

		r.index[k] = endpoint
	}
}

func Get() *PermissionData {
	var permissions PermissionData

	err := json.Unmarshal(permissionsData, &permissions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	permissions.buildIndex()

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return &permissions
}
