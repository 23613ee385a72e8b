package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"tavola/config"
	"tavola/infras/jwt"
	"tavola/infras/otel"
	"tavola/permissions"
	"tavola/shared/constant"
	"tavola/shared/failure"
	"tavola/transport/http/response"

	"github.com/go-chi/chi/v5"
)

// internalCall marks requests authenticated by API key; they bypass Auth and RBAC.
type internalCall struct{}

type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

func isInternal(ctx context.Context) bool {
	internal, _ := ctx.Value(internalCall{}).(bool)

	return internal
}

func deny(writer http.ResponseWriter, scope otel.Scope, err error) {
	scope.TraceError(err)
	response.WithError(writer, err)
}

// route resolves the chi pattern of the request, so permissions are keyed by pattern
// rather than by concrete path.
func (m *authRoleImpl) route(request *http.Request) (string, permissions.Permission) {
	pattern := request.URL.Path

	if rctx := chi.RouteContext(request.Context()); rctx != nil && rctx.Routes != nil {
		pattern = rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
	}

	if m.permission == nil {
		return pattern, permissions.Permission{}
	}

	return pattern, m.permission.FindPermissions(pattern, request.Method)
}

func tokenFailure(err error) error {
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return failure.Unauthorized("Token has expired")
	case errors.Is(err, jwt.ErrInvalidClaim):
		return failure.Unauthorized("Invalid token claims")
	case errors.Is(err, jwt.ErrInvalidToken):
		return failure.Unauthorized("Invalid token")
	default:
		return failure.Unauthorized("Token validation failed")
	}
}

// Auth puts the caller's claims on the context. Optional routes admit guests, but a
// token that is sent must be valid.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()

		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		pattern, permission := m.route(request)
		if isInternal(ctx) || permission.Skip {
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"http.route":  pattern,
			"http.method": request.Method,
		})

		header := request.Header.Get(constant.RequestHeaderAuthorization)
		if header == constant.Empty {
			if !permission.Optional {
				deny(writer, scope, failure.Unauthorized("Missing authorization header"))

				return
			}

			scope.SetAttribute("auth.guest", true)
			next.ServeHTTP(writer, request)

			return
		}

		token, err := jwt.ExtractTokenFromHeader(header)
		if err != nil {
			deny(writer, scope, failure.Unauthorized("Invalid authorization header format"))

			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			deny(writer, scope, tokenFailure(err))

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RBAC enforces the role list of the route. It relies on Auth having run first.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()

		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		if isInternal(ctx) {
			next.ServeHTTP(writer, request)

			return
		}

		if m.permission == nil {
			deny(writer, scope, failure.ForbiddenError)

			return
		}

		_, permission := m.route(request)
		if m.permission.Skip || permission.Skip || len(permission.Permissions) == 0 {
			next.ServeHTTP(writer, request)

			return
		}

		role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
		if !slices.Contains(permission.Permissions, role) {
			scope.SetAttributes(map[string]any{
				"user_role":     role,
				"allowed_roles": permission.Permissions,
			})
			deny(writer, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

// APIKey admits internal callers presenting the configured key. Requests without the
// header continue as ordinary clients; a wrong key is refused outright.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()

		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		key := request.Header.Get(constant.RequestHeaderAPIKey)
		if key == constant.Empty {
			scope.SetAttribute("http.source", "client")
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttribute("http.source", "internal")

		if m.cfg.App.APIKey == constant.Empty || key != m.cfg.App.APIKey {
			deny(writer, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request.WithContext(context.WithValue(ctx, internalCall{}, true)))
	})
}
