package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SPA-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SPA-AppointmentService/internal/domain"
)

// The gateway terminates authentication and forwards the caller identity
// in these headers. The service trusts them as-is.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

type actorKey struct{}

// Logger is the logging interface.
type Logger interface {
	Warn(format string, v ...interface{})
}

// ActorFromContext returns the authenticated actor stored by Auth.
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(domain.Actor)
	return actor, ok
}

// Auth resolves the caller identity headers into a domain.Actor and
// rejects requests without a valid one.
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := strconv.ParseInt(r.Header.Get(HeaderUserID), 10, 64)
			if err != nil || userID <= 0 {
				logger.Warn("auth: missing or invalid %s header", HeaderUserID)
				handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			role := domain.Role(r.Header.Get(HeaderUserRole))
			if !role.IsValid() {
				logger.Warn("auth: missing or invalid %s header", HeaderUserRole)
				handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			actor := domain.Actor{UserID: userID, Role: role}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey{}, actor)))
		})
	}
}

// RequireRoles allows only the listed roles through. Used for desk and
// admin operations.
func RequireRoles(logger Logger, roles ...domain.Role) func(http.Handler) http.Handler {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromContext(r.Context())
			if !ok {
				handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if _, ok := allowed[actor.Role]; !ok {
				logger.Warn("auth: user=%d role=%s denied", actor.UserID, actor.Role)
				handlers.RespondForbidden(w, "insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
