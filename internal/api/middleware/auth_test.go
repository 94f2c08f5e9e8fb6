package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func authedRequest(userID, role string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
	if userID != "" {
		r.Header.Set(HeaderUserID, userID)
	}
	if role != "" {
		r.Header.Set(HeaderUserRole, role)
	}
	return r
}

func TestAuth(t *testing.T) {
	var captured domain.Actor
	handler := Auth(nopLogger{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		require.True(t, ok)
		captured = actor
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("valid headers resolve the actor", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, authedRequest("42", "CUSTOMER"))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, domain.Actor{UserID: 42, Role: domain.RoleCustomer}, captured)
	})

	rejected := []struct {
		name   string
		userID string
		role   string
	}{
		{"missing user id", "", "CUSTOMER"},
		{"non-numeric user id", "abc", "CUSTOMER"},
		{"zero user id", "0", "CUSTOMER"},
		{"negative user id", "-5", "CUSTOMER"},
		{"missing role", "42", ""},
		{"unknown role", "42", "SUPERUSER"},
	}
	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, authedRequest(tc.userID, tc.role))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRequireRoles(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	desk := Auth(nopLogger{})(RequireRoles(nopLogger{}, domain.RoleAdmin, domain.RoleReceptionist)(next))

	t.Run("allowed roles pass", func(t *testing.T) {
		for _, role := range []string{"ADMIN", "RECEPTIONIST"} {
			rec := httptest.NewRecorder()
			desk.ServeHTTP(rec, authedRequest("1", role))
			assert.Equal(t, http.StatusNoContent, rec.Code, "role %s", role)
		}
	})

	t.Run("other roles are forbidden", func(t *testing.T) {
		for _, role := range []string{"EMPLOYEE", "CUSTOMER"} {
			rec := httptest.NewRecorder()
			desk.ServeHTTP(rec, authedRequest("1", role))
			assert.Equal(t, http.StatusForbidden, rec.Code, "role %s", role)
		}
	})

	t.Run("unauthenticated request never reaches the role check", func(t *testing.T) {
		bare := RequireRoles(nopLogger{}, domain.RoleAdmin)(next)
		rec := httptest.NewRecorder()
		bare.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
