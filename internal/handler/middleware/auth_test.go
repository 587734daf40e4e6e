//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vet-scheduler/internal/domain/user"
	"vet-scheduler/internal/handler/middleware"
	"vet-scheduler/internal/pkg/cookie"
	"vet-scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubValidator struct {
	identity usecase.Identity
	err      error
}

func (s stubValidator) ValidateToken(string) (usecase.Identity, error) {
	return s.identity, s.err
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	clinicID := int64(7)
	staff := usecase.Identity{UserID: uuid.New(), Role: user.RoleStaff, ClinicID: &clinicID}

	newRouter := func(v usecase.TokenValidator, min user.Role) *gin.Engine {
		m := middleware.NewAuthMiddleware(v)
		r := gin.New()
		r.GET("/x", m.RequireAuth(), m.RequireRoleAtLeast(min), func(c *gin.Context) {
			id, _ := middleware.GetUserID(c)
			clinic, ok := middleware.GetClinicID(c)
			c.JSON(http.StatusOK, gin.H{"user": id.String(), "clinic": clinic, "scoped": ok})
		})
		return r
	}
	do := func(r http.Handler, token string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("missing token", func(t *testing.T) {
		w := do(newRouter(stubValidator{identity: staff}, user.RoleOwner), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Access token required"}`, w.Body.String())
	})

	t.Run("invalid token", func(t *testing.T) {
		w := do(newRouter(stubValidator{err: assert.AnError}, user.RoleOwner), "bad")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("staff token carries its clinic", func(t *testing.T) {
		w := do(newRouter(stubValidator{identity: staff}, user.RoleStaff), "ok")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user":"`+staff.UserID.String()+`","clinic":7,"scoped":true}`, w.Body.String())
	})

	t.Run("web client cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: "ok"})
		newRouter(stubValidator{identity: staff}, user.RoleOwner).ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("role below the minimum", func(t *testing.T) {
		w := do(newRouter(stubValidator{identity: staff}, user.RoleAdmin), "ok")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
