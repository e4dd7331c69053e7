package rbac

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"agentdesk/internal/auth"

	"github.com/gin-gonic/gin"
)

func serve(t *testing.T, role, agentCode string, mw ...gin.HandlerFunc) int {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	handlers := append([]gin.HandlerFunc{func(c *gin.Context) {
		ctx := auth.WithIdentity(c.Request.Context(), "u", agentCode, role)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}}, mw...)
	handlers = append(handlers, func(c *gin.Context) { c.Status(200) })
	r.GET("/x", handlers...)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	return w.Code
}

func TestRequireAnyRole_AdminBypasses(t *testing.T) {
	code := serve(t, RoleAdmin, "1001", RequireAgentCode(), RequireAnyRole(RoleAgent))
	if code != 200 {
		t.Fatalf("expected 200, got %d", code)
	}
}

func TestRequireAnyRole_UnlistedRoleForbidden(t *testing.T) {
	code := serve(t, RoleSupervisor, "1001", RequireAgentCode(), RequireAnyRole(RoleAgent))
	if code != 403 {
		t.Fatalf("expected 403, got %d", code)
	}
}

func TestRequireAgentCode(t *testing.T) {
	code := serve(t, RoleAgent, "", RequireAgentCode(), RequireAnyRole(RoleAgent))
	if code != 401 {
		t.Fatalf("expected 401, got %d", code)
	}
}
