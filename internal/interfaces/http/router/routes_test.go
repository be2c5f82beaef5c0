package router

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/quinntest007-creator/QueueBlaze/internal/interfaces/http/handler"
	"github.com/stretchr/testify/assert"
)

// newTestEngine registers the routes with handlers that have no services.
// Only paths that never reach a service may be served.
func newTestEngine(guards AdminGuards) *gin.Engine {
	engine := gin.New()
	Setup(engine, Handlers{
		Health:     handler.NewHealthHandler(nil, "test"),
		Intake:     handler.NewIntakeHandler(nil),
		Storefront: handler.NewStorefrontHandler(nil, nil),
		Auth:       handler.NewAuthHandler(nil),
		Dashboard:  handler.NewDashboardHandler(nil),
		Product:    handler.NewProductHandler(nil),
		Order:      handler.NewOrderHandler(nil),
		Settings:   handler.NewSettingsHandler(nil),
	}, guards)
	return engine
}

func denyAll(c *gin.Context) {
	c.AbortWithStatus(http.StatusUnauthorized)
}

func TestSetup_RegistersRoutes(t *testing.T) {
	engine := newTestEngine(AdminGuards{Auth: denyAll})

	registered := make(map[string]bool)
	for _, r := range engine.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /health",
		"GET /api/products",
		"GET /api/settings",
		"POST /api/save-order",
		"POST /api/save-inquiry",
		"POST /api/admin/login",
		"POST /api/admin/logout",
		"GET /api/admin/me",
		"GET /api/admin/dashboard",
		"GET /api/admin/products",
		"GET /api/admin/products/options",
		"GET /api/admin/products/:id",
		"POST /api/admin/products",
		"PUT /api/admin/products/:id",
		"DELETE /api/admin/products/:id",
		"GET /api/admin/orders",
		"GET /api/admin/orders/:id",
		"PUT /api/admin/orders/:id",
		"DELETE /api/admin/orders/:id",
		"GET /api/admin/settings",
		"PUT /api/admin/settings",
	} {
		assert.True(t, registered[want], want)
	}
}

func TestSetup_AdminAreaIsGuarded(t *testing.T) {
	engine := newTestEngine(AdminGuards{Auth: denyAll})

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/admin/dashboard"},
		{http.MethodGet, "/api/admin/products"},
		{http.MethodDelete, "/api/admin/orders/1"},
		{http.MethodPut, "/api/admin/settings"},
		{http.MethodPost, "/api/admin/logout"},
	} {
		assert.Equal(t, http.StatusUnauthorized, serve(engine, tc.method, tc.path).Code, "%s %s", tc.method, tc.path)
	}
}

func TestSetup_LoginLimitOnlyOnLogin(t *testing.T) {
	limited := 0
	engine := newTestEngine(AdminGuards{
		Auth: denyAll,
		LoginLimit: func(c *gin.Context) {
			limited++
			c.AbortWithStatus(http.StatusTooManyRequests)
		},
	})

	assert.Equal(t, http.StatusTooManyRequests, serve(engine, http.MethodPost, "/api/admin/login").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(engine, http.MethodGet, "/api/admin/me").Code)
	assert.Equal(t, 1, limited)
}

func TestSetup_IntakeRejectsOtherMethods(t *testing.T) {
	engine := newTestEngine(AdminGuards{Auth: denyAll})

	for _, path := range []string{"/api/save-order", "/api/save-inquiry"} {
		w := serve(engine, http.MethodGet, path)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.JSONEq(t, `{"success":false,"error":"Invalid request"}`, w.Body.String())
	}
}
