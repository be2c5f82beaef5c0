package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quinntest007-creator/QueueBlaze/internal/interfaces/http/handler"
)

// Handlers holds every HTTP handler served by the API
type Handlers struct {
	Health     *handler.HealthHandler
	Intake     *handler.IntakeHandler
	Storefront *handler.StorefrontHandler
	Auth       *handler.AuthHandler
	Dashboard  *handler.DashboardHandler
	Product    *handler.ProductHandler
	Order      *handler.OrderHandler
	Settings   *handler.SettingsHandler
}

// AdminGuards are the middleware protecting the admin area
type AdminGuards struct {
	// Auth rejects requests without a valid admin token
	Auth gin.HandlerFunc
	// LoginLimit throttles login attempts; nil disables it
	LoginLimit gin.HandlerFunc
}

// StorefrontRoutes returns the public catalog and intake routes.
// Intake paths answer any method other than POST with "Invalid request".
func StorefrontRoutes(h Handlers) *DomainGroup {
	g := NewDomainGroup("storefront", "")
	g.GET("/products", h.Storefront.ListProducts)
	g.GET("/settings", h.Storefront.GetSettings)

	g.POST("/save-order", h.Intake.SaveOrder)
	g.POST("/save-inquiry", h.Intake.SaveInquiry)
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		g.Handle(method, "/save-order", h.Intake.InvalidMethod)
		g.Handle(method, "/save-inquiry", h.Intake.InvalidMethod)
	}
	return g
}

// AdminRoutes returns the admin login and the authenticated admin area
func AdminRoutes(h Handlers, guards AdminGuards) *DomainGroup {
	admin := NewDomainGroup("admin", "/admin")

	login := admin.Group("login", "")
	if guards.LoginLimit != nil {
		login.POST("/login", guards.LoginLimit, h.Auth.Login)
	} else {
		login.POST("/login", h.Auth.Login)
	}

	secured := admin.Group("secured", "").Use(guards.Auth)
	secured.POST("/logout", h.Auth.Logout)
	secured.GET("/me", h.Auth.Me)
	secured.GET("/dashboard", h.Dashboard.Get)

	secured.Group("products", "/products").
		GET("", h.Product.List).
		GET("/options", h.Product.Options).
		GET("/:id", h.Product.Get).
		POST("", h.Product.Create).
		PUT("/:id", h.Product.Update).
		DELETE("/:id", h.Product.Delete)

	secured.Group("orders", "/orders").
		GET("", h.Order.List).
		GET("/:id", h.Order.Get).
		PUT("/:id", h.Order.Update).
		DELETE("/:id", h.Order.Delete)

	secured.Group("settings", "/settings").
		GET("", h.Settings.Get).
		PUT("", h.Settings.Update)

	return admin
}

// Setup registers the health check and every API route on engine
func Setup(engine *gin.Engine, h Handlers, guards AdminGuards) {
	engine.GET("/health", h.Health.Health)

	NewRouter(engine).
		Register(StorefrontRoutes(h)).
		Register(AdminRoutes(h, guards)).
		Setup()
}
