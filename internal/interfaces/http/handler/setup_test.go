package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	appcatalog "github.com/quinntest007-creator/QueueBlaze/internal/application/catalog"
	appidentity "github.com/quinntest007-creator/QueueBlaze/internal/application/identity"
	"github.com/quinntest007-creator/QueueBlaze/internal/application/intake"
	apporder "github.com/quinntest007-creator/QueueBlaze/internal/application/order"
	appsettings "github.com/quinntest007-creator/QueueBlaze/internal/application/settings"
	"github.com/quinntest007-creator/QueueBlaze/internal/infrastructure/auth"
	"github.com/quinntest007-creator/QueueBlaze/internal/infrastructure/cache"
	"github.com/quinntest007-creator/QueueBlaze/internal/infrastructure/config"
	"github.com/quinntest007-creator/QueueBlaze/internal/infrastructure/persistence"
	"github.com/quinntest007-creator/QueueBlaze/internal/interfaces/http/dto"
	"github.com/quinntest007-creator/QueueBlaze/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "s3cret-pass"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// testEnv wires the handlers to real services over an in-memory SQLite database
type testEnv struct {
	db       *gorm.DB
	store    *cache.InMemoryCounterStore
	jwt      *auth.JWTService
	products *appcatalog.ProductService
	orders   *apporder.OrderService
	settings *appsettings.SettingsService
	auth     *appidentity.AuthService
	engine   *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	database := persistence.NewDatabaseFromGorm(db)
	require.NoError(t, database.AutoMigrate())

	store := cache.NewInMemoryCounterStore()
	t.Cleanup(func() { _ = store.Close() })

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-32-characters-long",
		Expiration: time.Hour,
		Issuer:     "queueblaze-test",
	})
	revocations := auth.NewTokenRevocationList(store)

	productRepo := persistence.NewGormProductRepository(db)
	orderRepo := persistence.NewGormOrderRepository(db)
	settingsRepo := persistence.NewGormSettingsRepository(db)
	userRepo := persistence.NewGormAdminUserRepository(db)

	env := &testEnv{
		db:       db,
		store:    store,
		jwt:      jwtService,
		products: appcatalog.NewProductService(productRepo, nil, nil),
		orders:   apporder.NewOrderService(orderRepo, nil),
		settings: appsettings.NewSettingsService(settingsRepo, nil),
		auth:     appidentity.NewAuthService(userRepo, jwtService, revocations, nil),
	}
	intakeService := intake.NewService(orderRepo, intake.NewInquiryRateLimiter(store, 3, time.Hour), nil)
	dashboard := apporder.NewDashboardService(productRepo, orderRepo)

	_, err = env.auth.EnsureAdmin(t.Context(), testAdminUser, testAdminPassword)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/health", NewHealthHandler(database, "test").Health)

	api := r.Group("/api")
	intakeHandler := NewIntakeHandler(intakeService)
	api.POST("/save-order", intakeHandler.SaveOrder)
	api.POST("/save-inquiry", intakeHandler.SaveInquiry)
	api.GET("/save-inquiry", intakeHandler.InvalidMethod)

	storefront := NewStorefrontHandler(env.products, env.settings)
	api.GET("/products", storefront.ListProducts)
	api.GET("/settings", storefront.GetSettings)

	authHandler := NewAuthHandler(env.auth)
	api.POST("/admin/login", authHandler.Login)

	admin := api.Group("/admin")
	admin.Use(middleware.JWTAuth(middleware.JWTMiddlewareConfig{Validator: jwtService, Revocations: revocations}))
	admin.POST("/logout", authHandler.Logout)
	admin.GET("/me", authHandler.Me)
	admin.GET("/dashboard", NewDashboardHandler(dashboard).Get)

	productHandler := NewProductHandler(env.products)
	admin.GET("/products", productHandler.List)
	admin.GET("/products/options", productHandler.Options)
	admin.GET("/products/:id", productHandler.Get)
	admin.POST("/products", productHandler.Create)
	admin.PUT("/products/:id", productHandler.Update)
	admin.DELETE("/products/:id", productHandler.Delete)

	orderHandler := NewOrderHandler(env.orders)
	admin.GET("/orders", orderHandler.List)
	admin.GET("/orders/:id", orderHandler.Get)
	admin.PUT("/orders/:id", orderHandler.Update)
	admin.DELETE("/orders/:id", orderHandler.Delete)

	settingsHandler := NewSettingsHandler(env.settings)
	admin.GET("/settings", settingsHandler.Get)
	admin.PUT("/settings", settingsHandler.Update)

	env.engine = r
	return env
}

// token logs in as the bootstrap admin
func (e *testEnv) token(t *testing.T) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/admin/login", "",
		map[string]string{"username": testAdminUser, "password": testAdminPassword})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data appidentity.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data.AccessToken
}

// do sends a JSON request. body may be nil, a string sent verbatim, or a value to marshal.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return e.send(req)
}

func (e *testEnv) send(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func decodeIntake(t *testing.T, w *httptest.ResponseRecorder) dto.IntakeResponse {
	t.Helper()
	var resp dto.IntakeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

// decodeData unmarshals the data field of an admin envelope into out
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) dto.Response {
	t.Helper()
	var resp struct {
		dto.Response
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	if out != nil && len(resp.Data) > 0 {
		require.NoError(t, json.Unmarshal(resp.Data, out))
	}
	return resp.Response
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	resp := decodeData(t, w, nil)
	require.NotNil(t, resp.Error, w.Body.String())
	return resp.Error.Code
}
