package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/product-catalog/internal/config"
	"github.com/magabrotheeeer/product-catalog/internal/lib/jwt"
	"github.com/magabrotheeeer/product-catalog/internal/models"
	"github.com/magabrotheeeer/product-catalog/internal/services/auth"
	"github.com/magabrotheeeer/product-catalog/internal/services/catalog"
	"github.com/magabrotheeeer/product-catalog/internal/storage/memory"
)

func newTestRouter(t *testing.T, tokenTTL time.Duration) chi.Router {
	t.Helper()

	cfg := &config.Config{
		Env: "test",
		HTTPServer: config.HTTPServer{
			Port:        "3000",
			TimeoutHTTP: 5 * time.Second,
			IdleTimeout: 60 * time.Second,
		},
		JWTToken: config.JWTToken{
			JWTSecretKey: "test_secret_key_1234567890",
			TokenTTL:     tokenTTL,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	users := memory.NewUserStore()
	products := memory.NewProductStore(memory.SeedProducts()...)
	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authService := auth.NewService(users, jwtMaker)
	catalogService := catalog.NewService(products, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, authService, catalogService)
	return router
}

func doJSON(t *testing.T, router chi.Router, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	return got
}

func registerAndLogin(t *testing.T, router chi.Router) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/auth/register", "",
		map[string]any{"username": "alice", "password": "password123"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/auth/login", "",
		map[string]any{"username": "alice", "password": "password123"})
	require.Equal(t, http.StatusOK, rec.Code)

	token, ok := decodeBody(t, rec)["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func TestRoutes_RegisterDuplicateCasing(t *testing.T) {
	router := newTestRouter(t, time.Hour)

	rec := doJSON(t, router, http.MethodPost, "/auth/register", "",
		map[string]any{"username": "alice", "password": "password123"})
	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "User registered successfully", body["message"])

	rec = doJSON(t, router, http.MethodPost, "/auth/register", "",
		map[string]any{"username": "ALICE", "password": "password456"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Duplicate username", decodeBody(t, rec)["error"])
}

func TestRoutes_LoginResponses(t *testing.T) {
	router := newTestRouter(t, time.Hour)

	rec := doJSON(t, router, http.MethodPost, "/auth/register", "",
		map[string]any{"username": "alice", "password": "password123"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/auth/login", "",
		map[string]any{"username": "alice", "password": "password123"})
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "1h0m0s", body["expiresIn"])

	// неизвестное имя и неверный пароль дают одинаковые ответы
	recUnknown := doJSON(t, router, http.MethodPost, "/auth/login", "",
		map[string]any{"username": "ghost", "password": "password123"})
	recWrongPass := doJSON(t, router, http.MethodPost, "/auth/login", "",
		map[string]any{"username": "alice", "password": "password124"})
	assert.Equal(t, http.StatusUnauthorized, recUnknown.Code)
	assert.Equal(t, http.StatusUnauthorized, recWrongPass.Code)
	assert.Equal(t, recUnknown.Body.String(), recWrongPass.Body.String())
}

func TestRoutes_ProductsRequireToken(t *testing.T) {
	router := newTestRouter(t, time.Hour)

	for _, target := range []string{"/products", "/products/2"} {
		rec := doJSON(t, router, http.MethodGet, target, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Authentication required", decodeBody(t, rec)["error"])
	}

	rec := doJSON(t, router, http.MethodGet, "/products", "malformed.token.here", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Invalid token", decodeBody(t, rec)["error"])
}

func TestRoutes_ExpiredToken(t *testing.T) {
	router := newTestRouter(t, -time.Minute)

	token := registerAndLogin(t, router)

	rec := doJSON(t, router, http.MethodGet, "/products", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Invalid token", decodeBody(t, rec)["error"])
}

func TestRoutes_ProductFlow(t *testing.T) {
	router := newTestRouter(t, time.Hour)
	token := registerAndLogin(t, router)

	// стартовый каталог
	rec := doJSON(t, router, http.MethodGet, "/products", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all []models.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&all))
	require.Len(t, all, 3)

	// товар из сид-данных возвращается дословно
	rec = doJSON(t, router, http.MethodGet, "/products/2", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var tshirt models.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&tshirt))
	assert.Equal(t, models.Product{ID: 2, Name: "T-Shirt", Category: "Apparel", Price: 19.99, InStock: true}, tshirt)

	rec = doJSON(t, router, http.MethodGet, "/products/99", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// создание и фильтрация
	rec = doJSON(t, router, http.MethodPost, "/products", token,
		map[string]any{"id": 4, "name": "Headphones", "category": "electronics", "price": 49.99, "inStock": true})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/products?category=ELECTRONICS", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var filtered []models.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&filtered))
	require.Len(t, filtered, 2)
	assert.Equal(t, "Laptop", filtered[0].Name)
	assert.Equal(t, "Headphones", filtered[1].Name)

	// дубликаты
	rec = doJSON(t, router, http.MethodPost, "/products", token,
		map[string]any{"id": 4, "name": "Another", "category": "Toys", "price": 1.0, "inStock": true})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Duplicate product ID", decodeBody(t, rec)["error"])

	rec = doJSON(t, router, http.MethodPost, "/products", token,
		map[string]any{"id": 5, "name": "HEADPHONES", "category": "Electronics", "price": 59.99, "inStock": true})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Duplicate product name", decodeBody(t, rec)["error"])

	// неполное тело
	rec = doJSON(t, router, http.MethodPost, "/products", token,
		map[string]any{"id": 6, "name": "Mouse", "category": "Electronics"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_Health(t *testing.T) {
	router := newTestRouter(t, time.Hour)

	rec := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}
