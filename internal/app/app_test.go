package app_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-storefront-api/internal/app"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("KAFKA_BROKER", "")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	require.NoError(t, app.BuildApp(r, zap.NewNop()))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestSystemEndpoints(t *testing.T) {
	r := newTestRouter(t)

	t.Run("root_reports_service_info", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/", "")
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "storefront-api", body["name"])
		assert.Equal(t, "running", body["status"])
	})

	t.Run("health_is_up", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/health", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "UP", decodeBody(t, w)["status"])
	})

	t.Run("unknown_route_gets_error_envelope", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/nope", "")
		require.Equal(t, http.StatusNotFound, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "NOT_FOUND", body["error"])
		assert.Equal(t, "The requested resource was not found", body["message"])
	})

	t.Run("request_id_is_echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "req-abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-abc-123", w.Header().Get("X-Request-ID"))
	})
}

func TestProductLifecycle(t *testing.T) {
	r := newTestRouter(t)

	t.Run("catalog_is_seeded", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/products", "")
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		assert.Len(t, body["data"], 10)
	})

	t.Run("paginated_listing", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/products?page=2&pageSize=3", "")
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, float64(2), body["page"])
		assert.Equal(t, float64(3), body["pageSize"])
		assert.Equal(t, float64(10), body["totalItems"])
		assert.Equal(t, float64(4), body["totalPages"])
		assert.Len(t, body["data"], 3)
	})

	t.Run("create_read_update_delete", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/products",
			`{"name":"Desk Lamp","price":25.5,"rating":4.2,"category":"Home","stock":7}`)
		require.Equal(t, http.StatusCreated, w.Code)

		created := decodeBody(t, w)["data"].(map[string]any)
		id := int(created["id"].(float64))
		assert.Equal(t, "Home", created["category"])

		w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/products/%d", id), "")
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/v1/products/%d", id), `{"price":19.99}`)
		require.Equal(t, http.StatusOK, w.Code)
		updated := decodeBody(t, w)["data"].(map[string]any)
		assert.Equal(t, 19.99, updated["price"])
		assert.Equal(t, "Desk Lamp", updated["name"])

		w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/products/%d", id), "")
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/products/%d", id), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("validation_errors_surface_in_envelope", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/products", `{"name":"","price":10}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "VALIDATION_ERROR", body["error"])
		assert.Equal(t, "Product name cannot be empty", body["message"])
	})

	t.Run("categories_listing", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/products/categories/list", "")
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		categories, ok := body["data"].([]any)
		require.True(t, ok)
		assert.NotEmpty(t, categories)
	})
}

func TestCartFlow(t *testing.T) {
	r := newTestRouter(t)

	// Seeded product 1 is priced 99.99 with 50 in stock.
	w := doJSON(t, r, http.MethodPost, "/api/v1/cart/items", `{"productId":1,"quantity":2}`)
	require.Equal(t, http.StatusCreated, w.Code)
	item := decodeBody(t, w)["data"].(map[string]any)
	itemID := int(item["id"].(float64))
	assert.Equal(t, float64(2), item["quantity"])

	t.Run("detail_aggregates_totals", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/cart", "")
		require.Equal(t, http.StatusOK, w.Code)

		data := decodeBody(t, w)["data"].(map[string]any)
		assert.Equal(t, float64(2), data["totalItems"])
		assert.Equal(t, 199.98, data["totalPrice"])
	})

	t.Run("repeated_add_merges", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/cart/items", `{"productId":1,"quantity":3}`)
		require.Equal(t, http.StatusCreated, w.Code)

		merged := decodeBody(t, w)["data"].(map[string]any)
		assert.Equal(t, float64(itemID), merged["id"])
		assert.Equal(t, float64(5), merged["quantity"])
	})

	t.Run("add_beyond_stock_is_rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/cart/items", `{"productId":1,"quantity":50}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "INVALID_REQUEST", body["error"])
	})

	t.Run("unknown_product_is_rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/cart/items", `{"productId":9999,"quantity":1}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("update_quantity", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/v1/cart/items/%d", itemID), `{"quantity":1}`)
		require.Equal(t, http.StatusOK, w.Code)

		updated := decodeBody(t, w)["data"].(map[string]any)
		assert.Equal(t, float64(1), updated["quantity"])
	})

	t.Run("remove_item", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/cart/items/%d", itemID), "")
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/cart/items/%d", itemID), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("clear_is_idempotent", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, "/api/v1/cart", "")
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, http.MethodDelete, "/api/v1/cart", "")
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, http.MethodGet, "/api/v1/cart", "")
		data := decodeBody(t, w)["data"].(map[string]any)
		assert.Equal(t, float64(0), data["totalItems"])
	})
}
