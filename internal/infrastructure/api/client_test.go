package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&Config{
		BaseURL:        server.URL,
		TimeoutSeconds: 5,
		UserAgent:      "console-test/1.0",
	})
	require.NoError(t, err)
	return client
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := &Config{BaseURL: "http://localhost:8080/api/v1", TimeoutSeconds: 30}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing base URL", func(t *testing.T) {
		cfg := &Config{TimeoutSeconds: 30}
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		cfg := &Config{BaseURL: "http://localhost:8080", TimeoutSeconds: 0}
		assert.Error(t, cfg.Validate())
	})
}

func TestClientDecodesEnvelope(t *testing.T) {
	productID := uuid.New()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/merchants/products/"+productID.String(), r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		assert.Equal(t, "console-test/1.0", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"id":"` + productID.String() + `","title":"Walnut Desk","status":"APPROVED"}}`))
	})

	product, err := client.GetProduct(context.Background(), "token-123", productID)
	require.NoError(t, err)
	assert.Equal(t, productID, product.ID)
	assert.Equal(t, "Walnut Desk", product.Title)
	assert.Equal(t, "APPROVED", string(product.Status))
}

func TestClientPaginationMeta(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("page_size"))
		assert.Equal(t, "desk", r.URL.Query().Get("search"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":[],"meta":{"total":42,"page":2,"page_size":10,"total_pages":5}}`))
	})

	products, meta, err := client.ListProducts(context.Background(), "token-123", ListOptions{Page: 2, PageSize: 10, Search: "desk"})
	require.NoError(t, err)
	assert.Empty(t, products)
	require.NotNil(t, meta)
	assert.Equal(t, int64(42), meta.Total)
	assert.Equal(t, 5, meta.TotalPages)
}

func TestClientErrorMapping(t *testing.T) {
	t.Run("API error body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"success":false,"error":{"code":"VALIDATION_ERROR","message":"title is required"}}`))
		})

		_, err := client.GetProduct(context.Background(), "token-123", uuid.New())
		require.Error(t, err)

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)
		assert.Equal(t, "title is required", apiErr.Message)
	})

	t.Run("404 maps through IsNotFound", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"error":{"code":"NOT_FOUND","message":"product not found"}}`))
		})

		_, err := client.GetProduct(context.Background(), "token-123", uuid.New())
		assert.True(t, IsNotFound(err))
		assert.False(t, IsUnauthorized(err))
	})

	t.Run("401 maps through IsUnauthorized", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"error":{"code":"UNAUTHORIZED","message":"token expired"}}`))
		})

		_, err := client.GetWallet(context.Background(), "stale-token")
		assert.True(t, IsUnauthorized(err))
	})

	t.Run("non-JSON error body still yields an Error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream timeout"))
		})

		_, err := client.GetWallet(context.Background(), "token-123")
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.Empty(t, apiErr.Code)
	})
}

func TestClientTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client, err := NewClient(&Config{BaseURL: server.URL, TimeoutSeconds: 5})
	require.NoError(t, err)
	server.Close()

	_, err = client.GetWallet(context.Background(), "token-123")
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestClientPublicEndpointsSendNoToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":[]}`))
	})

	_, _, err := client.BrowseProducts(context.Background(), ListOptions{})
	assert.NoError(t, err)
}

func TestClientSubmitChangeRequest(t *testing.T) {
	requestID := uuid.New()
	entityID := uuid.New()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/merchants/change-requests", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"data":{"id":"` + requestID.String() + `","entity_type":"PRODUCT","entity_id":"` + entityID.String() + `","requested_changes":{"title":"New Title"},"reason":"typo fix","status":"PENDING"}}`))
	})

	created, err := client.CreateChangeRequest(context.Background(), "token-123", ChangeRequestBody{
		EntityType:       "PRODUCT",
		EntityID:         entityID,
		RequestedChanges: map[string]any{"title": "New Title"},
		Reason:           "typo fix",
	})
	require.NoError(t, err)
	assert.Equal(t, requestID, created.ID)
	assert.Equal(t, "PENDING", string(created.Status))
	assert.Equal(t, "New Title", created.RequestedChanges["title"])
}
