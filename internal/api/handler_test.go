package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"maropost_fixtures/internal/cache"
	"maropost_fixtures/internal/config"
	"maropost_fixtures/internal/generator"
	"maropost_fixtures/models/maropost"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, maropost.Dataset) {
	t.Helper()
	now := time.Date(2025, 2, 2, 10, 0, 0, 0, time.UTC)
	ds := generator.NewWithFaker(gofakeit.New(4), now, config.Default().Dataset).BuildDataset()

	store, err := NewStore(ds, cache.Options{ShardCount: 4})
	require.NoError(t, err)
	t.Cleanup(store.Close)

	srv := httptest.NewServer(NewRouter(store, zerolog.Nop()))
	t.Cleanup(srv.Close)
	return srv, ds
}

func get(t *testing.T, url string) (int, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	status, body := get(t, srv.URL+"/health")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", string(body))
}

func TestListCollections(t *testing.T) {
	srv, ds := newTestServer(t)

	tests := []struct {
		key  string
		want int
	}{
		{key: maropost.OrdersKey, want: len(ds.Orders)},
		{key: maropost.CustomersKey, want: len(ds.Customers)},
		{key: maropost.ProductsKey, want: len(ds.Products)},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			status, body := get(t, srv.URL+"/"+tt.key)
			require.Equal(t, http.StatusOK, status)

			var records []json.RawMessage
			require.NoError(t, json.Unmarshal(body, &records))
			assert.Len(t, records, tt.want)
		})
	}
}

func TestGetRecord(t *testing.T) {
	srv, ds := newTestServer(t)

	status, body := get(t, srv.URL+"/"+maropost.OrdersKey+"/"+ds.Orders[3].OrderID)
	require.Equal(t, http.StatusOK, status)
	var order maropost.Order
	require.NoError(t, json.Unmarshal(body, &order))
	assert.Equal(t, ds.Orders[3].OrderID, order.OrderID)
	assert.True(t, ds.Orders[3].GrandTotal.Equal(order.GrandTotal))

	status, body = get(t, srv.URL+"/"+maropost.ProductsKey+"/42")
	require.Equal(t, http.StatusOK, status)
	var product maropost.Product
	require.NoError(t, json.Unmarshal(body, &product))
	assert.Equal(t, 42, product.ProductID)
}

func TestGetRecordErrors(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{name: "unknown collection list", path: "/maropost-invoices", status: http.StatusNotFound},
		{name: "unknown collection item", path: "/maropost-invoices/1", status: http.StatusNotFound},
		{name: "unknown id", path: "/maropost-customers/C999999", status: http.StatusNotFound},
		{name: "invalid id", path: "/maropost-customers/C0%3B1", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := get(t, srv.URL+tt.path)
			assert.Equal(t, tt.status, status)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(body, &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}
