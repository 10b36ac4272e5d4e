package openfoodfacts_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbodj/frigo/internal/config"
	"github.com/mbodj/frigo/internal/domain/models"
	"github.com/mbodj/frigo/pkg/clients/openfoodfacts"
)

func newTestClient(baseURL string) *openfoodfacts.APIClient {
	return openfoodfacts.NewClient(config.LookupConfig{BaseURL: baseURL, TimeoutSeconds: 2})
}

func TestLookupFoundProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/product/3017620422003", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":1,"product":{"product_name_fr":"Pâte à tartiner","product_name":"Nutella","quantity":"400g","image_url":"https://img.example/n.jpg"}}`)
	}))
	defer srv.Close()

	product, err := newTestClient(srv.URL).Lookup(context.Background(), "3017620422003")
	require.NoError(t, err)

	assert.True(t, product.Found)
	assert.Equal(t, "Pâte à tartiner", product.Name, "French name preferred")
	assert.Equal(t, "400g", product.Amount)
	assert.Equal(t, "https://img.example/n.jpg", product.ImageURL)
}

func TestLookupFallsBackToGenericName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":1,"product":{"product_name":"Oat Drink","quantity":"1L"}}`)
	}))
	defer srv.Close()

	product, err := newTestClient(srv.URL).Lookup(context.Background(), "7394376616013")
	require.NoError(t, err)

	assert.True(t, product.Found)
	assert.Equal(t, "Oat Drink", product.Name)
}

func TestLookupUnknownProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":0}`)
	}))
	defer srv.Close()

	product, err := newTestClient(srv.URL).Lookup(context.Background(), "0000000000000")
	require.NoError(t, err)
	assert.False(t, product.Found)
}

func TestLookupNotFoundStatusCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	product, err := newTestClient(srv.URL).Lookup(context.Background(), "0000000000000")
	require.NoError(t, err)
	assert.False(t, product.Found)
}

func TestLookupServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Lookup(context.Background(), "3017620422003")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrLookupUnavailable))
}

func TestLookupTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newTestClient(srv.URL).Lookup(context.Background(), "3017620422003")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrLookupUnavailable))
}

func TestLookupEmptyBarcode(t *testing.T) {
	product, err := newTestClient("https://unused.example").Lookup(context.Background(), "   ")
	require.NoError(t, err)
	assert.False(t, product.Found)
}
