package openfoodfacts

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mbodj/frigo/internal/config"
	"github.com/mbodj/frigo/internal/domain/models"
)

// Client exposes the product database lookup used by the scan flow.
type Client interface {
	Lookup(ctx context.Context, barcode string) (*Product, error)
}

// Product is the advisory suggestion returned for a scanned barcode.
type Product struct {
	Found    bool
	Name     string
	Amount   string
	ImageURL string
}

// APIClient is a resty-backed implementation of Client against the Open Food
// Facts v2 API.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds an Open Food Facts client using the provided configuration values.
func NewClient(cfg config.LookupConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("User-Agent", "frigo/1.0 (fridge inventory)").
		SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)

	return &APIClient{httpClient: restyClient}
}

// productResponse mirrors the subset of the v2 product payload we consume.
type productResponse struct {
	Status  int `json:"status"`
	Product *struct {
		ProductNameFR string `json:"product_name_fr"`
		ProductName   string `json:"product_name"`
		Quantity      string `json:"quantity"`
		ImageURL      string `json:"image_url"`
	} `json:"product"`
}

// Lookup queries the product database for a barcode. A product that is simply
// absent yields Found=false and no error; an error is returned only for
// transport or server failures, and callers treat it the same as not found.
func (c *APIClient) Lookup(ctx context.Context, barcode string) (*Product, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return &Product{}, nil
	}

	result := new(productResponse)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(result).
		Get(fmt.Sprintf("/api/v2/product/%s", barcode))
	if err != nil {
		return nil, fmt.Errorf("%w: product %s: %v", models.ErrLookupUnavailable, barcode, err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return &Product{}, nil
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: product %s: unexpected status %d", models.ErrLookupUnavailable, barcode, resp.StatusCode())
	}

	if result.Status != 1 || result.Product == nil {
		return &Product{}, nil
	}

	name := result.Product.ProductNameFR
	if name == "" {
		name = result.Product.ProductName
	}

	return &Product{
		Found:    true,
		Name:     name,
		Amount:   result.Product.Quantity,
		ImageURL: result.Product.ImageURL,
	}, nil
}
