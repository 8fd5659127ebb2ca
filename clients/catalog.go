// Package clients holds the HTTP collaborators the storefront session talks
// to: the read-only catalog service and the order submission endpoint.
package clients

import (
	"context"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	apperrors "github.com/odualeSamsonSolomon/JoTech/errors"
	"github.com/odualeSamsonSolomon/JoTech/models"
)

type productsResponse struct {
	Success  bool             `json:"success"`
	Products []models.Product `json:"products"`
	Error    string           `json:"error"`
}

// CatalogClient fetches the product list from GET /api/products. It never
// hard-fails: on a transport or service error it serves the last successful
// fetch if there is one, else the built-in fallback list, alongside
// ErrCatalogUnavailable so the caller can log the degradation.
type CatalogClient struct {
	http *resty.Client

	mu       sync.Mutex
	lastGood []models.Product
}

func NewCatalogClient(baseURL string) *CatalogClient {
	return &CatalogClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10 * time.Second),
	}
}

// FetchProducts returns the current catalog as a product list. The returned
// slice is always usable; the error, when non-nil, wraps
// ErrCatalogUnavailable and signals the list is cached or fallback data.
func (c *CatalogClient) FetchProducts(ctx context.Context) ([]models.Product, error) {
	var out productsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/products")

	if err != nil || !resp.IsSuccess() || !out.Success {
		zap.L().Warn("catalog: fetch failed, using stale or fallback products",
			zap.Error(err),
			zap.String("service_error", out.Error),
		)
		return c.degraded(), apperrors.ErrCatalogUnavailable
	}

	c.mu.Lock()
	c.lastGood = out.Products
	c.mu.Unlock()
	return out.Products, nil
}

func (c *CatalogClient) degraded() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.lastGood) > 0 {
		return c.lastGood
	}
	return FallbackProducts()
}
