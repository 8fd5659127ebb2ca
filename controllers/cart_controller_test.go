package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odualeSamsonSolomon/JoTech/cart"
	"github.com/odualeSamsonSolomon/JoTech/clients"
	apperrors "github.com/odualeSamsonSolomon/JoTech/errors"
	"github.com/odualeSamsonSolomon/JoTech/models"
)

// fakeOrderService satisfies checkout.OrderService.
type fakeOrderService struct {
	confirmation *models.OrderConfirmation
	err          error
	requests     []models.OrderRequest
}

func (f *fakeOrderService) PlaceOrder(ctx context.Context, req models.OrderRequest) (*models.OrderConfirmation, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.confirmation, nil
}

func catalogServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"products":[
			{"_id":"a","name":"Product A","price":1000,"stock":3},
			{"_id":"b","name":"Product B","price":500,"stock":1}
		]}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func cartRouter(t *testing.T, orders *fakeOrderService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := clients.NewCatalogClient(catalogServer(t).URL)
	cc := NewCartController(catalog, orders, func(sessionID string) cart.Storage {
		return cart.NewMemoryStorage()
	})

	r := gin.New()
	r.Use(apperrors.ErrorMiddleware())
	r.GET("/cart", cc.GetCart)
	r.POST("/cart/items", cc.AddItem)
	r.POST("/cart/checkout", cc.Checkout)
	return r
}

func doJSON(r *gin.Engine, method, path, session string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set("X-Session-ID", session)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type cartResponse struct {
	Success bool `json:"success"`
	Cart    struct {
		Items         []models.CartLine `json:"items"`
		TotalQuantity int               `json:"total_quantity"`
		TotalAmount   int64             `json:"total_amount"`
	} `json:"cart"`
}

func TestCartRequiresSessionHeader(t *testing.T) {
	r := cartRouter(t, &fakeOrderService{})
	w := doJSON(r, http.MethodGet, "/cart", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCartStartsEmpty(t *testing.T) {
	r := cartRouter(t, &fakeOrderService{})
	w := doJSON(r, http.MethodGet, "/cart", "s1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp cartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Cart.Items)
	assert.Equal(t, 0, resp.Cart.TotalQuantity)
}

func TestAddItemAccumulates(t *testing.T) {
	r := cartRouter(t, &fakeOrderService{})

	doJSON(r, http.MethodPost, "/cart/items", "s1", gin.H{"product_id": "a"})
	doJSON(r, http.MethodPost, "/cart/items", "s1", gin.H{"product_id": "a"})
	w := doJSON(r, http.MethodPost, "/cart/items", "s1", gin.H{"product_id": "b"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp cartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Cart.Items, 2)
	assert.Equal(t, 3, resp.Cart.TotalQuantity)
	assert.Equal(t, int64(2500), resp.Cart.TotalAmount)
}

func TestAddItemUnknownProductIsNoOp(t *testing.T) {
	r := cartRouter(t, &fakeOrderService{})

	w := doJSON(r, http.MethodPost, "/cart/items", "s1", gin.H{"product_id": "nope"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp cartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Cart.Items)
}

func TestSessionsAreIsolated(t *testing.T) {
	r := cartRouter(t, &fakeOrderService{})

	doJSON(r, http.MethodPost, "/cart/items", "s1", gin.H{"product_id": "a"})
	w := doJSON(r, http.MethodGet, "/cart", "s2", nil)

	var resp cartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Cart.Items)
}

func TestCheckoutSuccessEmptiesCart(t *testing.T) {
	orders := &fakeOrderService{
		confirmation: &models.OrderConfirmation{OrderNumber: "ORD-OK", TotalAmount: 1000},
	}
	r := cartRouter(t, orders)

	doJSON(r, http.MethodPost, "/cart/items", "s1", gin.H{"product_id": "a"})
	w := doJSON(r, http.MethodPost, "/cart/checkout", "s1", gin.H{
		"customer": gin.H{
			"name":    "Ada Obi",
			"email":   "ada@example.com",
			"phone":   "+2348000000000",
			"address": "12 Broad Street, Lagos",
		},
		"paymentMethod": "card",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ORD-OK")
	require.Len(t, orders.requests, 1)
	assert.Equal(t, int64(1000), orders.requests[0].Items[0].Subtotal)

	after := doJSON(r, http.MethodGet, "/cart", "s1", nil)
	var resp cartResponse
	require.NoError(t, json.Unmarshal(after.Body.Bytes(), &resp))
	assert.Empty(t, resp.Cart.Items)
}

func TestCheckoutEmptyCart(t *testing.T) {
	orders := &fakeOrderService{}
	r := cartRouter(t, orders)

	w := doJSON(r, http.MethodPost, "/cart/checkout", "s1", gin.H{
		"customer": gin.H{
			"name":    "Ada Obi",
			"email":   "ada@example.com",
			"phone":   "+2348000000000",
			"address": "12 Broad Street, Lagos",
		},
		"paymentMethod": "card",
	})

	assert.Equal(t, apperrors.ErrEmptyCart.Code, w.Code)
	assert.Contains(t, w.Body.String(), apperrors.ErrEmptyCart.Message)
	assert.Empty(t, orders.requests)
}

func TestCheckoutFailureKeepsCart(t *testing.T) {
	orders := &fakeOrderService{err: apperrors.ErrOrderTransport}
	r := cartRouter(t, orders)

	doJSON(r, http.MethodPost, "/cart/items", "s1", gin.H{"product_id": "a"})
	w := doJSON(r, http.MethodPost, "/cart/checkout", "s1", gin.H{
		"customer": gin.H{
			"name":    "Ada Obi",
			"email":   "ada@example.com",
			"phone":   "+2348000000000",
			"address": "12 Broad Street, Lagos",
		},
		"paymentMethod": "card",
	})

	assert.Equal(t, apperrors.ErrOrderTransport.Code, w.Code)

	after := doJSON(r, http.MethodGet, "/cart", "s1", nil)
	var resp cartResponse
	require.NoError(t, json.Unmarshal(after.Body.Bytes(), &resp))
	require.Len(t, resp.Cart.Items, 1)
	assert.Equal(t, 1, resp.Cart.Items[0].Qty)
}
