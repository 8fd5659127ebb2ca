package controllers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/odualeSamsonSolomon/JoTech/cart"
	"github.com/odualeSamsonSolomon/JoTech/checkout"
	"github.com/odualeSamsonSolomon/JoTech/clients"
	apperrors "github.com/odualeSamsonSolomon/JoTech/errors"
	"github.com/odualeSamsonSolomon/JoTech/models"
)

// session pairs one cart store with its checkout orchestrator; the
// orchestrator's in-flight guard is per cart, so the pairing is fixed.
type session struct {
	store    *cart.Store
	checkout *checkout.Orchestrator
}

// CartController exposes the session cart over HTTP. Sessions are identified
// by the X-Session-ID header; each gets its own durable storage slot.
type CartController struct {
	catalog    *clients.CatalogClient
	orders     checkout.OrderService
	newStorage func(sessionID string) cart.Storage

	mu       sync.Mutex
	sessions map[string]*session
}

func NewCartController(
	catalog *clients.CatalogClient,
	orders checkout.OrderService,
	newStorage func(sessionID string) cart.Storage,
) *CartController {
	return &CartController{
		catalog:    catalog,
		orders:     orders,
		newStorage: newStorage,
		sessions:   make(map[string]*session),
	}
}

// session returns the live session for id, reloading persisted state on first
// touch.
func (cc *CartController) session(c *gin.Context, id string) *session {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	if sess, ok := cc.sessions[id]; ok {
		return sess
	}

	store := cart.NewStore(cc.newStorage(id))
	store.Load(c.Request.Context())
	sess := &session{
		store:    store,
		checkout: checkout.NewOrchestrator(store, cc.orders),
	}
	cc.sessions[id] = sess
	return sess
}

func sessionID(c *gin.Context) (string, bool) {
	id := c.GetHeader("X-Session-ID")
	if id == "" {
		c.Error(apperrors.New(http.StatusBadRequest, "X-Session-ID header is required", nil))
		return "", false
	}
	return id, true
}

func cartPayload(store *cart.Store) gin.H {
	return gin.H{
		"items":          store.Lines(),
		"total_quantity": store.TotalQuantity(),
		"total_amount":   store.TotalAmount(),
	}
}

// GetCart returns the current cart contents and totals.
func (cc *CartController) GetCart(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	sess := cc.session(c, id)
	c.JSON(http.StatusOK, gin.H{"success": true, "cart": cartPayload(sess.store)})
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// AddItem adds one unit of a product, validated against the live catalog.
// Unknown products and exhausted stock are silent no-ops by design of the
// storefront, so the response is always the resulting cart.
func (cc *CartController) AddItem(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.New(http.StatusBadRequest, "Invalid payload", err))
		return
	}

	// A degraded catalog (stale or fallback) is still usable; the client
	// logs the condition itself.
	products, _ := cc.catalog.FetchProducts(c.Request.Context())
	catalog := models.BuildCatalog(products)

	sess := cc.session(c, id)
	sess.store.AddItem(c.Request.Context(), req.ProductID, catalog)

	c.JSON(http.StatusOK, gin.H{"success": true, "cart": cartPayload(sess.store)})
}

type checkoutRequest struct {
	Customer      models.Customer `json:"customer"`
	PaymentMethod string          `json:"paymentMethod"`
}

// Checkout submits the session cart as an order.
func (cc *CartController) Checkout(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.New(http.StatusBadRequest, "Invalid payload", err))
		return
	}

	sess := cc.session(c, id)
	confirmation, err := sess.checkout.Submit(c.Request.Context(), req.Customer, req.PaymentMethod)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": confirmation})
}
