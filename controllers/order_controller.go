package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/odualeSamsonSolomon/JoTech/errors"
	"github.com/odualeSamsonSolomon/JoTech/models"
	"github.com/odualeSamsonSolomon/JoTech/services"
)

type OrderController struct {
	svc services.OrderPlacer
}

func NewOrderController(svc services.OrderPlacer) *OrderController {
	return &OrderController{svc: svc}
}

// CreateOrder accepts an OrderRequest and responds with the
// {success, order, error} envelope the storefront expects. Failures are
// attached to the context for the error middleware to render.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.New(http.StatusBadRequest, "Invalid order payload", err))
		return
	}

	order, err := oc.svc.PlaceOrder(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"order": models.OrderConfirmation{
			OrderNumber: order.OrderNumber,
			TotalAmount: order.TotalAmount,
		},
	})
}

// GetOrder looks an order up by its customer-facing order number.
func (oc *OrderController) GetOrder(c *gin.Context) {
	order, err := oc.svc.FindOrder(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}
