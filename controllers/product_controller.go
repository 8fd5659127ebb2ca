package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/odualeSamsonSolomon/JoTech/errors"
	"github.com/odualeSamsonSolomon/JoTech/repository"
)

type ProductController struct {
	repo repository.ProductRepository
}

func NewProductController(repo repository.ProductRepository) *ProductController {
	return &ProductController{repo: repo}
}

// GetProducts returns the full catalog as {success, products}.
func (pc *ProductController) GetProducts(c *gin.Context) {
	products, err := pc.repo.FindAll(c.Request.Context())
	if err != nil {
		zap.L().Error("products: failed to load catalog", zap.Error(err))
		c.Error(apperrors.New(http.StatusInternalServerError, "Failed to load products", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

// GetProduct returns one product by ID.
func (pc *ProductController) GetProduct(c *gin.Context) {
	product, err := pc.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err == apperrors.ErrNotFound {
		c.Error(apperrors.New(http.StatusNotFound, "Product not found", apperrors.ErrNotFound))
		return
	}
	if err != nil {
		zap.L().Error("products: failed to load product", zap.String("id", c.Param("id")), zap.Error(err))
		c.Error(apperrors.New(http.StatusInternalServerError, "Failed to load product", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}
