package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error represents an application error
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error types
var (
	ErrNotFound       = New(http.StatusNotFound, "Not found", nil)
	ErrInternalServer = New(http.StatusInternalServerError, "Internal server error", nil)
)

// Checkout error types. These block a submission before any network call is
// made; the message is meant to be shown to the customer as-is.
var (
	ErrEmptyCart          = New(http.StatusBadRequest, "Your cart is empty", nil)
	ErrInvalidContact     = New(http.StatusBadRequest, "Name, email, phone and address are required", nil)
	ErrInvalidPayment     = New(http.StatusBadRequest, "Unsupported payment method", nil)
	ErrSubmissionInFlight = New(http.StatusConflict, "An order submission is already in progress", nil)
)

// Order service outcome types. Rejections carry the service-provided message;
// transport failures get a generic connectivity message. In both cases the
// cart is left untouched so the customer can retry.
var (
	ErrOrderRejected  = New(http.StatusBadRequest, "Failed to place order", nil)
	ErrOrderTransport = New(http.StatusServiceUnavailable, "Connection error, please try again", nil)
)

// Catalog / stock error types
var (
	ErrCatalogUnavailable = New(http.StatusServiceUnavailable, "Catalog service unavailable", nil)
	ErrInsufficientStock  = New(http.StatusBadRequest, "Insufficient stock", nil)
)

// CodeOf extracts the HTTP status carried by an application error, falling
// back to 500 for anything else.
func CodeOf(err error) int {
	var appErr *Error
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// ErrorMiddleware converts errors attached to the gin context into the
// {success, error} JSON contract. Handlers report failures with c.Error and
// leave the response to this middleware; anything that is not an application
// Error is logged and hidden behind a generic message.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *Error
		if !stderrors.As(err, &appErr) {
			zap.L().Error("Unhandled error", zap.String("path", c.Request.URL.Path), zap.Error(err))
			appErr = ErrInternalServer
		}

		c.JSON(appErr.Code, gin.H{"success": false, "error": appErr.Message})
		c.Abort()
	}
}
