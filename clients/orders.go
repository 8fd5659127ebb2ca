package clients

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	apperrors "github.com/odualeSamsonSolomon/JoTech/errors"
	"github.com/odualeSamsonSolomon/JoTech/models"
)

type orderResponse struct {
	Success bool                      `json:"success"`
	Order   *models.OrderConfirmation `json:"order"`
	Error   string                    `json:"error"`
}

// OrderClient submits orders to POST /api/orders. It satisfies
// checkout.OrderService.
type OrderClient struct {
	http *resty.Client
}

func NewOrderClient(baseURL string) *OrderClient {
	return &OrderClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(15 * time.Second),
	}
}

// PlaceOrder performs a single submission with no retries. A reachable
// service that declines the order yields ErrOrderRejected carrying the
// service-provided message; a network failure yields ErrOrderTransport with a
// generic connectivity message.
func (c *OrderClient) PlaceOrder(ctx context.Context, req models.OrderRequest) (*models.OrderConfirmation, error) {
	var ok orderResponse
	var rejected orderResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&ok).
		SetError(&rejected).
		Post("/api/orders")
	if err != nil {
		zap.L().Warn("orders: submission transport failure", zap.Error(err))
		return nil, apperrors.ErrOrderTransport
	}

	if !resp.IsSuccess() || !ok.Success {
		message := rejected.Error
		if message == "" {
			message = ok.Error
		}
		if message == "" {
			message = apperrors.ErrOrderRejected.Message
		}
		code := resp.StatusCode()
		if resp.IsSuccess() {
			// success:false inside a 2xx envelope is still a rejection.
			code = apperrors.ErrOrderRejected.Code
		}
		return nil, apperrors.New(code, message, apperrors.ErrOrderRejected)
	}

	if ok.Order == nil {
		// Malformed success body; treat it like a transport fault so the
		// cart is preserved.
		zap.L().Warn("orders: success response without order payload")
		return nil, apperrors.ErrOrderTransport
	}
	return ok.Order, nil
}
