package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"film-forge-api/internal/domain/entity"
	"film-forge-api/internal/interfaces/http/dto"
)

// CheckoutCreator creates hosted checkout sessions.
type CheckoutCreator interface {
	CreateSession(ctx context.Context, priceID string) (*entity.CheckoutSession, error)
}

type CheckoutHandler struct {
	checkout CheckoutCreator
}

func NewCheckoutHandler(checkout CheckoutCreator) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// Create starts a checkout. A priceId containing "lifetime" is a one-time payment,
// anything else a subscription.
func (h *CheckoutHandler) Create(c *gin.Context) {
	var req dto.CheckoutRequest
	if !bind(c, &req) {
		return
	}

	session, err := h.checkout.CreateSession(c.Request.Context(), req.PriceID)
	if err != nil {
		respondError(c, err, "failed to create checkout session")
		return
	}
	dto.OK(c, dto.CheckoutResponse{
		URL:       session.URL,
		SessionID: session.ID,
		Mode:      session.Mode,
		RequestID: dto.RequestID(c),
	})
}
