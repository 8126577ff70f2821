package handler

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"film-forge-api/internal/config"
	"film-forge-api/internal/domain/entity"
	"film-forge-api/internal/domain/repository"
	"film-forge-api/internal/infrastructure/replicate"
	"film-forge-api/internal/infrastructure/webhook"
	"film-forge-api/internal/interfaces/http/dto"
	"film-forge-api/pkg/errors"
	"film-forge-api/pkg/logger"
	"film-forge-api/pkg/metrics"
)

const (
	maxWebhookBody        = 1 << 20
	stripeSignatureHeader = "Stripe-Signature"
)

// PurchaseEventParser verifies and decodes payment provider events.
type PurchaseEventParser interface {
	ParseWebhook(payload []byte, signature string) (*entity.PurchaseRecord, string, error)
}

// WebhookHandler receives signed provider callbacks. Once the signature is verified the
// delivery is acknowledged with 200 even if the record could not be stored, so the provider
// does not repeat work that already completed.
type WebhookHandler struct {
	replicateSecret string
	assets          repository.AssetRecordRepository
	purchases       repository.PurchaseRepository
	payments        PurchaseEventParser
	now             func() time.Time
}

func NewWebhookHandler(cfg *config.Config, assets repository.AssetRecordRepository, purchases repository.PurchaseRepository, payments PurchaseEventParser) *WebhookHandler {
	return &WebhookHandler{
		replicateSecret: cfg.Providers.Replicate.WebhookSecret,
		assets:          assets,
		purchases:       purchases,
		payments:        payments,
		now:             time.Now,
	}
}

// Replicate records a completed audio job.
// @Summary Audio job webhook
// @Tags Webhook
// @Accept json
// @Produce json
// @Param replicate-signature header string true "hex HMAC-SHA256 of the body"
// @Success 200 {object} dto.WebhookResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /webhook-replicate [post]
func (h *WebhookHandler) Replicate(c *gin.Context) {
	ctx := c.Request.Context()

	body, ok := readBody(c)
	if !ok {
		return
	}
	if err := webhook.VerifySignature(body, c.GetHeader(webhook.SignatureHeader), h.replicateSecret); err != nil {
		metrics.WebhookTotal.WithLabelValues("replicate", "rejected").Inc()
		logger.Warn(ctx, "webhook signature rejected", "source", "replicate", "reason", err.Error())
		dto.Error(c, http.StatusUnauthorized, errors.CodeSignatureInvalid, "invalid signature")
		return
	}

	var p replicate.Prediction
	if err := json.Unmarshal(body, &p); err != nil {
		metrics.WebhookTotal.WithLabelValues("replicate", "ignored").Inc()
		logger.Warn(ctx, "webhook payload unreadable", "source", "replicate", "error", err.Error())
		h.ack(c)
		return
	}

	audioURL := p.FirstOutputURL()
	if p.Status != entity.PredictionSucceeded || audioURL == "" {
		metrics.WebhookTotal.WithLabelValues("replicate", "ignored").Inc()
		logger.Info(ctx, "webhook ignored", "prediction", p.ID, "status", p.Status)
		h.ack(c)
		return
	}

	id := p.ID
	if id == "" {
		id = uuid.NewString()
	}
	// the body signature does not cover the query; attribution needs its own
	requestID, assetName := c.Query("requestId"), c.Query("asset")
	if err := webhook.VerifyCallback(c.Request.URL.Query(), h.replicateSecret); err != nil {
		logger.Warn(ctx, "webhook attribution unverified", "prediction", id, "reason", err.Error())
		requestID, assetName = "", ""
	}
	record := &entity.AudioAssetRecord{
		ID:        id,
		RequestID: requestID,
		AssetName: assetName,
		AudioURL:  audioURL,
		Model:     p.Model,
		Status:    p.Status,
		Outputs:   p.OutputURLs(),
		CreatedAt: h.now().UTC(),
	}
	h.store(c, "replicate", func() error { return h.assets.Create(ctx, record) }, "prediction", id)
	h.ack(c)
}

// Stripe records a completed checkout.
func (h *WebhookHandler) Stripe(c *gin.Context) {
	ctx := c.Request.Context()

	body, ok := readBody(c)
	if !ok {
		return
	}
	record, eventType, err := h.payments.ParseWebhook(body, c.GetHeader(stripeSignatureHeader))
	if err != nil {
		metrics.WebhookTotal.WithLabelValues("stripe", "rejected").Inc()
		logger.Warn(ctx, "webhook signature rejected", "source", "stripe", "reason", err.Error())
		dto.Error(c, http.StatusUnauthorized, errors.CodeSignatureInvalid, "invalid signature")
		return
	}
	if record == nil {
		metrics.WebhookTotal.WithLabelValues("stripe", "ignored").Inc()
		logger.Debug(ctx, "webhook ignored", "source", "stripe", "event", eventType)
		h.ack(c)
		return
	}

	h.store(c, "stripe", func() error { return h.purchases.Create(ctx, record) }, "session", record.ID)
	h.ack(c)
}

// store runs write and logs its failure; the response never depends on it.
func (h *WebhookHandler) store(c *gin.Context, source string, write func() error, idKey, id string) {
	ctx := c.Request.Context()
	err := write()
	switch {
	case err == nil:
		metrics.WebhookTotal.WithLabelValues(source, "stored").Inc()
		logger.Info(ctx, "webhook record stored", "source", source, idKey, id)
	case stderrors.Is(err, repository.ErrAlreadyExists):
		metrics.WebhookTotal.WithLabelValues(source, "duplicate").Inc()
		logger.Info(ctx, "webhook record already stored", "source", source, idKey, id)
	default:
		metrics.WebhookTotal.WithLabelValues(source, "store_failed").Inc()
		logger.Error(ctx, "webhook record not stored", err, "source", source, idKey, id)
	}
}

func (h *WebhookHandler) ack(c *gin.Context) {
	dto.OK(c, dto.WebhookResponse{Success: true, RequestID: dto.RequestID(c)})
}

func readBody(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		dto.BadRequest(c, "request body could not be read")
		return nil, false
	}
	return body, true
}
