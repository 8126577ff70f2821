package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"film-forge-api/internal/config"
	"film-forge-api/internal/interfaces/http/dto"
)

const (
	credentialPrefixLen    = 7
	credentialMinForPrefix = 20
)

// DebugHandler reports which provider credentials are configured.
type DebugHandler struct {
	cfg *config.Config
}

func NewDebugHandler(cfg *config.Config) *DebugHandler {
	return &DebugHandler{cfg: cfg}
}

func (h *DebugHandler) Debug(c *gin.Context) {
	p := h.cfg.Providers
	dto.OK(c, dto.DebugResponse{
		OpenAI:    credentialInfo(p.OpenAI.APIKey),
		Replicate: credentialInfo(p.Replicate.APIToken),
		Stripe:    credentialInfo(p.Stripe.SecretKey),
		Env:       h.cfg.App.Env,
		RequestID: dto.RequestID(c),
	})
}

// credentialInfo reveals a short prefix only for keys long enough that it stays harmless.
func credentialInfo(key string) dto.CredentialInfo {
	key = strings.TrimSpace(key)
	info := dto.CredentialInfo{Present: key != "", Length: len(key)}
	if len(key) >= credentialMinForPrefix {
		info.Prefix = key[:credentialPrefixLen]
	}
	return info
}
