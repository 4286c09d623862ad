package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/chartwheel-backend-go/internal/middleware"
	"github.com/jengzang/chartwheel-backend-go/pkg/response"
)

// AuthHandler issues API tokens. Intended for single-user deployments where
// the instance is reached over a private network; the shared secret in the
// request body is the only credential.
type AuthHandler struct {
	secret string
	ttl    time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(secret string, ttl time.Duration) *AuthHandler {
	return &AuthHandler{secret: secret, ttl: ttl}
}

type tokenRequest struct {
	Secret  string `json:"secret" binding:"required"`
	Subject string `json:"subject"`
}

// Token handles POST /api/v1/auth/token
func (h *AuthHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid token request", err)
		return
	}

	if req.Secret != h.secret {
		response.Error(c, 401, "Invalid secret", nil)
		return
	}

	subject := req.Subject
	if subject == "" {
		subject = "default"
	}

	token, err := middleware.IssueToken(h.secret, subject, h.ttl)
	if err != nil {
		response.InternalError(c, "Failed to issue token", err)
		return
	}

	response.Success(c, gin.H{"token": token, "expiresIn": int(h.ttl.Seconds())})
}
