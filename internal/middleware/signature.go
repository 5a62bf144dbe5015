package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shootsuite/internal/pkg/response"
)

// WebhookSignature verifies an HMAC-SHA256 signature over the raw request
// body before any webhook handler runs. The body is restored for downstream
// binding. Header format: X-Webhook-Signature: sha256=<hex>.
func WebhookSignature(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		signature := extractSignature(c)
		if signature == "" {
			rejectWebhook(c, "missing X-Webhook-Signature header")
			return
		}

		body, err := readAndRestoreBody(c)
		if err != nil {
			rejectWebhook(c, "failed to read request body")
			return
		}

		if !verifySignature(body, signature, secret) {
			rejectWebhook(c, "invalid webhook signature")
			return
		}

		c.Next()
	}
}

func extractSignature(c *gin.Context) string {
	header := c.GetHeader("X-Webhook-Signature")
	if header == "" {
		return ""
	}

	if signature, found := strings.CutPrefix(header, "sha256="); found {
		return signature
	}
	return header
}

func readAndRestoreBody(c *gin.Context) ([]byte, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}

	c.Request.Body.Close()
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	return body, nil
}

func verifySignature(body []byte, receivedSignature string, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expectedSignature := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expectedSignature), []byte(receivedSignature))
}

func rejectWebhook(c *gin.Context, reason string) {
	log.Printf("webhook_rejected path=%s client_ip=%s reason=%q", c.Request.URL.Path, c.ClientIP(), reason)
	response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Webhook signature verification failed")
	c.Abort()
}
