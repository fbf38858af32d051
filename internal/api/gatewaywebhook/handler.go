package gatewaywebhook

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"undangan-app/config"
	"undangan-app/database"
	"undangan-app/internal/domain/billing"
	"undangan-app/internal/infra/gateway"

	"github.com/gin-gonic/gin"
)

// notification is the midtrans-style status payload. Only the two fields
// that drive settlement are read; the full raw body is persisted on the
// payment as gateway_response.
type notification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
}

// HandlePaymentNotification reconciles one gateway webhook delivery.
//
// Response codes are the retry contract: the gateway resends on non-2xx, so
// transient storage failures answer 503 while bad payloads and unknown
// correlation ids answer 4xx and are never retried.
func HandlePaymentNotification(c *gin.Context) {
	payload, err := readBody(c, 65536)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Error reading request body"})
		return
	}

	var notif notification
	if err := json.Unmarshal(payload, &notif); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed notification"})
		return
	}
	if notif.OrderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing order_id"})
		return
	}

	status, ok := gateway.NormalizePaymentStatus(notif.TransactionStatus)
	if !ok {
		// Acknowledge unknown statuses to avoid retries.
		log.Printf("webhook: ignoring unknown transaction_status %q for order %q",
			notif.TransactionStatus, notif.OrderID)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	payment, err := billing.Settle(database.DB, notif.OrderID, status, payload, config.COMMISSION_RATE)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		case errors.Is(err, billing.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment status"})
		default:
			// Retryable: the gateway will deliver again.
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Settlement failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "received", "payment": payment})
}

func readBody(c *gin.Context, maxBytes int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	return io.ReadAll(c.Request.Body)
}
