package gateway

import (
	"strings"

	"undangan-app/internal/domain/billing"
)

// Gateway-ish normalization used ONLY for webhook transaction_status values.
// Covers the midtrans vocabulary plus the aliases its sandbox emits.
func NormalizePaymentStatus(s string) (billing.PaymentStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "settlement", "capture", "success", "paid":
		return billing.StatusPaid, true
	case "pending", "authorize":
		return billing.StatusPending, true
	case "deny", "cancel", "expire", "failure", "failed":
		return billing.StatusFailed, true
	case "refund", "partial_refund", "chargeback", "refunded":
		return billing.StatusRefunded, true
	default:
		return "", false
	}
}
