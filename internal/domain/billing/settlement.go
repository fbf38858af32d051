package billing

import (
	"errors"
	"fmt"
	"log"
	"time"

	"undangan-app/internal/domain/projects"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	// ErrPaymentNotFound means the gateway sent a correlation id we never
	// issued a payment for. Not retryable: it is a data mismatch, not a
	// transient fault.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrInvalidStatus means the caller mapped the notification onto a
	// status outside the payment lifecycle.
	ErrInvalidStatus = errors.New("invalid payment status")
)

// Gateways resend notifications freely, so no transition is blocked, but a
// move back down the lifecycle (paid -> pending, refunded -> paid) is almost
// always a stale or misrouted webhook and worth flagging.
var statusRank = map[PaymentStatus]int{
	StatusPending:  0,
	StatusFailed:   1,
	StatusPaid:     1,
	StatusRefunded: 2,
}

func looksLikeRegression(from, to PaymentStatus) bool {
	return statusRank[to] < statusRank[from]
}

// Settle reconciles one gateway notification into the payment ledger.
//
// It overwrites the payment's status and stored gateway response, maintains
// the "paid_at set iff paid" invariant, and, when the resulting status is
// paid, marks the owning project paid and records the reseller commission.
// Everything runs in a single transaction: a crash cannot leave the project
// flagged paid without the commission step having run, and the unique index
// behind RecordCommissionIfDue keeps a second delivery from double-crediting
// even across separate transactions.
//
// Safe to call any number of times with the same notification.
func Settle(db *gorm.DB, gatewayPaymentID string, newStatus PaymentStatus, gatewayResponse []byte, commissionRate decimal.Decimal) (*Payment, error) {
	if !newStatus.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, newStatus)
	}

	var payment Payment
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("gateway_payment_id = ?", gatewayPaymentID).
			First(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("settlement: no payment for gateway id %q, dropping notification", gatewayPaymentID)
				return fmt.Errorf("%w: gateway payment id %q", ErrPaymentNotFound, gatewayPaymentID)
			}
			return err
		}

		if looksLikeRegression(payment.Status, newStatus) {
			log.Printf("settlement: suspicious transition %s -> %s on gateway id %q, applying anyway",
				payment.Status, newStatus, gatewayPaymentID)
		}

		payment.Status = newStatus
		payment.GatewayResponse = datatypes.JSON(gatewayResponse)
		if newStatus == StatusPaid {
			now := time.Now()
			payment.PaidAt = &now
		} else {
			payment.PaidAt = nil
		}

		// Save writes every column, which is what the contract wants: the
		// stored gateway response is always replaced by what this
		// notification carried, nil included.
		if err := tx.Save(&payment).Error; err != nil {
			return err
		}

		if newStatus != StatusPaid {
			return nil
		}

		if err := tx.Model(&projects.Project{}).
			Where("id = ?", payment.ProjectID).
			Updates(map[string]interface{}{
				"is_paid":    true,
				"updated_at": time.Now(),
			}).Error; err != nil {
			return err
		}

		var project projects.Project
		if err := tx.First(&project, payment.ProjectID).Error; err != nil {
			return err
		}

		_, err := RecordCommissionIfDue(tx, &payment, &project, commissionRate)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &payment, nil
}
