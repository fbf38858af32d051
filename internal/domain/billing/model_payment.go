package billing

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type PaymentStatus string

const (
	StatusPending  PaymentStatus = "pending"
	StatusPaid     PaymentStatus = "paid"
	StatusFailed   PaymentStatus = "failed"
	StatusRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusFailed, StatusRefunded:
		return true
	}
	return false
}

type Payment struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProjectID uint `gorm:"not null;index" json:"project_id"`
	UserID    uint `gorm:"not null;index" json:"user_id"`

	Amount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Currency string          `gorm:"type:varchar(3);not null" json:"currency"`

	PaymentMethod  *string `json:"payment_method"`
	PaymentGateway string  `gorm:"not null" json:"payment_gateway"`

	// Correlation key issued by the gateway. Null until the gateway assigns
	// one, unique afterwards; webhooks locate the row through it.
	GatewayPaymentID *string `gorm:"uniqueIndex:idx_payments_gateway_payment_id" json:"gateway_payment_id"`

	// Raw notification payload as received. Stored for audit, never parsed.
	GatewayResponse datatypes.JSON `json:"gateway_response"`

	Status PaymentStatus `gorm:"type:varchar(10);not null;default:'pending';index" json:"status"`
	PaidAt *time.Time    `json:"paid_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
