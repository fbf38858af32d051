package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// ResellerEarning is one row per successfully commissioned payment. The
// unique index on payment_id is what keeps duplicate webhook deliveries from
// creating duplicate earnings.
type ResellerEarning struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ResellerID uint `gorm:"not null;index" json:"reseller_id"`
	ProjectID  uint `gorm:"not null;index" json:"project_id"`
	PaymentID  uint `gorm:"not null;uniqueIndex:idx_reseller_earnings_payment_id" json:"payment_id"`

	CommissionRate   decimal.Decimal `gorm:"type:decimal(5,4);not null" json:"commission_rate"`
	CommissionAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"commission_amount"`

	EarnedAt  time.Time `gorm:"not null" json:"earned_at"`
	CreatedAt time.Time `json:"created_at"`
}
