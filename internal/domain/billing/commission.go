package billing

import (
	"errors"
	"time"

	"undangan-app/internal/domain/projects"
	"undangan-app/internal/domain/users"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// currency minor-unit precision for every currency we charge in (USD, IDR).
const currencyDecimalPlaces = 2

// CommissionAmount computes the reseller's cut, rounded half-up at the
// currency's minor-unit precision. Example: 299.99 at rate 0.10 -> 30.00.
func CommissionAmount(amount, rate decimal.Decimal) decimal.Decimal {
	// decimal.Round is half away from zero, which is half-up for the
	// non-negative amounts a payment can carry.
	return amount.Mul(rate).Round(currencyDecimalPlaces)
}

// RecordCommissionIfDue inserts the earning for a paid payment, if one is
// due. It returns (nil, nil) when no commission applies: the project has no
// reseller, the attributed user no longer holds the reseller role, or an
// earning already exists for this payment.
//
// The insert rides on the unique index over payment_id with ON CONFLICT DO
// NOTHING, so two concurrent webhook deliveries cannot both insert; the
// loser sees zero affected rows and treats it as already recorded. Do not
// replace this with a query-then-insert.
//
// IMPORTANT: pass db in, do NOT import undangan-app/database here (avoids import cycle).
func RecordCommissionIfDue(db *gorm.DB, payment *Payment, project *projects.Project, rate decimal.Decimal) (*ResellerEarning, error) {
	if project.ResellerID == nil {
		return nil, nil
	}

	var reseller users.User
	err := db.Where("id = ? AND role = ?", *project.ResellerID, users.RoleReseller).
		First(&reseller).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	earning := ResellerEarning{
		ResellerID:       *project.ResellerID,
		ProjectID:        project.ID,
		PaymentID:        payment.ID,
		CommissionRate:   rate,
		CommissionAmount: CommissionAmount(payment.Amount, rate),
		EarnedAt:         time.Now(),
	}

	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "payment_id"}},
		DoNothing: true,
	}).Create(&earning)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, nil
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Conflict path: some earlier delivery already recorded the earning.
		return nil, nil
	}

	return &earning, nil
}
