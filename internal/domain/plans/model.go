package plans

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Plan struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Currency    string          `gorm:"type:varchar(3);not null" json:"currency"`
	Features    datatypes.JSON  `gorm:"not null" json:"features"`
	IsActive    bool            `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
