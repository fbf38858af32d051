package templates

import (
	"time"

	"gorm.io/datatypes"
)

type Template struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	Description  *string        `json:"description"`
	ThumbnailURL string         `gorm:"not null" json:"thumbnail_url"`
	TemplateData datatypes.JSON `gorm:"not null" json:"template_data"`
	IsActive     bool           `gorm:"not null;default:true" json:"is_active"`
	IsPremium    bool           `gorm:"not null;default:false" json:"is_premium"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
