package projects

import (
	"time"

	"gorm.io/datatypes"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

type Project struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	UserID     uint  `gorm:"not null;index" json:"user_id"`
	ResellerID *uint `gorm:"index" json:"reseller_id"`
	TemplateID uint  `gorm:"not null" json:"template_id"`

	Subdomain string `gorm:"not null;uniqueIndex:idx_projects_subdomain" json:"subdomain"`

	BrideName      string         `gorm:"not null" json:"bride_name"`
	GroomName      string         `gorm:"not null" json:"groom_name"`
	EventDate      time.Time      `gorm:"not null" json:"event_date"`
	EventTime      string         `gorm:"not null" json:"event_time"`
	VenueName      string         `gorm:"not null" json:"venue_name"`
	VenueAddress   string         `gorm:"not null" json:"venue_address"`
	VenueLatitude  *float64       `json:"venue_latitude"`
	VenueLongitude *float64       `json:"venue_longitude"`
	HeroPhotoURL   *string        `json:"hero_photo_url"`
	AdditionalInfo *string        `json:"additional_info"`
	CustomData     datatypes.JSON `json:"custom_data"`

	Status      string     `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	IsPaid      bool       `gorm:"not null;default:false" json:"is_paid"`
	PublishedAt *time.Time `json:"published_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
