package rsvp

import "time"

const (
	StatusYes   = "yes"
	StatusNo    = "no"
	StatusMaybe = "maybe"
)

type Rsvp struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProjectID uint `gorm:"not null;index" json:"project_id"`

	GuestName  string  `gorm:"not null" json:"guest_name"`
	GuestEmail *string `json:"guest_email"`
	GuestPhone *string `json:"guest_phone"`

	Status     string  `gorm:"type:varchar(10);not null" json:"status"`
	GuestCount int     `gorm:"not null;default:1" json:"guest_count"`
	Message    *string `json:"message"`

	// Per-guest invite token, embedded in the link the couple sends out.
	UniqueLink string `gorm:"not null;uniqueIndex:idx_rsvp_unique_link" json:"unique_link"`

	RespondedAt *time.Time `json:"responded_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

func ValidStatus(s string) bool {
	return s == StatusYes || s == StatusNo || s == StatusMaybe
}
