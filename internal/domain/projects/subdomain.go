package projects

import (
	"errors"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

/*
	Subdomain helpers
	-----------------
	- Responsible ONLY for:
	  • normalizing requested subdomains
	  • validating them
	  • checking availability
	- No billing logic, no project mutation here
*/

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

var ErrInvalidSubdomain = errors.New("subdomain must be 3-50 characters of lowercase letters, digits and dashes")

// NormalizeSubdomain lowercases and strips a requested subdomain down to
// URL-safe characters. Example: "Dinda & Rafi!" -> "dinda-rafi"
func NormalizeSubdomain(s string) string {
	out := strings.ToLower(strings.TrimSpace(s))
	out = strings.ReplaceAll(out, " ", "-")
	out = strings.ReplaceAll(out, "&", "-")
	out = nonSlug.ReplaceAllString(out, "")
	out = multiDash.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}

// ValidateSubdomain accepts an already-normalized subdomain.
func ValidateSubdomain(s string) error {
	if len(s) < 3 || len(s) > 50 {
		return ErrInvalidSubdomain
	}
	if NormalizeSubdomain(s) != s {
		return ErrInvalidSubdomain
	}
	return nil
}

// IsSubdomainTaken reports whether any project already reserved the subdomain.
//
// IMPORTANT: pass db in, do NOT import undangan-app/database here (avoids import cycle).
func IsSubdomainTaken(db *gorm.DB, subdomain string) (bool, error) {
	var count int64
	if err := db.Model(&Project{}).
		Where("subdomain = ?", subdomain).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// BuildPublicURL builds the public microsite URL for a subdomain.
// Example: "dinda-rafi" -> "https://dinda-rafi.undangan.app"
func BuildPublicURL(subdomain string) string {
	return "https://" + subdomain + ".undangan.app"
}
