package domain

import (
	"fmt"
	"regexp"
	"time"
)

var shortIDPattern = regexp.MustCompile(`^[A-Z]{2,6}[0-9]{2,4}$`)

// Board is one draft: a pool of players, a pick log, and per-position rules.
type Board struct {
	ID         string
	ShortID    string
	Name       string
	Season     int
	Status     BoardStatus
	ArchivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidateShortID checks that a short ID is non-empty and matches the
// required format: 2-6 uppercase letters followed by 2-4 digits
// (e.g. FF25, DRAFT2026).
func ValidateShortID(shortID string) error {
	if shortID == "" {
		return fmt.Errorf("short ID is required (use --id flag)")
	}
	if !shortIDPattern.MatchString(shortID) {
		return fmt.Errorf("short ID %q must be 2-6 uppercase letters followed by 2-4 digits (e.g. FF25)", shortID)
	}
	return nil
}

// ValidateShortID checks the board's ShortID against the short-ID format.
func (b *Board) ValidateShortID() error {
	return ValidateShortID(b.ShortID)
}

// DisplayID returns the best short identifier for display.
// It prefers ShortID; if empty it truncates ID to 8 characters.
func (b *Board) DisplayID() string {
	if b.ShortID != "" {
		return b.ShortID
	}
	if len(b.ID) >= 8 {
		return b.ID[:8]
	}
	return b.ID
}
