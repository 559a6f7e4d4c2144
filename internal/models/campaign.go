package models

import "time"

// Campaign is always scoped to one team and one client.
// ClientID is expected to equal the team's ClientID; the store does not enforce it.
type Campaign struct {
	ID          string
	Name        string
	ClientID    string
	TeamID      string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
