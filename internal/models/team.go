package models

import "time"

// Team has exactly one owning client and one assigned manager.
type Team struct {
	ID          string
	Name        string
	ClientID    string
	ManagerID   string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TeamMember is the immutable join row between a team and a clipper.
// Presence of the row means active membership.
type TeamMember struct {
	ID        string
	TeamID    string
	ClipperID string
	JoinedAt  time.Time
}

// TeamMemberWithClipper is a member row with its clipper joined in.
// Clipper is nil when the referenced user row is missing.
type TeamMemberWithClipper struct {
	TeamMember
	Clipper *User
}
