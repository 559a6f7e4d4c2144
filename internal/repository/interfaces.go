package repository

import (
	"context"
	"time"

	"github.com/osa911/clipdesk/internal/models"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	// Get returns a user by ID
	Get(ctx context.Context, id string) (*models.User, error)
	// Upsert inserts the user or, when the id exists, updates its profile
	// fields and refreshes updated_at. Role is only written on insert.
	Upsert(ctx context.Context, user *models.User) (*models.User, error)
	// SetRole changes a user's role
	SetRole(ctx context.Context, id string, role models.Role) error
	// CountByRole returns the number of users per role
	CountByRole(ctx context.Context) (map[models.Role]int64, error)
}

// TeamRepository defines the interface for team-related database operations
type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) (*models.Team, error)
	Get(ctx context.Context, id string) (*models.Team, error)
	ListByClient(ctx context.Context, clientID string) ([]*models.Team, error)
	ListByManager(ctx context.Context, managerID string) ([]*models.Team, error)
	// AddMember inserts an immutable membership row
	AddMember(ctx context.Context, teamID, clipperID string) (*models.TeamMember, error)
	// ListMembers returns one row per member with the clipper left-joined
	ListMembers(ctx context.Context, teamID string) ([]*models.TeamMemberWithClipper, error)
	// CountClippersByManager counts distinct clippers across a manager's active teams
	CountClippersByManager(ctx context.Context, managerID string) (int64, error)
}

// CampaignRepository defines the interface for campaign-related database operations
type CampaignRepository interface {
	Create(ctx context.Context, campaign *models.Campaign) (*models.Campaign, error)
	Get(ctx context.Context, id string) (*models.Campaign, error)
	ListByClient(ctx context.Context, clientID string) ([]*models.Campaign, error)
	ListByTeam(ctx context.Context, teamID string) ([]*models.Campaign, error)
}

// ClipRepository defines the interface for clip-related database operations
type ClipRepository interface {
	Create(ctx context.Context, clip *models.Clip) (*models.Clip, error)
	Get(ctx context.Context, id string) (*models.Clip, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]*models.Clip, error)
	// ListByClipper returns a clipper's clips, newest first
	ListByClipper(ctx context.Context, clipperID string) ([]*models.Clip, error)
	// ListPending returns every pending clip with clipper and campaign joined, newest first
	ListPending(ctx context.Context) ([]*models.PendingClip, error)
	// UpdateStatus sets the status of a clip. Returns ErrNotFound for unknown ids.
	UpdateStatus(ctx context.Context, id string, status models.ClipStatus) error
	// CountByStatus counts clips per status, optionally restricted to one clipper
	CountByStatus(ctx context.Context, clipperID string) (models.ClipStatusCounts, error)
	// SumViews totals the view counters of a clipper's clips
	SumViews(ctx context.Context, clipperID string) (int64, error)
}

// ApplicationRepository defines the interface for application-related database operations
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) (*models.Application, error)
	// List returns all applications, newest first
	List(ctx context.Context) ([]*models.Application, error)
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error
	CountByStatus(ctx context.Context, status models.ApplicationStatus) (int64, error)
}

// AnalyticsRepository defines the interface for analytics-related database operations
type AnalyticsRepository interface {
	// Record appends a snapshot
	Record(ctx context.Context, a *models.Analytics) (*models.Analytics, error)
	ListByClip(ctx context.Context, clipID string) ([]*models.Analytics, error)
	// PlatformTotals sums snapshots recorded in [from, to] for clips under
	// campaigns owned by clientID, grouped by platform
	PlatformTotals(ctx context.Context, clientID string, from, to time.Time) ([]models.PlatformTotals, error)
	// CountApprovedClips counts approved clips under campaigns owned by clientID
	CountApprovedClips(ctx context.Context, clientID string) (int64, error)
}

// MessageRepository defines the interface for message-related database operations
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) (*models.Message, error)
	Get(ctx context.Context, id string) (*models.Message, error)
	// Conversation returns messages exchanged in either direction, newest first
	Conversation(ctx context.Context, userA, userB string) ([]*models.Message, error)
	MarkRead(ctx context.Context, id string) error
}

// SessionRepository defines the interface for session-related database operations
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	// Get returns an unexpired session by sid
	Get(ctx context.Context, sid string) (*models.Session, error)
	Delete(ctx context.Context, sid string) error
	// DeleteExpired removes every expired session and returns how many were removed
	DeleteExpired(ctx context.Context) (int64, error)
}
