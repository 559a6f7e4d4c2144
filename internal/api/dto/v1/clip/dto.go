package clip

import (
	"time"

	"github.com/osa911/clipdesk/internal/api/dto/v1/campaign"
	"github.com/osa911/clipdesk/internal/api/dto/v1/user"
)

// CreateRequest submits a clip. The clipper is always the caller and the
// counters always start at zero.
type CreateRequest struct {
	Title         string  `json:"title" binding:"required,nonblank,max=255"`
	Description   *string `json:"description"`
	FilePath      *string `json:"filePath" binding:"omitempty,max=1024"`
	ThumbnailPath *string `json:"thumbnailPath" binding:"omitempty,max=1024"`
	CampaignID    string  `json:"campaignId" binding:"required"`
	Platform      *string `json:"platform" binding:"omitempty,max=255"`
	PlatformURL   *string `json:"platformUrl" binding:"omitempty,max=1024"`
}

// UpdateStatusRequest records a review outcome
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,clipstatus"`
}

// Response is a clip, with clipper and campaign joined for the review queue
type Response struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Description   *string            `json:"description"`
	FilePath      *string            `json:"filePath"`
	ThumbnailPath *string            `json:"thumbnailPath"`
	CampaignID    string             `json:"campaignId"`
	ClipperID     string             `json:"clipperId"`
	Status        string             `json:"status"`
	Views         int                `json:"views"`
	Likes         int                `json:"likes"`
	Shares        int                `json:"shares"`
	Platform      *string            `json:"platform"`
	PlatformURL   *string            `json:"platformUrl"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
	Clipper       *user.UserResponse `json:"clipper,omitempty"`
	Campaign      *campaign.Response `json:"campaign,omitempty"`
}

// RecordAnalyticsRequest appends a performance snapshot to a clip
type RecordAnalyticsRequest struct {
	Platform       string     `json:"platform" binding:"required,nonblank,max=255"`
	Views          int        `json:"views" binding:"min=0"`
	Likes          int        `json:"likes" binding:"min=0"`
	Shares         int        `json:"shares" binding:"min=0"`
	Comments       int        `json:"comments" binding:"min=0"`
	EngagementRate *float64   `json:"engagementRate" binding:"omitempty,min=0,max=999.99"`
	RecordedAt     *time.Time `json:"recordedAt"`
}

type AnalyticsResponse struct {
	ID             string    `json:"id"`
	ClipID         string    `json:"clipId"`
	Platform       string    `json:"platform"`
	Views          int       `json:"views"`
	Likes          int       `json:"likes"`
	Shares         int       `json:"shares"`
	Comments       int       `json:"comments"`
	EngagementRate *float64  `json:"engagementRate"`
	RecordedAt     time.Time `json:"recordedAt"`
}
