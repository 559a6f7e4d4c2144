package mapper

import (
	"github.com/osa911/clipdesk/internal/api/dto/v1/clip"
	"github.com/osa911/clipdesk/internal/api/sanitization"
	"github.com/osa911/clipdesk/internal/models"
)

func ClipFromCreateRequest(req *clip.CreateRequest) *models.Clip {
	return &models.Clip{
		Title:         sanitization.SanitizeString(req.Title),
		Description:   sanitization.SanitizeOptional(req.Description),
		FilePath:      req.FilePath,
		ThumbnailPath: req.ThumbnailPath,
		CampaignID:    req.CampaignID,
		Platform:      sanitization.SanitizeOptional(req.Platform),
		PlatformURL:   sanitization.SanitizeOptional(req.PlatformURL),
	}
}

func ClipToResponse(c *models.Clip) *clip.Response {
	return &clip.Response{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		FilePath:      c.FilePath,
		ThumbnailPath: c.ThumbnailPath,
		CampaignID:    c.CampaignID,
		ClipperID:     c.ClipperID,
		Status:        string(c.Status),
		Views:         c.Views,
		Likes:         c.Likes,
		Shares:        c.Shares,
		Platform:      c.Platform,
		PlatformURL:   c.PlatformURL,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func ClipsToResponses(clips []*models.Clip) []*clip.Response {
	result := make([]*clip.Response, len(clips))
	for i, c := range clips {
		result[i] = ClipToResponse(c)
	}
	return result
}

// PendingClipsToResponses includes the joined clipper and campaign when present
func PendingClipsToResponses(clips []*models.PendingClip) []*clip.Response {
	result := make([]*clip.Response, len(clips))
	for i, pc := range clips {
		r := ClipToResponse(&pc.Clip)
		r.Clipper = UserToUserResponse(pc.Clipper)
		r.Campaign = CampaignToResponse(pc.Campaign)
		result[i] = r
	}
	return result
}

func AnalyticsFromRecordRequest(req *clip.RecordAnalyticsRequest) *models.Analytics {
	a := &models.Analytics{
		Platform:       req.Platform,
		Views:          req.Views,
		Likes:          req.Likes,
		Shares:         req.Shares,
		Comments:       req.Comments,
		EngagementRate: req.EngagementRate,
	}
	if req.RecordedAt != nil {
		a.RecordedAt = *req.RecordedAt
	}
	return a
}

func AnalyticsToResponse(a *models.Analytics) *clip.AnalyticsResponse {
	return &clip.AnalyticsResponse{
		ID:             a.ID,
		ClipID:         a.ClipID,
		Platform:       a.Platform,
		Views:          a.Views,
		Likes:          a.Likes,
		Shares:         a.Shares,
		Comments:       a.Comments,
		EngagementRate: a.EngagementRate,
		RecordedAt:     a.RecordedAt,
	}
}

func AnalyticsToResponses(snapshots []*models.Analytics) []*clip.AnalyticsResponse {
	result := make([]*clip.AnalyticsResponse, len(snapshots))
	for i, a := range snapshots {
		result[i] = AnalyticsToResponse(a)
	}
	return result
}
