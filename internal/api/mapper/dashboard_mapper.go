package mapper

import (
	"github.com/osa911/clipdesk/internal/api/dto/v1/analytics"
	"github.com/osa911/clipdesk/internal/api/dto/v1/dashboard"
	"github.com/osa911/clipdesk/internal/models"
	"github.com/osa911/clipdesk/internal/service"
)

func ClientAnalyticsToResponse(a *models.ClientAnalytics) *analytics.ClientDashboardResponse {
	if a == nil {
		return nil
	}
	breakdown := make(map[string]analytics.PlatformShare, len(a.PlatformBreakdown))
	for platform, share := range a.PlatformBreakdown {
		breakdown[platform] = analytics.PlatformShare{Views: share.Views, Percentage: share.Percentage}
	}
	return &analytics.ClientDashboardResponse{
		StartDate:         a.StartDate,
		EndDate:           a.EndDate,
		TotalViews:        a.TotalViews,
		TotalLikes:        a.TotalLikes,
		TotalShares:       a.TotalShares,
		TotalComments:     a.TotalComments,
		EngagementRate:    a.EngagementRate,
		NewFollowers:      a.NewFollowers,
		ActiveClips:       a.ActiveClips,
		PlatformBreakdown: breakdown,
	}
}

func DashboardToResponse(d *service.Dashboard) *dashboard.Response {
	out := &dashboard.Response{Role: string(d.Role)}

	if d.Client != nil {
		out.Client = &dashboard.ClientView{
			Teams:     d.Client.Teams,
			Campaigns: d.Client.Campaigns,
			Analytics: ClientAnalyticsToResponse(d.Client.Analytics),
		}
	}
	if d.Clipper != nil {
		clips := make(map[string]int64, len(d.Clipper.Clips))
		for status, n := range d.Clipper.Clips {
			clips[string(status)] = n
		}
		out.Clipper = &dashboard.ClipperView{
			Clips:           clips,
			TotalClips:      d.Clipper.Clips.Total(),
			ActiveTasks:     d.Clipper.ActiveTasks,
			TotalViews:      d.Clipper.TotalViews,
			AvgViewsPerClip: d.Clipper.AvgViewsPerClip,
		}
	}
	if d.Manager != nil {
		out.Manager = &dashboard.ManagerView{
			ActiveTeams:         d.Manager.ActiveTeams,
			TotalClippers:       d.Manager.TotalClippers,
			PendingReviews:      d.Manager.PendingReviews,
			PendingApplications: d.Manager.PendingApplications,
		}
	}
	return out
}
