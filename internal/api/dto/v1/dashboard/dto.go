package dashboard

import "github.com/osa911/clipdesk/internal/api/dto/v1/analytics"

// Response holds the caller's role and exactly one role-specific view
type Response struct {
	Role    string       `json:"role"`
	Client  *ClientView  `json:"client,omitempty"`
	Clipper *ClipperView `json:"clipper,omitempty"`
	Manager *ManagerView `json:"manager,omitempty"`
}

type ClientView struct {
	Teams     int64                              `json:"teams"`
	Campaigns int64                              `json:"campaigns"`
	Analytics *analytics.ClientDashboardResponse `json:"analytics"`
}

type ClipperView struct {
	Clips           map[string]int64 `json:"clips"`
	TotalClips      int64            `json:"totalClips"`
	ActiveTasks     int64            `json:"activeTasks"`
	TotalViews      int64            `json:"totalViews"`
	AvgViewsPerClip float64          `json:"avgViewsPerClip"`
}

type ManagerView struct {
	ActiveTeams         int64 `json:"activeTeams"`
	TotalClippers       int64 `json:"totalClippers"`
	PendingReviews      int64 `json:"pendingReviews"`
	PendingApplications int64 `json:"pendingApplications"`
}
