package analytics

import "time"

// PlatformShare is one entry of the platform breakdown
type PlatformShare struct {
	Views      int64   `json:"views"`
	Percentage float64 `json:"percentage"`
}

// ClientDashboardResponse is the analytics aggregate of a client
type ClientDashboardResponse struct {
	StartDate         time.Time                `json:"startDate"`
	EndDate           time.Time                `json:"endDate"`
	TotalViews        int64                    `json:"totalViews"`
	TotalLikes        int64                    `json:"totalLikes"`
	TotalShares       int64                    `json:"totalShares"`
	TotalComments     int64                    `json:"totalComments"`
	EngagementRate    float64                  `json:"engagementRate"`
	NewFollowers      int64                    `json:"newFollowers"`
	ActiveClips       int64                    `json:"activeClips"`
	PlatformBreakdown map[string]PlatformShare `json:"platformBreakdown"`
}
