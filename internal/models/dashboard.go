package models

// ClipStatusCounts counts clips per review state.
type ClipStatusCounts map[ClipStatus]int64

// Total returns the number of clips across all states.
func (c ClipStatusCounts) Total() int64 {
	var n int64
	for _, v := range c {
		n += v
	}
	return n
}

// ClientDashboard summarizes a client's teams, campaigns and performance.
type ClientDashboard struct {
	Teams     int64
	Campaigns int64
	Analytics *ClientAnalytics
}

// ClipperDashboard summarizes a clipper's own submissions.
type ClipperDashboard struct {
	Clips           ClipStatusCounts
	ActiveTasks     int64
	TotalViews      int64
	AvgViewsPerClip float64
}

// ManagerDashboard summarizes the review queue and managed teams.
type ManagerDashboard struct {
	ActiveTeams         int64
	TotalClippers       int64
	PendingReviews      int64
	PendingApplications int64
}
