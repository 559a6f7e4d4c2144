package models

import "time"

// Analytics is an append-only per-platform performance snapshot of a clip.
type Analytics struct {
	ID             string
	ClipID         string
	Platform       string
	Views          int
	Likes          int
	Shares         int
	Comments       int
	EngagementRate *float64
	RecordedAt     time.Time
}

// PlatformTotals sums analytics snapshots for one platform.
type PlatformTotals struct {
	Platform string
	Views    int64
	Likes    int64
	Shares   int64
	Comments int64
}

// PlatformShare is one entry of a dashboard platform breakdown.
type PlatformShare struct {
	Views      int64
	Percentage float64
}

// ClientAnalytics is the aggregate shown on a client's dashboard.
type ClientAnalytics struct {
	StartDate         time.Time
	EndDate           time.Time
	TotalViews        int64
	TotalLikes        int64
	TotalShares       int64
	TotalComments     int64
	EngagementRate    float64
	NewFollowers      int64
	ActiveClips       int64
	PlatformBreakdown map[string]PlatformShare
}
