package models

import (
	"fmt"
	"time"
)

// ClipStatus is the review state of a clip.
type ClipStatus string

const (
	ClipStatusPending       ClipStatus = "pending"
	ClipStatusApproved      ClipStatus = "approved"
	ClipStatusRejected      ClipStatus = "rejected"
	ClipStatusNeedsRevision ClipStatus = "needs_revision"
)

// ClipStatuses lists every valid clip status.
var ClipStatuses = []ClipStatus{
	ClipStatusPending,
	ClipStatusApproved,
	ClipStatusRejected,
	ClipStatusNeedsRevision,
}

func (s ClipStatus) Valid() bool {
	switch s {
	case ClipStatusPending, ClipStatusApproved, ClipStatusRejected, ClipStatusNeedsRevision:
		return true
	}
	return false
}

// IsReviewOutcome reports whether s can be set by a reviewer.
func (s ClipStatus) IsReviewOutcome() bool {
	return s == ClipStatusApproved || s == ClipStatusRejected || s == ClipStatusNeedsRevision
}

// ParseClipStatus converts a raw string into a ClipStatus.
func ParseClipStatus(s string) (ClipStatus, error) {
	st := ClipStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown clip status %q", s)
	}
	return st, nil
}

// Clip is a short video submitted by a clipper under a campaign.
type Clip struct {
	ID            string
	Title         string
	Description   *string
	FilePath      *string
	ThumbnailPath *string
	CampaignID    string
	ClipperID     string
	Status        ClipStatus
	Views         int
	Likes         int
	Shares        int
	Platform      *string
	PlatformURL   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PendingClip is a clip joined with its clipper and campaign.
// Either nested object is nil when the referenced row is missing.
type PendingClip struct {
	Clip
	Clipper  *User
	Campaign *Campaign
}
