package models

import (
	"fmt"
	"time"
)

// ApplicationStatus is the review state of a clipper application.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

// ParseApplicationStatus converts a raw string into an ApplicationStatus.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	st := ApplicationStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown application status %q", s)
	}
	return st, nil
}

// Application is a public submission from a prospective clipper.
type Application struct {
	ID           string
	Name         string
	Email        string
	Platform     *string
	Experience   *string
	SocialLinks  *string
	WhyChooseYou string
	Status       ApplicationStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
