package campaign

import "time"

// CreateRequest creates a campaign owned by the caller
type CreateRequest struct {
	Name        string     `json:"name" binding:"required,nonblank,max=255"`
	TeamID      string     `json:"teamId" binding:"required"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

type Response struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	ClientID    string     `json:"clientId"`
	TeamID      string     `json:"teamId"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
