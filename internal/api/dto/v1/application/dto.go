package application

import "time"

// CreateRequest is the public application form
type CreateRequest struct {
	Name         string  `json:"name" binding:"required,nonblank,max=255"`
	Email        string  `json:"email" binding:"required,email"`
	Platform     *string `json:"platform" binding:"omitempty,max=255"`
	Experience   *string `json:"experience" binding:"omitempty,max=255"`
	SocialLinks  *string `json:"socialLinks"`
	WhyChooseYou string  `json:"whyChooseYou" binding:"required,nonblank"`
}

// UpdateStatusRequest reviews an application
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,appstatus"`
}

type Response struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Platform     *string   `json:"platform"`
	Experience   *string   `json:"experience"`
	SocialLinks  *string   `json:"socialLinks"`
	WhyChooseYou string    `json:"whyChooseYou"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
