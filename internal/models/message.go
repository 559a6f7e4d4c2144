package models

import "time"

// Message is a directed message between two users.
type Message struct {
	ID          string
	SenderID    string
	RecipientID string
	Content     string
	IsRead      bool
	CreatedAt   time.Time
}
