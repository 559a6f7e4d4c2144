package models

import "time"

// Session is a server-side login session keyed by an opaque sid.
type Session struct {
	SID    string
	Data   SessionData
	Expire time.Time
}

// SessionData is the JSON payload stored in the sess column.
type SessionData struct {
	UserID    string    `json:"userId"`
	Provider  string    `json:"provider,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	IPAddress string    `json:"ipAddress,omitempty"`
	LoginAt   time.Time `json:"loginAt"`
}

// IsExpired checks if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.Expire)
}
