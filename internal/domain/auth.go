package domain

import "time"

// Session is the identity the core receives per authenticated call. Admin
// checks inside the services key off IsAdmin, never off route placement.
type Session struct {
	UserID  string
	IsAdmin bool
}

// Token represents issued authentication token metadata.
type Token struct {
	SubjectID string
	IsAdmin   bool
	ExpiresAt time.Time
	IssuedAt  time.Time
}
