package domain

import "time"

// Session is the demo login identity. It exists only while logged in and
// never carries a password.
type Session struct {
	ID      string    `json:"id"`
	Email   string    `json:"email"`
	LoginAt time.Time `json:"login_at"`
}
