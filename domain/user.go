package domain

import "time"

// User is a public profile.
type User struct {
	ID       string
	Username string
	JoinedAt time.Time
	Bio      string
}

// Session holds the tokens issued by the server for an authenticated user.
type Session struct {
	Token        string
	RefreshToken string
}
