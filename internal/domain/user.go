package domain

import "time"

type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Color        string
	CreatedAt    time.Time
}

// Identity is the verified subject of a credential token. It is scoped to a
// single request and never stored server-side.
type Identity struct {
	UserID int64
	Email  string
}

func (u *User) Identity() Identity {
	return Identity{UserID: u.ID, Email: u.Email}
}

// Session is the outcome of a successful login or registration.
type Session struct {
	User      *User
	Token     string
	ExpiresAt time.Time
}
