package domain

import "time"

// UserID uniquely identifies a user within the system.
type UserID int64

// User is a registered identity. Usernames are plain identifiers used to
// attribute ownership and answers; they are not credentials.
type User struct {
	ID       UserID `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	// PasswordHash is the bcrypt hash of the registered password. It is
	// never serialized.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"-"`
}
