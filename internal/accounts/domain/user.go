package domain

import "time"

// User is the stored account record. Credential fields (PasswordHash, Salt,
// JTI) never leave the service layer; the HTTP surface only ever sees the
// Public projection.
type User struct {
	ID           int64
	Username     string
	Email        string
	DisplayName  string
	PasswordHash string // hex digest of password keyed by Salt
	Salt         string // regenerated on every password change
	JTI          string // current session marker; rotating it revokes all refresh tokens
	Active       bool
	Admin        bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the safe projection returned by the API.
type PublicUser struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Public strips credential and authorization fields.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Active:      u.Active,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// Profile carries the mutable profile fields for partial updates. Nil means
// "leave unchanged".
type Profile struct {
	Username    *string
	Email       *string
	DisplayName *string
}
