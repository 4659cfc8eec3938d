package domain

import (
	"strings"

	"github.com/google/uuid"
)

// User is an account that can log in, react and submit quotes.
type User struct {
	Record

	Username     string
	PasswordHash string
	IsStaff      bool
	IsSuperuser  bool
}

// CanEditCounters reports whether the user may overwrite views, likes and dislikes.
func (u *User) CanEditCounters() bool {
	return u != nil && u.IsSuperuser
}

// CanAdminister reports whether the user may use the admin API.
func (u *User) CanAdminister() bool {
	return u != nil && u.IsActive && (u.IsStaff || u.IsSuperuser)
}

// NewUser builds an active user. The password must already be hashed.
func NewUser(username, passwordHash string, staff, superuser bool) *User {
	return &User{
		Record:       Record{ID: uuid.New(), IsActive: true},
		Username:     strings.TrimSpace(username),
		PasswordHash: passwordHash,
		IsStaff:      staff || superuser,
		IsSuperuser:  superuser,
	}
}
