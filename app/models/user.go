package models

import (
	"strings"

	"github.com/google/uuid"
)

// Validate checks if the user meets all validation requirements
func (u *User) Validate() error {
	return validate.Struct(u)
}

// BeforeCreate sets up any necessary fields before creation
func (u *User) BeforeCreate() {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Role == "" {
		u.Role = RoleAuthor
	}
}

// IsAdmin reports whether the user holds the elevated role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
