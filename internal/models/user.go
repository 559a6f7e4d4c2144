package models

import (
	"fmt"
	"time"
)

// User is the root entity, synced from the identity provider on every login.
type User struct {
	ID              string
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
	Role            Role
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Role is the sole authorization discriminant for a user.
type Role string

const (
	RoleClient  Role = "client"
	RoleClipper Role = "clipper"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// DefaultRole is assigned to users created without an explicit role.
const DefaultRole = RoleClipper

// Roles lists every valid role.
var Roles = []Role{RoleClient, RoleClipper, RoleManager, RoleAdmin}

func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleClipper, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// ParseRole converts a raw string into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// DisplayName joins the first and last name, falling back to the email.
func (u *User) DisplayName() string {
	name := ""
	if u.FirstName != nil {
		name = *u.FirstName
	}
	if u.LastName != nil && *u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += *u.LastName
	}
	if name == "" && u.Email != nil {
		return *u.Email
	}
	return name
}
