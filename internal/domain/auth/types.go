package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of adapter/transport concerns.

import "strings"

// Role represents an application authorization role.
// Keep string form for easy persistence and JSON round-trips.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleEmployee      Role = "employee"
	RoleNone          Role = "none"
)

// ParseRole maps a backend-supplied role string to a Role.
// Unknown or empty values degrade to RoleNone rather than failing.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "administrator", "admin":
		return RoleAdministrator
	case "employee":
		return RoleEmployee
	default:
		return RoleNone
	}
}

// User is the staff profile returned by the backend exchange endpoint.
type User struct {
	Username  string `json:"username"`
	Role      Role   `json:"role"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// Valid reports whether the profile carries the minimum required fields.
func (u User) Valid() bool { return u.Username != "" }

// Session is the in-memory representation of "who is currently logged in".
// Token and User are always set or cleared together; a Session value with
// only one of the two populated must never be constructed.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Authenticated reports whether the session holds a token.
func (s Session) Authenticated() bool { return s.Token != "" }

// IsAdministrator reports whether the session user has the administrator role.
func (s Session) IsAdministrator() bool { return s.User.Role == RoleAdministrator }

// Credentials is what a successful code exchange or legacy login yields.
type Credentials struct {
	Token string
	User  User
}

// SystemInfo is the capability descriptor fetched once at startup.
// A failed fetch degrades to "external login disabled" with Error set.
type SystemInfo struct {
	KeycloakEnabled bool   `json:"keycloakEnabled"`
	KeycloakURL     string `json:"keycloakUrl,omitempty"`
	Error           string `json:"error,omitempty"`
}
