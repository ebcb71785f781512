package model

import "strings"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func ParseRole(s string) Role {
	if strings.EqualFold(strings.TrimSpace(s), string(RoleAdmin)) {
		return RoleAdmin
	}
	return RoleUser
}

// Identity is the authenticated actor behind a request. A zero UserID is anonymous.
type Identity struct {
	UserID int64
	Role   Role
}

func (i Identity) IsAuthenticated() bool {
	return i.UserID > 0
}

func (i Identity) IsAdmin() bool {
	return i.IsAuthenticated() && i.Role == RoleAdmin
}
