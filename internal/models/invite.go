package models

import "time"

// RoleType identifies the built in roles that cannot be offered to guests.
type RoleType string

const (
	RoleTypeEveryone   RoleType = "everyone"
	RoleTypeSystem     RoleType = "system"
	RoleTypeSelfSignup RoleType = "selfsignup"
)

type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "PENDING"
	InviteStatusAccepted InviteStatus = "ACCEPTED"
	InviteStatusExpired  InviteStatus = "EXPIRED"
)

type UserInvite struct {
	ID        string       `json:"id,omitempty"`
	Roles     []string     `json:"roles,omitempty"`
	Email     string       `json:"email,omitempty"`
	Status    InviteStatus `json:"status,omitempty"`
	ExpiredAt *time.Time   `json:"expiredAt,omitempty"`
	Username  string       `json:"username,omitempty"`
}

type Invitations struct {
	Invitations []UserInvite `json:"invitations,omitempty"`
}

// IsReservedRole reports whether a role name is one of the built in role
// types.
func IsReservedRole(name string) bool {
	switch RoleType(name) {
	case RoleTypeEveryone, RoleTypeSystem, RoleTypeSelfSignup:
		return true
	}
	return false
}
