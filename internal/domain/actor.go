package domain

import "strings"

// Roles allowed to move or edit invoiced appointments
const (
	RoleAdmin       = "admin"
	RoleAdminMaster = "admin_master"
)

// Actor is the authenticated staff user issuing a request.
// Token is forwarded to the backend as is.
type Actor struct {
	UserID string
	Role   string
	Token  string
}

// IsElevated reports whether the actor may change invoiced appointments
func (a Actor) IsElevated() bool {
	switch strings.ToLower(strings.TrimSpace(a.Role)) {
	case RoleAdmin, RoleAdminMaster:
		return true
	}
	return false
}
