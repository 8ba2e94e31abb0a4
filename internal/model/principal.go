package model

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

// Principal is the authenticated caller extracted from the bearer token.
type Principal struct {
	UserID string
	Role   Role
}

func (p Principal) IsAdmin() bool   { return p.Role == RoleAdmin }
func (p Principal) IsManager() bool { return p.Role == RoleManager }

// CanAccess reports whether the principal may read or write a record owned
// by ownerID. Admins and managers see everything.
func (p Principal) CanAccess(ownerID string) bool {
	return p.IsAdmin() || p.IsManager() || p.UserID == ownerID
}

// CanDelete reports whether the principal may delete a record owned by
// ownerID. Managers may read everything but only delete their own records.
func (p Principal) CanDelete(ownerID string) bool {
	return p.IsAdmin() || p.UserID == ownerID
}
