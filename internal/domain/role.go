package domain

// Role names carried in JWT claims. There is no roles table; the set is fixed.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
