package models

import "github.com/golang-jwt/jwt/v5"

// Roles recognized from platform-issued tokens.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// UserClaims are the claims the platform embeds in its JWTs. The extension
// only cares about the account id and the role.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// IsAdmin reports whether the claims carry the admin role.
func (c *UserClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
