// models/user.go
package models

const (
	UserTypeClient   = "client"
	UserTypeProvider = "provider"
)

// User is the account record the backend hands out at login. The gateway
// never mutates it except when an application submission upgrades the
// account type.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	UserType string `json:"user_type"`
}

// IsProvider handles both the current and the legacy type field values.
func (u *User) IsProvider() bool {
	return u != nil && u.UserType == UserTypeProvider
}
