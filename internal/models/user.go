package models

// AdminUserID is the id of the sole administrator account. The first
// registered user owns deletion rights over cafes.
const AdminUserID = 1

// User represents a registered user in the system
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Never serialize password hash
}

// IsAdmin reports whether the user holds administrator rights
func (u *User) IsAdmin() bool {
	return u.ID == AdminUserID
}

// RegisterRequest represents a registration form submission
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login form submission
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
