package users

import "time"

// User is a registered account. Password holds the argon2id hash and never
// leaves the credential store boundary: it is excluded from JSON and from
// the public view.
type User struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	ID        int       `json:"id" db:"id"`
}

// RegisterRequest is the input for creating a new account.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the input for authenticating. The identifier is matched
// against email when it contains an @, username otherwise.
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

// ResetPasswordRequest consumes an emailed reset token.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}
