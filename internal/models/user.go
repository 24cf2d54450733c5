package models

// User is a dashboard account from the static user list. Passwords are
// stored in the clear; login is a plain equality check.
type User struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password,omitempty" yaml:"password"`
	Role     string `json:"role" yaml:"role"`
}
