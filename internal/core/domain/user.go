package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")

// User models a registered account. Enabled defaults to true at
// construction. The password is persisted exactly as received and the
// email carries no uniqueness constraint; a by-email lookup exists but
// duplicates resolve in store-defined order.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Enabled  bool   `json:"enabled"`
}
