package domain

import "errors"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models an authenticated actor in the system. Usernames are unique and
// compared case-sensitively; the password is compared by exact equality.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

// SeedUsers is the fixed account set installed at process start.
func SeedUsers() []User {
	return []User{
		{ID: 1, Username: "admin", Password: "adminpass", Role: RoleAdmin},
		{ID: 2, Username: "user", Password: "userpass", Role: RoleUser},
	}
}
