package domain

import (
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")
var ErrSessionDestroy = errors.New("session destruction failed")

// Identity is the {username, role} pair captured at login. It is a value
// snapshot: later changes to the user's role or password are not reflected
// in sessions issued before the change.
type Identity struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Session binds an opaque caller-presented token to an identity. Valid from
// login until explicit destruction (or TTL expiry when one is configured).
type Session struct {
	Token     string
	Identity  Identity
	CreatedAt time.Time
}
