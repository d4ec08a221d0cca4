package entities

import "time"

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	IsOnline       bool      `json:"is_online"`
	LastSeen       time.Time `json:"last_seen"`
}

// Session is the single authenticated session, constructed at login/signup and
// torn down at logout. Consumers receive it by reference; there is no ambient
// global session state.
type Session struct {
	IsAuthenticated bool  `json:"is_authenticated"`
	CurrentUser     *User `json:"current_user,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

// ProfileUpdate carries the subset of user fields a profile edit may change.
// Empty fields are left untouched.
type ProfileUpdate struct {
	Name           string `json:"name,omitempty"`
	Username       string `json:"username,omitempty"`
	Email          string `json:"email,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}
