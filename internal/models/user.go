package models

import "time"

// Roles carried in the token's role claim.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleParent  = "parent"
	RoleAdmin   = "admin"
	RoleExpert  = "expert"
)

type User struct {
	UserID                 int64      `json:"user_id"`
	Email                  string     `json:"email"`
	FirstName              string     `json:"first_name"`
	LastName               string     `json:"last_name"`
	Role                   string     `json:"role"`
	AvatarURL              string     `json:"avatar_url,omitempty"`
	Bio                    string     `json:"bio,omitempty"`
	HasCompletedOnboarding bool       `json:"has_completed_onboarding"`
	CreatedAt              time.Time  `json:"created_at"`
	LastLoginAt            *time.Time `json:"last_login_at,omitempty"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// GoogleCredential is the opaque payload handed back by the identity
// provider. The client forwards it untouched.
type GoogleCredential struct {
	Credential string `json:"credential"`
	Role       string `json:"role,omitempty"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
