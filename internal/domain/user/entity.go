package user

import "time"

const (
	RoleSeeker   = "seeker"
	RoleProvider = "provider"
)

type User struct {
	ID                 int64
	Email              string
	PasswordHash       string
	Role               string
	Location           string
	IndustryPreference string
	CreatedAt          time.Time
}

func ValidRole(role string) bool {
	return role == RoleSeeker || role == RoleProvider
}
