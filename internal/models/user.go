package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is an account authenticated through an external identity provider.
type User struct {
	DefaultModel
	AuthProvider string `json:"authProvider" gorm:"uniqueIndex:idx_user_provider" example:"google"`
	AuthID       string `json:"-" gorm:"uniqueIndex:idx_user_provider"`
	Email        string `json:"email" example:"jane@example.com"`
	Name         string `json:"name" example:"Jane Doe"`
	AvatarURL    string `json:"avatarUrl" example:"https://example.com/avatar.png"`
	Role         string `json:"role" example:"user" default:"user"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.TrimSpace(u.Email)
	u.Name = strings.TrimSpace(u.Name)

	if u.Role == "" {
		u.Role = "user"
	}

	return nil
}
