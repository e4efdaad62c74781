package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups transactions of one user.
type Category struct {
	DefaultModel
	UserID uuid.UUID `json:"userId" gorm:"type:uuid;uniqueIndex:idx_category_user_name"`
	Name   string    `json:"name" gorm:"uniqueIndex:idx_category_user_name"`
	Type   Kind      `json:"type"`
	Color  string    `json:"color"`
	Icon   string    `json:"icon"`
}

// BeforeSave trims whitespace and validates name and type.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Color = strings.TrimSpace(c.Color)
	c.Icon = strings.TrimSpace(c.Icon)

	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	if !c.Type.Valid() {
		return ErrInvalidKind
	}

	return nil
}
