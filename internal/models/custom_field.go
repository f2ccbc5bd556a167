package models

import "time"

// CustomField is an admin-defined extra field on the intake form.
type CustomField struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Label    string   `gorm:"size:100;not null" json:"label"`
	Type     string   `gorm:"size:20;default:'text'" json:"type"`
	Options  []string `gorm:"serializer:json" json:"options"`
	Required bool     `json:"required"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
