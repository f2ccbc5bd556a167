package models

import "time"

type Reservation struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ChildName  string `gorm:"size:100;not null" json:"child_name"`
	ParentName string `gorm:"size:100" json:"parent_name"`
	Phone      string `gorm:"size:20" json:"phone"`
	Address    string `gorm:"size:255" json:"address"`
	Notes      string `gorm:"size:500" json:"notes"`

	// Values for custom intake fields, keyed by field id.
	Extras map[string]string `gorm:"serializer:json" json:"extras"`

	// Calendar day in YYYY-MM-DD. Legacy records may carry an empty
	// date and are treated as belonging to today.
	Date string `gorm:"size:10;index" json:"date"`

	// Canonical slot label ("3 PM - 4 PM"). Empty means unassigned.
	TimeSlot string `gorm:"size:20" json:"time_slot"`

	Status       string `gorm:"size:20;default:'active'" json:"status"`
	StatusReason string `gorm:"size:100" json:"status_reason"`

	// Render order inside the day board. Rewritten whenever the
	// collection is replaced after a drag gesture.
	Position int `gorm:"index" json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
