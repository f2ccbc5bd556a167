package models

import "time"

// ClinicSettings is a single-row table (id = 1) holding the clinic's
// branding and schedule configuration.
type ClinicSettings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClinicName string `gorm:"size:100;default:'Pediatric Clinic'" json:"clinic_name"`
	Subtitle   string `gorm:"size:100" json:"subtitle"`
	LogoURL    string `gorm:"size:255" json:"logo_url"`

	// Weekday abbreviations ("Sat".."Fri") the clinic is open.
	WorkingDays []string `gorm:"serializer:json" json:"working_days"`

	StartHour string `gorm:"size:5;default:'15:00'" json:"start_hour"`
	EndHour   string `gorm:"size:5;default:'22:00'" json:"end_hour"`

	MaxPatientsPerSlot int `gorm:"default:5" json:"max_patients_per_slot"`

	// Per-date overrides: date -> "open" | "closed".
	Exceptions map[string]string `gorm:"serializer:json" json:"exceptions"`

	// Display labels for the built-in intake fields.
	DefaultLabels map[string]string `gorm:"serializer:json" json:"default_labels"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
