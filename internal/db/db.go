package db

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/clinicdesk/clinic-scheduler/internal/config"
	"github.com/clinicdesk/clinic-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.ClinicSettings{},
		&models.CustomField{},
		&models.Reservation{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedSettings(db)
	seedUsers(db)

	return db
}

// seedSettings creates the single settings row with the clinic's
// historical defaults: open Saturday through Thursday, 3 PM to 10 PM,
// five patients per slot.
func seedSettings(db *gorm.DB) {
	var count int64
	db.Model(&models.ClinicSettings{}).Count(&count)
	if count > 0 {
		return
	}

	settings := models.ClinicSettings{
		ID:                 1,
		ClinicName:         "Pediatric Clinic",
		WorkingDays:        []string{"Sat", "Sun", "Mon", "Tue", "Wed", "Thu"},
		StartHour:          "15:00",
		EndHour:            "22:00",
		MaxPatientsPerSlot: 5,
		Exceptions:         map[string]string{},
		DefaultLabels: map[string]string{
			"childName":  "Child Name",
			"parentName": "Parent Name",
			"phone":      "Phone Number",
			"notes":      "Notes / Diagnosis",
		},
	}
	if err := db.Create(&settings).Error; err != nil {
		log.Printf("failed to seed settings: %v", err)
	}
}

func seedUsers(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []struct {
		username string
		role     string
		password string
	}{
		{"admin", "admin", "admin123"},
		{"assistant", "assistant", "assist123"},
		{"owner", "owner", "owner123"},
	}

	for _, d := range defaults {
		hashed, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("failed to hash seed password for %s: %v", d.username, err)
			continue
		}
		user := models.User{
			Username:     d.username,
			Role:         d.role,
			PasswordHash: string(hashed),
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("failed to seed user %s: %v", d.username, err)
		}
	}
}
