package dao

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed bootstraps the admin account and a few sample records so a fresh
// database is immediately usable. Each block is skipped when data exists.
func Seed(db *gorm.DB) error {
	if err := seedUsers(db); err != nil {
		return err
	}

	if err := seedFormations(db); err != nil {
		return err
	}

	return seedParticipants(db)
}

func seedUsers(db *gorm.DB) error {
	var admin User
	err := db.First(&admin, "username = ?", "admin").Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	users := []struct {
		username  string
		password  string
		firstName string
		lastName  string
		role      string
	}{
		{"admin", "admin123", "Admin", "User", "ADMIN"},
		{"sarah_m", "password123", "Sarah", "Miller", "MANAGER"},
		{"john_doe", "password123", "John", "Doe", "USER"},
		{"maria_g", "password123", "Maria", "Garcia", "ADMIN"},
	}

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := User{
			Username:  u.username,
			Password:  string(hash),
			FirstName: u.firstName,
			LastName:  u.lastName,
			Role:      u.role,
		}
		if err = db.Create(&user).Error; err != nil {
			return err
		}
	}

	return nil
}

func seedFormations(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Formation{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	date := func(year int, month time.Month, day int) time.Time {
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	}
	endDate := func(year int, month time.Month, day int) *time.Time {
		d := date(year, month, day)
		return &d
	}

	formations := []Formation{
		{
			Title:     "Spring Boot Advanced",
			Domain:    "IT",
			StartDate: date(2025, time.May, 1),
			EndDate:   endDate(2025, time.May, 15),
			Budget:    2500.00,
			Location:  "Online",
			Schedule:  "Full-time",
		},
		{
			Title:     "Data Science Fundamentals",
			Domain:    "IT",
			StartDate: date(2025, time.June, 1),
			EndDate:   endDate(2025, time.June, 30),
			Budget:    3000.00,
			Location:  "Paris",
			Schedule:  "Part-time",
		},
		{
			Title:     "Cloud Architecture",
			Domain:    "IT",
			StartDate: date(2025, time.July, 1),
			EndDate:   endDate(2025, time.July, 15),
			Budget:    2800.00,
			Location:  "London",
			Schedule:  "Full-time",
		},
	}

	return db.Create(&formations).Error
}

func seedParticipants(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Participant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	participants := []Participant{
		{
			FirstName: "Jean",
			LastName:  "Dupont",
			Email:     "jean.dupont@email.com",
			Telephone: "+33123456789",
			Structure: "IT",
			Profile:   "Participant",
		},
		{
			FirstName: "Marie",
			LastName:  "Laurent",
			Email:     "marie.laurent@email.com",
			Telephone: "+33234567890",
			Structure: "Finance",
			Profile:   "Intern",
		},
		{
			FirstName: "Pierre",
			LastName:  "Martin",
			Email:     "pierre.martin@email.com",
			Telephone: "+33345678901",
			Structure: "Marketing",
			Profile:   "Extern",
		},
	}

	return db.Create(&participants).Error
}
