package seed

import (
	"errors"
	"fmt"
	"os"

	"agencypro-backend/models"

	"gorm.io/gorm"
)

type userData struct {
	Email string
	Name  string
	Role  string
}

var seedUsers = []userData{
	{Email: "admin@agencypro.dev", Name: "Site Admin", Role: "admin"},
}

// UsersSeeder creates the admin accounts, idempotent by email. The
// initial password comes from SEED_ADMIN_PASSWORD so no credential is
// committed with the seed data.
type UsersSeeder struct {
	cfg Config
}

func NewUsersSeeder() *UsersSeeder {
	return &UsersSeeder{
		cfg: Config{
			Name:        "users",
			Order:       2,
			Description: "Admin users for the dashboard",
		},
	}
}

func (s *UsersSeeder) Config() Config {
	return s.cfg
}

func (s *UsersSeeder) Execute(db *gorm.DB) (int, error) {
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "change-me-on-first-login"
	}

	created := 0
	for _, u := range seedUsers {
		var existing models.User
		err := db.Where("email = ?", u.Email).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, fmt.Errorf("look up user %s: %w", u.Email, err)
		}

		user := models.User{
			Email:    u.Email,
			Name:     u.Name,
			Role:     u.Role,
			Password: password, // hashed in BeforeCreate
			IsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			return created, fmt.Errorf("create user %s: %w", u.Email, err)
		}
		created++
	}
	return created, nil
}

func (s *UsersSeeder) Clear(db *gorm.DB) error {
	emails := make([]string, 0, len(seedUsers))
	for _, u := range seedUsers {
		emails = append(emails, u.Email)
	}
	if err := db.Where("email IN ?", emails).Delete(&models.User{}).Error; err != nil {
		return fmt.Errorf("clear users: %w", err)
	}
	return nil
}
