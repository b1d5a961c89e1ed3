package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a person using Pennywise. Each user exclusively owns
// a ledger: their expense and income transactions plus their category rules.
type User struct {
	DefaultModel
	Name     string `json:"name" example:"Ada"`
	Email    string `json:"email" gorm:"uniqueIndex" example:"ada@example.com"`
	Password string `json:"-"` // The bcrypt hash of the password

	// Deleting a user deletes their whole ledger.
	Transactions  []Transaction  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CategoryRules []CategoryRule `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// BeforeSave normalizes the email address.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return nil
}

// FindUser resolves a user ID to the user owning the ledger.
// It returns ErrUserNotFound if the ID does not resolve.
func FindUser(db *gorm.DB, id uuid.UUID) (User, error) {
	var user User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if isNotFound(err) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}

	return user, nil
}

// FindUserByEmail returns the user registered with the email address.
func FindUserByEmail(db *gorm.DB, email string) (User, error) {
	var user User
	err := db.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		if isNotFound(err) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}

	return user, nil
}
