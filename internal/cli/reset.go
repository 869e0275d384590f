// Package cli hosts maintenance commands that operate on the database
// directly, without going through the HTTP API.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beatburn/server/internal/db"
	"github.com/beatburn/server/internal/models"
	"github.com/beatburn/server/internal/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunResetPasswordCommand hands the named user a fresh temporary password
// and prints it to stdout. For operators helping locked-out users; there is
// no self-service reset flow.
func RunResetPasswordCommand(dbPath string, username string) error {
	trimmedUsername := strings.TrimSpace(username)
	if trimmedUsername == "" {
		return errors.New("username is required")
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	var user models.User
	if err := database.Where("username = ?", trimmedUsername).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %s not found", trimmedUsername)
		}
		return fmt.Errorf("load user: %w", err)
	}

	temporaryPassword, err := generateTemporaryPassword(12)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash temporary password: %w", err)
	}

	user.PasswordHash = string(passwordHash)
	if err := database.Save(&user).Error; err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Printf("Password reset for %s\n", trimmedUsername)
	fmt.Printf("Temporary password: %s\n", temporaryPassword)
	return nil
}

// The alphabet drops easily-confused characters (0/O, 1/l/I) since the
// password is usually relayed over chat or read aloud.
func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}
