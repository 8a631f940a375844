package shopper

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Account is the stored record. The password is never kept in plain text.
type Account struct {
	UID          string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Profile is the outward-facing view of an account.
type Profile struct {
	UID       string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func (a Account) Profile() Profile {
	return Profile{
		UID:       a.UID,
		Name:      a.Name,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
