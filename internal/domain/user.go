package domain

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // argon2 encoded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile holds the optional personal details attached to a user. One row per
// user, created (possibly empty) at registration.
type Profile struct {
	UserID        string
	FirstName     string
	LastName      string
	DateOfBirth   string // YYYY-MM-DD, empty when unset
	Gender        string
	HeightCm      *float64
	WeightKg      *float64
	ActivityLevel string
}

// DefaultActivityLevel is applied when a profile update omits the field.
const DefaultActivityLevel = "moderate"
