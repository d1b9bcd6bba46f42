package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is the acting person. Email is unique when present.
type User struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email,omitempty"`
	FirstName       string    `json:"firstName,omitempty"`
	LastName        string    `json:"lastName,omitempty"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	LinkedinURL     string    `json:"linkedinUrl,omitempty"`
	Location        string    `json:"location,omitempty"`
	Title           string    `json:"title,omitempty"`
	PasswordHash    string    `json:"-"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// FullName joins first and last name.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
