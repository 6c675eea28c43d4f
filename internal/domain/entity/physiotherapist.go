// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultProfilePicture is used when a physiotherapist has not uploaded a picture.
const DefaultProfilePicture = "https://ibb.co/27mgpNMx"

// Physiotherapist is the core entity of the registry: one credentialed
// professional profile. The ID is assigned by the store on creation and is
// immutable afterwards, as is the Crefito license number.
type Physiotherapist struct {
	ID             uuid.UUID `json:"id"`              // Store-assigned unique identifier.
	Name           string    `json:"name"`            // Display name, at most 50 characters.
	Email          string    `json:"email"`           // Login identifier, globally unique.
	Phone          string    `json:"phone"`           // Contact phone number.
	PasswordHash   string    `json:"-"`               // bcrypt hash; never serialized outward.
	Crefito        string    `json:"crefito"`         // Professional license number, set at registration.
	Description    string    `json:"description"`     // Free-form professional description.
	ProfilePicture string    `json:"profile_picture"` // URL or path; defaults to DefaultProfilePicture.
	Specialties    []string  `json:"specialties"`     // Ordered list of specialties, may be empty.
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Redacted returns a copy safe for external exposure, with the password
// hash cleared. The JSON tag already hides the hash, but callers that pass
// entities across the core boundary should not rely on serialization alone.
func (p *Physiotherapist) Redacted() *Physiotherapist {
	if p == nil {
		return nil
	}

	clone := *p
	clone.PasswordHash = ""

	return &clone
}
