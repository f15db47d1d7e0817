package entities

import (
	"strings"
	"time"
)

// StudentStatus marks whether a student is currently active with the
// partner.

type StudentStatus string

const (
	StudentStatusActive   StudentStatus = "active"
	StudentStatusInactive StudentStatus = "inactive"
)

// Student is an end user enrolled with a partner (gym, studio or
// trainer). Plain aggregate, no lifecycle.

type Student struct {
	ID        string        `json:"id"`
	PartnerID string        `json:"partner_id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone,omitempty"`
	BirthDate string        `json:"birth_date,omitempty"`
	Goal      string        `json:"goal,omitempty"`
	Status    StudentStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StudentFilter narrows student listings. Search matches name and e-mail,
// case-insensitive substring.

type StudentFilter struct {
	PartnerID string
	Status    StudentStatus
	Search    string
}

func (f StudentFilter) Matches(s Student) bool {
	if f.PartnerID != "" && s.PartnerID != f.PartnerID {
		return false
	}
	if f.Status != "" && s.Status != f.Status {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(s.Name), q) &&
			!strings.Contains(strings.ToLower(s.Email), q) {
			return false
		}
	}
	return true
}
