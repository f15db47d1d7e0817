package entities

import (
	"strings"
	"time"
)

// GymStatus is the administrative state of a partner gym on the platform.

type GymStatus string

const (
	GymStatusActive  GymStatus = "active"
	GymStatusPending GymStatus = "pending"
	GymStatusBlocked GymStatus = "blocked"
)

// GymPlan is the subscription tier a partner gym pays for.

type GymPlan string

const (
	GymPlanBasico  GymPlan = "basico"
	GymPlanPremium GymPlan = "premium"
)

// Gym is a partner establishment offering services through the
// marketplace. Plain aggregate, no lifecycle.

type Gym struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone,omitempty"`
	Address string    `json:"address,omitempty"`
	City    string    `json:"city,omitempty"`
	State   string    `json:"state,omitempty"`
	Plan    GymPlan   `json:"plan"`
	Status  GymStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GymFilter narrows gym listings. Search matches name and city,
// case-insensitive substring.

type GymFilter struct {
	Status GymStatus
	Plan   GymPlan
	Search string
}

func (f GymFilter) Matches(g Gym) bool {
	if f.Status != "" && g.Status != f.Status {
		return false
	}
	if f.Plan != "" && g.Plan != f.Plan {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(g.Name), q) &&
			!strings.Contains(strings.ToLower(g.City), q) {
			return false
		}
	}
	return true
}
