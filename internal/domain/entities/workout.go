package entities

import (
	"strings"
	"time"
)

// Exercise is a single prescribed exercise within a workout plan.

type Exercise struct {
	Name  string `json:"name"`
	Sets  int    `json:"sets"`
	Reps  string `json:"reps"` // free form, e.g. "12" or "8-10"
	Load  string `json:"load,omitempty"`
	Rest  string `json:"rest,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// Workout is a training plan built by a partner, optionally assigned to
// one of its students. Plain aggregate, no lifecycle.

type Workout struct {
	ID          string `json:"id"`
	PartnerID   string `json:"partner_id"`
	StudentID   string `json:"student_id,omitempty"`
	StudentName string `json:"student_name,omitempty"`

	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Objective   string     `json:"objective,omitempty"`
	Exercises   []Exercise `json:"exercises"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WorkoutFilter narrows workout listings. Search matches name and
// objective, case-insensitive substring.

type WorkoutFilter struct {
	PartnerID string
	StudentID string
	Search    string
}

func (f WorkoutFilter) Matches(w Workout) bool {
	if f.PartnerID != "" && w.PartnerID != f.PartnerID {
		return false
	}
	if f.StudentID != "" && w.StudentID != f.StudentID {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(w.Name), q) &&
			!strings.Contains(strings.ToLower(w.Objective), q) {
			return false
		}
	}
	return true
}
