package entities

import (
	"math"
	"time"
)

// BodyMeasurements groups the circumference measurements (cm) captured
// during a physical assessment.

type BodyMeasurements struct {
	Chest      float64 `json:"chest,omitempty"`
	Waist      float64 `json:"waist,omitempty"`
	Hip        float64 `json:"hip,omitempty"`
	RightArm   float64 `json:"right_arm,omitempty"`
	LeftArm    float64 `json:"left_arm,omitempty"`
	RightThigh float64 `json:"right_thigh,omitempty"`
	LeftThigh  float64 `json:"left_thigh,omitempty"`
}

// PhysicalAssessment is a point-in-time body assessment of a student.
//
// IMC is derived from Weight/Height on every create and update; callers
// never supply it.

type PhysicalAssessment struct {
	ID          string `json:"id"`
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name,omitempty"`
	PartnerID   string `json:"partner_id"`

	Weight float64 `json:"weight"` // kg
	Height float64 `json:"height"` // cm
	IMC    float64 `json:"imc"`

	BodyFat      float64          `json:"body_fat,omitempty"`
	MuscleMass   float64          `json:"muscle_mass,omitempty"`
	Measurements BodyMeasurements `json:"measurements"`
	Notes        string           `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CalculateIMC computes the body-mass index from weight in kg and height
// in cm, rounded to two decimals. 75.5 kg at 175 cm yields 24.65.
func CalculateIMC(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	heightM := heightCm / 100
	imc := weightKg / (heightM * heightM)
	return math.Round(imc*100) / 100
}

// AssessmentFilter narrows assessment listings. Zero-valued fields are
// ignored.

type AssessmentFilter struct {
	PartnerID string
	StudentID string
}

func (f AssessmentFilter) Matches(a PhysicalAssessment) bool {
	if f.PartnerID != "" && a.PartnerID != f.PartnerID {
		return false
	}
	if f.StudentID != "" && a.StudentID != f.StudentID {
		return false
	}
	return true
}
