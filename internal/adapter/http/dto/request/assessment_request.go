package request

import (
	"fitmarket/internal/domain/entities"
	"fitmarket/internal/usecase"
)

type BodyMeasurementsRequest struct {
	Chest      float64 `json:"chest"`
	Waist      float64 `json:"waist"`
	Hip        float64 `json:"hip"`
	RightArm   float64 `json:"right_arm"`
	LeftArm    float64 `json:"left_arm"`
	RightThigh float64 `json:"right_thigh"`
	LeftThigh  float64 `json:"left_thigh"`
}

func (r BodyMeasurementsRequest) ToEntity() entities.BodyMeasurements {
	return entities.BodyMeasurements{
		Chest:      r.Chest,
		Waist:      r.Waist,
		Hip:        r.Hip,
		RightArm:   r.RightArm,
		LeftArm:    r.LeftArm,
		RightThigh: r.RightThigh,
		LeftThigh:  r.LeftThigh,
	}
}

// CreateAssessmentRequest carries the raw measurements. The body-mass
// index is always derived server side.

type CreateAssessmentRequest struct {
	StudentID    string                  `json:"student_id" binding:"required"`
	StudentName  string                  `json:"student_name"`
	PartnerID    string                  `json:"partner_id" binding:"required"`
	Weight       float64                 `json:"weight" binding:"required"`
	Height       float64                 `json:"height" binding:"required"`
	BodyFat      float64                 `json:"body_fat"`
	MuscleMass   float64                 `json:"muscle_mass"`
	Measurements BodyMeasurementsRequest `json:"measurements"`
	Notes        string                  `json:"notes"`
}

func (r CreateAssessmentRequest) ToEntity() entities.PhysicalAssessment {
	return entities.PhysicalAssessment{
		StudentID:    r.StudentID,
		StudentName:  r.StudentName,
		PartnerID:    r.PartnerID,
		Weight:       r.Weight,
		Height:       r.Height,
		BodyFat:      r.BodyFat,
		MuscleMass:   r.MuscleMass,
		Measurements: r.Measurements.ToEntity(),
		Notes:        r.Notes,
	}
}

type UpdateAssessmentRequest struct {
	Weight       *float64                 `json:"weight"`
	Height       *float64                 `json:"height"`
	BodyFat      *float64                 `json:"body_fat"`
	MuscleMass   *float64                 `json:"muscle_mass"`
	Measurements *BodyMeasurementsRequest `json:"measurements"`
	Notes        *string                  `json:"notes"`
}

func (r UpdateAssessmentRequest) ToCommand() usecase.UpdateAssessmentCommand {
	cmd := usecase.UpdateAssessmentCommand{
		Weight:     r.Weight,
		Height:     r.Height,
		BodyFat:    r.BodyFat,
		MuscleMass: r.MuscleMass,
		Notes:      r.Notes,
	}
	if r.Measurements != nil {
		m := r.Measurements.ToEntity()
		cmd.Measurements = &m
	}
	return cmd
}
