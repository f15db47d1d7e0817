package request

import (
	"fitmarket/internal/domain/entities"
	"fitmarket/internal/usecase"
)

type ExerciseRequest struct {
	Name  string `json:"name" binding:"required"`
	Sets  int    `json:"sets"`
	Reps  string `json:"reps"`
	Load  string `json:"load"`
	Rest  string `json:"rest"`
	Notes string `json:"notes"`
}

func (r ExerciseRequest) ToEntity() entities.Exercise {
	return entities.Exercise{
		Name:  r.Name,
		Sets:  r.Sets,
		Reps:  r.Reps,
		Load:  r.Load,
		Rest:  r.Rest,
		Notes: r.Notes,
	}
}

type CreateWorkoutRequest struct {
	PartnerID   string            `json:"partner_id" binding:"required"`
	StudentID   string            `json:"student_id"`
	StudentName string            `json:"student_name"`
	Name        string            `json:"name" binding:"required"`
	Description string            `json:"description"`
	Objective   string            `json:"objective"`
	Exercises   []ExerciseRequest `json:"exercises"`
}

func (r CreateWorkoutRequest) ToEntity() entities.Workout {
	exercises := make([]entities.Exercise, 0, len(r.Exercises))
	for _, e := range r.Exercises {
		exercises = append(exercises, e.ToEntity())
	}
	return entities.Workout{
		PartnerID:   r.PartnerID,
		StudentID:   r.StudentID,
		StudentName: r.StudentName,
		Name:        r.Name,
		Description: r.Description,
		Objective:   r.Objective,
		Exercises:   exercises,
	}
}

// UpdateWorkoutRequest uses pointer fields so absent keys leave the
// stored value untouched.

type UpdateWorkoutRequest struct {
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	Objective   *string            `json:"objective"`
	Exercises   *[]ExerciseRequest `json:"exercises"`
}

func (r UpdateWorkoutRequest) ToCommand() usecase.UpdateWorkoutCommand {
	cmd := usecase.UpdateWorkoutCommand{
		Name:        r.Name,
		Description: r.Description,
		Objective:   r.Objective,
	}
	if r.Exercises != nil {
		exercises := make([]entities.Exercise, 0, len(*r.Exercises))
		for _, e := range *r.Exercises {
			exercises = append(exercises, e.ToEntity())
		}
		cmd.Exercises = &exercises
	}
	return cmd
}

type AssignWorkoutRequest struct {
	StudentID   string `json:"student_id" binding:"required"`
	StudentName string `json:"student_name"`
}
