package repository

import (
	"context"
	"sync"

	"fitmarket/internal/domain/entities"
	"fitmarket/internal/usecase/interfaces"
)

// Mock-mode stores for the catalog entity families. They all follow the
// same template the original mock arrays did: create prepends, update
// replaces in place, delete splices.

// WorkoutMemoryRepository holds workouts in memory.

type WorkoutMemoryRepository struct {
	mu    sync.RWMutex
	items []entities.Workout
}

var _ interfaces.IWorkoutRepository = (*WorkoutMemoryRepository)(nil)

func NewWorkoutMemoryRepository() *WorkoutMemoryRepository {
	return &WorkoutMemoryRepository{}
}

func (r *WorkoutMemoryRepository) Create(_ context.Context, w entities.Workout) (entities.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]entities.Workout{w}, r.items...)
	return w, nil
}

func (r *WorkoutMemoryRepository) GetByID(_ context.Context, id string) (entities.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.items {
		if w.ID == id {
			return w, nil
		}
	}
	return entities.Workout{}, nil
}

func (r *WorkoutMemoryRepository) List(_ context.Context, filter entities.WorkoutFilter) ([]entities.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Workout, 0, len(r.items))
	for _, w := range r.items {
		if filter.Matches(w) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *WorkoutMemoryRepository) Update(_ context.Context, w entities.Workout) (entities.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == w.ID {
			r.items[i] = w
			return w, nil
		}
	}
	return entities.Workout{}, nil
}

func (r *WorkoutMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// AssessmentMemoryRepository holds physical assessments in memory.

type AssessmentMemoryRepository struct {
	mu    sync.RWMutex
	items []entities.PhysicalAssessment
}

var _ interfaces.IAssessmentRepository = (*AssessmentMemoryRepository)(nil)

func NewAssessmentMemoryRepository() *AssessmentMemoryRepository {
	return &AssessmentMemoryRepository{}
}

func (r *AssessmentMemoryRepository) Create(_ context.Context, a entities.PhysicalAssessment) (entities.PhysicalAssessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]entities.PhysicalAssessment{a}, r.items...)
	return a, nil
}

func (r *AssessmentMemoryRepository) GetByID(_ context.Context, id string) (entities.PhysicalAssessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.items {
		if a.ID == id {
			return a, nil
		}
	}
	return entities.PhysicalAssessment{}, nil
}

func (r *AssessmentMemoryRepository) List(_ context.Context, filter entities.AssessmentFilter) ([]entities.PhysicalAssessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.PhysicalAssessment, 0, len(r.items))
	for _, a := range r.items {
		if filter.Matches(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *AssessmentMemoryRepository) Update(_ context.Context, a entities.PhysicalAssessment) (entities.PhysicalAssessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == a.ID {
			r.items[i] = a
			return a, nil
		}
	}
	return entities.PhysicalAssessment{}, nil
}

func (r *AssessmentMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// StudentMemoryRepository holds students in memory.

type StudentMemoryRepository struct {
	mu    sync.RWMutex
	items []entities.Student
}

var _ interfaces.IStudentRepository = (*StudentMemoryRepository)(nil)

func NewStudentMemoryRepository() *StudentMemoryRepository {
	return &StudentMemoryRepository{}
}

func (r *StudentMemoryRepository) Create(_ context.Context, s entities.Student) (entities.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]entities.Student{s}, r.items...)
	return s, nil
}

func (r *StudentMemoryRepository) GetByID(_ context.Context, id string) (entities.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.items {
		if s.ID == id {
			return s, nil
		}
	}
	return entities.Student{}, nil
}

func (r *StudentMemoryRepository) List(_ context.Context, filter entities.StudentFilter) ([]entities.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Student, 0, len(r.items))
	for _, s := range r.items {
		if filter.Matches(s) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *StudentMemoryRepository) Update(_ context.Context, s entities.Student) (entities.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == s.ID {
			r.items[i] = s
			return s, nil
		}
	}
	return entities.Student{}, nil
}

func (r *StudentMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// GymMemoryRepository holds partner gyms in memory.

type GymMemoryRepository struct {
	mu    sync.RWMutex
	items []entities.Gym
}

var _ interfaces.IGymRepository = (*GymMemoryRepository)(nil)

func NewGymMemoryRepository() *GymMemoryRepository {
	return &GymMemoryRepository{}
}

func (r *GymMemoryRepository) Create(_ context.Context, g entities.Gym) (entities.Gym, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]entities.Gym{g}, r.items...)
	return g, nil
}

func (r *GymMemoryRepository) GetByID(_ context.Context, id string) (entities.Gym, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, g := range r.items {
		if g.ID == id {
			return g, nil
		}
	}
	return entities.Gym{}, nil
}

func (r *GymMemoryRepository) List(_ context.Context, filter entities.GymFilter) ([]entities.Gym, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Gym, 0, len(r.items))
	for _, g := range r.items {
		if filter.Matches(g) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *GymMemoryRepository) Update(_ context.Context, g entities.Gym) (entities.Gym, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == g.ID {
			r.items[i] = g
			return g, nil
		}
	}
	return entities.Gym{}, nil
}

func (r *GymMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
