package usecase

import (
	"context"
	"errors"
	"testing"

	"fitmarket/internal/adapter/persistence/repository"
	"fitmarket/internal/domain/entities"
)

func TestWorkoutUseCase_Create(t *testing.T) {
	t.Run("missing partner or name", func(t *testing.T) {
		uc := NewWorkoutUseCase(repository.NewWorkoutMemoryRepository())
		_, err := uc.Create(context.Background(), entities.Workout{Name: "Treino A"})
		if !errors.Is(err, ErrInvalidWorkoutInput) {
			t.Fatalf("expected ErrInvalidWorkoutInput, got %v", err)
		}
	})

	t.Run("assigns id and empty exercise slice", func(t *testing.T) {
		uc := NewWorkoutUseCase(repository.NewWorkoutMemoryRepository())
		w, err := uc.Create(context.Background(), entities.Workout{
			PartnerID: "p-1",
			Name:      "  Hipertrofia Iniciante ",
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if w.ID == "" {
			t.Fatalf("expected assigned id")
		}
		if w.Name != "Hipertrofia Iniciante" {
			t.Fatalf("expected trimmed name, got %q", w.Name)
		}
		if w.Exercises == nil {
			t.Fatalf("expected non-nil exercise slice")
		}
	})
}

func TestWorkoutUseCase_Update(t *testing.T) {
	uc := NewWorkoutUseCase(repository.NewWorkoutMemoryRepository())
	w, err := uc.Create(context.Background(), entities.Workout{
		PartnerID:   "p-1",
		Name:        "Treino A",
		Description: "fase de adaptacao",
		Objective:   "hipertrofia",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("nil fields leave stored values untouched", func(t *testing.T) {
		name := "Treino B"
		updated, err := uc.Update(context.Background(), w.ID, UpdateWorkoutCommand{Name: &name})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.Name != "Treino B" {
			t.Fatalf("expected renamed workout, got %q", updated.Name)
		}
		if updated.Description != "fase de adaptacao" || updated.Objective != "hipertrofia" {
			t.Fatalf("expected untouched fields, got %+v", updated)
		}
	})

	t.Run("exercise list replaced wholesale", func(t *testing.T) {
		exercises := []entities.Exercise{{Name: "Supino", Sets: 4, Reps: "8-10"}}
		updated, err := uc.Update(context.Background(), w.ID, UpdateWorkoutCommand{Exercises: &exercises})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if len(updated.Exercises) != 1 || updated.Exercises[0].Name != "Supino" {
			t.Fatalf("expected replaced exercises, got %+v", updated.Exercises)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := uc.Update(context.Background(), "missing", UpdateWorkoutCommand{})
		if !errors.Is(err, ErrWorkoutNotFound) {
			t.Fatalf("expected ErrWorkoutNotFound, got %v", err)
		}
	})
}

func TestWorkoutUseCase_Assign(t *testing.T) {
	uc := NewWorkoutUseCase(repository.NewWorkoutMemoryRepository())
	w, err := uc.Create(context.Background(), entities.Workout{PartnerID: "p-1", Name: "Treino A"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("missing student id", func(t *testing.T) {
		_, err := uc.Assign(context.Background(), w.ID, " ", "Maria")
		if !errors.Is(err, ErrInvalidWorkoutInput) {
			t.Fatalf("expected ErrInvalidWorkoutInput, got %v", err)
		}
	})

	t.Run("binds workout to student", func(t *testing.T) {
		assigned, err := uc.Assign(context.Background(), w.ID, "st-1", "Maria Silva")
		if err != nil {
			t.Fatalf("assign: %v", err)
		}
		if assigned.StudentID != "st-1" || assigned.StudentName != "Maria Silva" {
			t.Fatalf("expected student binding, got %+v", assigned)
		}
	})
}

func TestWorkoutUseCase_ListSearch(t *testing.T) {
	uc := NewWorkoutUseCase(repository.NewWorkoutMemoryRepository())
	seed := []entities.Workout{
		{PartnerID: "p-1", Name: "Hipertrofia Avancada", Objective: "hipertrofia"},
		{PartnerID: "p-1", Name: "Cardio Leve", Objective: "emagrecimento"},
		{PartnerID: "p-2", Name: "Hipertrofia Base", Objective: "hipertrofia"},
	}
	for _, w := range seed {
		if _, err := uc.Create(context.Background(), w); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err := uc.List(context.Background(), entities.WorkoutFilter{PartnerID: "p-1", Search: "HIPERTROFIA"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Hipertrofia Avancada" {
		t.Fatalf("expected single partner-scoped match, got %+v", got)
	}
}

func TestWorkoutUseCase_Delete(t *testing.T) {
	uc := NewWorkoutUseCase(repository.NewWorkoutMemoryRepository())
	w, err := uc.Create(context.Background(), entities.Workout{PartnerID: "p-1", Name: "Treino A"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := uc.Delete(context.Background(), w.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := uc.Delete(context.Background(), w.ID); !errors.Is(err, ErrWorkoutNotFound) {
		t.Fatalf("expected ErrWorkoutNotFound on second delete, got %v", err)
	}
	if _, err := uc.GetByID(context.Background(), w.ID); !errors.Is(err, ErrWorkoutNotFound) {
		t.Fatalf("expected ErrWorkoutNotFound after delete, got %v", err)
	}
}
