package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"fitmarket/internal/adapter/persistence/repository"
	"fitmarket/internal/domain/entities"
)

func newTrackerAt(day time.Time) *TrackerUseCase {
	uc := NewTrackerUseCase(repository.NewTrackerMemoryStore())
	uc.now = func() time.Time { return day }
	return uc
}

func TestTrackerUseCase_AddAndRemoveMeal(t *testing.T) {
	uc := newTrackerAt(time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC))

	t.Run("invalid input", func(t *testing.T) {
		if _, err := uc.AddMeal(context.Background(), "u-1", entities.Meal{Name: "  ", Calories: 100}); !errors.Is(err, ErrInvalidTrackerInput) {
			t.Fatalf("expected ErrInvalidTrackerInput, got %v", err)
		}
		if _, err := uc.AddMeal(context.Background(), "u-1", entities.Meal{Name: "Almoco", Calories: 0}); !errors.Is(err, ErrInvalidTrackerInput) {
			t.Fatalf("expected ErrInvalidTrackerInput, got %v", err)
		}
	})

	t.Run("meals accumulate into the day total", func(t *testing.T) {
		day, err := uc.AddMeal(context.Background(), "u-1", entities.Meal{Name: "Cafe", Calories: 300})
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		day, err = uc.AddMeal(context.Background(), "u-1", entities.Meal{Name: "Almoco", Calories: 700})
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if day.Intake.Total != 1000 || len(day.Intake.Meals) != 2 {
			t.Fatalf("unexpected day: %+v", day.Intake)
		}
		if day.Intake.Date != "2026-08-29" {
			t.Fatalf("unexpected date: %s", day.Intake.Date)
		}
	})

	t.Run("removing a meal subtracts its calories", func(t *testing.T) {
		day, err := uc.Today(context.Background(), "u-1")
		if err != nil {
			t.Fatalf("today: %v", err)
		}
		mealID := day.Intake.Meals[0].ID

		day, err = uc.RemoveMeal(context.Background(), "u-1", mealID)
		if err != nil {
			t.Fatalf("remove: %v", err)
		}
		if day.Intake.Total != 700 || len(day.Intake.Meals) != 1 {
			t.Fatalf("unexpected day after removal: %+v", day.Intake)
		}
	})

	t.Run("unknown meal", func(t *testing.T) {
		if _, err := uc.RemoveMeal(context.Background(), "u-1", "missing"); !errors.Is(err, ErrMealNotFound) {
			t.Fatalf("expected ErrMealNotFound, got %v", err)
		}
	})
}

func TestTrackerUseCase_DayRollover(t *testing.T) {
	uc := newTrackerAt(time.Date(2026, 8, 28, 22, 0, 0, 0, time.UTC))

	if err := uc.SetGoal(context.Background(), "u-1", 2000); err != nil {
		t.Fatalf("set goal: %v", err)
	}
	if _, err := uc.AddMeal(context.Background(), "u-1", entities.Meal{Name: "Jantar", Calories: 800}); err != nil {
		t.Fatalf("add: %v", err)
	}

	// Next day: the stale record is archived and the day restarts empty.
	uc.now = func() time.Time { return time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC) }

	day, err := uc.Today(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if day.Intake.Date != "2026-08-29" || day.Intake.Total != 0 || len(day.Intake.Meals) != 0 {
		t.Fatalf("expected fresh day, got %+v", day.Intake)
	}
	if day.Goal != 2000 {
		t.Fatalf("goal must survive the rollover, got %d", day.Goal)
	}

	history, err := uc.History(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 archived day, got %d", len(history))
	}
	if history[0].Date != "2026-08-28" || history[0].Total != 800 || history[0].Goal != 2000 {
		t.Fatalf("unexpected archive: %+v", history[0])
	}
}

func TestTrackerUseCase_HistoryTrimsToWindow(t *testing.T) {
	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	uc := newTrackerAt(start)

	for i := 0; i < entities.TrackerHistoryDays+5; i++ {
		day := start.AddDate(0, 0, i)
		uc.now = func() time.Time { return day }
		if _, err := uc.AddMeal(context.Background(), "u-1", entities.Meal{Name: fmt.Sprintf("dia %d", i), Calories: 100 + i}); err != nil {
			t.Fatalf("add day %d: %v", i, err)
		}
	}

	history, err := uc.History(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != entities.TrackerHistoryDays {
		t.Fatalf("expected %d entries, got %d", entities.TrackerHistoryDays, len(history))
	}
	// The oldest surviving entry is the one that pushed the first days out.
	wantOldest := start.AddDate(0, 0, 4).Format("2006-01-02")
	if history[0].Date != wantOldest {
		t.Fatalf("expected oldest %s, got %s", wantOldest, history[0].Date)
	}
}

func TestTrackerUseCase_SetGoal(t *testing.T) {
	uc := newTrackerAt(time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC))

	if err := uc.SetGoal(context.Background(), "u-1", 0); !errors.Is(err, ErrInvalidTrackerInput) {
		t.Fatalf("expected ErrInvalidTrackerInput, got %v", err)
	}
	if err := uc.SetGoal(context.Background(), "u-1", 1800); err != nil {
		t.Fatalf("set goal: %v", err)
	}

	day, err := uc.Today(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if day.Goal != 1800 {
		t.Fatalf("expected goal 1800, got %d", day.Goal)
	}
}
