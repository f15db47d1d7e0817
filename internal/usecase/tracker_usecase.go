package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"fitmarket/internal/domain/entities"
	"fitmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidTrackerInput = errors.New("invalid tracker input")
	ErrMealNotFound        = errors.New("meal not found")
)

const trackerDateLayout = "2006-01-02"

// TrackerDay is the current day's intake together with the configured
// goal.

type TrackerDay struct {
	Intake entities.DailyIntake `json:"intake"`
	Goal   int                  `json:"goal"`
}

type ITrackerUseCase interface {
	Today(ctx context.Context, userID string) (TrackerDay, error)
	AddMeal(ctx context.Context, userID string, meal entities.Meal) (TrackerDay, error)
	RemoveMeal(ctx context.Context, userID, mealID string) (TrackerDay, error)
	SetGoal(ctx context.Context, userID string, goal int) error
	History(ctx context.Context, userID string) ([]entities.DaySummary, error)
}

// TrackerUseCase keeps the calorie tracker state under fixed per-user
// keys. The daily record is reset whenever its stored date no longer
// matches the current date; the closed day is archived into a rolling
// 30-day history.

type TrackerUseCase struct {
	store interfaces.ITrackerStore
	now   func() time.Time
}

var _ ITrackerUseCase = (*TrackerUseCase)(nil)

func NewTrackerUseCase(store interfaces.ITrackerStore) *TrackerUseCase {
	return &TrackerUseCase{store: store, now: time.Now}
}

func dayKey(userID string) string     { return fmt.Sprintf("tracker:%s:day", userID) }
func historyKey(userID string) string { return fmt.Sprintf("tracker:%s:history", userID) }
func goalKey(userID string) string    { return fmt.Sprintf("tracker:%s:goal", userID) }

func (u *TrackerUseCase) Today(ctx context.Context, userID string) (TrackerDay, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return TrackerDay{}, ErrInvalidTrackerInput
	}

	intake, err := u.currentDay(ctx, userID)
	if err != nil {
		return TrackerDay{}, err
	}
	goal, err := u.goal(ctx, userID)
	if err != nil {
		return TrackerDay{}, err
	}
	return TrackerDay{Intake: intake, Goal: goal}, nil
}

func (u *TrackerUseCase) AddMeal(ctx context.Context, userID string, meal entities.Meal) (TrackerDay, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" || strings.TrimSpace(meal.Name) == "" || meal.Calories <= 0 {
		return TrackerDay{}, ErrInvalidTrackerInput
	}

	intake, err := u.currentDay(ctx, userID)
	if err != nil {
		return TrackerDay{}, err
	}

	meal.ID = uuid.NewString()
	meal.Name = strings.TrimSpace(meal.Name)
	intake.Meals = append(intake.Meals, meal)
	intake.Total += meal.Calories

	if err := u.saveJSON(ctx, dayKey(userID), intake); err != nil {
		return TrackerDay{}, err
	}
	goal, err := u.goal(ctx, userID)
	if err != nil {
		return TrackerDay{}, err
	}
	return TrackerDay{Intake: intake, Goal: goal}, nil
}

func (u *TrackerUseCase) RemoveMeal(ctx context.Context, userID, mealID string) (TrackerDay, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" || strings.TrimSpace(mealID) == "" {
		return TrackerDay{}, ErrInvalidTrackerInput
	}

	intake, err := u.currentDay(ctx, userID)
	if err != nil {
		return TrackerDay{}, err
	}

	found := false
	meals := intake.Meals[:0]
	for _, m := range intake.Meals {
		if m.ID == mealID {
			found = true
			intake.Total -= m.Calories
			continue
		}
		meals = append(meals, m)
	}
	if !found {
		return TrackerDay{}, ErrMealNotFound
	}
	intake.Meals = meals

	if err := u.saveJSON(ctx, dayKey(userID), intake); err != nil {
		return TrackerDay{}, err
	}
	goal, err := u.goal(ctx, userID)
	if err != nil {
		return TrackerDay{}, err
	}
	return TrackerDay{Intake: intake, Goal: goal}, nil
}

func (u *TrackerUseCase) SetGoal(ctx context.Context, userID string, goal int) error {
	userID = strings.TrimSpace(userID)
	if userID == "" || goal <= 0 {
		return ErrInvalidTrackerInput
	}
	return u.saveJSON(ctx, goalKey(userID), goal)
}

func (u *TrackerUseCase) History(ctx context.Context, userID string) ([]entities.DaySummary, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidTrackerInput
	}

	// Rolling the day record first so a stale day gets archived before
	// the history is read.
	if _, err := u.currentDay(ctx, userID); err != nil {
		return nil, err
	}

	var history []entities.DaySummary
	if err := u.loadJSON(ctx, historyKey(userID), &history); err != nil {
		return nil, err
	}
	if history == nil {
		history = []entities.DaySummary{}
	}
	return history, nil
}

// currentDay loads the day record, resetting it when the stored date no
// longer matches today. The closed day is appended to the history,
// trimmed to the last TrackerHistoryDays entries.
func (u *TrackerUseCase) currentDay(ctx context.Context, userID string) (entities.DailyIntake, error) {
	today := u.now().Format(trackerDateLayout)

	var intake entities.DailyIntake
	if err := u.loadJSON(ctx, dayKey(userID), &intake); err != nil {
		return entities.DailyIntake{}, err
	}

	if intake.Date == today {
		if intake.Meals == nil {
			intake.Meals = []entities.Meal{}
		}
		return intake, nil
	}

	if intake.Date != "" {
		goal, err := u.goal(ctx, userID)
		if err != nil {
			return entities.DailyIntake{}, err
		}

		var history []entities.DaySummary
		if err := u.loadJSON(ctx, historyKey(userID), &history); err != nil {
			return entities.DailyIntake{}, err
		}
		history = append(history, entities.DaySummary{Date: intake.Date, Total: intake.Total, Goal: goal})
		if len(history) > entities.TrackerHistoryDays {
			history = history[len(history)-entities.TrackerHistoryDays:]
		}
		if err := u.saveJSON(ctx, historyKey(userID), history); err != nil {
			return entities.DailyIntake{}, err
		}
	}

	intake = entities.DailyIntake{Date: today, Meals: []entities.Meal{}}
	if err := u.saveJSON(ctx, dayKey(userID), intake); err != nil {
		return entities.DailyIntake{}, err
	}
	return intake, nil
}

func (u *TrackerUseCase) goal(ctx context.Context, userID string) (int, error) {
	var goal int
	if err := u.loadJSON(ctx, goalKey(userID), &goal); err != nil {
		return 0, err
	}
	return goal, nil
}

func (u *TrackerUseCase) loadJSON(ctx context.Context, key string, out any) error {
	raw, ok, err := u.store.Get(ctx, key)
	if err != nil || !ok {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (u *TrackerUseCase) saveJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return u.store.Set(ctx, key, raw)
}
