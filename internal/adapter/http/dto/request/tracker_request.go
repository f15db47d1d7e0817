package request

import "fitmarket/internal/domain/entities"

type AddMealRequest struct {
	Name     string `json:"name" binding:"required"`
	Calories int    `json:"calories" binding:"required"`
	Time     string `json:"time"`
}

func (r AddMealRequest) ToEntity() entities.Meal {
	return entities.Meal{
		Name:     r.Name,
		Calories: r.Calories,
		Time:     r.Time,
	}
}

type SetGoalRequest struct {
	Goal int `json:"goal" binding:"required"`
}
