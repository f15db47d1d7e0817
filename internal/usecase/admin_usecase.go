package usecase

import (
	"context"

	"fitmarket/internal/domain/entities"
	"fitmarket/internal/usecase/interfaces"
)

// PlatformStats is the administrator dashboard aggregate.

type PlatformStats struct {
	Users      int `json:"users"`
	Gyms       int `json:"gyms"`
	ActiveGyms int `json:"active_gyms"`
	Students   int `json:"students"`

	Orders entities.OrderStats `json:"orders"`
}

type IAdminUseCase interface {
	PlatformStats(ctx context.Context) (PlatformStats, error)
}

// AdminUseCase composes the per-entity services into platform-wide
// numbers. It owns no store of its own, so it works unchanged whichever
// storage strategy the services were wired with.

type AdminUseCase struct {
	users    interfaces.IUserRepository
	gyms     IGymUseCase
	students IStudentUseCase
	orders   IOrderUseCase
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(users interfaces.IUserRepository, gyms IGymUseCase, students IStudentUseCase, orders IOrderUseCase) *AdminUseCase {
	return &AdminUseCase{users: users, gyms: gyms, students: students, orders: orders}
}

func (u *AdminUseCase) PlatformStats(ctx context.Context) (PlatformStats, error) {
	var stats PlatformStats

	users, err := u.users.List(ctx)
	if err != nil {
		return PlatformStats{}, err
	}
	stats.Users = len(users)

	gyms, err := u.gyms.List(ctx, entities.GymFilter{})
	if err != nil {
		return PlatformStats{}, err
	}
	stats.Gyms = len(gyms)
	for _, g := range gyms {
		if g.Status == entities.GymStatusActive {
			stats.ActiveGyms++
		}
	}

	students, err := u.students.List(ctx, entities.StudentFilter{})
	if err != nil {
		return PlatformStats{}, err
	}
	stats.Students = len(students)

	orderStats, err := u.orders.Stats(ctx, "")
	if err != nil {
		return PlatformStats{}, err
	}
	stats.Orders = orderStats

	return stats, nil
}
