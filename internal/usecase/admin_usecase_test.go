package usecase

import (
	"context"
	"testing"

	"fitmarket/internal/adapter/persistence/repository"
	"fitmarket/internal/domain/entities"
)

func TestAdminUseCase_PlatformStats(t *testing.T) {
	ctx := context.Background()

	userRepo := repository.NewUserMemoryRepository()
	gymUseCase := NewGymUseCase(repository.NewGymMemoryRepository())
	studentUseCase := NewStudentUseCase(repository.NewStudentMemoryRepository())
	orderUseCase := NewOrderUseCase(repository.NewOrderMemoryRepository())
	uc := NewAdminUseCase(userRepo, gymUseCase, studentUseCase, orderUseCase)

	for _, u := range []entities.User{
		{ID: "u-1", Name: "Ana", Email: "ana@example.com", Role: entities.UserRoleUser},
		{ID: "u-2", Name: "Bruno", Email: "bruno@example.com", Role: entities.UserRolePartner},
	} {
		if _, err := userRepo.Create(ctx, u); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	if _, err := gymUseCase.Create(ctx, entities.Gym{Name: "Academia Central", Email: "contato@central.com", Status: entities.GymStatusActive}); err != nil {
		t.Fatalf("seed gym: %v", err)
	}
	if _, err := gymUseCase.Create(ctx, entities.Gym{Name: "Academia Norte", Email: "contato@norte.com"}); err != nil {
		t.Fatalf("seed gym: %v", err)
	}

	if _, err := studentUseCase.Create(ctx, entities.Student{PartnerID: "p-1", Name: "Carla", Email: "carla@example.com"}); err != nil {
		t.Fatalf("seed student: %v", err)
	}

	paid, err := orderUseCase.CreateOrder(ctx, CreateOrderCommand{
		UserID:      "u-1",
		PartnerID:   "p-1",
		ServiceID:   "svc-1",
		ServiceName: "Treino Personalizado",
		ServiceType: entities.ServiceTypeTreinoPersonalizado,
		Price:       150,
	})
	if err != nil {
		t.Fatalf("seed order: %v", err)
	}
	if _, err := orderUseCase.UpdatePaymentStatus(ctx, paid.ID, entities.PaymentStatusPaid); err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if _, err := orderUseCase.CreateOrder(ctx, CreateOrderCommand{
		UserID:      "u-1",
		PartnerID:   "p-1",
		ServiceID:   "svc-2",
		ServiceName: "Day Use",
		ServiceType: entities.ServiceTypeDayUse,
		Price:       40,
	}); err != nil {
		t.Fatalf("seed order: %v", err)
	}

	stats, err := uc.PlatformStats(ctx)
	if err != nil {
		t.Fatalf("platform stats: %v", err)
	}

	if stats.Users != 2 {
		t.Fatalf("expected 2 users, got %d", stats.Users)
	}
	if stats.Gyms != 2 || stats.ActiveGyms != 1 {
		t.Fatalf("expected 2 gyms with 1 active, got %d/%d", stats.Gyms, stats.ActiveGyms)
	}
	if stats.Students != 1 {
		t.Fatalf("expected 1 student, got %d", stats.Students)
	}
	if stats.Orders.Total != 2 || stats.Orders.Pending != 2 {
		t.Fatalf("expected 2 pending orders, got %+v", stats.Orders)
	}
	if stats.Orders.TotalRevenue != 150 {
		t.Fatalf("expected revenue only from the paid order, got %v", stats.Orders.TotalRevenue)
	}
}
