package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"fitmarket/internal/domain/entities"
	"fitmarket/internal/usecase/interfaces"
)

func TestOrderMemoryRepository_OrderNumberSequence(t *testing.T) {
	repo := NewOrderMemoryRepository()

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		o, err := repo.Create(context.Background(), entities.ServiceOrder{ID: fmt.Sprintf("o-%d", i)})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if o.OrderNumber == "" {
			t.Fatalf("expected assigned order number")
		}
		if seen[o.OrderNumber] {
			t.Fatalf("duplicate order number %s", o.OrderNumber)
		}
		seen[o.OrderNumber] = true
	}

	// Numbers increase with creation order.
	all, err := repo.List(context.Background(), entities.OrderFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i := 0; i < len(all)-1; i++ {
		if all[i].OrderNumber <= all[i+1].OrderNumber {
			t.Fatalf("expected descending numbers in newest-first listing, got %s then %s", all[i].OrderNumber, all[i+1].OrderNumber)
		}
	}
}

func TestOrderMemoryRepository_ListNewestFirst(t *testing.T) {
	repo := NewOrderMemoryRepository()
	for i := 0; i < 3; i++ {
		if _, err := repo.Create(context.Background(), entities.ServiceOrder{
			ID:     fmt.Sprintf("o-%d", i),
			Status: entities.OrderStatusPending,
		}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	all, err := repo.List(context.Background(), entities.OrderFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 || all[0].ID != "o-2" || all[2].ID != "o-0" {
		t.Fatalf("expected newest-first, got %+v", all)
	}
}

func TestOrderMemoryRepository_Filters(t *testing.T) {
	repo := NewOrderMemoryRepository()
	seed := []entities.ServiceOrder{
		{ID: "o-1", PartnerID: "p-1", UserID: "u-1", Status: entities.OrderStatusPending, PaymentStatus: entities.PaymentStatusPending, ServiceType: entities.ServiceTypeDayUse},
		{ID: "o-2", PartnerID: "p-1", UserID: "u-2", Status: entities.OrderStatusConfirmed, PaymentStatus: entities.PaymentStatusPaid, ServiceType: entities.ServiceTypePlanoMensal},
		{ID: "o-3", PartnerID: "p-2", UserID: "u-1", Status: entities.OrderStatusPending, PaymentStatus: entities.PaymentStatusPaid, ServiceType: entities.ServiceTypeDayUse},
	}
	for _, o := range seed {
		if _, err := repo.Create(context.Background(), o); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	cases := []struct {
		name   string
		filter entities.OrderFilter
		want   []string
	}{
		{"by partner", entities.OrderFilter{PartnerID: "p-1"}, []string{"o-2", "o-1"}},
		{"by user", entities.OrderFilter{UserID: "u-1"}, []string{"o-3", "o-1"}},
		{"by status", entities.OrderFilter{Status: entities.OrderStatusPending}, []string{"o-3", "o-1"}},
		{"conjunction", entities.OrderFilter{PartnerID: "p-1", PaymentStatus: entities.PaymentStatusPaid}, []string{"o-2"}},
		{"by service type", entities.OrderFilter{ServiceType: entities.ServiceTypeDayUse}, []string{"o-3", "o-1"}},
		{"no match", entities.OrderFilter{PartnerID: "p-9"}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.List(context.Background(), tc.filter)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d orders, got %d", len(tc.want), len(got))
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Fatalf("expected %s at %d, got %s", id, i, got[i].ID)
				}
			}
		})
	}
}

func TestOrderMemoryRepository_Update(t *testing.T) {
	repo := NewOrderMemoryRepository()
	o, err := repo.Create(context.Background(), entities.ServiceOrder{ID: "o-1", Status: entities.OrderStatusPending})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	o.Status = entities.OrderStatusConfirmed
	updated, err := repo.Update(context.Background(), o)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != entities.OrderStatusConfirmed {
		t.Fatalf("expected confirmed, got %s", updated.Status)
	}

	missing, err := repo.Update(context.Background(), entities.ServiceOrder{ID: "nope"})
	if err != nil {
		t.Fatalf("update missing: %v", err)
	}
	if missing.ID != "" {
		t.Fatalf("expected zero value for unknown id, got %+v", missing)
	}
}

func TestOrderMemoryRepository_GetByID(t *testing.T) {
	repo := NewOrderMemoryRepository()
	if _, err := repo.Create(context.Background(), entities.ServiceOrder{ID: "o-1"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(context.Background(), "o-1")
	if err != nil || got.ID != "o-1" {
		t.Fatalf("expected o-1, got %+v err %v", got, err)
	}

	missing, err := repo.GetByID(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing.ID != "" {
		t.Fatalf("expected zero value, got %+v", missing)
	}
}

func TestOrderMemoryRepository_UpdateIf(t *testing.T) {
	repo := NewOrderMemoryRepository()
	o, err := repo.Create(context.Background(), entities.ServiceOrder{
		ID:     "o-1",
		Status: entities.OrderStatusPending,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("matching status applies the write", func(t *testing.T) {
		o.Status = entities.OrderStatusConfirmed
		updated, err := repo.UpdateIf(context.Background(), o, entities.OrderStatusPending)
		if err != nil {
			t.Fatalf("update if: %v", err)
		}
		if updated.Status != entities.OrderStatusConfirmed {
			t.Fatalf("expected confirmed, got %s", updated.Status)
		}
	})

	t.Run("stale status fails with conflict", func(t *testing.T) {
		o.Status = entities.OrderStatusConfirmed
		_, err := repo.UpdateIf(context.Background(), o, entities.OrderStatusPending)
		if !errors.Is(err, interfaces.ErrStatusConflict) {
			t.Fatalf("expected ErrStatusConflict, got %v", err)
		}

		got, err := repo.GetByID(context.Background(), "o-1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Status != entities.OrderStatusConfirmed {
			t.Fatalf("expected stored status untouched, got %s", got.Status)
		}
	})

	t.Run("unknown id returns zero value", func(t *testing.T) {
		missing, err := repo.UpdateIf(context.Background(), entities.ServiceOrder{ID: "nope"}, entities.OrderStatusPending)
		if err != nil {
			t.Fatalf("update if: %v", err)
		}
		if missing.ID != "" {
			t.Fatalf("expected zero value, got %+v", missing)
		}
	})
}
