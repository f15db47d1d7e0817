package interfaces

import (
	"context"
	"errors"

	"fitmarket/internal/domain/entities"
)

// ErrStatusConflict is returned by UpdateIf when the stored fulfillment
// status no longer matches the expected one, meaning a concurrent write
// landed between the caller's read and its write.
var ErrStatusConflict = errors.New("order status changed concurrently")

// IOrderRepository abstracts the order store. Implementations exist for
// the in-memory mock store, the marketplace backend API and DynamoDB.
//
// Conventions (shared by every repository port):
//   - lookups return a zero-valued entity (empty ID) when nothing matches;
//     errors are reserved for infrastructure failures;
//   - Create assigns the human-readable OrderNumber from a monotonic
//     counter owned by the store;
//   - List returns orders newest-first (creation prepends).

type IOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.ServiceOrder, error)
	Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)

	// UpdateIf writes o only while the stored status still equals from.
	// It fails with ErrStatusConflict otherwise, making status
	// transitions atomic at the store boundary.
	UpdateIf(ctx context.Context, o entities.ServiceOrder, from entities.OrderStatus) (entities.ServiceOrder, error)
}
