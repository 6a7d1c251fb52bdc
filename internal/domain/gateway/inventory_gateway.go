package gateway

import (
	"context"

	"hospital-portal/internal/domain/entity"
)

// InventoryGateway fronts the inventory service's product catalog.
type InventoryGateway interface {
	// Products lists the catalog; ids, when non-empty, is a comma-joined id
	// list for a batched lookup.
	Products(ctx context.Context, bearer, ids string) ([]entity.Product, error)
}
