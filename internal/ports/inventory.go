package ports

import (
	"context"

	"flatkit/internal/domain"
)

// InventoryStore loads and saves the whole inventory in one piece
type InventoryStore interface {
	// Load returns the stored inventory, or an empty one when nothing is stored yet
	Load(ctx context.Context) (*domain.Inventory, error)

	// Save replaces the stored inventory atomically
	Save(ctx context.Context, inv *domain.Inventory) error

	// Location describes where the inventory lives (for messages)
	Location() string
}
