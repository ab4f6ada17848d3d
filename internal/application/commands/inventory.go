package commands

import (
	"context"
	"fmt"

	"flatkit/internal/application"
	"flatkit/internal/domain"
	"flatkit/internal/ports"
)

// ListCustomersCommand lists all customers in the inventory
type ListCustomersCommand struct {
	store ports.InventoryStore
}

// NewListCustomersCommand creates a new ListCustomersCommand
func NewListCustomersCommand(store ports.InventoryStore) *ListCustomersCommand {
	return &ListCustomersCommand{store: store}
}

// Execute returns customer names sorted alphabetically
func (c *ListCustomersCommand) Execute(ctx context.Context) ([]string, error) {
	inv, err := c.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return inv.CustomerNames(), nil
}

// ListInventoryCommand lists SKUs and stock, optionally for one customer.
// It never saves, so the lookup side effect of Inventory.Customer stays in memory.
type ListInventoryCommand struct {
	store    ports.InventoryStore
	Customer string
}

// NewListInventoryCommand creates a new ListInventoryCommand
func NewListInventoryCommand(store ports.InventoryStore, customer string) *ListInventoryCommand {
	return &ListInventoryCommand{
		store:    store,
		Customer: customer,
	}
}

// Execute returns customers with their SKUs sorted by customer then SKU
func (c *ListInventoryCommand) Execute(ctx context.Context) ([]domain.CustomerStock, error) {
	inv, err := c.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if c.Customer != "" {
		return []domain.CustomerStock{{
			Customer: c.Customer,
			SKUs:     inv.Lines(c.Customer),
		}}, nil
	}

	return inv.Snapshot(), nil
}

// StockResult contains the result of a stock mutation
type StockResult struct {
	Line    domain.StockLine
	Message string
}

// AddSKUCommand adds a new SKU with an initial stock for a customer
type AddSKUCommand struct {
	store    ports.InventoryStore
	Customer string
	SKU      string
	Stock    int
}

// NewAddSKUCommand creates a new AddSKUCommand
func NewAddSKUCommand(store ports.InventoryStore, customer, sku string, stock int) *AddSKUCommand {
	return &AddSKUCommand{
		store:    store,
		Customer: customer,
		SKU:      sku,
		Stock:    stock,
	}
}

// Validate checks the stock before the inventory is touched.
// Customer and SKU names are taken verbatim, the empty string included.
func (c *AddSKUCommand) Validate() error {
	return application.ValidateStock(c.Stock)
}

// Execute runs the add SKU command
func (c *AddSKUCommand) Execute(ctx context.Context) (*StockResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	inv, err := c.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	skus := inv.Customer(c.Customer)
	if _, exists := skus[c.SKU]; exists {
		return nil, &application.SKUError{Customer: c.Customer, SKU: c.SKU, Err: application.ErrAlreadyExists}
	}
	skus[c.SKU] = c.Stock

	if err := c.store.Save(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to save inventory: %w", err)
	}

	return &StockResult{
		Line:    domain.StockLine{Customer: c.Customer, SKU: c.SKU, Stock: c.Stock},
		Message: fmt.Sprintf("Added %s for %s (stock %d)", c.SKU, c.Customer, c.Stock),
	}, nil
}

// RemoveSKUCommand removes a SKU from a customer
type RemoveSKUCommand struct {
	store    ports.InventoryStore
	Customer string
	SKU      string
}

// NewRemoveSKUCommand creates a new RemoveSKUCommand
func NewRemoveSKUCommand(store ports.InventoryStore, customer, sku string) *RemoveSKUCommand {
	return &RemoveSKUCommand{
		store:    store,
		Customer: customer,
		SKU:      sku,
	}
}

// Execute runs the remove SKU command
func (c *RemoveSKUCommand) Execute(ctx context.Context) (*StockResult, error) {
	inv, err := c.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	skus := inv.Customer(c.Customer)
	stock, exists := skus[c.SKU]
	if !exists {
		return nil, &application.SKUError{Customer: c.Customer, SKU: c.SKU, Err: application.ErrNotFound}
	}
	delete(skus, c.SKU)

	if err := c.store.Save(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to save inventory: %w", err)
	}

	return &StockResult{
		Line:    domain.StockLine{Customer: c.Customer, SKU: c.SKU, Stock: stock},
		Message: fmt.Sprintf("Removed %s from %s", c.SKU, c.Customer),
	}, nil
}

// SetStockCommand sets the stock of an existing SKU
type SetStockCommand struct {
	store    ports.InventoryStore
	Customer string
	SKU      string
	Stock    int
}

// NewSetStockCommand creates a new SetStockCommand
func NewSetStockCommand(store ports.InventoryStore, customer, sku string, stock int) *SetStockCommand {
	return &SetStockCommand{
		store:    store,
		Customer: customer,
		SKU:      sku,
		Stock:    stock,
	}
}

// Validate checks the stock before the inventory is touched
func (c *SetStockCommand) Validate() error {
	return application.ValidateStock(c.Stock)
}

// Execute runs the set stock command
func (c *SetStockCommand) Execute(ctx context.Context) (*StockResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	inv, err := c.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	skus := inv.Customer(c.Customer)
	if _, exists := skus[c.SKU]; !exists {
		return nil, &application.SKUError{Customer: c.Customer, SKU: c.SKU, Err: application.ErrNotFound}
	}
	skus[c.SKU] = c.Stock

	if err := c.store.Save(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to save inventory: %w", err)
	}

	return &StockResult{
		Line:    domain.StockLine{Customer: c.Customer, SKU: c.SKU, Stock: c.Stock},
		Message: fmt.Sprintf("Set %s for %s to %d", c.SKU, c.Customer, c.Stock),
	}, nil
}
