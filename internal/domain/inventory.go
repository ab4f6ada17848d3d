package domain

import (
	"encoding/json"
	"sort"
)

// Inventory maps customer name to SKU to stock count.
// The JSON shape is {"customers": {name: {sku: count}}}.
type Inventory struct {
	Customers map[string]map[string]int `json:"customers"`

	// Extra holds the other top-level keys of the stored document,
	// written back unchanged on save
	Extra map[string]json.RawMessage `json:"-"`
}

// StockLine is one SKU of one customer with its stock count
type StockLine struct {
	Customer string `json:"customer"`
	SKU      string `json:"sku"`
	Stock    int    `json:"stock"`
}

// CustomerStock is a customer with its SKUs sorted alphabetically
type CustomerStock struct {
	Customer string      `json:"customer"`
	SKUs     []StockLine `json:"skus"`
}

// NewInventory returns an empty inventory
func NewInventory() *Inventory {
	return &Inventory{Customers: make(map[string]map[string]int)}
}

// Customer returns the SKU map of a customer, creating an empty entry
// when the customer is not known yet.
func (inv *Inventory) Customer(name string) map[string]int {
	if inv.Customers == nil {
		inv.Customers = make(map[string]map[string]int)
	}
	skus, ok := inv.Customers[name]
	if !ok || skus == nil {
		skus = make(map[string]int)
		inv.Customers[name] = skus
	}
	return skus
}

// Stock returns the stock of a SKU and whether the SKU exists
func (inv *Inventory) Stock(customer, sku string) (int, bool) {
	stock, ok := inv.Customer(customer)[sku]
	return stock, ok
}

// CustomerNames returns all customer names sorted alphabetically
func (inv *Inventory) CustomerNames() []string {
	names := make([]string, 0, len(inv.Customers))
	for name := range inv.Customers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lines returns the SKUs of a customer sorted alphabetically
func (inv *Inventory) Lines(customer string) []StockLine {
	skus := inv.Customer(customer)

	names := make([]string, 0, len(skus))
	for sku := range skus {
		names = append(names, sku)
	}
	sort.Strings(names)

	lines := make([]StockLine, 0, len(names))
	for _, sku := range names {
		lines = append(lines, StockLine{Customer: customer, SKU: sku, Stock: skus[sku]})
	}
	return lines
}

// Snapshot returns every customer with its SKUs, sorted by customer then SKU
func (inv *Inventory) Snapshot() []CustomerStock {
	names := inv.CustomerNames()
	out := make([]CustomerStock, 0, len(names))
	for _, name := range names {
		out = append(out, CustomerStock{Customer: name, SKUs: inv.Lines(name)})
	}
	return out
}

// SKUSet returns the SKU names of a customer without creating the customer
func (inv *Inventory) SKUSet(customer string) map[string]bool {
	set := make(map[string]bool)
	for sku := range inv.Customers[customer] {
		set[sku] = true
	}
	return set
}
