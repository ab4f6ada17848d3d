// Package jsonstore persists the inventory as a single pretty-printed JSON file.
package jsonstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"flatkit/internal/adapters/filesystem"
	"flatkit/internal/domain"
	"flatkit/internal/ports"
)

// Store implements ports.InventoryStore on a JSON file
type Store struct {
	path string
}

// Ensure Store implements InventoryStore
var _ ports.InventoryStore = (*Store)(nil)

// NewStore creates a store for the JSON file at path
func NewStore(path string) *Store {
	return &Store{path: filesystem.ExpandHome(path)}
}

// Location returns the file path
func (s *Store) Location() string {
	return s.path
}

// Load reads the whole file. A missing file or a missing "customers" key
// yields an empty inventory.
func (s *Store) Load(_ context.Context) (*domain.Inventory, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.NewInventory(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}

	inv, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse inventory %s: %w", s.path, err)
	}
	return inv, nil
}

// Save replaces the whole file atomically
func (s *Store) Save(_ context.Context, inv *domain.Inventory) error {
	data, err := Encode(inv)
	if err != nil {
		return err
	}

	if err := filesystem.WriteFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to save inventory: %w", err)
	}
	return nil
}

// customersKey is the top-level key holding the stock map
const customersKey = "customers"

// Decode parses an inventory document. Top-level keys other than
// "customers" are kept in Extra.
func Decode(data []byte) (*domain.Inventory, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	inv := domain.NewInventory()
	if raw, ok := doc[customersKey]; ok {
		if err := json.Unmarshal(raw, &inv.Customers); err != nil {
			return nil, err
		}
		delete(doc, customersKey)
	}
	if inv.Customers == nil {
		inv.Customers = make(map[string]map[string]int)
	}
	if len(doc) > 0 {
		inv.Extra = doc
	}
	return inv, nil
}

// Encode renders the inventory as 2-space indented JSON, keeping
// non-ASCII characters verbatim. Extra keys are written beside
// "customers".
func Encode(inv *domain.Inventory) ([]byte, error) {
	customers := inv.Customers
	if customers == nil {
		customers = make(map[string]map[string]int)
	}

	doc := make(map[string]any, len(inv.Extra)+1)
	for key, raw := range inv.Extra {
		doc[key] = raw
	}
	doc[customersKey] = customers

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode inventory: %w", err)
	}

	// Encoder appends a newline; the file holds the bare document
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
