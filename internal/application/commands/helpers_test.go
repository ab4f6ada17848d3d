package commands

import (
	"context"
	"errors"
	"strings"

	"flatkit/internal/adapters/jsonstore"
	"flatkit/internal/domain"
)

// memStore is an in-memory ports.InventoryStore that keeps the encoded
// document, so tests can observe exactly what a save would write.
type memStore struct {
	data    []byte
	saves   int
	saveErr error
}

func (s *memStore) Load(_ context.Context) (*domain.Inventory, error) {
	if s.data == nil {
		return domain.NewInventory(), nil
	}
	return jsonstore.Decode(s.data)
}

func (s *memStore) Save(_ context.Context, inv *domain.Inventory) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	data, err := jsonstore.Encode(inv)
	if err != nil {
		return err
	}
	s.data = data
	s.saves++
	return nil
}

func (s *memStore) Location() string { return "memory" }

func seededStore(inv *domain.Inventory) *memStore {
	data, err := jsonstore.Encode(inv)
	if err != nil {
		panic(err)
	}
	return &memStore{data: data}
}

var errBoom = errors.New("boom")

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
