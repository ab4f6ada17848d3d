package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidStock  = errors.New("invalid stock")
	ErrInvalidPath   = errors.New("invalid path")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// StockError reports a stock value below zero
type StockError struct {
	Stock int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("stock must not be negative: %d", e.Stock)
}

func (e *StockError) Is(target error) bool {
	return target == ErrInvalidStock
}

// SKUError represents a SKU that is missing or already present for a customer
type SKUError struct {
	Customer string
	SKU      string
	Err      error // ErrNotFound or ErrAlreadyExists
}

func (e *SKUError) Error() string {
	if errors.Is(e.Err, ErrAlreadyExists) {
		return fmt.Sprintf("SKU already exists: %s (customer %s)", e.SKU, e.Customer)
	}
	return fmt.Sprintf("SKU does not exist: %s (customer %s)", e.SKU, e.Customer)
}

func (e *SKUError) Unwrap() error {
	return e.Err
}

// PathError represents an input path that does not exist or has the wrong kind
type PathError struct {
	Path   string
	Reason string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Path)
}

func (e *PathError) Is(target error) bool {
	return target == ErrInvalidPath
}
