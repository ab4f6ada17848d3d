package application

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts field names to readable words for error messages
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"customer": "customer name",
		"sku":      "SKU",
		"path":     "path",
		"root":     "root directory",
		"query":    "query",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateStock rejects negative stock counts
func ValidateStock(stock int) error {
	if stock < 0 {
		return &StockError{Stock: stock}
	}
	return nil
}

// ValidateFile checks that path names an existing file
func ValidateFile(kind, path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return &PathError{Path: path, Reason: kind + " does not exist"}
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return &PathError{Path: path, Reason: kind + " is a directory"}
	}
	return nil
}

// ValidateDir checks that path names an existing directory
func ValidateDir(kind, path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return &PathError{Path: path, Reason: kind + " does not exist"}
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return &PathError{Path: path, Reason: kind + " is not a directory"}
	}
	return nil
}
