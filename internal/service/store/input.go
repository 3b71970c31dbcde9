package store

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
)

const (
	maxNameLength    = 200
	maxAddressLength = 500
)

// CreateStoreInput holds the parameters for creating a store.
type CreateStoreInput struct {
	Name    string
	Address string
}

// Validate checks all fields and collects all errors.
func (i CreateStoreInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 200)"})
	}

	address := strings.TrimSpace(i.Address)
	if address == "" {
		errs = append(errs, domain.FieldError{Field: "address", Message: "required"})
	} else if len(address) > maxAddressLength {
		errs = append(errs, domain.FieldError{Field: "address", Message: "too long (max 500)"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListStoresInput holds the list constraints. OwnedOnly restricts the list to
// stores of the authenticated caller.
type ListStoresInput struct {
	OwnedOnly bool
}

// DeleteStoreInput holds the parameters for deleting a store.
type DeleteStoreInput struct {
	StoreID uuid.UUID
}

// Validate checks all fields.
func (i DeleteStoreInput) Validate() error {
	if i.StoreID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}
