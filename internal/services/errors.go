package services

import (
	"errors"
	"fmt"
)

// ErrStaleVersion signals that a guarded update matched no row because the
// document changed after it was read. Callers may retry with fresh state.
var ErrStaleVersion = errors.New("document was modified concurrently")

// ValidationError reports invalid input before any write happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports a missing resource within the caller's organization.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// InvalidTransitionError reports a status change the document lifecycle does
// not allow.
type InvalidTransitionError struct {
	DocumentType string
	From         string
	To           string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s cannot move from %s to %s", e.DocumentType, e.From, e.To)
}

// AlreadyFullyConvertedError reports a conversion attempt against a document
// with no remaining convertible quantity.
type AlreadyFullyConvertedError struct {
	DocumentType string
	ID           string
}

func (e *AlreadyFullyConvertedError) Error() string {
	return fmt.Sprintf("%s %s is already fully converted", e.DocumentType, e.ID)
}

// OverAllocationError reports an allocation that would exceed either the
// payment's unallocated amount or an invoice's outstanding balance.
type OverAllocationError struct {
	Reason    string
	Requested float64
	Available float64
}

func (e *OverAllocationError) Error() string {
	return fmt.Sprintf("%s: requested %.2f exceeds available %.2f", e.Reason, e.Requested, e.Available)
}
