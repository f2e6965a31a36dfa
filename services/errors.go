package services

import "fmt"

// NotFoundError indicates the referenced document does not exist.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ForbiddenError indicates an ownership check failed: the resolved identity
// does not match the document's owner field.
type ForbiddenError struct {
	Reason string
}

func (e ForbiddenError) Error() string {
	return "Forbidden: " + e.Reason
}

// StoreUnavailableError wraps a failure to reach the document store.
type StoreUnavailableError struct {
	Err error
}

func (e StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable: %v", e.Err)
}

func (e StoreUnavailableError) Unwrap() error {
	return e.Err
}
