// Package repository defines the persistence ports.
package repository

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists is returned when a single-record insert collides with an existing id.
	ErrAlreadyExists = errors.New("record already exists")
	// ErrNotConfigured is returned by the store when no backend is configured.
	ErrNotConfigured = errors.New("document store not configured")
)

// HealthChecker is implemented by stores that can report readiness.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
