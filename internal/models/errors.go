package models

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below through errors.Is
var (
	ErrInvalidOdds      = errors.New("invalid odds")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInsufficientLegs = errors.New("insufficient legs")
	ErrDuplicateLeg     = errors.New("duplicate leg")
)

// InvalidOddsError represents odds that cannot be priced: zero American odds or
// decimal odds at or below 1.0
type InvalidOddsError struct {
	Value   string
	Message string
}

func (e *InvalidOddsError) Error() string {
	return fmt.Sprintf("invalid odds %s: %s", e.Value, e.Message)
}

// Is reports whether target is ErrInvalidOdds
func (e *InvalidOddsError) Is(target error) bool {
	return target == ErrInvalidOdds
}

// InvalidInputError represents a probability, stake, bankroll or leg field outside
// its domain
type InvalidInputError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Message)
}

// Is reports whether target is ErrInvalidInput
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// InsufficientLegsError represents a parlay with fewer legs than required
type InsufficientLegsError struct {
	Count   int
	Minimum int
}

func (e *InsufficientLegsError) Error() string {
	return fmt.Sprintf("parlay requires at least %d legs, got %d", e.Minimum, e.Count)
}

// Is reports whether target is ErrInsufficientLegs
func (e *InsufficientLegsError) Is(target error) bool {
	return target == ErrInsufficientLegs
}

// DuplicateLegError represents a parlay that repeats a leg identifier
type DuplicateLegError struct {
	LegID string
	Index int
}

func (e *DuplicateLegError) Error() string {
	return fmt.Sprintf("duplicate leg %q at position %d", e.LegID, e.Index)
}

// Is reports whether target is ErrDuplicateLeg
func (e *DuplicateLegError) Is(target error) bool {
	return target == ErrDuplicateLeg
}

// NewInvalidOddsError creates a new invalid odds error
func NewInvalidOddsError(value interface{}, message string) *InvalidOddsError {
	return &InvalidOddsError{
		Value:   fmt.Sprintf("%v", value),
		Message: message,
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, message string) *InvalidInputError {
	return &InvalidInputError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// NewInsufficientLegsError creates a new insufficient legs error
func NewInsufficientLegsError(count, minimum int) *InsufficientLegsError {
	return &InsufficientLegsError{
		Count:   count,
		Minimum: minimum,
	}
}

// NewDuplicateLegError creates a new duplicate leg error
func NewDuplicateLegError(legID string, index int) *DuplicateLegError {
	return &DuplicateLegError{
		LegID: legID,
		Index: index,
	}
}

// ErrorKind returns a short label for the error taxonomy, used for metrics and logs
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrInvalidOdds):
		return "invalid_odds"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrInsufficientLegs):
		return "insufficient_legs"
	case errors.Is(err, ErrDuplicateLeg):
		return "duplicate_leg"
	default:
		return "unknown"
	}
}
