package service

import (
	"errors"
	"fmt"
	"strings"

	"tourhub/repository"

	"github.com/rs/zerolog/log"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every input field that failed a check.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// OrNil returns e when it holds at least one field error.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func invalid(field, message string) error {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

type NotFoundError struct {
	Entity string
	Key    any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.Key)
}

type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// DependencyError wraps a failure of the database or another collaborator.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

// uniqueFields names the unique column of each entity.
var uniqueFields = map[string]string{
	entityTour:         "slug",
	entityCategory:     "slug",
	entityBlogPost:     "slug",
	entityBooking:      "booking_reference",
	entitySubscription: "email",
	entityAccount:      "email",
	entityContent:      "key",
}

const (
	entityTour         = "tour"
	entityCategory     = "category"
	entityBlogPost     = "blog post"
	entityBooking      = "booking"
	entityContact      = "contact submission"
	entitySubscription = "subscription"
	entityAccount      = "user"
	entityContent      = "content"
)

// storeErr converts a repository error for entity/key into the service taxonomy.
func storeErr(op, entity string, key any, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return &NotFoundError{Entity: entity, Key: key}
	case errors.Is(err, repository.ErrDuplicateKey):
		return &ConflictError{Field: uniqueFields[entity], Message: fmt.Sprintf("%s already exists", entity)}
	}
	log.Error().Err(err).Str("op", op).Str("entity", entity).Msg("store failure")
	return &DependencyError{Op: op, Err: err}
}
