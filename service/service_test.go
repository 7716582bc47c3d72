package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"tourhub/database/dbtest"
	"tourhub/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type sentEvent struct {
	kind    model.EventKind
	payload any
}

// recorder is a Notifier that remembers every event it receives.
type recorder struct {
	mu     sync.Mutex
	events []sentEvent
	err    error
}

func (r *recorder) Notify(_ context.Context, kind model.EventKind, payload any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, sentEvent{kind: kind, payload: payload})
	return r.err
}

func (r *recorder) kinds() []model.EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.EventKind, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.kind)
	}
	return out
}

func newTestServices(t *testing.T) (*Services, *recorder, *gorm.DB) {
	t.Helper()
	db := dbtest.Open(t)
	rec := &recorder{}
	svc := New(db, rec)
	t.Cleanup(svc.Wait)
	return svc, rec, db
}

func mustCreate(t *testing.T, db *gorm.DB, v any) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("create %T: %v", v, err)
	}
}

func seedTour(t *testing.T, db *gorm.DB, slug, base string, sale *string) model.Tour {
	t.Helper()
	tour := model.Tour{
		Title:     slug,
		Slug:      slug,
		BasePrice: decimal.RequireFromString(base),
		IsActive:  true,
	}
	if sale != nil {
		s := decimal.RequireFromString(*sale)
		tour.SalePrice = &s
		tour.IsOnSale = true
	}
	mustCreate(t, db, &tour)
	return tour
}

func strPtr(s string) *string { return &s }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func asValidation(t *testing.T, err error) *ValidationError {
	t.Helper()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v (%T), want *ValidationError", err, err)
	}
	return ve
}

func asConflict(t *testing.T, err error) *ConflictError {
	t.Helper()
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v (%T), want *ConflictError", err, err)
	}
	return ce
}

func asNotFound(t *testing.T, err error) *NotFoundError {
	t.Helper()
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v (%T), want *NotFoundError", err, err)
	}
	return nf
}
