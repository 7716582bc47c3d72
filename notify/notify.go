// Package notify delivers booking, contact and newsletter events by email
// and to the live admin feed.
package notify

import (
	"context"
	"errors"

	"tourhub/model"
)

type Notifier interface {
	Notify(ctx context.Context, kind model.EventKind, payload any) error
}

// Multi sends every event to each notifier and joins their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, kind model.EventKind, payload any) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Notify(ctx, kind, payload); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Discard drops every event. Used when SMTP is not configured.
type Discard struct{}

func (Discard) Notify(context.Context, model.EventKind, any) error { return nil }
