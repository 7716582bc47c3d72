package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"tourhub/constants"
	"tourhub/model"
	"tourhub/repository"
)

type NewsletterService struct {
	subs   repository.Repository[model.NewsletterSubscription]
	events *dispatcher
}

// Subscribe adds the email to the list. An active subscription is a conflict;
// an inactive one is reactivated and reported with resubscribed set.
func (s *NewsletterService) Subscribe(ctx context.Context, in model.NewsletterInput) (sub *model.NewsletterSubscription, resubscribed bool, err error) {
	if err := ValidateNewsletterInput(in); err != nil {
		return nil, false, err
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	now := time.Now().UTC()

	existing, err := s.subs.FindOne(ctx, repository.Query{Scopes: []repository.Scope{equals("email", email)}})
	switch {
	case err == nil:
		if existing.IsSubscribed {
			return nil, false, alreadySubscribed()
		}
		err = s.subs.Update(ctx, existing.ID, map[string]any{
			"is_subscribed":   true,
			"subscribed_at":   now,
			"unsubscribed_at": nil,
		})
		if err != nil {
			return nil, false, storeErr("resubscribe", entitySubscription, email, err)
		}
		existing.IsSubscribed, existing.SubscribedAt, existing.UnsubscribedAt = true, now, nil
		return existing, true, nil
	case !errors.Is(err, repository.ErrNotFound):
		return nil, false, storeErr("subscribe", entitySubscription, email, err)
	}

	sub = &model.NewsletterSubscription{Email: email, IsSubscribed: true, SubscribedAt: now}
	if err := s.subs.Insert(ctx, sub); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, false, alreadySubscribed()
		}
		return nil, false, storeErr("subscribe", entitySubscription, email, err)
	}
	s.events.fire(model.EventNewsletterSubscribed, model.NewsletterEvent{Email: email})
	return sub, false, nil
}

func alreadySubscribed() error {
	return &ConflictError{Field: "email", Message: "Email already subscribed"}
}

func (s *NewsletterService) Unsubscribe(ctx context.Context, in model.NewsletterInput) error {
	if err := ValidateNewsletterInput(in); err != nil {
		return err
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	sub, err := s.subs.FindOne(ctx, repository.Query{Scopes: []repository.Scope{equals("email", email)}})
	if err != nil {
		return storeErr("unsubscribe", entitySubscription, email, err)
	}
	if !sub.IsSubscribed {
		return nil
	}
	err = s.subs.Update(ctx, sub.ID, map[string]any{
		"is_subscribed":   false,
		"unsubscribed_at": time.Now().UTC(),
	})
	return storeErr("unsubscribe", entitySubscription, email, err)
}

func (s *NewsletterService) List(ctx context.Context, f model.NewsletterFilter) (model.Page[model.NewsletterSubscription], error) {
	var scopes []repository.Scope
	switch f.Status {
	case "subscribed":
		scopes = append(scopes, equals("is_subscribed", true))
	case "unsubscribed":
		scopes = append(scopes, equals("is_subscribed", false))
	}
	return paginate(ctx, s.subs, entitySubscription, repository.Query{
		Scopes: scopes,
		Order:  subscribeOrder,
	}, f.Pagination, constants.DEFAULT_NEWSLETTER_LIMIT)
}
