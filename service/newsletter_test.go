package service

import (
	"context"
	"testing"

	"tourhub/model"
)

func TestNewsletterService_SubscribeTwiceThenResubscribe(t *testing.T) {
	svc, rec, _ := newTestServices(t)
	ctx := context.Background()
	in := model.NewsletterInput{Email: "Guest@Example.com"}

	sub, resubscribed, err := svc.Newsletter.Subscribe(ctx, in)
	if err != nil {
		t.Fatalf("first Subscribe: %v", err)
	}
	if resubscribed || sub.Email != "guest@example.com" || !sub.IsSubscribed {
		t.Fatalf("first = %+v resubscribed=%v", sub, resubscribed)
	}

	_, _, err = svc.Newsletter.Subscribe(ctx, in)
	ce := asConflict(t, err)
	if ce.Message != "Email already subscribed" || ce.Field != "email" {
		t.Fatalf("conflict = %+v", ce)
	}

	if err := svc.Newsletter.Unsubscribe(ctx, in); err != nil {
		t.Fatalf("Unsubscribe: %v", err)
	}

	again, resubscribed, err := svc.Newsletter.Subscribe(ctx, in)
	if err != nil {
		t.Fatalf("third Subscribe: %v", err)
	}
	if !resubscribed || again.ID != sub.ID || !again.IsSubscribed || again.UnsubscribedAt != nil {
		t.Fatalf("third = %+v resubscribed=%v", again, resubscribed)
	}

	svc.Wait()
	welcomes := 0
	for _, k := range rec.kinds() {
		if k == model.EventNewsletterSubscribed {
			welcomes++
		}
	}
	if welcomes != 1 {
		t.Fatalf("welcome sent %d times, want 1", welcomes)
	}
}

func TestNewsletterService_UnsubscribeUnknown(t *testing.T) {
	svc, _, _ := newTestServices(t)

	err := svc.Newsletter.Unsubscribe(context.Background(), model.NewsletterInput{Email: "nobody@example.com"})
	asNotFound(t, err)
}

func TestNewsletterService_RejectsBadEmail(t *testing.T) {
	svc, _, _ := newTestServices(t)

	_, _, err := svc.Newsletter.Subscribe(context.Background(), model.NewsletterInput{Email: "nope"})
	if ve := asValidation(t, err); !ve.Has("email") {
		t.Fatalf("fields = %+v", ve.Fields)
	}
}

func TestNewsletterService_ListByStatus(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()

	for _, e := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		if _, _, err := svc.Newsletter.Subscribe(ctx, model.NewsletterInput{Email: e}); err != nil {
			t.Fatalf("Subscribe %s: %v", e, err)
		}
	}
	if err := svc.Newsletter.Unsubscribe(ctx, model.NewsletterInput{Email: "b@example.com"}); err != nil {
		t.Fatalf("Unsubscribe: %v", err)
	}

	page, err := svc.Newsletter.List(ctx, model.NewsletterFilter{Status: "subscribed"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Total != 2 || page.Limit != 50 {
		t.Fatalf("subscribed page = total %d limit %d", page.Total, page.Limit)
	}
	page, err = svc.Newsletter.List(ctx, model.NewsletterFilter{Status: "unsubscribed"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Total != 1 || page.Items[0].Email != "b@example.com" {
		t.Fatalf("unsubscribed page = %+v", page)
	}
}
