package service

import (
	"context"
	"strings"
	"time"

	"tourhub/constants"
	"tourhub/model"
	"tourhub/repository"
)

type ContactService struct {
	contacts repository.Repository[model.ContactSubmission]
	events   *dispatcher
}

func (s *ContactService) Submit(ctx context.Context, in model.ContactInput) (*model.ContactSubmission, error) {
	if err := ValidateContactInput(in); err != nil {
		return nil, err
	}
	c := model.ContactSubmission{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:   strings.TrimSpace(in.Phone),
		Subject: strings.TrimSpace(in.Subject),
		Message: strings.TrimSpace(in.Message),
	}
	if err := s.contacts.Insert(ctx, &c); err != nil {
		return nil, storeErr("submit contact", entityContact, c.Email, err)
	}
	return &c, nil
}

func (s *ContactService) List(ctx context.Context, f model.ContactFilter) (model.Page[model.ContactSubmission], error) {
	var scopes []repository.Scope
	switch f.Status {
	case "unread":
		scopes = append(scopes, equals("is_read", false))
	case "read":
		scopes = append(scopes, equals("is_read", true))
	case "replied":
		scopes = append(scopes, equals("is_replied", true))
	case "unanswered":
		scopes = append(scopes, equals("is_replied", false))
	}
	if f.Search != "" {
		scopes = append(scopes, containsAny(f.Search, "name", "email", "subject", "message"))
	}
	return paginate(ctx, s.contacts, entityContact, repository.Query{
		Scopes: scopes,
		Order:  newestFirst,
	}, f.Pagination, constants.DEFAULT_CONTACT_LIMIT)
}

// Get returns a submission and marks it read.
func (s *ContactService) Get(ctx context.Context, id uint) (*model.ContactSubmission, error) {
	c, err := s.contacts.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("get contact", entityContact, id, err)
	}
	if !c.IsRead {
		if err := s.contacts.Update(ctx, id, map[string]any{"is_read": true}); err != nil {
			return nil, storeErr("get contact", entityContact, id, err)
		}
		c.IsRead = true
	}
	return c, nil
}

func (s *ContactService) MarkRead(ctx context.Context, id uint) (*model.ContactSubmission, error) {
	return s.Get(ctx, id)
}

// Reply emails the answer to the sender and records it. Nothing is stored
// when the email cannot be sent.
func (s *ContactService) Reply(ctx context.Context, id uint, in model.ContactReplyInput) (*model.ContactSubmission, error) {
	if err := ValidateContactReply(in); err != nil {
		return nil, err
	}
	c, err := s.contacts.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("reply contact", entityContact, id, err)
	}

	reply := strings.TrimSpace(in.Reply)
	if err := s.events.send(ctx, model.EventContactReplied, model.ContactReplyEvent{Contact: *c, Reply: reply}); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	err = s.contacts.Update(ctx, id, map[string]any{
		"is_replied":  true,
		"is_read":     true,
		"admin_reply": reply,
		"replied_at":  now,
	})
	if err != nil {
		return nil, storeErr("reply contact", entityContact, id, err)
	}
	c.IsReplied, c.IsRead, c.AdminReply, c.RepliedAt = true, true, reply, &now
	return c, nil
}

func (s *ContactService) Delete(ctx context.Context, id uint) error {
	return storeErr("delete contact", entityContact, id, s.contacts.Delete(ctx, id))
}
