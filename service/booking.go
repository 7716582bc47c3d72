package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tourhub/constants"
	"tourhub/helper"
	"tourhub/model"
	"tourhub/repository"

	"github.com/rs/zerolog/log"
)

type BookingService struct {
	bookings repository.Repository[model.Booking]
	tours    repository.Repository[model.Tour]
	events   *dispatcher
	newRef   func() string
}

// Create validates a customer booking, prices it against the tour's current
// prices and stores it as pending and unpaid. The confirmation is sent
// asynchronously; its failure does not affect the result.
func (s *BookingService) Create(ctx context.Context, in model.CreateBookingInput) (*model.Booking, error) {
	if err := ValidateBookingInput(in); err != nil {
		return nil, err
	}
	date, err := ParseISODate(in.BookingDate)
	if err != nil {
		return nil, invalid("booking_date", "must be an ISO-8601 date")
	}

	tour, err := s.tours.FindByID(ctx, in.TourID)
	if err != nil {
		return nil, storeErr("create booking", entityTour, in.TourID, err)
	}

	children := 0
	if in.NumberOfChildren != nil {
		children = *in.NumberOfChildren
	}

	b := model.Booking{
		TourID:           tour.ID,
		CustomerName:     strings.TrimSpace(in.CustomerName),
		CustomerEmail:    strings.ToLower(strings.TrimSpace(in.CustomerEmail)),
		CustomerPhone:    strings.TrimSpace(in.CustomerPhone),
		BookingDate:      date,
		NumberOfAdults:   in.NumberOfAdults,
		NumberOfChildren: children,
		TotalPrice:       helper.ComputeTotal(*tour, in.NumberOfAdults, children),
		Status:           model.BookingPending,
		PaymentStatus:    model.PaymentUnpaid,
		SpecialRequests:  strings.TrimSpace(in.SpecialRequests),
	}

	if err := s.insertWithReference(ctx, &b); err != nil {
		return nil, err
	}

	b.Tour = tour
	s.events.fire(model.EventBookingCreated, model.BookingEvent{Booking: b})

	log.Info().Str("reference", b.BookingReference).Uint("tour_id", b.TourID).
		Str("total", b.TotalPrice.StringFixed(2)).Msg("booking created")
	return &b, nil
}

// insertWithReference assigns a fresh reference and inserts, regenerating the
// reference when it collides with an existing one.
func (s *BookingService) insertWithReference(ctx context.Context, b *model.Booking) error {
	var err error
	for attempt := 1; attempt <= constants.BOOKING_REFERENCE_ATTEMPTS; attempt++ {
		b.ID = 0
		b.BookingReference = s.newRef()
		err = s.bookings.Insert(ctx, b)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrDuplicateKey) {
			return storeErr("create booking", entityBooking, b.BookingReference, err)
		}
		log.Warn().Str("reference", b.BookingReference).Int("attempt", attempt).Msg("booking reference collision, regenerating")
	}
	return &ConflictError{
		Field:   "booking_reference",
		Message: fmt.Sprintf("could not allocate a unique booking reference after %d attempts", constants.BOOKING_REFERENCE_ATTEMPTS),
	}
}

func (s *BookingService) GetByReference(ctx context.Context, ref string) (*model.Booking, error) {
	ref = strings.ToUpper(strings.TrimSpace(ref))
	b, err := s.bookings.FindOne(ctx, repository.Query{
		Scopes:   []repository.Scope{equals("booking_reference", ref)},
		Preloads: []string{"Tour"},
	})
	if err != nil {
		return nil, storeErr("get booking", entityBooking, ref, err)
	}
	return b, nil
}

func (s *BookingService) Get(ctx context.Context, id uint) (*model.Booking, error) {
	b, err := s.bookings.FindByID(ctx, id, "Tour", "Tour.Category")
	if err != nil {
		return nil, storeErr("get booking", entityBooking, id, err)
	}
	return b, nil
}

func (s *BookingService) List(ctx context.Context, f model.BookingFilter) (model.Page[model.Booking], error) {
	if err := ValidateBookingFilter(f); err != nil {
		return model.Page[model.Booking]{}, err
	}

	var scopes []repository.Scope
	if f.Status != "" && f.Status != "all" {
		scopes = append(scopes, equals("status", f.Status))
	}
	if f.PaymentStatus != "" && f.PaymentStatus != "all" {
		scopes = append(scopes, equals("payment_status", f.PaymentStatus))
	}
	if f.Search != "" {
		scopes = append(scopes, containsAny(f.Search, "customer_name", "customer_email", "booking_reference"))
	}
	if f.DateFrom != "" {
		from, _ := ParseISODate(f.DateFrom)
		scopes = append(scopes, atLeast("booking_date", from))
	}
	if f.DateTo != "" {
		to, _ := ParseISODate(f.DateTo)
		if len(strings.TrimSpace(f.DateTo)) == len("2006-01-02") {
			// a bare date includes the whole day
			scopes = append(scopes, repository.Where("booking_date < ?", to.AddDate(0, 0, 1)))
		} else {
			scopes = append(scopes, atMost("booking_date", to))
		}
	}

	return paginate(ctx, s.bookings, entityBooking, repository.Query{
		Scopes:   scopes,
		Order:    newestFirst,
		Preloads: []string{"Tour"},
	}, f.Pagination, constants.DEFAULT_BOOKING_LIMIT)
}

// Update applies an admin change. Only status, payment status, payment method
// and notes can change, and status must follow the booking lifecycle.
func (s *BookingService) Update(ctx context.Context, id uint, p model.BookingPatch) (*model.Booking, error) {
	if err := ValidateBookingPatch(p); err != nil {
		return nil, err
	}
	cur, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("update booking", entityBooking, id, err)
	}

	patch := map[string]any{}
	confirmed := false
	if p.Status != nil && *p.Status != cur.Status {
		if cur.Status.IsTerminal() {
			return nil, &ConflictError{
				Field:   "status",
				Message: fmt.Sprintf("booking is %s and its status can no longer change", cur.Status),
			}
		}
		if !cur.Status.CanTransitionTo(*p.Status) {
			return nil, &ConflictError{
				Field:   "status",
				Message: fmt.Sprintf("cannot change booking status from %s to %s", cur.Status, *p.Status),
			}
		}
		patch["status"] = *p.Status
		confirmed = *p.Status == model.BookingConfirmed
	}
	if p.PaymentStatus != nil {
		patch["payment_status"] = *p.PaymentStatus
	}
	if p.PaymentMethod != nil {
		patch["payment_method"] = strings.TrimSpace(*p.PaymentMethod)
	}
	if p.AdminNotes != nil {
		patch["admin_notes"] = *p.AdminNotes
	}

	if err := s.bookings.Update(ctx, id, patch); err != nil {
		return nil, storeErr("update booking", entityBooking, id, err)
	}
	updated, err := s.bookings.FindByID(ctx, id, "Tour")
	if err != nil {
		return nil, storeErr("update booking", entityBooking, id, err)
	}

	if confirmed {
		s.events.fire(model.EventBookingConfirmed, model.BookingEvent{Booking: *updated})
	}
	return updated, nil
}

func (s *BookingService) Delete(ctx context.Context, id uint) error {
	return storeErr("delete booking", entityBooking, id, s.bookings.Delete(ctx, id))
}

// ResendConfirmation re-sends the email matching the booking's status and
// reports delivery errors.
func (s *BookingService) ResendConfirmation(ctx context.Context, id uint) error {
	b, err := s.bookings.FindByID(ctx, id, "Tour")
	if err != nil {
		return storeErr("resend booking email", entityBooking, id, err)
	}
	kind := model.EventBookingCreated
	if b.Status == model.BookingConfirmed || b.Status == model.BookingCompleted {
		kind = model.EventBookingConfirmed
	}
	return s.events.send(ctx, kind, model.BookingEvent{Booking: *b})
}

// SendPendingDigest mails the list of bookings still awaiting review.
func (s *BookingService) SendPendingDigest(ctx context.Context) error {
	pending, err := s.bookings.Find(ctx, repository.Query{
		Scopes:   []repository.Scope{equals("status", model.BookingPending)},
		Order:    "booking_date ASC, id ASC",
		Preloads: []string{"Tour"},
	})
	if err != nil {
		return storeErr("pending digest", entityBooking, nil, err)
	}
	if len(pending) == 0 {
		return nil
	}
	return s.events.send(ctx, model.EventBookingsDigest, model.DigestEvent{Date: time.Now().In(helper.BusinessLocation), Bookings: pending})
}
