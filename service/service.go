package service

import (
	"context"
	"sync"
	"time"

	"tourhub/helper"
	"tourhub/model"
	"tourhub/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Notifier receives domain events. Implementations may block on I/O.
type Notifier interface {
	Notify(ctx context.Context, kind model.EventKind, payload any) error
}

const notifyTimeout = 30 * time.Second

// dispatcher runs notifications off the request path.
type dispatcher struct {
	notifier Notifier
	wg       sync.WaitGroup
}

// fire sends the event in its own goroutine. Failures are logged and dropped.
func (d *dispatcher) fire(kind model.EventKind, payload any) {
	if d.notifier == nil {
		return
	}
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("event", string(kind)).Msg("notifier panicked")
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := d.notifier.Notify(ctx, kind, payload); err != nil {
			log.Warn().Err(err).Str("event", string(kind)).Msg("notification failed")
		}
	}()
}

// send delivers the event and reports the outcome to the caller.
func (d *dispatcher) send(ctx context.Context, kind model.EventKind, payload any) error {
	if d.notifier == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()
	if err := d.notifier.Notify(ctx, kind, payload); err != nil {
		log.Error().Err(err).Str("event", string(kind)).Msg("notification failed")
		return &DependencyError{Op: "notify " + string(kind), Err: err}
	}
	return nil
}

type Services struct {
	Bookings   *BookingService
	Tours      *TourService
	Categories *CategoryService
	Blog       *BlogService
	Contacts   *ContactService
	Newsletter *NewsletterService
	Content    *ContentService
	Search     *SearchService
	Dashboard  *DashboardService
	Accounts   *AccountService

	events *dispatcher
}

func New(db *gorm.DB, notifier Notifier) *Services {
	events := &dispatcher{notifier: notifier}

	tours := repository.New[model.Tour](db)
	categories := repository.New[model.Category](db)
	bookings := repository.New[model.Booking](db)
	posts := repository.New[model.BlogPost](db)
	contacts := repository.New[model.ContactSubmission](db)
	subs := repository.New[model.NewsletterSubscription](db)
	contents := repository.New[model.StaticContent](db)
	accounts := repository.New[model.Account](db)

	return &Services{
		Bookings:   &BookingService{bookings: bookings, tours: tours, events: events, newRef: helper.GenerateReference},
		Tours:      &TourService{tours: tours, categories: categories, bookings: bookings},
		Categories: &CategoryService{categories: categories, tours: tours},
		Blog:       &BlogService{posts: posts},
		Contacts:   &ContactService{contacts: contacts, events: events},
		Newsletter: &NewsletterService{subs: subs, events: events},
		Content:    &ContentService{contents: contents},
		Search:     &SearchService{tours: tours, posts: posts},
		Dashboard:  &DashboardService{db: db, tours: tours, bookings: bookings, posts: posts, contacts: contacts},
		Accounts:   &AccountService{accounts: accounts},
		events:     events,
	}
}

// Wait blocks until in-flight notifications finish.
func (s *Services) Wait() {
	s.events.wg.Wait()
}
