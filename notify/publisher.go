package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tourhub/model"

	"github.com/redis/go-redis/v9"
)

// BookingMessage is the JSON pushed to live admin dashboards.
type BookingMessage struct {
	Type             model.EventKind     `json:"type"`
	ID               uint                `json:"id"`
	BookingReference string              `json:"booking_reference"`
	CustomerName     string              `json:"customer_name"`
	TourTitle        string              `json:"tour_title"`
	BookingDate      time.Time           `json:"booking_date"`
	TotalPrice       string              `json:"total_price"`
	Status           model.BookingStatus `json:"status"`
	PaymentStatus    model.PaymentStatus `json:"payment_status"`
	At               time.Time           `json:"at"`
}

// Publisher fans booking events out over a Redis channel.
type Publisher struct {
	client  *redis.Client
	channel string
}

func NewPublisher(client *redis.Client, channel string) *Publisher {
	return &Publisher{client: client, channel: channel}
}

func (p *Publisher) Notify(ctx context.Context, kind model.EventKind, payload any) error {
	ev, ok := payload.(model.BookingEvent)
	if !ok {
		return nil
	}
	b := ev.Booking
	msg := BookingMessage{
		Type:             kind,
		ID:               b.ID,
		BookingReference: b.BookingReference,
		CustomerName:     b.CustomerName,
		BookingDate:      b.BookingDate,
		TotalPrice:       b.TotalPrice.StringFixed(2),
		Status:           b.Status,
		PaymentStatus:    b.PaymentStatus,
		At:               time.Now().UTC(),
	}
	if b.Tour != nil {
		msg.TourTitle = b.Tour.Title
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", kind, err)
	}
	return nil
}

// Subscribe opens a subscription to the booking channel. Callers must Close it.
func (p *Publisher) Subscribe(ctx context.Context) *redis.PubSub {
	return p.client.Subscribe(ctx, p.channel)
}
