package model

import "time"

type EventKind string

const (
	EventBookingCreated       EventKind = "booking.created"
	EventBookingConfirmed     EventKind = "booking.confirmed"
	EventContactReplied       EventKind = "contact.replied"
	EventNewsletterSubscribed EventKind = "newsletter.subscribed"
	EventBookingsDigest       EventKind = "bookings.digest"
)

// BookingEvent carries a booking with its tour loaded.
type BookingEvent struct {
	Booking Booking
}

type ContactReplyEvent struct {
	Contact ContactSubmission
	Reply   string
}

type NewsletterEvent struct {
	Email string
}

type DigestEvent struct {
	Date     time.Time
	Bookings []Booking
}
