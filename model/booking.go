package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
	BookingCompleted: {},
	BookingCancelled: {},
}

func (s BookingStatus) IsValid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

// CanTransitionTo reports whether an admin may move a booking from s to target.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range bookingTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s BookingStatus) IsTerminal() bool {
	return len(bookingTransitions[s]) == 0
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type Booking struct {
	DTO
	BookingReference string          `gorm:"size:32;uniqueIndex;not null" json:"booking_reference"`
	TourID           uint            `gorm:"index;not null" json:"tour_id"`
	Tour             *Tour           `gorm:"foreignKey:TourID;constraint:OnDelete:RESTRICT" json:"tour,omitempty"`
	CustomerName     string          `gorm:"size:255;not null" json:"customer_name"`
	CustomerEmail    string          `gorm:"size:255;index;not null" json:"customer_email"`
	CustomerPhone    string          `gorm:"size:50;not null" json:"customer_phone"`
	BookingDate      time.Time       `gorm:"index;not null" json:"booking_date"`
	NumberOfAdults   int             `gorm:"not null" json:"number_of_adults"`
	NumberOfChildren int             `gorm:"not null;default:0" json:"number_of_children"`
	TotalPrice       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_price"`
	Status           BookingStatus   `gorm:"size:20;index;not null" json:"status"`
	PaymentStatus    PaymentStatus   `gorm:"size:20;index;not null" json:"payment_status"`
	PaymentMethod    string          `gorm:"size:50" json:"payment_method"`
	PaymentReference string          `gorm:"size:255" json:"payment_reference"`
	SpecialRequests  string          `gorm:"type:text" json:"special_requests"`
	AdminNotes       string          `gorm:"type:text" json:"admin_notes,omitempty"`
}

// CreateBookingInput carries what a customer may submit. Status, payment and
// price fields are not part of it, so client values for them never reach the model.
type CreateBookingInput struct {
	TourID           uint   `json:"tour_id" validate:"required"`
	CustomerName     string `json:"customer_name" validate:"required,max=255"`
	CustomerEmail    string `json:"customer_email" validate:"required,email,max=255"`
	CustomerPhone    string `json:"customer_phone" validate:"required,max=50"`
	BookingDate      string `json:"booking_date" validate:"required,isodate"`
	NumberOfAdults   int    `json:"number_of_adults" validate:"min=1"`
	NumberOfChildren *int   `json:"number_of_children" validate:"omitempty,min=0"`
	SpecialRequests  string `json:"special_requests" validate:"max=2000"`
}

type BookingPatch struct {
	Status        *BookingStatus `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	PaymentStatus *PaymentStatus `json:"payment_status" validate:"omitempty,oneof=unpaid paid refunded"`
	PaymentMethod *string        `json:"payment_method" validate:"omitempty,max=50"`
	AdminNotes    *string        `json:"admin_notes" validate:"omitempty,max=5000"`
}

type BookingFilter struct {
	Pagination
	Status        string `query:"status"`
	PaymentStatus string `query:"payment_status"`
	Search        string `query:"search"`
	DateFrom      string `query:"date_from" validate:"omitempty,isodate"`
	DateTo        string `query:"date_to" validate:"omitempty,isodate"`
}
