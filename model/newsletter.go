package model

import "time"

type NewsletterSubscription struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Email          string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	IsSubscribed   bool       `gorm:"not null;index" json:"is_subscribed"`
	SubscribedAt   time.Time  `gorm:"not null" json:"subscribed_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at"`
}

type NewsletterInput struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

type NewsletterFilter struct {
	Pagination
	Status string `query:"status"`
}
