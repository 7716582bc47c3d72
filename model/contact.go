package model

import "time"

type ContactSubmission struct {
	DTO
	Name       string     `gorm:"size:255;not null" json:"name"`
	Email      string     `gorm:"size:255;not null" json:"email"`
	Phone      string     `gorm:"size:50" json:"phone"`
	Subject    string     `gorm:"size:255" json:"subject"`
	Message    string     `gorm:"type:text;not null" json:"message"`
	IsRead     bool       `gorm:"not null;default:false;index" json:"is_read"`
	IsReplied  bool       `gorm:"not null;default:false" json:"is_replied"`
	AdminReply string     `gorm:"type:text" json:"admin_reply"`
	RepliedAt  *time.Time `json:"replied_at"`
}

type ContactInput struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"max=50"`
	Subject string `json:"subject" validate:"max=255"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

type ContactReplyInput struct {
	Reply string `json:"reply" validate:"required,max=10000"`
}

type ContactFilter struct {
	Pagination
	Status string `query:"status"`
	Search string `query:"search"`
}
