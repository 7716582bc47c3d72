package model

import "time"

type Account struct {
	DTO
	Email        string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Name         string     `gorm:"size:255" json:"name"`
	Phone        string     `gorm:"size:50" json:"phone"`
	IsAdmin      bool       `gorm:"not null;default:false" json:"is_admin"`
	IsActive     bool       `gorm:"not null" json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AccountInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,max=255"`
	Phone    string `json:"phone" validate:"max=50"`
}

type AccountPatch struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=255"`
	Phone    *string `json:"phone" validate:"omitempty,max=50"`
	IsActive *bool   `json:"is_active"`
}

type TokenData struct {
	AccessToken string   `json:"access_token"`
	ExpiresAt   int64    `json:"expires_at"`
	Account     *Account `json:"account"`
}

// RegisterInput is a storefront sign-up. It never creates an admin.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name" validate:"required,max=255"`
	Phone    string `json:"phone" validate:"omitempty,e164"`
}

type ProfilePatch struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=255"`
	Phone *string `json:"phone" validate:"omitempty,max=50"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6,max=72"`
}
