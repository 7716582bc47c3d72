package model

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Tour struct {
	DTO
	Title              string                      `gorm:"size:255;not null" json:"title"`
	Slug               string                      `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description        string                      `gorm:"type:text" json:"description"`
	ShortDescription   string                      `gorm:"size:500" json:"short_description"`
	CategoryID         *uint                       `gorm:"index" json:"category_id"`
	Category           *Category                   `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	LocationCity       string                      `gorm:"size:120" json:"location_city"`
	LocationCountry    string                      `gorm:"size:120;default:UAE" json:"location_country"`
	BasePrice          decimal.Decimal             `gorm:"type:numeric(12,2);not null" json:"base_price"`
	SalePrice          *decimal.Decimal            `gorm:"type:numeric(12,2)" json:"sale_price"`
	DiscountPercent    int                         `gorm:"not null;default:0" json:"discount_percent"`
	DurationHours      float64                     `json:"duration_hours"`
	DurationText       string                      `gorm:"size:120" json:"duration_text"`
	MaxParticipants    int                         `json:"max_participants"`
	Highlights         datatypes.JSONSlice[string] `json:"highlights"`
	Included           datatypes.JSONSlice[string] `json:"included"`
	Excluded           datatypes.JSONSlice[string] `json:"excluded"`
	Itinerary          datatypes.JSON              `json:"itinerary"`
	FAQ                datatypes.JSON              `gorm:"column:faq" json:"faq"`
	Images             datatypes.JSONSlice[string] `json:"images"`
	IsFeatured         bool                        `gorm:"not null;default:false" json:"is_featured"`
	IsOnSale           bool                        `gorm:"not null;default:false" json:"is_on_sale"`
	IsActive           bool                        `gorm:"not null" json:"is_active"`
	SeoMetaTitle       string                      `gorm:"size:255" json:"seo_meta_title"`
	SeoMetaDescription string                      `gorm:"size:500" json:"seo_meta_description"`
	SeoKeywords        string                      `gorm:"size:500" json:"seo_keywords"`
}

// TourInput is the admin payload for creating a tour.
type TourInput struct {
	Title              string                      `json:"title" validate:"required,max=255"`
	Description        string                      `json:"description"`
	ShortDescription   string                      `json:"short_description" validate:"max=500"`
	CategoryID         *uint                       `json:"category_id"`
	LocationCity       string                      `json:"location_city" validate:"max=120"`
	LocationCountry    string                      `json:"location_country" validate:"max=120"`
	BasePrice          decimal.Decimal             `json:"base_price"`
	SalePrice          *decimal.Decimal            `json:"sale_price"`
	DurationHours      float64                     `json:"duration_hours" validate:"gte=0"`
	DurationText       string                      `json:"duration_text" validate:"max=120"`
	MaxParticipants    int                         `json:"max_participants" validate:"gte=0"`
	Highlights         datatypes.JSONSlice[string] `json:"highlights"`
	Included           datatypes.JSONSlice[string] `json:"included"`
	Excluded           datatypes.JSONSlice[string] `json:"excluded"`
	Itinerary          datatypes.JSON              `json:"itinerary"`
	FAQ                datatypes.JSON              `json:"faq"`
	Images             datatypes.JSONSlice[string] `json:"images"`
	IsFeatured         bool                        `json:"is_featured"`
	IsOnSale           bool                        `json:"is_on_sale"`
	IsActive           *bool                       `json:"is_active"`
	SeoMetaTitle       string                      `json:"seo_meta_title" validate:"max=255"`
	SeoMetaDescription string                      `json:"seo_meta_description" validate:"max=500"`
	SeoKeywords        string                      `json:"seo_keywords" validate:"max=500"`
}

// TourPatch lists the fields an admin may change on an existing tour.
// Slug and discount_percent are derived and never accepted from the client.
type TourPatch struct {
	Title              *string                      `json:"title" validate:"omitempty,min=1,max=255"`
	Description        *string                      `json:"description"`
	ShortDescription   *string                      `json:"short_description" validate:"omitempty,max=500"`
	CategoryID         *uint                        `json:"category_id"`
	LocationCity       *string                      `json:"location_city" validate:"omitempty,max=120"`
	LocationCountry    *string                      `json:"location_country" validate:"omitempty,max=120"`
	BasePrice          *decimal.Decimal             `json:"base_price"`
	SalePrice          *decimal.Decimal             `json:"sale_price"`
	ClearSalePrice     bool                         `json:"clear_sale_price"`
	DurationHours      *float64                     `json:"duration_hours" validate:"omitempty,gte=0"`
	DurationText       *string                      `json:"duration_text" validate:"omitempty,max=120"`
	MaxParticipants    *int                         `json:"max_participants" validate:"omitempty,gte=0"`
	Highlights         *datatypes.JSONSlice[string] `json:"highlights"`
	Included           *datatypes.JSONSlice[string] `json:"included"`
	Excluded           *datatypes.JSONSlice[string] `json:"excluded"`
	Itinerary          *datatypes.JSON              `json:"itinerary"`
	FAQ                *datatypes.JSON              `json:"faq"`
	Images             *datatypes.JSONSlice[string] `json:"images"`
	IsFeatured         *bool                        `json:"is_featured"`
	IsOnSale           *bool                        `json:"is_on_sale"`
	IsActive           *bool                        `json:"is_active"`
	SeoMetaTitle       *string                      `json:"seo_meta_title" validate:"omitempty,max=255"`
	SeoMetaDescription *string                      `json:"seo_meta_description" validate:"omitempty,max=500"`
	SeoKeywords        *string                      `json:"seo_keywords" validate:"omitempty,max=500"`
}

type TourFilter struct {
	Pagination
	Category string   `query:"category"`
	Location string   `query:"location"`
	Search   string   `query:"search"`
	OnSale   bool     `query:"on_sale"`
	Featured bool     `query:"featured"`
	MinPrice *float64 `query:"min_price"`
	MaxPrice *float64 `query:"max_price"`
	Sort     string   `query:"sort"`
	// IncludeInactive is set by admin listings only.
	IncludeInactive bool `query:"-"`
}
