package model

import "time"

type BlogPost struct {
	DTO
	Title              string     `gorm:"size:255;not null" json:"title"`
	Slug               string     `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Excerpt            string     `gorm:"size:1000" json:"excerpt"`
	Content            string     `gorm:"type:text" json:"content,omitempty"`
	CoverImageURL      string     `gorm:"size:500" json:"cover_image_url"`
	Category           string     `gorm:"size:120;index" json:"category"`
	AuthorName         string     `gorm:"size:255" json:"author_name"`
	IsPublished        bool       `gorm:"not null;default:false;index" json:"is_published"`
	PublishedAt        *time.Time `json:"published_at"`
	ViewsCount         int64      `gorm:"not null;default:0" json:"views_count"`
	Featured           bool       `gorm:"not null;default:false" json:"featured"`
	SeoMetaTitle       string     `gorm:"size:255" json:"seo_meta_title"`
	SeoMetaDescription string     `gorm:"size:500" json:"seo_meta_description"`
	SeoKeywords        string     `gorm:"size:500" json:"seo_keywords"`
}

type BlogPostInput struct {
	Title              string `json:"title" validate:"required,max=255"`
	Slug               string `json:"slug" validate:"max=255"`
	Excerpt            string `json:"excerpt" validate:"max=1000"`
	Content            string `json:"content"`
	CoverImageURL      string `json:"cover_image_url" validate:"max=500"`
	Category           string `json:"category" validate:"max=120"`
	AuthorName         string `json:"author_name" validate:"max=255"`
	Status             string `json:"status" validate:"omitempty,oneof=published draft"`
	Featured           bool   `json:"featured"`
	SeoMetaTitle       string `json:"seo_meta_title" validate:"max=255"`
	SeoMetaDescription string `json:"seo_meta_description" validate:"max=500"`
	SeoKeywords        string `json:"seo_keywords" validate:"max=500"`
}

type BlogPostPatch struct {
	Title              *string `json:"title" validate:"omitempty,min=1,max=255"`
	Slug               *string `json:"slug" validate:"omitempty,max=255"`
	Excerpt            *string `json:"excerpt" validate:"omitempty,max=1000"`
	Content            *string `json:"content"`
	CoverImageURL      *string `json:"cover_image_url" validate:"omitempty,max=500"`
	Category           *string `json:"category" validate:"omitempty,max=120"`
	AuthorName         *string `json:"author_name" validate:"omitempty,max=255"`
	Status             *string `json:"status" validate:"omitempty,oneof=published draft"`
	Featured           *bool   `json:"featured"`
	SeoMetaTitle       *string `json:"seo_meta_title" validate:"omitempty,max=255"`
	SeoMetaDescription *string `json:"seo_meta_description" validate:"omitempty,max=500"`
	SeoKeywords        *string `json:"seo_keywords" validate:"omitempty,max=500"`
}

type BlogFilter struct {
	Pagination
	Search string `query:"search"`
	// Status is honoured by admin listings: published, draft or empty for all.
	Status string `query:"status"`
}
