package model

type Category struct {
	DTO
	Name         string `gorm:"size:255;not null" json:"name"`
	Slug         string `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Type         string `gorm:"size:50" json:"type"`
	Description  string `gorm:"type:text" json:"description"`
	Icon         string `gorm:"size:100" json:"icon"`
	IconURL      string `gorm:"size:500" json:"icon_url"`
	ImageURL     string `gorm:"size:500" json:"image_url"`
	DisplayOrder int    `gorm:"not null;default:0" json:"display_order"`
	IsActive     bool   `gorm:"not null" json:"is_active"`
	Tours        []Tour `gorm:"foreignKey:CategoryID" json:"tours,omitempty"`
	TourCount    int64  `gorm:"-" json:"tour_count"`
}

type CategoryInput struct {
	Name         string `json:"name" validate:"required,max=255"`
	Type         string `json:"type" validate:"max=50"`
	Description  string `json:"description"`
	Icon         string `json:"icon" validate:"max=100"`
	IconURL      string `json:"icon_url" validate:"omitempty,url,max=500"`
	ImageURL     string `json:"image_url" validate:"omitempty,url,max=500"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

type CategoryPatch struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=255"`
	Type         *string `json:"type" validate:"omitempty,max=50"`
	Description  *string `json:"description"`
	Icon         *string `json:"icon" validate:"omitempty,max=100"`
	IconURL      *string `json:"icon_url" validate:"omitempty,max=500"`
	ImageURL     *string `json:"image_url" validate:"omitempty,max=500"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}
