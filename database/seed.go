package database

import (
	"tourhub/config"
	"tourhub/model"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) error {
	password := config.ConfigDefault("ADMIN_PASSWORD", "admin12345")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.Account{
		Email:        config.ConfigDefault("ADMIN_EMAIL", "admin@tourhub.local"),
		PasswordHash: string(hash),
		Name:         "Admin User",
		IsAdmin:      true,
		IsActive:     true,
	}
	if err := db.Where(model.Account{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
		log.Error().Err(err).Str("email", admin.Email).Msg("failed to seed admin account")
	}

	categories := []model.Category{
		{Name: "Desert Safari", Type: "tour", Icon: "sun", DisplayOrder: 1, IsActive: true},
		{Name: "City Tours", Type: "tour", Icon: "building", DisplayOrder: 2, IsActive: true},
		{Name: "Water Activities", Type: "tour", Icon: "waves", DisplayOrder: 3, IsActive: true},
		{Name: "Theme Parks", Type: "attraction", Icon: "ticket", DisplayOrder: 4, IsActive: true},
	}
	for i := range categories {
		c := &categories[i]
		c.Slug = slug.Make(c.Name)
		if err := db.Where(model.Category{Slug: c.Slug}).FirstOrCreate(c).Error; err != nil {
			log.Error().Err(err).Str("category", c.Name).Msg("failed to seed category")
		}
	}

	sale := decimal.NewFromInt(120)
	tours := []model.Tour{
		{
			Title:            "Red Dunes Evening Safari",
			ShortDescription: "Dune bashing, camel ride and a BBQ dinner under the stars.",
			LocationCity:     "Dubai",
			BasePrice:        decimal.NewFromInt(150),
			SalePrice:        &sale,
			DiscountPercent:  20,
			DurationHours:    6,
			DurationText:     "6 hours",
			MaxParticipants:  20,
			Highlights:       []string{"Dune bashing", "Camel ride", "BBQ dinner"},
			IsFeatured:       true,
			IsOnSale:         true,
			IsActive:         true,
			CategoryID:       &categories[0].ID,
		},
		{
			Title:            "Old Dubai Walking Tour",
			ShortDescription: "Souks, abra crossing and the Al Fahidi district.",
			LocationCity:     "Dubai",
			BasePrice:        decimal.NewFromInt(80),
			DurationHours:    3,
			DurationText:     "3 hours",
			MaxParticipants:  15,
			Highlights:       []string{"Gold souk", "Spice souk", "Abra ride"},
			IsActive:         true,
			CategoryID:       &categories[1].ID,
		},
		{
			Title:            "Abu Dhabi Grand Mosque and Louvre",
			ShortDescription: "Full-day trip to the capital's landmarks.",
			LocationCity:     "Abu Dhabi",
			BasePrice:        decimal.NewFromInt(220),
			DurationHours:    10,
			DurationText:     "Full day",
			MaxParticipants:  30,
			IsFeatured:       true,
			IsActive:         true,
			CategoryID:       &categories[1].ID,
		},
	}
	for i := range tours {
		t := &tours[i]
		t.Slug = slug.Make(t.Title)
		t.LocationCountry = "UAE"
		if err := db.Where(model.Tour{Slug: t.Slug}).FirstOrCreate(t).Error; err != nil {
			log.Error().Err(err).Str("tour", t.Title).Msg("failed to seed tour")
		}
	}

	contents := []model.StaticContent{
		{Key: "hero_title", Section: "home", Kind: model.ContentText, Value: "Discover the UAE"},
		{Key: "hero_subtitle", Section: "home", Kind: model.ContentText, Value: "Tours, safaris and experiences hand-picked by locals"},
		{Key: "hero_image", Section: "home", Kind: model.ContentImageURL, Value: "https://res.cloudinary.com/demo/image/upload/tourhub/hero.jpg"},
		{Key: "about_body", Section: "about", Kind: model.ContentHTML, Value: "<p>TourHub connects travellers with trusted local operators.</p>"},
		{Key: "contact_details", Section: "contact", Kind: model.ContentJSON, Value: `{"phone":"+971 4 000 0000","email":"hello@tourhub.local"}`},
	}
	for i := range contents {
		c := &contents[i]
		if err := db.Where(model.StaticContent{Key: c.Key}).FirstOrCreate(c).Error; err != nil {
			log.Error().Err(err).Str("key", c.Key).Msg("failed to seed content")
		}
	}

	log.Info().Msg("Seed data ensured")
	return nil
}
