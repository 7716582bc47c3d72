package service

import (
	"context"
	"fmt"
	"strings"

	"tourhub/constants"
	"tourhub/helper"
	"tourhub/model"
	"tourhub/repository"

	"github.com/jinzhu/copier"
)

type TourService struct {
	tours      repository.Repository[model.Tour]
	categories repository.Repository[model.Category]
	bookings   repository.Repository[model.Booking]
}

func (s *TourService) List(ctx context.Context, f model.TourFilter) (model.Page[model.Tour], error) {
	return paginate(ctx, s.tours, entityTour, repository.Query{
		Scopes:   tourScopes(f),
		Order:    orderBy(tourSorts, f.Sort, sortNewest),
		Preloads: []string{"Category"},
	}, f.Pagination, constants.DEFAULT_TOUR_LIMIT)
}

func (s *TourService) Featured(ctx context.Context, limit int) ([]model.Tour, error) {
	_, limit, _ = window(1, limit, constants.DEFAULT_FEATURED_LIMIT)
	tours, err := s.tours.Find(ctx, repository.Query{
		Scopes:   []repository.Scope{equals("is_active", true), equals("is_featured", true)},
		Order:    newestFirst,
		Limit:    limit,
		Preloads: []string{"Category"},
	})
	if err != nil {
		return nil, storeErr("featured tours", entityTour, nil, err)
	}
	return tours, nil
}

func (s *TourService) OnSale(ctx context.Context, p model.Pagination) (model.Page[model.Tour], error) {
	return s.List(ctx, model.TourFilter{Pagination: p, OnSale: true})
}

func (s *TourService) GetBySlug(ctx context.Context, slug string) (*model.Tour, error) {
	t, err := s.tours.FindOne(ctx, repository.Query{
		Scopes:   []repository.Scope{equals("slug", slug), equals("is_active", true)},
		Preloads: []string{"Category"},
	})
	if err != nil {
		return nil, storeErr("get tour", entityTour, slug, err)
	}
	return t, nil
}

func (s *TourService) Get(ctx context.Context, id uint) (*model.Tour, error) {
	t, err := s.tours.FindByID(ctx, id, "Category")
	if err != nil {
		return nil, storeErr("get tour", entityTour, id, err)
	}
	return t, nil
}

func (s *TourService) Create(ctx context.Context, in model.TourInput) (*model.Tour, error) {
	if err := ValidateTourInput(in); err != nil {
		return nil, err
	}
	slug, err := s.freeSlug(ctx, in.Title, 0)
	if err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	var t model.Tour
	if err := copier.Copy(&t, &in); err != nil {
		return nil, fmt.Errorf("copy tour input: %w", err)
	}
	t.Title = strings.TrimSpace(in.Title)
	t.Slug = slug
	t.BasePrice, t.SalePrice = in.BasePrice, in.SalePrice
	t.IsActive = in.IsActive == nil || *in.IsActive
	if t.LocationCountry == "" {
		t.LocationCountry = "UAE"
	}
	t.DiscountPercent = helper.DiscountPercent(t.BasePrice, t.SalePrice)

	if err := s.tours.Insert(ctx, &t); err != nil {
		return nil, storeErr("create tour", entityTour, slug, err)
	}
	return s.Get(ctx, t.ID)
}

// Update applies an admin patch. The slug follows the title and the discount
// follows the prices.
func (s *TourService) Update(ctx context.Context, id uint, p model.TourPatch) (*model.Tour, error) {
	if err := ValidateTourPatch(p); err != nil {
		return nil, err
	}
	cur, err := s.tours.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("update tour", entityTour, id, err)
	}

	patch := map[string]any{}
	if p.Title != nil && strings.TrimSpace(*p.Title) != cur.Title {
		slug, err := s.freeSlug(ctx, *p.Title, id)
		if err != nil {
			return nil, err
		}
		patch["title"] = strings.TrimSpace(*p.Title)
		patch["slug"] = slug
	}
	if p.CategoryID != nil {
		if err := s.checkCategory(ctx, p.CategoryID); err != nil {
			return nil, err
		}
		patch["category_id"] = *p.CategoryID
	}

	base, sale := cur.BasePrice, cur.SalePrice
	if p.BasePrice != nil {
		base = *p.BasePrice
		patch["base_price"] = base
	}
	switch {
	case p.ClearSalePrice:
		sale = nil
		patch["sale_price"] = nil
	case p.SalePrice != nil:
		sale = p.SalePrice
		patch["sale_price"] = *sale
	}
	ve := &ValidationError{}
	checkPrices(ve, base, sale)
	if err := ve.OrNil(); err != nil {
		return nil, err
	}
	if p.BasePrice != nil || p.SalePrice != nil || p.ClearSalePrice {
		patch["discount_percent"] = helper.DiscountPercent(base, sale)
	}

	setIf(patch, "description", p.Description)
	setIf(patch, "short_description", p.ShortDescription)
	setIf(patch, "location_city", p.LocationCity)
	setIf(patch, "location_country", p.LocationCountry)
	setIf(patch, "duration_hours", p.DurationHours)
	setIf(patch, "duration_text", p.DurationText)
	setIf(patch, "max_participants", p.MaxParticipants)
	setIf(patch, "highlights", p.Highlights)
	setIf(patch, "included", p.Included)
	setIf(patch, "excluded", p.Excluded)
	setIf(patch, "itinerary", p.Itinerary)
	setIf(patch, "faq", p.FAQ)
	setIf(patch, "images", p.Images)
	setIf(patch, "is_featured", p.IsFeatured)
	setIf(patch, "is_on_sale", p.IsOnSale)
	setIf(patch, "is_active", p.IsActive)
	setIf(patch, "seo_meta_title", p.SeoMetaTitle)
	setIf(patch, "seo_meta_description", p.SeoMetaDescription)
	setIf(patch, "seo_keywords", p.SeoKeywords)

	if err := s.tours.Update(ctx, id, patch); err != nil {
		return nil, storeErr("update tour", entityTour, id, err)
	}
	return s.Get(ctx, id)
}

// Delete removes a tour that no booking points at.
func (s *TourService) Delete(ctx context.Context, id uint) error {
	if _, err := s.tours.FindByID(ctx, id); err != nil {
		return storeErr("delete tour", entityTour, id, err)
	}
	n, err := s.bookings.Count(ctx, equals("tour_id", id))
	if err != nil {
		return storeErr("delete tour", entityBooking, id, err)
	}
	if n > 0 {
		return &ConflictError{
			Field:   "bookings",
			Message: fmt.Sprintf("Cannot delete tour. It has %d bookings associated with it.", n),
		}
	}
	return storeErr("delete tour", entityTour, id, s.tours.Delete(ctx, id))
}

func (s *TourService) ToggleSale(ctx context.Context, id uint) (*model.Tour, error) {
	t, err := s.tours.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("toggle sale", entityTour, id, err)
	}
	if err := s.tours.Update(ctx, id, map[string]any{"is_on_sale": !t.IsOnSale}); err != nil {
		return nil, storeErr("toggle sale", entityTour, id, err)
	}
	return s.Get(ctx, id)
}

// freeSlug derives the slug for title and fails when another tour holds it.
func (s *TourService) freeSlug(ctx context.Context, title string, selfID uint) (string, error) {
	slug := helper.MakeSlug(title)
	if slug == "" {
		return "", invalid("title", "must contain letters or digits")
	}
	scopes := []repository.Scope{equals("slug", slug)}
	if selfID != 0 {
		scopes = append(scopes, repository.Where("id <> ?", selfID))
	}
	taken, err := s.tours.Exists(ctx, scopes...)
	if err != nil {
		return "", storeErr("check slug", entityTour, slug, err)
	}
	if taken {
		return "", &ConflictError{Field: "slug", Message: "A tour with this title already exists"}
	}
	return slug, nil
}

func (s *TourService) checkCategory(ctx context.Context, id *uint) error {
	if id == nil {
		return nil
	}
	ok, err := s.categories.Exists(ctx, repository.ByID(*id))
	if err != nil {
		return storeErr("check category", entityCategory, *id, err)
	}
	if !ok {
		return &NotFoundError{Entity: entityCategory, Key: *id}
	}
	return nil
}

// setIf copies a patch field into the update map when the client sent it.
func setIf[T any](patch map[string]any, column string, v *T) {
	if v != nil {
		patch[column] = *v
	}
}
