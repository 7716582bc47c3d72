package service

import (
	"context"
	"fmt"
	"strings"

	"tourhub/helper"
	"tourhub/model"
	"tourhub/repository"

	"github.com/jinzhu/copier"
)

type CategoryService struct {
	categories repository.Repository[model.Category]
	tours      repository.Repository[model.Tour]
}

func (s *CategoryService) ListActive(ctx context.Context) ([]model.Category, error) {
	cats, err := s.categories.Find(ctx, repository.Query{
		Scopes: []repository.Scope{equals("is_active", true)},
		Order:  categoryOrder,
	})
	if err != nil {
		return nil, storeErr("list categories", entityCategory, nil, err)
	}
	return cats, nil
}

// GetBySlug returns an active category with its active tours.
func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	c, err := s.categories.FindOne(ctx, repository.Query{
		Scopes: []repository.Scope{equals("slug", slug), equals("is_active", true)},
	})
	if err != nil {
		return nil, storeErr("get category", entityCategory, slug, err)
	}
	tours, err := s.tours.Find(ctx, repository.Query{
		Scopes: []repository.Scope{equals("category_id", c.ID), equals("is_active", true)},
		Order:  newestFirst,
	})
	if err != nil {
		return nil, storeErr("get category", entityTour, slug, err)
	}
	c.Tours = tours
	c.TourCount = int64(len(tours))
	return c, nil
}

// ListAdmin returns every category with the number of tours in it.
func (s *CategoryService) ListAdmin(ctx context.Context) ([]model.Category, error) {
	cats, err := s.categories.Find(ctx, repository.Query{Order: categoryOrder})
	if err != nil {
		return nil, storeErr("list categories", entityCategory, nil, err)
	}
	for i := range cats {
		n, err := s.tours.Count(ctx, equals("category_id", cats[i].ID))
		if err != nil {
			return nil, storeErr("count tours", entityTour, cats[i].ID, err)
		}
		cats[i].TourCount = n
	}
	return cats, nil
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*model.Category, error) {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("get category", entityCategory, id, err)
	}
	return c, nil
}

func (s *CategoryService) Create(ctx context.Context, in model.CategoryInput) (*model.Category, error) {
	if err := ValidateCategoryInput(in); err != nil {
		return nil, err
	}
	slug, err := s.freeSlug(ctx, in.Name, 0)
	if err != nil {
		return nil, err
	}

	var c model.Category
	if err := copier.Copy(&c, &in); err != nil {
		return nil, fmt.Errorf("copy category input: %w", err)
	}
	c.Name = strings.TrimSpace(in.Name)
	c.Slug = slug
	c.IsActive = in.IsActive == nil || *in.IsActive

	if err := s.categories.Insert(ctx, &c); err != nil {
		return nil, storeErr("create category", entityCategory, slug, err)
	}
	return &c, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, p model.CategoryPatch) (*model.Category, error) {
	if err := ValidateCategoryPatch(p); err != nil {
		return nil, err
	}
	cur, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("update category", entityCategory, id, err)
	}

	patch := map[string]any{}
	if p.Name != nil && strings.TrimSpace(*p.Name) != cur.Name {
		slug, err := s.freeSlug(ctx, *p.Name, id)
		if err != nil {
			return nil, err
		}
		patch["name"] = strings.TrimSpace(*p.Name)
		patch["slug"] = slug
	}
	setIf(patch, "type", p.Type)
	setIf(patch, "description", p.Description)
	setIf(patch, "icon", p.Icon)
	setIf(patch, "icon_url", p.IconURL)
	setIf(patch, "image_url", p.ImageURL)
	setIf(patch, "display_order", p.DisplayOrder)
	setIf(patch, "is_active", p.IsActive)

	if err := s.categories.Update(ctx, id, patch); err != nil {
		return nil, storeErr("update category", entityCategory, id, err)
	}
	return s.Get(ctx, id)
}

// Delete removes a category that has no tours.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		return storeErr("delete category", entityCategory, id, err)
	}
	n, err := s.tours.Count(ctx, equals("category_id", id))
	if err != nil {
		return storeErr("delete category", entityTour, id, err)
	}
	if n > 0 {
		return &ConflictError{
			Field:   "tours",
			Message: fmt.Sprintf("Cannot delete category. It has %d tours associated with it.", n),
		}
	}
	return storeErr("delete category", entityCategory, id, s.categories.Delete(ctx, id))
}

func (s *CategoryService) freeSlug(ctx context.Context, name string, selfID uint) (string, error) {
	slug := helper.MakeSlug(name)
	if slug == "" {
		return "", invalid("name", "must contain letters or digits")
	}
	scopes := []repository.Scope{equals("slug", slug)}
	if selfID != 0 {
		scopes = append(scopes, repository.Where("id <> ?", selfID))
	}
	taken, err := s.categories.Exists(ctx, scopes...)
	if err != nil {
		return "", storeErr("check slug", entityCategory, slug, err)
	}
	if taken {
		return "", &ConflictError{Field: "slug", Message: "A category with this name already exists"}
	}
	return slug, nil
}
