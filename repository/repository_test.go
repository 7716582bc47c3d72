package repository_test

import (
	"context"
	"errors"
	"testing"

	"tourhub/database/dbtest"
	"tourhub/model"
	"tourhub/repository"
)

func TestGormRepository_InsertFindUpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := repository.New[model.Category](dbtest.Open(t))

	c := model.Category{Name: "Desert Safari", Slug: "desert-safari", IsActive: true}
	if err := repo.Insert(ctx, &c); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if c.ID == 0 {
		t.Fatal("Insert did not assign an id")
	}

	got, err := repo.FindByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Slug != "desert-safari" {
		t.Fatalf("slug = %q", got.Slug)
	}

	if err := repo.Update(ctx, c.ID, map[string]any{"name": "Dune Bashing"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err = repo.FindOne(ctx, repository.Query{Scopes: []repository.Scope{repository.Where("slug = ?", "desert-safari")}})
	if err != nil {
		t.Fatalf("FindOne: %v", err)
	}
	if got.Name != "Dune Bashing" {
		t.Fatalf("name = %q after update", got.Name)
	}

	if err := repo.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.FindByID(ctx, c.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("FindByID after delete: err = %v, want ErrNotFound", err)
	}
}

func TestGormRepository_MissingRows(t *testing.T) {
	ctx := context.Background()
	repo := repository.New[model.Category](dbtest.Open(t))

	if err := repo.Update(ctx, 42, map[string]any{"name": "x"}); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("Update: err = %v, want ErrNotFound", err)
	}
	if err := repo.Update(ctx, 42, nil); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("empty Update: err = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, 42); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("Delete: err = %v, want ErrNotFound", err)
	}
}

func TestGormRepository_DuplicateKey(t *testing.T) {
	ctx := context.Background()
	repo := repository.New[model.NewsletterSubscription](dbtest.Open(t))

	if err := repo.Insert(ctx, &model.NewsletterSubscription{Email: "a@example.com", IsSubscribed: true}); err != nil {
		t.Fatalf("first Insert: %v", err)
	}
	err := repo.Insert(ctx, &model.NewsletterSubscription{Email: "a@example.com", IsSubscribed: true})
	if !errors.Is(err, repository.ErrDuplicateKey) {
		t.Fatalf("second Insert: err = %v, want ErrDuplicateKey", err)
	}
}

func TestGormRepository_QueryWindowAndCount(t *testing.T) {
	ctx := context.Background()
	repo := repository.New[model.Category](dbtest.Open(t))

	for i, name := range []string{"a", "b", "c", "d", "e"} {
		c := model.Category{Name: name, Slug: name, DisplayOrder: i, IsActive: i%2 == 0}
		if err := repo.Insert(ctx, &c); err != nil {
			t.Fatalf("Insert %s: %v", name, err)
		}
	}

	active := repository.Where("is_active = ?", true)
	n, err := repo.Count(ctx, active)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Fatalf("active count = %d, want 3", n)
	}

	page, err := repo.Find(ctx, repository.Query{Order: "display_order DESC", Offset: 1, Limit: 2})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(page) != 2 || page[0].Slug != "d" || page[1].Slug != "c" {
		t.Fatalf("page = %+v", page)
	}

	ok, err := repo.Exists(ctx, repository.Where("slug = ?", "zz"))
	if err != nil || ok {
		t.Fatalf("Exists(zz) = %v, %v", ok, err)
	}
}
