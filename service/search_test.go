package service

import (
	"context"
	"fmt"
	"testing"

	"tourhub/model"
)

func TestSearchService_Search(t *testing.T) {
	svc, _, db := newTestServices(t)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		seedTour(t, db, fmt.Sprintf("desert-safari-%d", i), "100", nil)
	}
	seedTour(t, db, "city-walk", "50", nil)
	hidden := model.Tour{Title: "Desert Hidden", Slug: "desert-hidden", BasePrice: dec("10")}
	mustCreate(t, db, &hidden)
	if err := db.Model(&hidden).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := svc.Blog.Create(ctx, model.BlogPostInput{Title: "Desert Packing List", Status: "published"}); err != nil {
		t.Fatalf("Create post: %v", err)
	}
	if _, err := svc.Blog.Create(ctx, model.BlogPostInput{Title: "Desert Draft"}); err != nil {
		t.Fatalf("Create draft: %v", err)
	}

	_, err := svc.Search.Search(ctx, model.SearchFilter{Q: "  "})
	if ve := asValidation(t, err); !ve.Has("q") {
		t.Fatalf("fields = %+v", ve.Fields)
	}
	_, err = svc.Search.Search(ctx, model.SearchFilter{Q: "desert", Type: "events"})
	if ve := asValidation(t, err); !ve.Has("type") {
		t.Fatalf("fields = %+v", ve.Fields)
	}

	all, err := svc.Search.Search(ctx, model.SearchFilter{Q: "DESERT"})
	if err != nil {
		t.Fatalf("Search all: %v", err)
	}
	if len(all.Tours) != 6 || all.TotalTours != 8 {
		t.Fatalf("tours = %d total = %d, want 6 of 8", len(all.Tours), all.TotalTours)
	}
	if len(all.Blogs) != 1 || all.TotalBlogs != 1 {
		t.Fatalf("blogs = %d total = %d, want 1", len(all.Blogs), all.TotalBlogs)
	}

	toursOnly, err := svc.Search.Search(ctx, model.SearchFilter{
		Q:          "desert",
		Type:       "tours",
		Pagination: model.Pagination{Page: 3, Limit: 3},
	})
	if err != nil {
		t.Fatalf("Search tours: %v", err)
	}
	if len(toursOnly.Tours) != 2 || len(toursOnly.Blogs) != 0 || toursOnly.Page != 3 {
		t.Fatalf("tours page 3 = %d tours, %d blogs, page %d", len(toursOnly.Tours), len(toursOnly.Blogs), toursOnly.Page)
	}

	none, err := svc.Search.Search(ctx, model.SearchFilter{Q: "snorkel"})
	if err != nil {
		t.Fatalf("Search none: %v", err)
	}
	if none.Tours == nil || none.Blogs == nil || len(none.Tours)+len(none.Blogs) != 0 {
		t.Fatalf("empty search = %+v", none)
	}
}
