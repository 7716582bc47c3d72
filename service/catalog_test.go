package service

import (
	"context"
	"testing"

	"tourhub/constants"
	"tourhub/model"
)

func TestWindow_Clamps(t *testing.T) {
	cases := []struct {
		page, limit              int
		wantPage, wantLim, wantO int
	}{
		{0, 0, 1, 12, 0},
		{-3, -1, 1, 12, 0},
		{2, 10, 2, 10, 10},
		{3, 500, 3, constants.MAX_PAGE_LIMIT, 2 * constants.MAX_PAGE_LIMIT},
	}
	for _, tc := range cases {
		page, limit, offset := window(tc.page, tc.limit, 12)
		if page != tc.wantPage || limit != tc.wantLim || offset != tc.wantO {
			t.Errorf("window(%d, %d) = %d, %d, %d; want %d, %d, %d",
				tc.page, tc.limit, page, limit, offset, tc.wantPage, tc.wantLim, tc.wantO)
		}
	}
}

func TestEscapeLike(t *testing.T) {
	if got := escapeLike(`50%_off\`); got != `50\%\_off\\` {
		t.Fatalf("escapeLike = %q", got)
	}
}

func TestTourService_List_FiltersSortsAndPages(t *testing.T) {
	svc, _, db := newTestServices(t)
	ctx := context.Background()

	desert := model.Category{Name: "Desert", Slug: "desert", IsActive: true}
	mustCreate(t, db, &desert)

	tours := []model.Tour{
		{Title: "Evening Desert Safari", Slug: "evening-desert-safari", LocationCity: "Dubai", CategoryID: &desert.ID},
		{Title: "Morning Desert Safari", Slug: "morning-desert-safari", LocationCity: "Dubai", CategoryID: &desert.ID},
		{Title: "Louvre Abu Dhabi", Slug: "louvre-abu-dhabi", LocationCity: "Abu Dhabi"},
		{Title: "Old Dubai Walk", Slug: "old-dubai-walk", LocationCity: "Dubai"},
	}
	prices := []string{"150", "90", "60", "40"}
	for i := range tours {
		tours[i].BasePrice = dec(prices[i])
		tours[i].IsActive = true
		mustCreate(t, db, &tours[i])
	}
	hidden := model.Tour{Title: "Hidden Desert Camp", Slug: "hidden-desert-camp", BasePrice: dec("10"), CategoryID: &desert.ID}
	mustCreate(t, db, &hidden)
	if err := db.Model(&hidden).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	page, err := svc.Tours.List(ctx, model.TourFilter{Category: "desert", Sort: sortPriceAsc})
	if err != nil {
		t.Fatalf("List by category slug: %v", err)
	}
	if page.Total != 2 || page.Items[0].Slug != "morning-desert-safari" {
		t.Fatalf("category page = %+v", page)
	}
	if page.Items[0].Category == nil || page.Items[0].Category.Slug != "desert" {
		t.Fatal("category not preloaded")
	}

	page, err = svc.Tours.List(ctx, model.TourFilter{Category: "desert", IncludeInactive: true})
	if err != nil {
		t.Fatalf("List including inactive: %v", err)
	}
	if page.Total != 3 {
		t.Fatalf("admin total = %d, want 3", page.Total)
	}

	lo, hi := 50.0, 100.0
	page, err = svc.Tours.List(ctx, model.TourFilter{MinPrice: &lo, MaxPrice: &hi, Sort: sortTitle})
	if err != nil {
		t.Fatalf("List by price: %v", err)
	}
	if page.Total != 2 || page.Items[0].Slug != "louvre-abu-dhabi" || page.Items[1].Slug != "morning-desert-safari" {
		t.Fatalf("price page = %+v", page.Items)
	}

	page, err = svc.Tours.List(ctx, model.TourFilter{Location: "DUBAI", Search: "safari", Pagination: model.Pagination{Page: 2, Limit: 1}, Sort: sortPriceDesc})
	if err != nil {
		t.Fatalf("List paged: %v", err)
	}
	if page.Total != 2 || page.Pages != 2 || len(page.Items) != 1 || page.Items[0].Slug != "morning-desert-safari" {
		t.Fatalf("paged = %+v", page)
	}

	page, err = svc.Tours.List(ctx, model.TourFilter{Sort: "bogus", Pagination: model.Pagination{Limit: 1000}})
	if err != nil {
		t.Fatalf("List default sort: %v", err)
	}
	if page.Limit != constants.MAX_PAGE_LIMIT || page.Items[0].Slug != "old-dubai-walk" {
		t.Fatalf("default sort page: limit %d first %q", page.Limit, page.Items[0].Slug)
	}
}

func TestTourService_Create_DerivesSlugAndDiscount(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()
	sale := dec("120")

	tour, err := svc.Tours.Create(ctx, model.TourInput{Title: "Red Dunes Evening Safari", BasePrice: dec("150"), SalePrice: &sale})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if tour.Slug != "red-dunes-evening-safari" || tour.DiscountPercent != 20 || !tour.IsActive {
		t.Fatalf("tour = %+v", tour)
	}

	_, err = svc.Tours.Create(ctx, model.TourInput{Title: "Red Dunes  Evening Safari!", BasePrice: dec("10")})
	if ce := asConflict(t, err); ce.Message != "A tour with this title already exists" {
		t.Fatalf("message = %q", ce.Message)
	}

	high := dec("200")
	_, err = svc.Tours.Create(ctx, model.TourInput{Title: "Overpriced", BasePrice: dec("150"), SalePrice: &high})
	if ve := asValidation(t, err); !ve.Has("sale_price") {
		t.Fatalf("fields = %+v", ve.Fields)
	}

	missing := uint(404)
	_, err = svc.Tours.Create(ctx, model.TourInput{Title: "Orphan", BasePrice: dec("1"), CategoryID: &missing})
	asNotFound(t, err)
}

func TestTourService_Update_RederivesSlugAndDiscount(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()

	tour, err := svc.Tours.Create(ctx, model.TourInput{Title: "Creek Cruise", BasePrice: dec("100")})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	sale := dec("75")
	updated, err := svc.Tours.Update(ctx, tour.ID, model.TourPatch{Title: strPtr("Dubai Creek Cruise"), SalePrice: &sale})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Slug != "dubai-creek-cruise" || updated.DiscountPercent != 25 {
		t.Fatalf("updated = slug %q discount %d", updated.Slug, updated.DiscountPercent)
	}

	cleared, err := svc.Tours.Update(ctx, tour.ID, model.TourPatch{ClearSalePrice: true})
	if err != nil {
		t.Fatalf("clear sale: %v", err)
	}
	if cleared.SalePrice != nil || cleared.DiscountPercent != 0 {
		t.Fatalf("cleared = sale %v discount %d", cleared.SalePrice, cleared.DiscountPercent)
	}

	toggled, err := svc.Tours.ToggleSale(ctx, tour.ID)
	if err != nil {
		t.Fatalf("ToggleSale: %v", err)
	}
	if !toggled.IsOnSale {
		t.Fatal("ToggleSale did not flip is_on_sale")
	}
}

func TestTourService_Delete_BlockedByBookings(t *testing.T) {
	svc, _, db := newTestServices(t)
	ctx := context.Background()
	tour := seedTour(t, db, "frame", "50", nil)

	if _, err := svc.Bookings.Create(ctx, bookingInput(tour.ID, 1, nil)); err != nil {
		t.Fatalf("Create booking: %v", err)
	}
	err := svc.Tours.Delete(ctx, tour.ID)
	asConflict(t, err)

	free := seedTour(t, db, "marina", "50", nil)
	if err := svc.Tours.Delete(ctx, free.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Tours.Get(ctx, free.ID); err == nil {
		t.Fatal("tour still present after delete")
	}
}
