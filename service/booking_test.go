package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tourhub/model"
	"tourhub/repository"
)

func bookingInput(tourID uint, adults int, children *int) model.CreateBookingInput {
	return model.CreateBookingInput{
		TourID:           tourID,
		CustomerName:     "Layla Hassan",
		CustomerEmail:    "Layla@Example.com",
		CustomerPhone:    "+971500000000",
		BookingDate:      "2026-12-20",
		NumberOfAdults:   adults,
		NumberOfChildren: children,
	}
}

func TestBookingService_Create_PricesAndStoresPending(t *testing.T) {
	svc, rec, db := newTestServices(t)
	tour := seedTour(t, db, "red-dunes", "100", strPtr("80"))
	one := 1

	b, err := svc.Bookings.Create(context.Background(), bookingInput(tour.ID, 2, &one))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if b.TotalPrice.StringFixed(2) != "200.00" {
		t.Fatalf("total = %s, want 200.00", b.TotalPrice.StringFixed(2))
	}
	if b.Status != model.BookingPending || b.PaymentStatus != model.PaymentUnpaid {
		t.Fatalf("status = %s/%s, want pending/unpaid", b.Status, b.PaymentStatus)
	}
	if !strings.HasPrefix(b.BookingReference, "TH") {
		t.Fatalf("reference = %q", b.BookingReference)
	}
	if b.CustomerEmail != "layla@example.com" {
		t.Fatalf("email = %q, want lower-cased", b.CustomerEmail)
	}

	stored, err := svc.Bookings.GetByReference(context.Background(), strings.ToLower(b.BookingReference))
	if err != nil {
		t.Fatalf("GetByReference: %v", err)
	}
	if stored.ID != b.ID || stored.Status != model.BookingPending {
		t.Fatalf("stored = %+v", stored)
	}
	if !stored.TotalPrice.Equal(b.TotalPrice) {
		t.Fatalf("stored total = %s, want %s", stored.TotalPrice, b.TotalPrice)
	}

	svc.Wait()
	if kinds := rec.kinds(); len(kinds) != 1 || kinds[0] != model.EventBookingCreated {
		t.Fatalf("events = %v, want [booking.created]", kinds)
	}
}

func TestBookingService_Create_RejectsZeroAdults(t *testing.T) {
	svc, _, db := newTestServices(t)
	tour := seedTour(t, db, "city-tour", "100", nil)

	_, err := svc.Bookings.Create(context.Background(), bookingInput(tour.ID, 0, nil))
	ve := asValidation(t, err)
	if !ve.Has("number_of_adults") {
		t.Fatalf("fields = %+v, want number_of_adults", ve.Fields)
	}
}

func TestBookingService_Create_CollectsEveryFieldError(t *testing.T) {
	svc, _, _ := newTestServices(t)
	neg := -1

	_, err := svc.Bookings.Create(context.Background(), model.CreateBookingInput{
		CustomerEmail:    "not-an-email",
		BookingDate:      "20/12/2026",
		NumberOfChildren: &neg,
	})
	ve := asValidation(t, err)
	for _, f := range []string{"tour_id", "customer_name", "customer_email", "customer_phone", "booking_date", "number_of_adults", "number_of_children"} {
		if !ve.Has(f) {
			t.Errorf("missing field error for %s in %+v", f, ve.Fields)
		}
	}
}

func TestBookingService_Create_UnknownTour(t *testing.T) {
	svc, rec, _ := newTestServices(t)

	_, err := svc.Bookings.Create(context.Background(), bookingInput(999, 1, nil))
	nf := asNotFound(t, err)
	if nf.Entity != entityTour {
		t.Fatalf("entity = %q, want tour", nf.Entity)
	}
	svc.Wait()
	if len(rec.kinds()) != 0 {
		t.Fatalf("events sent for a rejected booking: %v", rec.kinds())
	}
}

// A tour hidden from the storefront still exists and can be booked.
func TestBookingService_Create_InactiveTour(t *testing.T) {
	svc, _, db := newTestServices(t)
	tour := seedTour(t, db, "hidden", "100", nil)
	if err := db.Model(&model.Tour{}).Where("id = ?", tour.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	b, err := svc.Bookings.Create(context.Background(), bookingInput(tour.ID, 1, nil))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if b.TourID != tour.ID || !b.TotalPrice.Equal(dec("100")) {
		t.Fatalf("booking = tour %d total %s", b.TourID, b.TotalPrice)
	}
}

func TestBookingService_Create_RegeneratesCollidingReference(t *testing.T) {
	svc, _, db := newTestServices(t)
	tour := seedTour(t, db, "dhow-cruise", "50", nil)

	refs := []string{"THDUPLICATE1", "THDUPLICATE1", "THFRESH00001"}
	calls := 0
	svc.Bookings.newRef = func() string {
		r := refs[calls]
		calls++
		return r
	}

	if _, err := svc.Bookings.Create(context.Background(), bookingInput(tour.ID, 1, nil)); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	b, err := svc.Bookings.Create(context.Background(), bookingInput(tour.ID, 1, nil))
	if err != nil {
		t.Fatalf("second Create: %v", err)
	}
	if b.BookingReference != "THFRESH00001" {
		t.Fatalf("reference = %q, want THFRESH00001", b.BookingReference)
	}
	if calls != 3 {
		t.Fatalf("newRef called %d times, want 3", calls)
	}
}

func TestBookingService_Create_GivesUpAfterRepeatedCollisions(t *testing.T) {
	svc, _, db := newTestServices(t)
	tour := seedTour(t, db, "balloon", "900", nil)
	svc.Bookings.newRef = func() string { return "THSAMESAME01" }

	if _, err := svc.Bookings.Create(context.Background(), bookingInput(tour.ID, 1, nil)); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := svc.Bookings.Create(context.Background(), bookingInput(tour.ID, 1, nil))
	ce := asConflict(t, err)
	if ce.Field != "booking_reference" {
		t.Fatalf("field = %q", ce.Field)
	}
}

func TestBookingService_Update_EnforcesLifecycle(t *testing.T) {
	svc, rec, db := newTestServices(t)
	tour := seedTour(t, db, "mangroves", "120", nil)
	ctx := context.Background()

	b, err := svc.Bookings.Create(ctx, bookingInput(tour.ID, 1, nil))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	completed := model.BookingCompleted
	_, err = svc.Bookings.Update(ctx, b.ID, model.BookingPatch{Status: &completed})
	if ce := asConflict(t, err); ce.Field != "status" {
		t.Fatalf("field = %q, want status", ce.Field)
	}

	confirmed := model.BookingConfirmed
	paid := model.PaymentPaid
	updated, err := svc.Bookings.Update(ctx, b.ID, model.BookingPatch{Status: &confirmed, PaymentStatus: &paid, AdminNotes: strPtr("VIP")})
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if updated.Status != model.BookingConfirmed || updated.PaymentStatus != model.PaymentPaid || updated.AdminNotes != "VIP" {
		t.Fatalf("updated = %+v", updated)
	}
	if !updated.TotalPrice.Equal(b.TotalPrice) {
		t.Fatalf("total changed on update: %s -> %s", b.TotalPrice, updated.TotalPrice)
	}

	// same status again is a no-op
	if _, err := svc.Bookings.Update(ctx, b.ID, model.BookingPatch{Status: &confirmed}); err != nil {
		t.Fatalf("repeat confirm: %v", err)
	}

	cancelled := model.BookingCancelled
	if _, err := svc.Bookings.Update(ctx, b.ID, model.BookingPatch{Status: &cancelled}); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	pending := model.BookingPending
	_, err = svc.Bookings.Update(ctx, b.ID, model.BookingPatch{Status: &pending})
	if ce := asConflict(t, err); !strings.Contains(ce.Message, "can no longer change") {
		t.Fatalf("message = %q", ce.Message)
	}

	svc.Wait()
	confirms := 0
	for _, k := range rec.kinds() {
		if k == model.EventBookingConfirmed {
			confirms++
		}
	}
	if confirms != 1 {
		t.Fatalf("booking.confirmed sent %d times, want 1", confirms)
	}
}

func TestBookingService_Update_UnknownBooking(t *testing.T) {
	svc, _, _ := newTestServices(t)
	confirmed := model.BookingConfirmed

	_, err := svc.Bookings.Update(context.Background(), 77, model.BookingPatch{Status: &confirmed})
	asNotFound(t, err)
}

func TestBookingService_List_Filters(t *testing.T) {
	svc, _, db := newTestServices(t)
	tour := seedTour(t, db, "abu-dhabi", "300", nil)
	ctx := context.Background()

	for i, date := range []string{"2026-11-01", "2026-11-15", "2026-11-30"} {
		in := bookingInput(tour.ID, 1, nil)
		in.BookingDate = date
		in.CustomerName = []string{"Omar", "Sara", "Omar Khalid"}[i]
		if _, err := svc.Bookings.Create(ctx, in); err != nil {
			t.Fatalf("Create %s: %v", date, err)
		}
	}

	page, err := svc.Bookings.List(ctx, model.BookingFilter{Search: "omar"})
	if err != nil {
		t.Fatalf("List search: %v", err)
	}
	if page.Total != 2 {
		t.Fatalf("search total = %d, want 2", page.Total)
	}

	page, err = svc.Bookings.List(ctx, model.BookingFilter{DateFrom: "2026-11-10", DateTo: "2026-11-30"})
	if err != nil {
		t.Fatalf("List dates: %v", err)
	}
	if page.Total != 2 {
		t.Fatalf("date range total = %d, want 2", page.Total)
	}

	_, err = svc.Bookings.List(ctx, model.BookingFilter{DateFrom: "yesterday", DateTo: "soon"})
	if ve := asValidation(t, err); !ve.Has("date_from") || !ve.Has("date_to") {
		t.Fatalf("fields = %+v", ve.Fields)
	}

	_, err = svc.Bookings.List(ctx, model.BookingFilter{Status: "archived"})
	if ve := asValidation(t, err); !ve.Has("status") {
		t.Fatalf("fields = %+v", ve.Fields)
	}
}

func TestBookingService_ResendConfirmation_SurfacesFailure(t *testing.T) {
	svc, rec, db := newTestServices(t)
	tour := seedTour(t, db, "yacht", "700", nil)
	ctx := context.Background()

	b, err := svc.Bookings.Create(ctx, bookingInput(tour.ID, 1, nil))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	svc.Wait()

	rec.mu.Lock()
	rec.err = errors.New("smtp down")
	rec.mu.Unlock()

	err = svc.Bookings.ResendConfirmation(ctx, b.ID)
	var de *DependencyError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want *DependencyError", err)
	}
}

func TestBookingService_NotifierFailureDoesNotFailCreate(t *testing.T) {
	svc, rec, db := newTestServices(t)
	rec.err = errors.New("smtp down")
	tour := seedTour(t, db, "museum", "60", nil)

	if _, err := svc.Bookings.Create(context.Background(), bookingInput(tour.ID, 1, nil)); err != nil {
		t.Fatalf("Create: %v", err)
	}
}

func TestBookingService_Delete(t *testing.T) {
	svc, _, db := newTestServices(t)
	tour := seedTour(t, db, "hatta", "200", nil)
	ctx := context.Background()

	b, err := svc.Bookings.Create(ctx, bookingInput(tour.ID, 1, nil))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Bookings.Delete(ctx, b.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	err = svc.Bookings.Delete(ctx, b.ID)
	asNotFound(t, err)

	if _, err := repository.New[model.Booking](db).FindByID(ctx, b.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("row still present: %v", err)
	}
}
