package service

import (
	"context"
	"time"

	"tourhub/constants"
	"tourhub/helper"
	"tourhub/model"
	"tourhub/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DashboardService struct {
	db       *gorm.DB
	tours    repository.Repository[model.Tour]
	bookings repository.Repository[model.Booking]
	posts    repository.Repository[model.BlogPost]
	contacts repository.Repository[model.ContactSubmission]
}

const statsDays = 30

func (s *DashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	var (
		stats model.DashboardStats
		err   error
	)
	counts := []struct {
		dst    *int64
		repo   func(context.Context, ...repository.Scope) (int64, error)
		entity string
		scopes []repository.Scope
	}{
		{&stats.TotalTours, s.tours.Count, entityTour, []repository.Scope{equals("is_active", true)}},
		{&stats.TotalBookings, s.bookings.Count, entityBooking, nil},
		{&stats.PendingBookings, s.bookings.Count, entityBooking, []repository.Scope{equals("status", model.BookingPending)}},
		{&stats.TotalPosts, s.posts.Count, entityBlogPost, []repository.Scope{equals("is_published", true)}},
		{&stats.UnreadContacts, s.contacts.Count, entityContact, []repository.Scope{equals("is_read", false)}},
	}
	for _, c := range counts {
		if *c.dst, err = c.repo(ctx, c.scopes...); err != nil {
			return nil, storeErr("dashboard count", c.entity, nil, err)
		}
	}

	if stats.TotalRevenue, err = s.revenue(ctx); err != nil {
		return nil, err
	}
	if stats.BookingsOverTime, err = s.bookingsPerDay(ctx, time.Now()); err != nil {
		return nil, err
	}
	if stats.ToursByCategory, err = s.toursPerCategory(ctx); err != nil {
		return nil, err
	}
	if stats.RecentBookings, err = s.recent(ctx); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *DashboardService) revenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := s.db.WithContext(ctx).Model(&model.Booking{}).
		Select("SUM(total_price)").
		Where("payment_status = ?", model.PaymentPaid).
		Row().Scan(&total)
	if err != nil {
		return decimal.Zero, storeErr("dashboard revenue", entityBooking, nil, err)
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal.Round(2), nil
}

// bookingsPerDay counts bookings created on each of the last statsDays days,
// in business time, oldest first. Days without bookings are reported as zero.
func (s *DashboardService) bookingsPerDay(ctx context.Context, now time.Time) ([]model.DailyCount, error) {
	now = now.In(helper.BusinessLocation)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, helper.BusinessLocation)
	from := today.AddDate(0, 0, -(statsDays - 1))

	var created []time.Time
	err := s.db.WithContext(ctx).Model(&model.Booking{}).
		Where("created_at >= ?", from.UTC()).
		Pluck("created_at", &created).Error
	if err != nil {
		return nil, storeErr("dashboard bookings per day", entityBooking, nil, err)
	}

	byDay := make(map[string]int64, statsDays)
	for _, t := range created {
		byDay[t.In(helper.BusinessLocation).Format(time.DateOnly)]++
	}
	out := make([]model.DailyCount, 0, statsDays)
	for d := from; !d.After(today); d = d.AddDate(0, 0, 1) {
		key := d.Format(time.DateOnly)
		out = append(out, model.DailyCount{Date: key, Count: byDay[key]})
	}
	return out, nil
}

func (s *DashboardService) toursPerCategory(ctx context.Context) ([]model.CategoryCount, error) {
	out := []model.CategoryCount{}
	err := s.db.WithContext(ctx).Model(&model.Tour{}).
		Select("COALESCE(categories.name, 'Uncategorized') AS category, COUNT(tours.id) AS count").
		Joins("LEFT JOIN categories ON categories.id = tours.category_id").
		Where("tours.is_active = ?", true).
		Group("categories.name").
		Order("count DESC, category ASC").
		Scan(&out).Error
	if err != nil {
		return nil, storeErr("dashboard tours per category", entityTour, nil, err)
	}
	return out, nil
}

func (s *DashboardService) recent(ctx context.Context) ([]model.RecentBooking, error) {
	rows, err := s.bookings.Find(ctx, repository.Query{
		Order:    newestFirst,
		Limit:    constants.RECENT_BOOKINGS_LIMIT,
		Preloads: []string{"Tour"},
	})
	if err != nil {
		return nil, storeErr("dashboard recent bookings", entityBooking, nil, err)
	}
	out := make([]model.RecentBooking, 0, len(rows))
	for _, b := range rows {
		r := model.RecentBooking{
			ID:               b.ID,
			BookingReference: b.BookingReference,
			CustomerName:     b.CustomerName,
			BookingDate:      b.BookingDate,
			Status:           b.Status,
		}
		if b.Tour != nil {
			r.TourTitle = b.Tour.Title
		}
		out = append(out, r)
	}
	return out, nil
}
