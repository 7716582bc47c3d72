package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type DashboardStats struct {
	TotalTours       int64           `json:"total_tours"`
	TotalBookings    int64           `json:"total_bookings"`
	PendingBookings  int64           `json:"pending_bookings"`
	TotalPosts       int64           `json:"total_posts"`
	UnreadContacts   int64           `json:"unread_contacts"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	BookingsOverTime []DailyCount    `json:"bookings_over_time"`
	ToursByCategory  []CategoryCount `json:"tours_by_category"`
	RecentBookings   []RecentBooking `json:"recent_bookings"`
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type RecentBooking struct {
	ID               uint          `json:"id"`
	BookingReference string        `json:"booking_reference"`
	CustomerName     string        `json:"customer_name"`
	TourTitle        string        `json:"tour_title"`
	BookingDate      time.Time     `json:"booking_date"`
	Status           BookingStatus `json:"status"`
}

type SearchResult struct {
	Query      string     `json:"query"`
	Tours      []Tour     `json:"tours"`
	Blogs      []BlogPost `json:"blogs"`
	TotalTours int64      `json:"total_tours"`
	TotalBlogs int64      `json:"total_blogs"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
}

type SearchFilter struct {
	Pagination
	Q    string `query:"q"`
	Type string `query:"type"`
}

type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Format   string `json:"format"`
	Bytes    int    `json:"bytes"`
}
