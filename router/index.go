package router

import (
	"tourhub/handler"
	"tourhub/middleware"
	"tourhub/model"
	"tourhub/service"
	"tourhub/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, h *handler.Handler) {
	api := app.Group("/api")
	api.Get("/health", h.Health)

	v1 := api.Group("/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Body(service.ValidateRegisterInput), h.Register)
	auth.Post("/login", validate.Body[model.LoginInput](nil), h.Login)
	auth.Get("/me", middleware.Protected(), h.Me)
	auth.Put("/profile", middleware.Protected(), validate.Body(service.ValidateProfilePatch), h.UpdateProfile)
	auth.Post("/change-password", middleware.Protected(), validate.Body(service.ValidateChangePassword), h.ChangePassword)

	tours := v1.Group("/tours")
	tours.Get("/", validate.Query[model.TourFilter](nil), h.GetTours)
	tours.Get("/featured", h.GetFeaturedTours)
	tours.Get("/on-sale", validate.Query[model.Pagination](nil), h.GetOnSaleTours)
	tours.Get("/:slug", h.GetTourBySlug)

	categories := v1.Group("/categories")
	categories.Get("/", h.GetCategories)
	categories.Get("/:slug", h.GetCategoryBySlug)

	bookings := v1.Group("/bookings")
	bookings.Post("/", validate.Body(service.ValidateBookingInput), h.CreateBooking)
	bookings.Get("/:reference", h.GetBookingByReference)
	bookings.Get("/:reference/qr", h.GetBookingQRCode)

	blog := v1.Group("/blog")
	blog.Get("/", validate.Query[model.BlogFilter](nil), h.GetBlogPosts)
	blog.Get("/:slug", h.GetBlogPostBySlug)
	blog.Post("/:slug/views", h.IncrementBlogViews)
	blog.Get("/:slug/related", h.GetRelatedBlogPosts)

	v1.Post("/contact", validate.Body(service.ValidateContactInput), h.SubmitContact)

	newsletter := v1.Group("/newsletter")
	newsletter.Post("/subscribe", validate.Body(service.ValidateNewsletterInput), h.Subscribe)
	newsletter.Post("/unsubscribe", validate.Body(service.ValidateNewsletterInput), h.Unsubscribe)

	content := v1.Group("/content")
	content.Get("/", h.GetContent)
	content.Get("/section/:section", h.GetContentBySection)
	content.Get("/:key", h.GetContentByKey)

	v1.Get("/search", validate.Query[model.SearchFilter](nil), h.Search)

	setupAdminRoutes(v1, h)
}

func setupAdminRoutes(v1 fiber.Router, h *handler.Handler) {
	admin := v1.Group("/admin", middleware.Protected(), middleware.AdminOnly())

	admin.Get("/dashboard/stats", h.GetDashboardStats)

	tours := admin.Group("/tours")
	tours.Get("/", validate.Query[model.TourFilter](nil), h.GetAdminTours)
	tours.Get("/:tourId", validate.GetById("tourId"), h.GetTourById)
	tours.Post("/", validate.Body(service.ValidateTourInput), h.CreateTour)
	tours.Put("/:tourId", validate.GetById("tourId"), validate.Body(service.ValidateTourPatch), h.UpdateTour)
	tours.Delete("/:tourId", validate.GetById("tourId"), h.DeleteTour)
	tours.Patch("/:tourId/sale-status", validate.GetById("tourId"), h.ToggleTourSale)

	categories := admin.Group("/categories")
	categories.Get("/", h.GetAdminCategories)
	categories.Get("/:categoryId", validate.GetById("categoryId"), h.GetCategoryById)
	categories.Post("/", validate.Body(service.ValidateCategoryInput), h.CreateCategory)
	categories.Put("/:categoryId", validate.GetById("categoryId"), validate.Body(service.ValidateCategoryPatch), h.UpdateCategory)
	categories.Delete("/:categoryId", validate.GetById("categoryId"), h.DeleteCategory)

	bookings := admin.Group("/bookings")
	bookings.Get("/live", h.UpgradeBookingFeed, websocket.New(h.BookingFeed))
	bookings.Get("/", validate.Query(service.ValidateBookingFilter), h.GetBookings)
	bookings.Get("/:bookingId", validate.GetById("bookingId"), h.GetBookingById)
	bookings.Put("/:bookingId", validate.GetById("bookingId"), validate.Body(service.ValidateBookingPatch), h.UpdateBooking)
	bookings.Delete("/:bookingId", validate.GetById("bookingId"), h.DeleteBooking)
	bookings.Post("/:bookingId/send-email", validate.GetById("bookingId"), h.ResendBookingConfirmation)

	blog := admin.Group("/blog")
	blog.Get("/", validate.Query[model.BlogFilter](nil), h.GetAdminBlogPosts)
	blog.Get("/:postId", validate.GetById("postId"), h.GetBlogPostById)
	blog.Post("/", validate.Body(service.ValidateBlogPostInput), h.CreateBlogPost)
	blog.Put("/:postId", validate.GetById("postId"), validate.Body(service.ValidateBlogPostPatch), h.UpdateBlogPost)
	blog.Delete("/:postId", validate.GetById("postId"), h.DeleteBlogPost)

	contacts := admin.Group("/contacts")
	contacts.Get("/", validate.Query[model.ContactFilter](nil), h.GetContacts)
	contacts.Get("/:contactId", validate.GetById("contactId"), h.GetContactById)
	contacts.Patch("/:contactId/read", validate.GetById("contactId"), h.MarkContactRead)
	contacts.Post("/:contactId/reply", validate.GetById("contactId"), validate.Body(service.ValidateContactReply), h.ReplyContact)
	contacts.Delete("/:contactId", validate.GetById("contactId"), h.DeleteContact)

	content := admin.Group("/content")
	content.Get("/", h.GetAdminContent)
	content.Put("/section/:section", validate.Body[model.SectionInput](nil), h.UpsertContentSection)
	content.Patch("/:key", validate.Body[model.ContentInput](nil), h.UpsertContent)

	admin.Get("/newsletter", validate.Query[model.NewsletterFilter](nil), h.GetSubscribers)

	users := admin.Group("/users")
	users.Get("/", h.GetUsers)
	users.Post("/", validate.Body(service.ValidateAccountInput), h.CreateUser)
	users.Put("/:userId", validate.GetById("userId"), validate.Body(service.ValidateAccountPatch), h.UpdateUser)
	users.Delete("/:userId", validate.GetById("userId"), h.DeleteUser)

	uploads := admin.Group("/upload")
	uploads.Post("/image", validate.ImageUpload(), h.UploadImage)
	uploads.Delete("/image/*", h.DeleteImage)
}
