package constants

const (
	ERROR_INTERNAL_ERROR       = "Something went wrong, please try again later"
	ERROR_INPUT                = "Invalid input"
	ERROR_VALIDATION           = "Validation failed"
	DATA_INPUT_IS_NOT_NUMBER   = "Parameter must be a number"
	ERROR_PARSE_DATA_TO_LOCALS = "Could not read request data"
	NOT_ADMIN                  = "Admin access required"
	MISSING_TOKEN              = "Missing token"
	INVALID_TOKEN              = "Invalid token"
	MISSING_LOGIN_INPUT        = "Email and password are required"
	INVALID_CREDENTIALS        = "Invalid email or password"
	ACCOUNT_NOT_ACTIVE         = "Account is disabled"
	SEARCH_QUERY_REQUIRED      = "Search query is required"
	CANNOT_DELETE_SELF         = "Cannot delete your own account"
	FILE_REQUIRED              = "No image file provided"
	FILE_TOO_LARGE             = "Image must be 5MB or smaller"
	FILE_TYPE_NOT_ALLOWED      = "Only jpeg, jpg, png, gif and webp images are allowed"
)

// Booking lifecycle.
const (
	BOOKING_REFERENCE_PREFIX   = "TH"
	BOOKING_REFERENCE_ATTEMPTS = 5
	CHILD_PRICE_RATIO          = "0.5"
)

// Pagination defaults per listing.
const (
	MAX_PAGE_LIMIT           = 100
	DEFAULT_TOUR_LIMIT       = 12
	DEFAULT_FEATURED_LIMIT   = 9
	DEFAULT_BOOKING_LIMIT    = 20
	DEFAULT_BLOG_LIMIT       = 9
	DEFAULT_BLOG_ADMIN_LIMIT = 20
	DEFAULT_RELATED_LIMIT    = 4
	DEFAULT_CONTACT_LIMIT    = 20
	DEFAULT_NEWSLETTER_LIMIT = 50
	DEFAULT_SEARCH_LIMIT     = 12
	SEARCH_PREVIEW_LIMIT     = 6
	RECENT_BOOKINGS_LIMIT    = 10
)

const (
	UPLOAD_MAX_BYTES = 5 * 1024 * 1024
	UPLOAD_FOLDER    = "tourhub"
	BOOKINGS_CHANNEL = "tourhub:bookings"
)
