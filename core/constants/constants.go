package constants

const (
	// ContextTokenData is the echo context key holding parsed JWT claims.
	ContextTokenData = "token_data"

	// EventsPageSize is the fixed page size of the event discovery listing.
	EventsPageSize = 6

	// DefaultPageSize applies to other paginated listings (bookings, notifications).
	DefaultPageSize = 6

	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes

	SessionKeyPrefix = "session:"

	// PendingBookingTTLHours is how long a pending booking may sit unpaid
	// before the nightly sweep cancels it.
	PendingBookingTTLHours = 24
)
