package repository

import (
	"context"
	"database/sql"
	"time"
)

// Message sender roles
const (
	SenderUser = "user"
	SenderAI   = "ai"
)

// User represents a registered member. Users are created by the
// createuser tool, never through this API.
type User struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Session represents one chat thread and the trip-search parameters
// gathered so far. The most recently updated session for a user is its
// active session.
type Session struct {
	ID                 int64         `db:"id"`
	UserID             sql.NullInt64 `db:"user_id"`
	CreatedAt          time.Time     `db:"created_at"`
	UpdatedAt          time.Time     `db:"updated_at"`
	ActiveSearchParams []byte        `db:"active_search_params"`
}

// Message represents a chat message. Messages are append-only and
// ordered by timestamp within a session.
type Message struct {
	ID          int64     `db:"id"`
	SessionID   int64     `db:"session_id"`
	Sender      string    `db:"sender"`
	MessageText string    `db:"message_text"`
	Timestamp   time.Time `db:"timestamp"`
}

// Hotel represents a bookable property
type Hotel struct {
	ID            int64           `db:"id"`
	Name          string          `db:"name"`
	City          sql.NullString  `db:"city"`
	Country       sql.NullString  `db:"country"`
	Rating        sql.NullFloat64 `db:"rating"`
	ImageURL      sql.NullString  `db:"image_url"`
	Description   sql.NullString  `db:"description"`
	Amenities     []byte          `db:"amenities"`
	PricePerNight sql.NullFloat64 `db:"price_per_night"`
}

// Package represents a travel package
type Package struct {
	ID             int64           `db:"id"`
	Title          string          `db:"title"`
	Destination    string          `db:"destination"`
	DurationDays   sql.NullInt64   `db:"duration_days"`
	PricePerPerson sql.NullFloat64 `db:"price_per_person"`
	IncludesFlight bool            `db:"includes_flight"`
	IncludesHotel  bool            `db:"includes_hotel"`
	IncludesCar    bool            `db:"includes_car"`
	ImageURL       sql.NullString  `db:"image_url"`
	Description    sql.NullString  `db:"description"`
	HotelID        sql.NullInt64   `db:"hotel_id"`
	AvailableDates []byte          `db:"available_dates"`
	IsTreasureHunt bool            `db:"is_treasure_hunt"`
	IsWhatsHot     bool            `db:"is_whats_hot"`
	ExtrasValue    sql.NullString  `db:"extras_value"`
}

// PackageWithHotel is a package row left-joined with its linked hotel.
// Hotel fields are null when the package has no hotel or the reference
// is dangling.
type PackageWithHotel struct {
	Package
	HotelName    sql.NullString  `db:"hotel_name"`
	HotelRating  sql.NullFloat64 `db:"hotel_rating"`
	HotelCity    sql.NullString  `db:"hotel_city"`
	HotelCountry sql.NullString  `db:"hotel_country"`
}

// SessionRepository defines chat session storage operations
type SessionRepository interface {
	Create(ctx context.Context, userID *int64) (*Session, error)
	Get(ctx context.Context, id int64) (*Session, error)
	GetOrCreateActive(ctx context.Context, userID *int64) (*Session, error)
	UpdateSearchParams(ctx context.Context, id int64, params []byte) error
	Delete(ctx context.Context, id int64) error
}

// MessageRepository defines chat message storage operations
type MessageRepository interface {
	Create(ctx context.Context, message Message) (int64, error)
	ListBySession(ctx context.Context, sessionID int64) ([]Message, error)
}

// PackageRepository defines travel catalog read operations
type PackageRepository interface {
	SearchByDestination(ctx context.Context, destination string, limit int) ([]PackageWithHotel, error)
	SearchByDestinationOrCity(ctx context.Context, destination string, limit int) ([]PackageWithHotel, error)
	ListAll(ctx context.Context, limit int) ([]PackageWithHotel, error)
	ListTreasureHunt(ctx context.Context, limit int) ([]Package, error)
	ListWhatsHot(ctx context.Context, limit int) ([]Package, error)
}

// UserRepository defines user storage operations
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
