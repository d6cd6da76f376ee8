package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/voyago/voyago-backend/internal/config"
	"github.com/voyago/voyago-backend/internal/database"
)

type hotelSeed struct {
	ID            int64
	Name          string
	City          string
	Country       string
	Rating        float64
	ImageURL      string
	Description   string
	Amenities     string
	PricePerNight float64
}

type packageSeed struct {
	ID             int64
	Title          string
	Destination    string
	DurationDays   int
	PricePerPerson float64
	IncludesFlight bool
	IncludesHotel  bool
	IncludesCar    bool
	ImageURL       string
	Description    string
	HotelID        *int64
	AvailableDates string
	IsTreasureHunt bool
	IsWhatsHot     bool
	ExtrasValue    *string
}

func hotelRef(id int64) *int64 { return &id }
func extras(v string) *string  { return &v }

var hotels = []hotelSeed{
	{1, "Hyatt Regency San Francisco", "San Francisco", "USA", 4.5, "https://images.unsplash.com/photo-1521747116042-5a810fda9664?w=400&h=300&fit=crop&q=80", "Luxury hotel in downtown San Francisco", `["WiFi", "Gym", "Pool", "Restaurant"]`, 299.99},
	{2, "Fairmont San Francisco", "San Francisco", "USA", 4.7, "https://images.unsplash.com/photo-1541395128203-01b2caf49815?w=400&h=300&fit=crop&q=80", "Historic luxury hotel on Nob Hill", `["WiFi", "Spa", "Concierge", "Room Service"]`, 399.99},
	{3, "Grand Wailea Resort", "Maui", "Hawaii", 4.8, "https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=400&h=300&fit=crop&q=80", "Luxury resort with world-class spa", `["Beach Access", "Spa", "Pool", "Golf"]`, 599.99},
	{4, "OUTRIGGER Kona Resort", "Big Island", "Hawaii", 4.4, "https://images.unsplash.com/photo-1598135753163-6167c1a1ad65?w=400&h=300&fit=crop&q=80", "Beachfront resort with authentic Hawaiian experience", `["Beach Access", "Pool", "Restaurant", "Cultural Activities"]`, 349.99},
	{5, "Beaches Resort", "Turks and Caicos", "Caribbean", 4.6, "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=400&h=300&fit=crop&q=80", "All-inclusive family resort", `["All-Inclusive", "Water Park", "Kids Club", "Beach Access"]`, 899.99},
	{6, "Four Seasons Tokyo", "Tokyo", "Japan", 4.9, "https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e?w=400&h=300&fit=crop&q=80", "Luxury hotel in heart of Tokyo", `["City Views", "Spa", "Fine Dining", "Concierge"]`, 599.99},
}

var packages = []packageSeed{
	// Treasure hunt deals
	{1, "Norwegian Cruise Line Exclusive Deals", "Caribbean", 7, 1299.99, true, false, false, "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=400&h=300&fit=crop&q=80", "Daily Gratuities or Shipboard Credit on Select Sailings.Digital Member Shop Card with Every Sailing", nil, `["2024-01-15", "2024-02-20", "2024-03-15"]`, true, false, extras("$400")},
	{2, "Hawaii Island: OUTRIGGER Kona Resort and Spa Club Package", "Hawaii", 5, 2299.99, true, true, false, "https://images.unsplash.com/photo-1598135753163-6167c1a1ad65?w=400&h=300&fit=crop&q=80", "Two Complimentary Luau Tickets.Complimentary Valet Parking.20% Discount on Wind Fair Cruises", hotelRef(4), `["2024-01-10", "2024-02-14", "2024-03-20"]`, true, false, extras("$400")},
	{3, "Riviera Nayarit: Marival Distinct Package", "Mexico", 6, 1899.99, true, true, false, "https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=400&h=300&fit=crop&q=80", "All-Inclusive Resort.Digital Member Shop Card.One-, Two- and Three-Bedroom Residences", hotelRef(3), `["2024-01-20", "2024-02-25", "2024-03-30"]`, true, false, extras("$200")},

	// What's hot deals
	{4, "Turks and Caicos: Beaches Resort", "Turks and Caicos", 7, 3299.99, true, true, false, "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=400&h=300&fit=crop&q=80", "All-Inclusive,Family Resort,Water Park", hotelRef(5), `["2024-02-01", "2024-03-01", "2024-04-01"]`, false, true, nil},
	{5, "Costa Rica: Manuel Antonio", "Costa Rica", 5, 1899.99, true, true, true, "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=300&fit=crop&q=80", "Eco-Lodge,Adventure Tours,Wildlife Viewing", nil, `["2024-01-25", "2024-02-28", "2024-03-25"]`, false, true, nil},
	{6, "Japan: Tokyo & Kyoto Experience", "Japan", 10, 4599.99, true, true, false, "https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e?w=400&h=300&fit=crop&q=80", "Cultural Tours,Bullet Train,Traditional Ryokan", hotelRef(6), `["2024-03-15", "2024-04-20", "2024-05-15"]`, false, true, nil},

	// Regular search results
	{7, "San Francisco: Your Way Hotel and Airfare Package", "San Francisco", 3, 899.99, true, true, true, "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=300&fit=crop&q=80", "Multiple hotels available.Member Reviews.Not enough reviews to display yet!", nil, `["2024-01-01", "2024-02-01", "2024-03-01"]`, false, false, nil},
	{8, "San Francisco: Hyatt Regency San Francisco Package", "San Francisco", 4, 1299.99, true, true, true, "https://images.unsplash.com/photo-1521747116042-5a810fda9664?w=400&h=300&fit=crop&q=80", "Complimentary Room Upgrade.Daily Buffet Breakfast.Reduced Mandatory Daily Resort Fee", hotelRef(1), `["2024-01-05", "2024-02-05", "2024-03-05"]`, false, false, nil},
	{9, "San Francisco: Fairmont San Francisco Package", "San Francisco", 4, 1599.99, true, true, true, "https://images.unsplash.com/photo-1541395128203-01b2caf49815?w=400&h=300&fit=crop&q=80", "Historic Luxury Hotel.Complimentary WiFi.Concierge Services", hotelRef(2), `["2024-01-10", "2024-02-10", "2024-03-10"]`, false, false, nil},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.Database); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	tx, err := db.Beginx()
	if err != nil {
		log.Fatal("Failed to begin transaction:", err)
	}
	defer tx.Rollback()

	// Reseed the catalog from scratch
	if _, err := tx.Exec("DELETE FROM packages"); err != nil {
		log.Fatal("Failed to clear packages:", err)
	}
	if _, err := tx.Exec("DELETE FROM hotels"); err != nil {
		log.Fatal("Failed to clear hotels:", err)
	}

	for _, h := range hotels {
		_, err := tx.Exec(`
			INSERT INTO hotels (id, name, city, country, rating, image_url, description, amenities, price_per_night)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, h.ID, h.Name, h.City, h.Country, h.Rating, h.ImageURL, h.Description, h.Amenities, h.PricePerNight)
		if err != nil {
			log.Fatal("Failed to insert hotel:", err)
		}
	}

	for _, p := range packages {
		_, err := tx.Exec(`
			INSERT INTO packages (id, title, destination, duration_days, price_per_person,
				includes_flight, includes_hotel, includes_car, image_url, description,
				hotel_id, available_dates, is_treasure_hunt, is_whats_hot, extras_value)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		`, p.ID, p.Title, p.Destination, p.DurationDays, p.PricePerPerson,
			p.IncludesFlight, p.IncludesHotel, p.IncludesCar, p.ImageURL, p.Description,
			p.HotelID, p.AvailableDates, p.IsTreasureHunt, p.IsWhatsHot, p.ExtrasValue)
		if err != nil {
			log.Fatal("Failed to insert package:", err)
		}
	}

	// Keep the sequences ahead of the explicit seed IDs
	if _, err := tx.Exec("SELECT setval('hotels_id_seq', (SELECT MAX(id) FROM hotels))"); err != nil {
		log.Fatal("Failed to bump hotels sequence:", err)
	}
	if _, err := tx.Exec("SELECT setval('packages_id_seq', (SELECT MAX(id) FROM packages))"); err != nil {
		log.Fatal("Failed to bump packages sequence:", err)
	}

	if err := tx.Commit(); err != nil {
		log.Fatal("Failed to commit seed data:", err)
	}

	log.Println("Database seeded with sample hotels and packages")
}
