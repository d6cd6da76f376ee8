package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/voyago/voyago-backend/internal/api/models"
	"github.com/voyago/voyago-backend/internal/repository"
)

const (
	storefrontSearchLimit = 20
	dealListLimit         = 6
)

// CatalogService serves the storefront: package search and the curated
// treasure-hunt and what's-hot lists. Unlike the chat flow, persistence
// failures here surface as hard errors.
type CatalogService struct {
	packages repository.PackageRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(packages repository.PackageRepository) *CatalogService {
	return &CatalogService{packages: packages}
}

// Search looks up packages for the storefront search page. The
// "packages" type matches destination or hotel city; any other type
// returns the whole catalog, cheapest first.
func (s *CatalogService) Search(ctx context.Context, searchType, destination string) (*models.SearchResponse, error) {
	var (
		rows []repository.PackageWithHotel
		err  error
	)

	if searchType == "packages" {
		rows, err = s.packages.SearchByDestinationOrCity(ctx, destination, storefrontSearchLimit)
	} else {
		rows, err = s.packages.ListAll(ctx, storefrontSearchLimit)
	}
	if err != nil {
		return nil, fmt.Errorf("package search failed: %w", err)
	}

	results := make([]models.PackageListing, 0, len(rows))
	for _, row := range rows {
		results = append(results, formatListing(row))
	}

	return &models.SearchResponse{
		Results:     results,
		Total:       len(results),
		Destination: destination,
	}, nil
}

// TreasureHunt returns the curated treasure-hunt deals
func (s *CatalogService) TreasureHunt(ctx context.Context) ([]models.TreasureHuntDeal, error) {
	rows, err := s.packages.ListTreasureHunt(ctx, dealListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load treasure hunt deals: %w", err)
	}

	deals := make([]models.TreasureHuntDeal, 0, len(rows))
	for _, row := range rows {
		deal := models.TreasureHuntDeal{
			ID:       row.ID,
			Title:    row.Title,
			Image:    nullableString(row.ImageURL.Valid, row.ImageURL.String),
			Benefits: splitDescription(row.Description, "."),
		}
		if row.ExtrasValue.Valid {
			v := row.ExtrasValue.String
			deal.ExtrasValue = &v
		}
		deals = append(deals, deal)
	}

	return deals, nil
}

// WhatsHot returns the curated what's-hot deals
func (s *CatalogService) WhatsHot(ctx context.Context) ([]models.WhatsHotDeal, error) {
	rows, err := s.packages.ListWhatsHot(ctx, dealListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load what's hot deals: %w", err)
	}

	deals := make([]models.WhatsHotDeal, 0, len(rows))
	for _, row := range rows {
		deal := models.WhatsHotDeal{
			ID:         row.ID,
			Title:      row.Title,
			Image:      nullableString(row.ImageURL.Valid, row.ImageURL.String),
			Inclusions: splitDescription(row.Description, ","),
		}
		if row.PricePerPerson.Valid {
			price := fmt.Sprintf("From $%s", formatAmount(row.PricePerPerson.Float64))
			deal.Price = &price
		}
		if row.DurationDays.Valid {
			duration := fmt.Sprintf("%d nights", row.DurationDays.Int64)
			deal.Duration = &duration
		}
		deals = append(deals, deal)
	}

	return deals, nil
}

// formatListing shapes one joined row for the storefront search page.
// The review and feature copy is fixed marketing text today.
func formatListing(row repository.PackageWithHotel) models.PackageListing {
	includes := []string{"Package Includes"}
	if row.IncludesFlight {
		includes = append(includes, "Flights")
	}
	if row.IncludesCar {
		includes = append(includes, "Rental Car")
	}

	listing := models.PackageListing{
		ID:            row.ID,
		Title:         row.Title,
		Image:         nullableString(row.ImageURL.Valid, row.ImageURL.String),
		City:          row.Destination,
		Includes:      includes,
		MemberReviews: "Member Reviews",
		ReviewCount:   "Sample Reviews",
		Features: []string{
			"Complimentary Room Upgrade",
			"Daily Buffet Breakfast",
			"Reduced Mandatory Daily Resort Fee",
		},
		PriceStatus: "Not Available",
		AdjustText:  "Adjust Your Search",
	}

	if row.HotelName.Valid {
		name := row.HotelName.String
		listing.Hotel = &name
	}
	if row.HotelRating.Valid {
		rating := row.HotelRating.Float64
		listing.Rating = &rating
	}
	if row.PricePerPerson.Valid {
		listing.PriceStatus = fmt.Sprintf("From $%s", formatAmount(row.PricePerPerson.Float64))
	}

	return listing
}

// splitDescription turns the delimited highlight list stored in the
// description column into a slice; null descriptions become an empty
// list, not null.
func splitDescription(desc sql.NullString, sep string) []string {
	if !desc.Valid || desc.String == "" {
		return []string{}
	}
	return strings.Split(desc.String, sep)
}

func nullableString(valid bool, v string) *string {
	if !valid {
		return nil
	}
	return &v
}
