package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/voyago-backend/internal/repository"
)

func TestCatalogSearchFormatsListings(t *testing.T) {
	packages := &fakePackageRepo{
		rows: []repository.PackageWithHotel{
			{
				Package: repository.Package{
					ID:             8,
					Title:          "San Francisco: Hyatt Regency San Francisco Package",
					Destination:    "San Francisco",
					PricePerPerson: sql.NullFloat64{Float64: 1299.99, Valid: true},
					IncludesFlight: true,
					IncludesCar:    true,
					ImageURL:       sql.NullString{String: "https://example.com/sf.jpg", Valid: true},
				},
				HotelName:   sql.NullString{String: "Hyatt Regency San Francisco", Valid: true},
				HotelRating: sql.NullFloat64{Float64: 4.5, Valid: true},
			},
			{
				Package: repository.Package{
					ID:          7,
					Title:       "San Francisco: Your Way Hotel and Airfare Package",
					Destination: "San Francisco",
				},
			},
		},
	}
	catalog := NewCatalogService(packages)

	resp, err := catalog.Search(context.Background(), "packages", "San Francisco")
	require.NoError(t, err)

	assert.Equal(t, "San Francisco", packages.lastQuery)
	assert.Equal(t, storefrontSearchLimit, packages.lastLimit)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "San Francisco", resp.Destination)

	first := resp.Results[0]
	assert.Equal(t, []string{"Package Includes", "Flights", "Rental Car"}, first.Includes)
	assert.Equal(t, "From $1299.99", first.PriceStatus)
	require.NotNil(t, first.Hotel)
	assert.Equal(t, "Hyatt Regency San Francisco", *first.Hotel)
	require.NotNil(t, first.Rating)
	assert.Equal(t, 4.5, *first.Rating)

	second := resp.Results[1]
	assert.Equal(t, []string{"Package Includes"}, second.Includes)
	assert.Equal(t, "Not Available", second.PriceStatus)
	assert.Nil(t, second.Hotel)
	assert.Nil(t, second.Rating)
	assert.Nil(t, second.Image)
}

func TestCatalogSearchOtherTypesListEverything(t *testing.T) {
	packages := &fakePackageRepo{}
	catalog := NewCatalogService(packages)

	resp, err := catalog.Search(context.Background(), "cruises", "")
	require.NoError(t, err)

	assert.Equal(t, 1, packages.calls)
	assert.Empty(t, packages.lastQuery)
	assert.Equal(t, 0, resp.Total)
	assert.NotNil(t, resp.Results)
}

func TestCatalogSearchPropagatesErrors(t *testing.T) {
	packages := &fakePackageRepo{err: errors.New("connection refused")}
	catalog := NewCatalogService(packages)

	_, err := catalog.Search(context.Background(), "packages", "Hawaii")
	assert.Error(t, err)
}

func TestTreasureHuntSplitsBenefits(t *testing.T) {
	packages := &fakePackageRepo{
		deals: []repository.Package{
			{
				ID:          1,
				Title:       "Norwegian Cruise Line Exclusive Deals",
				ImageURL:    sql.NullString{String: "https://example.com/cruise.jpg", Valid: true},
				Description: sql.NullString{String: "Daily Gratuities on Select Sailings.Digital Member Shop Card", Valid: true},
				ExtrasValue: sql.NullString{String: "$400", Valid: true},
			},
			{
				ID:    2,
				Title: "Mystery Deal",
			},
		},
	}
	catalog := NewCatalogService(packages)

	deals, err := catalog.TreasureHunt(context.Background())
	require.NoError(t, err)
	require.Len(t, deals, 2)
	assert.Equal(t, dealListLimit, packages.lastLimit)

	assert.Equal(t, []string{"Daily Gratuities on Select Sailings", "Digital Member Shop Card"}, deals[0].Benefits)
	require.NotNil(t, deals[0].ExtrasValue)
	assert.Equal(t, "$400", *deals[0].ExtrasValue)

	assert.Equal(t, []string{}, deals[1].Benefits)
	assert.Nil(t, deals[1].ExtrasValue)
}

func TestWhatsHotFormatsDeals(t *testing.T) {
	packages := &fakePackageRepo{
		deals: []repository.Package{
			{
				ID:             4,
				Title:          "Turks and Caicos: Beaches Resort",
				DurationDays:   sql.NullInt64{Int64: 7, Valid: true},
				PricePerPerson: sql.NullFloat64{Float64: 3299.99, Valid: true},
				Description:    sql.NullString{String: "All-Inclusive,Family Resort,Water Park", Valid: true},
			},
			{
				ID:    5,
				Title: "Costa Rica: Manuel Antonio",
			},
		},
	}
	catalog := NewCatalogService(packages)

	deals, err := catalog.WhatsHot(context.Background())
	require.NoError(t, err)
	require.Len(t, deals, 2)

	require.NotNil(t, deals[0].Price)
	assert.Equal(t, "From $3299.99", *deals[0].Price)
	require.NotNil(t, deals[0].Duration)
	assert.Equal(t, "7 nights", *deals[0].Duration)
	assert.Equal(t, []string{"All-Inclusive", "Family Resort", "Water Park"}, deals[0].Inclusions)

	assert.Nil(t, deals[1].Price)
	assert.Nil(t, deals[1].Duration)
	assert.Equal(t, []string{}, deals[1].Inclusions)
}

func TestDealListsPropagateErrors(t *testing.T) {
	packages := &fakePackageRepo{err: errors.New("connection refused")}
	catalog := NewCatalogService(packages)

	_, err := catalog.TreasureHunt(context.Background())
	assert.Error(t, err)

	_, err = catalog.WhatsHot(context.Background())
	assert.Error(t, err)
}
