package estate

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/mahannajafi/moslemi-group-project/internal/model"
)

// Draft is a property listing before it is sent to the backend. Numeric
// fields stay numeric here; the wire coercions happen at send time.
type Draft struct {
	Title         string
	Description   string
	PropertyType  string
	Status        string
	ListingType   string
	Address       string
	City          string
	District      string
	Area          float64
	LandArea      float64
	Bedrooms      *int
	Bathrooms     *int
	YearBuilt     *int
	FloorNumber   *int
	TotalFloors   *int
	ParkingSpaces *int
	Price         float64
	PricePerMeter float64
	Features      map[string]bool
	Images        []string
	FeaturedImage string
	IsFeatured    bool
}

var (
	propertyTypes = map[string]bool{
		model.TypeApartment:  true,
		model.TypeHouse:      true,
		model.TypeVilla:      true,
		model.TypeLand:       true,
		model.TypeCommercial: true,
	}
	statuses = map[string]bool{
		model.StatusAvailable: true,
		model.StatusPending:   true,
		model.StatusSold:      true,
		model.StatusOffMarket: true,
	}
	listingTypes = map[string]bool{
		model.ListingSale:        true,
		model.ListingRent:        true,
		model.ListingPartnership: true,
	}
)

// Validate runs the form-level checks. A draft that fails here never
// produces a network call.
func (d Draft) Validate() error {
	if len(d.Title) < 2 {
		return errors.New("title must be at least 2 characters")
	}
	if len(d.Address) < 2 {
		return errors.New("address must be at least 2 characters")
	}
	if d.City == "" {
		return errors.New("city is required")
	}
	if !propertyTypes[d.PropertyType] {
		return fmt.Errorf("unknown property type %q", d.PropertyType)
	}
	if !statuses[d.Status] {
		return fmt.Errorf("unknown status %q", d.Status)
	}
	if !listingTypes[d.ListingType] {
		return fmt.Errorf("unknown listing type %q", d.ListingType)
	}
	if d.Area <= 0 {
		return errors.New("area is required")
	}
	if d.Price <= 0 {
		return errors.New("price is required")
	}
	return nil
}

// draftWire is the create payload as the backend expects it: area and price
// as strings, price never null.
type draftWire struct {
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	PropertyType  string          `json:"property_type"`
	Status        string          `json:"status"`
	ListingType   string          `json:"listing_type"`
	Address       string          `json:"address"`
	City          string          `json:"city"`
	District      string          `json:"district,omitempty"`
	Area          *string         `json:"area"`
	LandArea      *string         `json:"land_area,omitempty"`
	Bedrooms      *int            `json:"bedrooms,omitempty"`
	Bathrooms     *int            `json:"bathrooms,omitempty"`
	YearBuilt     *int            `json:"year_built,omitempty"`
	FloorNumber   *int            `json:"floor_number,omitempty"`
	TotalFloors   *int            `json:"total_floors,omitempty"`
	ParkingSpaces *int            `json:"parking_spaces,omitempty"`
	Price         string          `json:"price"`
	PricePerMeter *string         `json:"price_per_meter,omitempty"`
	Features      map[string]bool `json:"features,omitempty"`
	Images        []string        `json:"images,omitempty"`
	FeaturedImage string          `json:"featured_image,omitempty"`
	IsFeatured    bool            `json:"is_featured"`
}

func (d Draft) wire() draftWire {
	w := draftWire{
		Title:         d.Title,
		Description:   d.Description,
		PropertyType:  d.PropertyType,
		Status:        d.Status,
		ListingType:   NormalizeListingType(d.ListingType),
		Address:       d.Address,
		City:          d.City,
		District:      d.District,
		Bedrooms:      d.Bedrooms,
		Bathrooms:     d.Bathrooms,
		YearBuilt:     d.YearBuilt,
		FloorNumber:   d.FloorNumber,
		TotalFloors:   d.TotalFloors,
		ParkingSpaces: d.ParkingSpaces,
		Price:         "0",
		Features:      d.Features,
		Images:        d.Images,
		FeaturedImage: d.FeaturedImage,
		IsFeatured:    d.IsFeatured,
	}
	w.Area = formatOptional(d.Area)
	w.LandArea = formatOptional(d.LandArea)
	if d.Price > 0 {
		w.Price = formatNumber(d.Price)
	}
	w.PricePerMeter = formatOptional(d.PricePerMeter)
	return w
}

// formatNumber renders a numeric field in its string wire form, without a
// trailing ".0" for whole values.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptional(v float64) *string {
	if v <= 0 {
		return nil
	}
	s := formatNumber(v)
	return &s
}
