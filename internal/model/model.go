// Package model holds the wire records exchanged with the listing backend.
package model

// User is the account record returned by the auth endpoint.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"` // admin, agent or viewer
	IsActive bool   `json:"is_active"`
}

// TokenResponse is the body of a successful password grant.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
	User         User   `json:"user"`
}

// Property statuses.
const (
	StatusAvailable = "available"
	StatusPending   = "pending"
	StatusSold      = "sold"
	StatusOffMarket = "off_market"
)

// Property types.
const (
	TypeApartment  = "apartment"
	TypeHouse      = "house"
	TypeVilla      = "villa"
	TypeLand       = "land"
	TypeCommercial = "commercial"
)

// Listing types. Partnership exists only on the UI side and is collapsed
// into sale before anything reaches the wire.
const (
	ListingSale        = "sale"
	ListingRent        = "rent"
	ListingPartnership = "partnership"
)

// PropertyImage is one entry of a property's image gallery.
type PropertyImage struct {
	ID         string `json:"id,omitempty"`
	Key        string `json:"key,omitempty"`
	URL        string `json:"url"`
	IsFeatured bool   `json:"is_featured,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// Property is a listing as the backend returns it. Area and price travel as
// strings on the wire.
type Property struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	PropertyType  string          `json:"property_type"`
	Status        string          `json:"status"`
	ListingType   string          `json:"listing_type"`
	Address       string          `json:"address"`
	City          string          `json:"city"`
	District      string          `json:"district,omitempty"`
	Area          string          `json:"area,omitempty"`
	LandArea      string          `json:"land_area,omitempty"`
	Bedrooms      *int            `json:"bedrooms,omitempty"`
	Bathrooms     *int            `json:"bathrooms,omitempty"`
	YearBuilt     *int            `json:"year_built,omitempty"`
	FloorNumber   *int            `json:"floor_number,omitempty"`
	TotalFloors   *int            `json:"total_floors,omitempty"`
	ParkingSpaces *int            `json:"parking_spaces,omitempty"`
	Price         string          `json:"price,omitempty"`
	PricePerMeter string          `json:"price_per_meter,omitempty"`
	Features      map[string]bool `json:"features,omitempty"`
	Images        []PropertyImage `json:"images,omitempty"`
	FeaturedImage string          `json:"featured_image,omitempty"`
	IsFeatured    bool            `json:"is_featured,omitempty"`
	CreatedAt     string          `json:"created_at,omitempty"`
	UpdatedAt     string          `json:"updated_at,omitempty"`
}

// Envelope is the paginated wrapper around listing query results.
type Envelope[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}
