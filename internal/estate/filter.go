package estate

import (
	"net/url"

	"github.com/mahannajafi/moslemi-group-project/internal/model"
)

// All is the sentinel meaning "no constraint" for enum-like filter fields.
const All = "all"

// Filter is the public catalog search form. Zero values and the All
// sentinel both mean unconstrained.
type Filter struct {
	PropertyType string
	ListingType  string
	City         string
	MinArea      string
	MaxArea      string
	MinPrice     string
	MaxPrice     string
	Bedrooms     string
}

// NormalizeListingType collapses the UI-only partnership value into sale.
// The mapping is lossy: the backend stores partnership listings as plain
// sales and the original value cannot be recovered afterwards. This is the
// only place the mapping may appear.
func NormalizeListingType(value string) string {
	if value == model.ListingPartnership {
		return model.ListingSale
	}
	return value
}

// Values translates the filter into backend query parameters. The public
// catalog always constrains to available listings; every other parameter is
// included only when the field actually constrains the search.
func (f Filter) Values() url.Values {
	params := url.Values{}
	params.Set("status", model.StatusAvailable)

	if f.PropertyType != "" && f.PropertyType != All {
		params.Set("property_type", f.PropertyType)
	}
	if f.ListingType != "" && f.ListingType != All {
		params.Set("listing_type", NormalizeListingType(f.ListingType))
	}
	if f.City != "" {
		params.Set("city", f.City)
	}
	if f.MinArea != "" {
		params.Set("min_area", f.MinArea)
	}
	if f.MaxArea != "" {
		params.Set("max_area", f.MaxArea)
	}
	if f.MinPrice != "" {
		params.Set("min_price", f.MinPrice)
	}
	if f.MaxPrice != "" {
		params.Set("max_price", f.MaxPrice)
	}
	if f.Bedrooms != "" && f.Bedrooms != All {
		params.Set("bedrooms", f.Bedrooms)
	}
	return params
}
