package estate

import (
	"strings"
	"testing"
)

func validDraft() Draft {
	return Draft{
		Title:        "Apartment in Elahiyeh",
		PropertyType: "apartment",
		Status:       "available",
		ListingType:  "sale",
		Address:      "Elahiyeh, Fereshteh St",
		City:         "Tehran",
		Area:         80,
		Price:        1500,
	}
}

func TestValidate(t *testing.T) {
	if err := validDraft().Validate(); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name   string
		mutate func(*Draft)
		want   string
	}{
		{"short title", func(d *Draft) { d.Title = "x" }, "title"},
		{"short address", func(d *Draft) { d.Address = "x" }, "address"},
		{"missing city", func(d *Draft) { d.City = "" }, "city"},
		{"bad property type", func(d *Draft) { d.PropertyType = "castle" }, "property type"},
		{"bad status", func(d *Draft) { d.Status = "archived" }, "status"},
		{"bad listing type", func(d *Draft) { d.ListingType = "lease" }, "listing type"},
		{"missing area", func(d *Draft) { d.Area = 0 }, "area"},
		{"missing price", func(d *Draft) { d.Price = 0 }, "price"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			tc.mutate(&d)
			err := d.Validate()
			if err == nil {
				t.Fatal("want error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestWireCoercions(t *testing.T) {
	d := validDraft()
	w := d.wire()
	if w.Area == nil || *w.Area != "80" {
		t.Fatalf("area = %v, want \"80\"", w.Area)
	}
	if w.Price != "1500" {
		t.Fatalf("price = %q, want \"1500\"", w.Price)
	}

	d.Price = 0
	if got := d.wire().Price; got != "0" {
		t.Fatalf("absent price = %q, want \"0\"", got)
	}

	d.Area = 0
	if got := d.wire().Area; got != nil {
		t.Fatalf("absent area = %v, want null", got)
	}
}

func TestWirePartnershipMapsToSale(t *testing.T) {
	d := validDraft()
	d.ListingType = "partnership"
	if got := d.wire().ListingType; got != "sale" {
		t.Fatalf("listing_type = %q, want sale", got)
	}
}
