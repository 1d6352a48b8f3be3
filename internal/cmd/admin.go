package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mahannajafi/moslemi-group-project/internal/estate"
)

func newAdminCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "admin",
		Short:             "Manage listings (requires sign-in)",
		PersistentPreRunE: a.init,
	}

	cmd.AddCommand(&cobra.Command{Use: "list", Short: "List all properties, any status", RunE: func(cmd *cobra.Command, args []string) error {
		props, err := a.estate.AdminProperties(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd, props)
	}})

	cmd.AddCommand(newAdminCreateCmd(a))

	cmd.AddCommand(&cobra.Command{Use: "delete <id>", Short: "Delete a property permanently", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.estate.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		a.queries.Invalidate("properties")
		fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
		return nil
	}})

	upload := &cobra.Command{Use: "upload <file>...", Short: "Upload images to the property bucket", Args: cobra.MinimumNArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		urls, err := uploadFiles(a, cmd, args)
		for _, u := range urls {
			fmt.Fprintln(cmd.OutOrStdout(), u)
		}
		return err
	}}
	cmd.AddCommand(upload)

	return cmd
}

func newAdminCreateCmd(a *app) *cobra.Command {
	var (
		draft     estate.Draft
		bedrooms  int
		bathrooms int
		year      int
		floor     int
		floors    int
		parking   int
		features  []string
		images    []string
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a property listing",
		RunE: func(cmd *cobra.Command, args []string) error {
			draft.Bedrooms = optionalInt(bedrooms)
			draft.Bathrooms = optionalInt(bathrooms)
			draft.YearBuilt = optionalInt(year)
			draft.FloorNumber = optionalInt(floor)
			draft.TotalFloors = optionalInt(floors)
			draft.ParkingSpaces = optionalInt(parking)
			if len(features) > 0 {
				draft.Features = make(map[string]bool, len(features))
				for _, f := range features {
					draft.Features[f] = true
				}
			}
			// Validate before uploading so a bad form costs no storage.
			if err := draft.Validate(); err != nil {
				return err
			}

			if len(images) > 0 {
				urls, err := uploadFiles(a, cmd, images)
				if err != nil {
					return err
				}
				draft.Images = urls
				draft.FeaturedImage = urls[0]
			}

			created, err := a.estate.Create(cmd.Context(), draft)
			if err != nil {
				return err
			}
			a.queries.Invalidate("properties")
			return printJSON(cmd, created)
		},
	}

	flags := create.Flags()
	flags.StringVar(&draft.Title, "title", "", "Listing title")
	flags.StringVar(&draft.Description, "description", "", "Description")
	flags.StringVar(&draft.PropertyType, "type", "", "Property type (apartment, house, villa, land, commercial)")
	flags.StringVar(&draft.Status, "status", "available", "Status (available, pending, sold, off_market)")
	flags.StringVar(&draft.ListingType, "listing", "", "Listing type (sale, rent, partnership)")
	flags.StringVar(&draft.Address, "address", "", "Street address")
	flags.StringVar(&draft.City, "city", "", "City")
	flags.StringVar(&draft.District, "district", "", "District")
	flags.Float64Var(&draft.Area, "area", 0, "Area in square meters")
	flags.Float64Var(&draft.LandArea, "land-area", 0, "Land area in square meters")
	flags.IntVar(&bedrooms, "bedrooms", 0, "Bedroom count")
	flags.IntVar(&bathrooms, "bathrooms", 0, "Bathroom count")
	flags.IntVar(&year, "year-built", 0, "Construction year")
	flags.IntVar(&floor, "floor", 0, "Floor number")
	flags.IntVar(&floors, "total-floors", 0, "Total floors in the building")
	flags.IntVar(&parking, "parking", 0, "Parking spaces")
	flags.Float64Var(&draft.Price, "price", 0, "Price in toman")
	flags.Float64Var(&draft.PricePerMeter, "price-per-meter", 0, "Price per square meter")
	flags.StringSliceVar(&features, "feature", nil, "Amenity flag, repeatable (elevator, parking, storage, ...)")
	flags.StringSliceVar(&images, "image", nil, "Image file to upload, repeatable; the first becomes the featured image")
	flags.BoolVar(&draft.IsFeatured, "featured", false, "Promote on the homepage")
	return create
}

// uploadFiles streams local files to the bucket one at a time. On partial
// failure the URLs uploaded so far are still reported before the error.
func uploadFiles(a *app, cmd *cobra.Command, paths []string) ([]string, error) {
	files := make([]estate.ImageFile, 0, len(paths))
	handles := make([]*os.File, 0, len(paths))
	defer func() {
		for _, h := range handles {
			h.Close()
		}
	}()
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return nil, err
		}
		handles = append(handles, f)
		files = append(files, estate.ImageFile{Name: f.Name(), Body: f})
	}
	urls, err := a.estate.UploadImages(cmd.Context(), files)
	if err != nil && len(urls) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d images uploaded before the failure; their objects remain in storage\n", len(urls), len(paths))
	}
	return urls, err
}

func optionalInt(v int) *int {
	if v <= 0 {
		return nil
	}
	return &v
}
