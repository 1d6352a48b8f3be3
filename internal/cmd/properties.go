package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mahannajafi/moslemi-group-project/internal/cache"
	"github.com/mahannajafi/moslemi-group-project/internal/estate"
)

func newPropertiesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "properties",
		Short:             "Browse the public catalog",
		PersistentPreRunE: a.init,
	}

	var filter estate.Filter
	list := &cobra.Command{Use: "list", Short: "List available properties", RunE: func(cmd *cobra.Command, args []string) error {
		return runList(a, cmd, filter)
	}}
	list.Flags().StringVar(&filter.PropertyType, "type", estate.All, "Property type (apartment, house, villa, land, commercial)")
	list.Flags().StringVar(&filter.ListingType, "listing", estate.All, "Listing type (sale, rent, partnership)")
	list.Flags().StringVar(&filter.City, "city", "", "City")
	list.Flags().StringVar(&filter.MinArea, "min-area", "", "Minimum area in square meters")
	list.Flags().StringVar(&filter.MaxArea, "max-area", "", "Maximum area in square meters")
	list.Flags().StringVar(&filter.MinPrice, "min-price", "", "Minimum price")
	list.Flags().StringVar(&filter.MaxPrice, "max-price", "", "Maximum price")
	list.Flags().StringVar(&filter.Bedrooms, "bedrooms", estate.All, "Bedroom count")
	cmd.AddCommand(list)

	cmd.AddCommand(&cobra.Command{Use: "get <id>", Short: "Show one property", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		return runGet(a, cmd, args[0])
	}})
	return cmd
}

func runList(a *app, cmd *cobra.Command, filter estate.Filter) error {
	key := cache.Key("properties", filter.Values())
	if v, ok := a.queries.Get(key); ok {
		return printJSON(cmd, v)
	}
	props, err := a.estate.Properties(cmd.Context(), filter)
	if err != nil {
		return err
	}
	a.queries.Set(key, props)
	return printJSON(cmd, props)
}

func runGet(a *app, cmd *cobra.Command, id string) error {
	key := cache.Key("properties/"+id, nil)
	if v, ok := a.queries.Get(key); ok {
		return printJSON(cmd, v)
	}
	prop, err := a.estate.PropertyByID(cmd.Context(), id)
	if err != nil {
		return err
	}
	if prop == nil {
		return fmt.Errorf("property %s not found", id)
	}
	a.queries.Set(key, prop)
	return printJSON(cmd, prop)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
