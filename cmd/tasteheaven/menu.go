package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"taste-heaven/internal/catalog"
	"taste-heaven/internal/model"

	"github.com/spf13/cobra"
)

// msgOfflineMenu announces that the listing comes from the built-in menu.
const msgOfflineMenu = "Showing the house menu; the server is unavailable"

func newMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "List the dishes on the menu",
		Long:  "List the dishes on the menu. When the server cannot be reached or has no dishes, the built-in house menu is shown.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			products := a.products(cmd.Context())

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tDISH\tCATEGORY\tPRICE")
			for _, p := range products {
				fmt.Fprintf(tw, "%s\t%s\t%s\t₹%s\n", p.ID, p.Name, p.Category, formatAmount(p.Price))
			}
			return tw.Flush()
		},
	}
}

// products fetches the catalog, falling back to the house menu when the
// request fails or the catalog is empty.
func (a *app) products(ctx context.Context) []model.Product {
	products, err := a.api.Products(ctx)
	if err == nil && len(products) > 0 {
		return products
	}
	if err != nil {
		a.logger.Warn().Err(err).Msg("products fetch failed, using house menu")
		a.Notify(msgOfflineMenu)
	}
	return catalog.HouseMenu()
}
