package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newOrdersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "Show your order history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.session.Current()
			if err != nil {
				return err
			}
			if user == nil {
				a.Notify("Please login first")
				return errSilent
			}

			orders, err := a.api.Orders(cmd.Context(), user.Email)
			if err != nil {
				return a.fail(err)
			}
			if len(orders) == 0 {
				a.Notify("No orders yet")
				return nil
			}

			for _, o := range orders {
				fmt.Fprintf(a.out, "%s  ₹%s", o.CreatedAt.Local().Format("2006-01-02 15:04"), formatAmount(o.Total))
				if o.DeliveryType != "" {
					fmt.Fprintf(a.out, "  %s", o.DeliveryType)
				}
				fmt.Fprintln(a.out)
				for _, item := range o.Items {
					fmt.Fprintf(a.out, "  %d x %s @ ₹%s\n", item.Qty, item.Name, formatAmount(item.Price))
				}
			}
			return nil
		},
	}
}
