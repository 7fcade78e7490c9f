package main

import (
	"errors"

	"taste-heaven/internal/checkout"

	"github.com/spf13/cobra"
)

func newCheckoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for the cart",
		Long:  "Choose Home Delivery (1) or Dine-In (2). Home Delivery asks for a phone number and address and adds the delivery fee.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			carts, err := a.cart()
			if err != nil {
				return err
			}

			o := checkout.New(a.session, carts, a.api, a, a, checkout.Options{
				DeliveryFee:   a.deliveryFee,
				PersistDineIn: a.persistDineIn,
			}, a.logger)

			result, err := o.Run(cmd.Context())
			switch {
			case errors.Is(err, checkout.ErrLoginRequired):
				a.Notify("Run `tasteheaven login` to continue.")
				return errSilent
			case errors.Is(err, checkout.ErrCancelled):
				return nil
			case errors.Is(err, checkout.ErrEmptyCart),
				errors.Is(err, checkout.ErrInvalidChoice),
				errors.Is(err, checkout.ErrMissingDetails),
				errors.Is(err, checkout.ErrOrderFailed):
				return errSilent
			case err != nil:
				return err
			}
			return a.printCart(result.Cart)
		},
	}
}
