package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"taste-heaven/internal/cart"
	"taste-heaven/internal/checkout"
	"taste-heaven/internal/model"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newCartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the cart",
	}
	cmd.AddCommand(
		newCartAddCmd(a),
		newCartListCmd(a),
		newCartRemoveCmd(a),
		newCartQtyCmd(a),
		newCartClearCmd(a),
	)
	return cmd
}

func newCartAddCmd(a *app) *cobra.Command {
	var qty int

	cmd := &cobra.Command{
		Use:   "add <product-id|name>",
		Short: "Add a dish to the cart",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			product, ok := findProduct(a.products(cmd.Context()), query)
			if !ok {
				a.Notify(fmt.Sprintf("No dish matches %q", query))
				return errSilent
			}

			carts, err := a.cart()
			if err != nil {
				return err
			}
			item := cart.ItemFromProduct(product)
			item.Qty = qty
			if err := carts.Add(item); err != nil {
				return err
			}
			a.Notify(fmt.Sprintf("%s added to cart", product.Name))
			return nil
		},
	}

	cmd.Flags().IntVarP(&qty, "qty", "q", 1, "quantity")
	return cmd
}

func newCartListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the cart",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			carts, err := a.cart()
			if err != nil {
				return err
			}
			return a.printCart(carts.Cart())
		},
	}
}

func newCartRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <n>",
		Short: "Remove line n from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := lineIndex(args[0])
			if err != nil {
				return err
			}
			carts, err := a.cart()
			if err != nil {
				return err
			}
			if err := carts.Remove(index); err != nil {
				return a.cartError(err)
			}
			return a.printCart(carts.Cart())
		},
	}
}

const qtyLong = `Set the quantity of a cart line, or change it with +N / -N.
Quantities never drop below one. Negative deltas follow --, e.g. "tasteheaven cart qty 1 -- -1".`

func newCartQtyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "qty <n> <qty|+delta|-delta>",
		Short: "Set or change the quantity of line n",
		Long:  qtyLong,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := lineIndex(args[0])
			if err != nil {
				return err
			}
			value, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}

			carts, err := a.cart()
			if err != nil {
				return err
			}
			if strings.HasPrefix(args[1], "+") || strings.HasPrefix(args[1], "-") {
				err = carts.ChangeQuantity(index, value)
			} else {
				err = carts.SetQuantity(index, value)
			}
			if err != nil {
				return a.cartError(err)
			}
			return a.printCart(carts.Cart())
		},
	}
}

func newCartClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			carts, err := a.cart()
			if err != nil {
				return err
			}
			if err := carts.Clear(); err != nil {
				return err
			}
			a.Notify("Cart cleared")
			return nil
		},
	}
}

func (a *app) printCart(c cart.Cart) error {
	if c.IsEmpty() {
		a.Notify("Your cart is empty")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tDISH\tPRICE\tQTY\tTOTAL")
	for i, item := range c.Items() {
		fmt.Fprintf(tw, "%d\t%s\t₹%s\t%d\t₹%s\n", i+1, item.Name, formatAmount(item.Price), item.Qty, item.LineTotal().StringFixed(2))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fee := decimal.NewFromFloat(a.deliveryFee)
	if !fee.IsPositive() {
		fee = decimal.NewFromInt(checkout.DefaultDeliveryFee)
	}
	fmt.Fprintf(a.out, "Subtotal: ₹%s\n", c.Subtotal().StringFixed(2))
	fmt.Fprintf(a.out, "Home Delivery total (incl. ₹%s fee): ₹%s\n", fee.StringFixed(2), c.Subtotal().Add(fee).StringFixed(2))
	return nil
}

func (a *app) cartError(err error) error {
	if errors.Is(err, cart.ErrIndexOutOfRange) {
		a.Notify("No such cart line")
		return errSilent
	}
	return err
}

// findProduct matches query against product ids exactly, then names ignoring case.
func findProduct(products []model.Product, query string) (model.Product, bool) {
	for _, p := range products {
		if p.ID == query {
			return p, true
		}
	}
	for _, p := range products {
		if strings.EqualFold(p.Name, query) {
			return p, true
		}
	}
	return model.Product{}, false
}

// lineIndex converts a 1-based line number to an index.
func lineIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid line number %q", arg)
	}
	return n - 1, nil
}

func formatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
