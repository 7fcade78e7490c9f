// Package checkout runs the client-side order flow: session check, delivery
// choice, order submission and cart reset.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taste-heaven/internal/cart"
	"taste-heaven/internal/client"
	"taste-heaven/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// DefaultDeliveryFee is added to Home Delivery orders.
const DefaultDeliveryFee = 30

// Messages shown to the customer.
const (
	MsgLoginRequired  = "Please login first"
	MsgEmptyCart      = "Your cart is empty"
	MsgInvalidChoice  = "Invalid choice, please type 1 or 2."
	MsgMissingDetails = "Please enter phone and address"
	MsgHomeDelivered  = "Your food is coming! Get ready to receive it. We wish your day goes great!"
	MsgDineIn         = "Thank you! Your table will be ready shortly. Enjoy your dining experience at Taste Heaven!"
	MsgOrderFailed    = "Order failed"
	MsgServerError    = "Server error while placing order"
)

// Delivery choices typed at the prompt.
const (
	ChoiceHome   = "1"
	ChoiceDineIn = "2"
)

var (
	ErrLoginRequired  = errors.New("checkout: login required")
	ErrEmptyCart      = errors.New("checkout: cart is empty")
	ErrCancelled      = errors.New("checkout: cancelled")
	ErrInvalidChoice  = errors.New("checkout: invalid delivery choice")
	ErrMissingDetails = errors.New("checkout: phone and address required")
	ErrOrderFailed    = errors.New("checkout: order failed")
)

// SessionReader returns the logged-in user or nil.
type SessionReader interface {
	Current() (*model.UserProfile, error)
}

// CartStore is the part of the cart controller checkout needs.
type CartStore interface {
	Cart() cart.Cart
	Clear() error
}

// OrderPlacer submits orders. *client.Client implements it.
type OrderPlacer interface {
	CreateOrder(ctx context.Context, req model.OrderRequest) (string, error)
}

// Prompter asks the customer for a line of input.
type Prompter interface {
	Prompt(label string) (string, error)
}

// Notifier shows a message to the customer.
type Notifier interface {
	Notify(msg string)
}

// Options tunes the flow.
type Options struct {
	// DeliveryFee is added to Home Delivery totals. Non-positive means DefaultDeliveryFee.
	DeliveryFee float64
	// PersistDineIn submits Dine-In orders to the API instead of only clearing the cart.
	PersistDineIn bool
}

// Result describes a completed checkout.
type Result struct {
	DeliveryType model.DeliveryType
	Order        *model.OrderRequest // nil when nothing was submitted
	Message      string
	Cart         cart.Cart
}

// Orchestrator drives one checkout.
type Orchestrator struct {
	session  SessionReader
	carts    CartStore
	orders   OrderPlacer
	prompter Prompter
	notifier Notifier
	fee      decimal.Decimal
	opts     Options
	logger   zerolog.Logger
}

// New creates an orchestrator.
func New(session SessionReader, carts CartStore, orders OrderPlacer, prompter Prompter, notifier Notifier, opts Options, logger zerolog.Logger) *Orchestrator {
	if opts.DeliveryFee <= 0 {
		opts.DeliveryFee = DefaultDeliveryFee
	}
	return &Orchestrator{
		session:  session,
		carts:    carts,
		orders:   orders,
		prompter: prompter,
		notifier: notifier,
		fee:      decimal.NewFromFloat(opts.DeliveryFee),
		opts:     opts,
		logger:   logger.With().Str("component", "checkout").Logger(),
	}
}

// Run performs the checkout. Every outcome the customer should see is sent to
// the notifier; the returned error tells the caller how the flow ended.
func (o *Orchestrator) Run(ctx context.Context) (*Result, error) {
	user, err := o.session.Current()
	if err != nil {
		return nil, err
	}
	if user == nil {
		o.notifier.Notify(MsgLoginRequired)
		return nil, ErrLoginRequired
	}

	current := o.carts.Cart()
	if current.IsEmpty() {
		o.notifier.Notify(MsgEmptyCart)
		return nil, ErrEmptyCart
	}

	choice, err := o.prompter.Prompt("Choose delivery: 1 = Home Delivery, 2 = Dine-In")
	if err != nil {
		return nil, fmt.Errorf("failed to read delivery choice: %w", err)
	}

	switch strings.TrimSpace(choice) {
	case "":
		return nil, ErrCancelled
	case ChoiceHome:
		return o.homeDelivery(ctx, user, current)
	case ChoiceDineIn:
		return o.dineIn(ctx, user, current)
	default:
		o.notifier.Notify(MsgInvalidChoice)
		return nil, ErrInvalidChoice
	}
}

func (o *Orchestrator) homeDelivery(ctx context.Context, user *model.UserProfile, current cart.Cart) (*Result, error) {
	phone, err := o.prompter.Prompt("Phone")
	if err != nil {
		return nil, fmt.Errorf("failed to read phone: %w", err)
	}
	address, err := o.prompter.Prompt("Address")
	if err != nil {
		return nil, fmt.Errorf("failed to read address: %w", err)
	}
	phone, address = strings.TrimSpace(phone), strings.TrimSpace(address)
	if phone == "" || address == "" {
		o.notifier.Notify(MsgMissingDetails)
		return nil, ErrMissingDetails
	}

	total, _ := current.Subtotal().Add(o.fee).Float64()
	req := model.OrderRequest{
		UserEmail:    user.Email,
		Items:        current.OrderItems(),
		Total:        total,
		DeliveryType: model.DeliveryHome,
		Phone:        phone,
		Address:      address,
	}
	if err := o.submit(ctx, req); err != nil {
		return nil, err
	}
	return o.finish(model.DeliveryHome, &req, MsgHomeDelivered)
}

func (o *Orchestrator) dineIn(ctx context.Context, user *model.UserProfile, current cart.Cart) (*Result, error) {
	if !o.opts.PersistDineIn {
		return o.finish(model.DeliveryDineIn, nil, MsgDineIn)
	}

	total, _ := current.Subtotal().Float64()
	req := model.OrderRequest{
		UserEmail:    user.Email,
		Items:        current.OrderItems(),
		Total:        total,
		DeliveryType: model.DeliveryDineIn,
	}
	if err := o.submit(ctx, req); err != nil {
		return nil, err
	}
	return o.finish(model.DeliveryDineIn, &req, MsgDineIn)
}

func (o *Orchestrator) submit(ctx context.Context, req model.OrderRequest) error {
	if _, err := o.orders.CreateOrder(ctx, req); err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			msg := apiErr.Message
			if msg == "" {
				msg = MsgOrderFailed
			}
			o.logger.Warn().Int("status", apiErr.StatusCode).Str("message", msg).Msg("order rejected")
			o.notifier.Notify(msg)
			return fmt.Errorf("%w: %s", ErrOrderFailed, msg)
		}
		o.logger.Error().Err(err).Msg("failed to place order")
		o.notifier.Notify(MsgServerError)
		return fmt.Errorf("%w: %v", ErrOrderFailed, err)
	}
	return nil
}

func (o *Orchestrator) finish(delivery model.DeliveryType, req *model.OrderRequest, msg string) (*Result, error) {
	if err := o.carts.Clear(); err != nil {
		return nil, err
	}
	o.notifier.Notify(msg)
	o.logger.Info().Str("delivery_type", string(delivery)).Bool("submitted", req != nil).Msg("checkout complete")
	return &Result{
		DeliveryType: delivery,
		Order:        req,
		Message:      msg,
		Cart:         o.carts.Cart(),
	}, nil
}
