package service

import (
	"context"

	"taste-heaven/internal/model"
)

// Messages returned to clients on successful writes.
const (
	MsgAccountCreated = "Account created"
	MsgOrderPlaced    = "Order placed"
	MsgInquiryAck     = "Thank you — we received your enquiry and will respond shortly."
)

// AuthService defines account creation and credential checks.
type AuthService interface {
	// Signup creates an account with a hashed password.
	Signup(ctx context.Context, req *model.SignupRequest) error

	// Login verifies credentials and returns the public profile.
	Login(ctx context.Context, req *model.LoginRequest) (*model.UserProfile, error)
}

// ProductService defines read access to the menu.
type ProductService interface {
	// ListProducts returns the whole catalog in insertion order.
	ListProducts(ctx context.Context) ([]model.Product, error)
}

// OrderService defines order placement and history.
type OrderService interface {
	// CreateOrder validates and stores an order.
	CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error)

	// ListOrdersForUser returns a customer's orders, newest first.
	ListOrdersForUser(ctx context.Context, email string) ([]model.Order, error)
}

// InquiryService defines contact form handling.
type InquiryService interface {
	// SubmitInquiry stores a contact inquiry.
	SubmitInquiry(ctx context.Context, req *model.InquiryRequest) error
}
