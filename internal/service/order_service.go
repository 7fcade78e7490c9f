package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taste-heaven/internal/metrics"
	"taste-heaven/internal/model"
	"taste-heaven/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("taste-heaven/service")

// OrderOptions holds order placement rules.
type OrderOptions struct {
	// StrictTotal rejects orders whose total is below the sum of their items.
	StrictTotal bool
}

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	opts      OrderOptions
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// NewOrderService creates a new order service. m may be nil.
func NewOrderService(
	orderRepo repository.OrderRepository,
	opts OrderOptions,
	m *metrics.Metrics,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		opts:      opts,
		metrics:   m,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// CreateOrder stores an order as submitted. The client total is trusted unless
// StrictTotal is set; the recomputed subtotal is only used for the check.
func (s *orderService) CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	ctx, span := tracer.Start(ctx, "orders.create")
	defer span.End()

	order, err := s.buildOrder(req)
	if err != nil {
		span.SetAttributes(attribute.Bool("order.rejected", true))
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("order.item_count", len(order.Items)),
		attribute.String("order.delivery_type", string(order.DeliveryType)),
	)

	subtotal := Subtotal(order.Items)
	if decimal.NewFromFloat(order.Total).LessThan(subtotal) {
		s.logger.Warn().
			Str("user_email", order.UserEmail).
			Float64("total", order.Total).
			Str("subtotal", subtotal.StringFixed(2)).
			Msg("order total below item subtotal")
		if s.opts.StrictTotal {
			span.SetAttributes(attribute.Bool("order.rejected", true))
			return nil, model.ErrTotalMismatch
		}
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("user_email", order.UserEmail).Msg("failed to create order")
		span.RecordError(err)
		span.SetStatus(codes.Error, "store failure")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.metrics.OrderPlaced(string(order.DeliveryType), order.Total)
	s.logger.Info().
		Str("order_id", order.ID).
		Int("item_count", len(order.Items)).
		Str("delivery_type", string(order.DeliveryType)).
		Msg("order created successfully")

	return order, nil
}

// ListOrdersForUser returns the orders placed with email. Unknown emails yield an empty list.
func (s *orderService) ListOrdersForUser(ctx context.Context, email string) ([]model.Order, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return []model.Order{}, nil
	}

	orders, err := s.orderRepo.ListByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Str("user_email", email).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	if orders == nil {
		orders = []model.Order{}
	}

	return orders, nil
}

// buildOrder validates req and normalises it into a new Order.
func (s *orderService) buildOrder(req *model.OrderRequest) (*model.Order, error) {
	if req == nil {
		return nil, model.ErrInvalidOrder
	}

	email := strings.TrimSpace(req.UserEmail)
	if email == "" || len(req.Items) == 0 {
		return nil, model.ErrInvalidOrder
	}

	items := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		if strings.TrimSpace(item.Name) == "" || item.Price < 0 || item.Qty < 0 {
			s.logger.Warn().
				Int("item_index", i).
				Str("name", item.Name).
				Float64("price", item.Price).
				Int("qty", item.Qty).
				Msg("invalid order item")
			return nil, model.ErrInvalidOrder
		}
		if item.Qty == 0 {
			item.Qty = 1
		}
		items[i] = item
	}

	if req.Total < 0 {
		return nil, model.ErrInvalidOrder
	}

	order := &model.Order{
		UserEmail: email,
		Items:     items,
		Total:     req.Total,
		CreatedAt: time.Now().UTC(),
	}

	if req.DeliveryType != "" {
		if !req.DeliveryType.Valid() {
			return nil, model.ErrInvalidDelivery
		}
		order.DeliveryType = req.DeliveryType
		if req.DeliveryType == model.DeliveryHome {
			order.Phone = strings.TrimSpace(req.Phone)
			order.Address = strings.TrimSpace(req.Address)
		}
	}

	return order, nil
}

// Subtotal returns the exact sum of price times quantity over items.
func Subtotal(items []model.OrderItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Qty))))
	}
	return sum
}
