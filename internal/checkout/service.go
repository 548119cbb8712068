package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/codemedavid/the-peptide-source-ph/internal/cart"
	"github.com/codemedavid/the-peptide-source-ph/internal/catalog/payments"
	"github.com/codemedavid/the-peptide-source-ph/internal/notify"
)

// ErrEmptyCart is returned when an order is placed on an empty cart.
var ErrEmptyCart = errors.New("cart is empty")

// ErrPaymentMethodInactive is returned when the selected payment method is
// disabled in the admin panel.
var ErrPaymentMethodInactive = errors.New("payment method is not active")

// OrderNotifier schedules the background Viber delivery for a placed order.
type OrderNotifier interface {
	EnqueueOrderNotify(ctx context.Context, orderID string) error
}

// PlaceOrderResult bundles what the buyer needs after placing an order: the
// summary text for manual copy and the Viber deep link.
type PlaceOrderResult struct {
	Order    Order  `json:"order"`
	Summary  string `json:"summary"`
	ViberURL string `json:"viber_url"`
}

type Service struct {
	orders      Repository
	payments    *payments.Service
	carts       *cart.Store
	formatter   *Formatter
	notifier    OrderNotifier
	validate    *validator.Validate
	viberNumber string
	logger      *slog.Logger
}

func NewService(orders Repository, pay *payments.Service, carts *cart.Store, formatter *Formatter, notifier OrderNotifier, viberNumber string, logger *slog.Logger) *Service {
	return &Service{
		orders:      orders,
		payments:    pay,
		carts:       carts,
		formatter:   formatter,
		notifier:    notifier,
		validate:    validator.New(),
		viberNumber: viberNumber,
		logger:      logger,
	}
}

// ValidateDetails gates the transition from the details step to payment:
// every customer and shipping field must be non-blank.
func (s *Service) ValidateDetails(details *Details) error {
	details.Normalize()
	if err := s.validate.Struct(details); err != nil {
		return fmt.Errorf("checkout details: %w", err)
	}
	return nil
}

// PlaceOrder finalizes the flow: it snapshots the session's cart into a
// persisted order, renders the summary, clears the cart, and schedules the
// Viber notification. Notification scheduling is best-effort; a failure is
// logged and the buyer falls back to sending the summary manually.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, details Details, methodID string) (PlaceOrderResult, error) {
	if err := s.ValidateDetails(&details); err != nil {
		return PlaceOrderResult{}, err
	}

	c, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return PlaceOrderResult{}, fmt.Errorf("load cart: %w", err)
	}
	if len(c.Lines) == 0 {
		return PlaceOrderResult{}, ErrEmptyCart
	}

	method, err := s.payments.Get(ctx, methodID)
	if err != nil {
		return PlaceOrderResult{}, err
	}
	if !method.Active {
		return PlaceOrderResult{}, ErrPaymentMethodInactive
	}

	total := c.Total()
	summary := s.formatter.Format(details, c.Lines, total, method)

	order := Order{
		ID:                uuid.NewString(),
		CustomerName:      details.FullName,
		CustomerEmail:     details.Email,
		CustomerPhone:     details.Phone,
		CustomerAddress:   details.Address,
		CustomerCity:      details.City,
		CustomerProvince:  details.Province,
		CustomerZipCode:   details.ZipCode,
		CustomerCountry:   details.Country,
		Notes:             details.Notes,
		PaymentMethodID:   method.ID,
		PaymentMethodName: method.Name,
		Items:             c.Lines,
		TotalPrice:        total,
		Summary:           summary,
		Status:            StatusPending,
	}
	order, err = s.orders.Create(ctx, order)
	if err != nil {
		return PlaceOrderResult{}, fmt.Errorf("create order: %w", err)
	}

	if err := s.carts.Drop(ctx, sessionID); err != nil {
		s.logger.Warn("drop cart after order", "order_id", order.ID, "error", err)
	}

	if s.notifier != nil {
		if err := s.notifier.EnqueueOrderNotify(ctx, order.ID); err != nil {
			s.logger.Warn("enqueue order notification", "order_id", order.ID, "error", err)
		}
	}

	return PlaceOrderResult{
		Order:    order,
		Summary:  summary,
		ViberURL: notify.DeepLink(s.viberNumber),
	}, nil
}

// Get returns a single order.
func (s *Service) Get(ctx context.Context, id string) (Order, error) {
	return s.orders.Get(ctx, id)
}

// List returns recent orders for the admin panel.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.orders.List(ctx, limit, offset)
}
