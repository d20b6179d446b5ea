package order

import (
	"context"

	"lumak-be/internal/logger"
	"lumak-be/internal/metrics"
	"lumak-be/internal/pricing"

	"go.uber.org/zap"
)

type Service interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error)
	GetOrders(ctx context.Context, search, date string) ([]*Order, error)
	GetOrder(ctx context.Context, id int64) (*Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, next Status) (*Order, error)
}

type service struct {
	repo Repository
	reg  *metrics.Registry
}

func NewService(repo Repository, reg *metrics.Registry) Service {
	return &service{repo: repo, reg: reg}
}

func (s *service) CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
	)

	if err := validateCreateInput(input); err != nil {
		log.Warn("rejected order input", zap.Error(err))
		return nil, err
	}

	order, err := s.repo.CreateOrder(ctx, input)
	if err != nil {
		return nil, err
	}

	s.reg.OrdersCreated.Inc()
	if order.RedeemedPoints > 0 {
		s.reg.PointsRedeemed.Add(uint64(order.RedeemedPoints))
	}
	return order, nil
}

func validateCreateInput(input CreateOrderInput) error {
	if len(input.Items) == 0 {
		return ErrEmptyCart
	}
	for _, line := range input.Items {
		if line.Quantity < 1 {
			return ErrInvalidQuantity
		}
		// A line references exactly one of product or package.
		if (line.ProductID == nil) == (line.PackageID == nil) {
			return ErrInvalidLineRef
		}
	}

	switch input.DiscountType {
	case pricing.DiscountAmount, pricing.DiscountPercentage:
	default:
		return ErrInvalidDiscount
	}
	if input.DiscountValue < 0 {
		return ErrInvalidDiscount
	}

	switch input.DeliveryPaidBy {
	case pricing.DeliveryPaidByCustomer, pricing.DeliveryPaidByShop:
	default:
		return ErrInvalidDelivery
	}
	if input.DeliveryCost < 0 || input.PackagingCost < 0 {
		return ErrInvalidDelivery
	}

	if input.RedeemedPoints < 0 {
		return ErrInvalidDiscount
	}
	if input.RedeemedPoints > 0 && input.CustomerID == nil {
		return ErrCustomerRequired
	}

	return nil
}

func (s *service) GetOrders(ctx context.Context, search, date string) ([]*Order, error) {
	return s.repo.GetOrders(ctx, search, date)
}

func (s *service) GetOrder(ctx context.Context, id int64) (*Order, error) {
	return s.repo.GetOrder(ctx, id)
}

func (s *service) UpdateOrderStatus(ctx context.Context, id int64, next Status) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateOrderStatus"),
		zap.Int64("order_id", id),
	)

	if !ValidStatus(next) {
		return nil, ErrInvalidStatus
	}

	order, earned, err := s.repo.UpdateOrderStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}

	switch next {
	case StatusCancelled:
		s.reg.OrdersCancelled.Inc()
	case StatusCompleted:
		s.reg.OrdersCompleted.Inc()
		if earned > 0 {
			s.reg.PointsEarned.Add(uint64(earned))
		}
	case StatusReturned:
		s.reg.OrdersReturned.Inc()
	}

	if earned > 0 {
		log.Info("loyalty points awarded", zap.Int("points", earned))
	}
	return order, nil
}
