package customer

import (
	"context"

	"lumak-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	GetCustomers(ctx context.Context, search string) ([]*Customer, error)
	GetCustomer(ctx context.Context, id int64) (*Customer, error)
	AddCustomer(ctx context.Context, input UpsertCustomerInput) (*Customer, error)
	UpdateCustomer(ctx context.Context, id int64, input UpsertCustomerInput) (*Customer, error)
	GetInactiveCustomers(ctx context.Context, days int) ([]*Customer, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetCustomers(ctx context.Context, search string) ([]*Customer, error) {
	return s.repo.GetCustomers(ctx, search)
}

func (s *service) GetCustomer(ctx context.Context, id int64) (*Customer, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetCustomer"),
		zap.Int64("customer_id", id),
	)

	c, err := s.repo.GetCustomer(ctx, id)
	if err != nil {
		log.Warn("failed to get customer", zap.Error(err))
		return nil, err
	}

	return c, nil
}

func (s *service) AddCustomer(ctx context.Context, input UpsertCustomerInput) (*Customer, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddCustomer"),
	)
	log.Info("start add customer")

	if err := validateIdentity(input); err != nil {
		log.Warn("invalid customer input", zap.Error(err))
		return nil, err
	}

	c, err := s.repo.CreateCustomer(ctx, input)
	if err != nil {
		log.Error("failed to create customer", zap.Error(err))
		return nil, err
	}

	log.Info("success create customer", zap.Int64("customer_id", c.ID))
	return c, nil
}

func (s *service) UpdateCustomer(ctx context.Context, id int64, input UpsertCustomerInput) (*Customer, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateCustomer"),
		zap.Int64("customer_id", id),
	)

	if err := validateIdentity(input); err != nil {
		return nil, err
	}

	c, err := s.repo.UpdateCustomer(ctx, id, input)
	if err != nil {
		log.Error("failed to update customer", zap.Error(err))
		return nil, err
	}

	log.Info("success update customer")
	return c, nil
}

func (s *service) GetInactiveCustomers(ctx context.Context, days int) ([]*Customer, error) {
	if days <= 0 {
		days = 30
	}
	return s.repo.GetInactiveCustomers(ctx, days)
}

func validateIdentity(input UpsertCustomerInput) error {
	hasValue := func(p *string) bool { return p != nil && *p != "" }
	if !hasValue(input.Name) && !hasValue(input.Phone) && !hasValue(input.Instagram) {
		return ErrMissingIdentity
	}
	return nil
}
