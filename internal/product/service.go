package product

import (
	"context"

	"lumak-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the catalog operations for products. Stock is only
// read here; stock mutations happen through the order flows.
type Service interface {
	GetProducts(ctx context.Context, search string) ([]*Product, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
	AddProduct(ctx context.Context, input CreateProductInput) (*Product, error)
	UpdateProduct(ctx context.Context, id int64, input UpdateProductInput) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetProducts(ctx context.Context, search string) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetProducts"),
	)

	products, err := s.repo.GetProducts(ctx, search)
	if err != nil {
		log.Error("failed to get products", zap.Error(err))
		return nil, err
	}

	return products, nil
}

func (s *service) GetProduct(ctx context.Context, id int64) (*Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *service) AddProduct(ctx context.Context, input CreateProductInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddProduct"),
		zap.String("name", input.Name),
	)
	log.Info("start add product")

	if err := validateProductInput(input.Name, input.Cost, input.SellingPrice, input.Stock); err != nil {
		log.Warn("invalid product input", zap.Error(err))
		return nil, err
	}

	p, err := s.repo.CreateProduct(ctx, input)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	log.Info("success create product", zap.Int64("product_id", p.ID))
	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, id int64, input UpdateProductInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateProduct"),
		zap.Int64("product_id", id),
	)

	if input.Name != nil && *input.Name == "" {
		return nil, ErrInvalidName
	}
	if (input.Cost != nil && *input.Cost < 0) || (input.SellingPrice != nil && *input.SellingPrice < 0) {
		return nil, ErrInvalidPrice
	}
	if input.Stock != nil && *input.Stock < 0 {
		return nil, ErrInvalidStock
	}

	p, err := s.repo.UpdateProduct(ctx, id, input)
	if err != nil {
		log.Error("failed to update product", zap.Error(err))
		return nil, err
	}

	log.Info("success update product")
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id int64) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "DeleteProduct"),
		zap.Int64("product_id", id),
	)

	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		log.Warn("failed to delete product", zap.Error(err))
		return err
	}

	log.Info("success delete product")
	return nil
}

func validateProductInput(name string, cost, sellingPrice, stock int) error {
	if name == "" {
		return ErrInvalidName
	}
	if cost < 0 || sellingPrice < 0 {
		return ErrInvalidPrice
	}
	if stock < 0 {
		return ErrInvalidStock
	}
	return nil
}
