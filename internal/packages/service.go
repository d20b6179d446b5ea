package packages

import (
	"context"

	"lumak-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	GetPackages(ctx context.Context) ([]*Package, error)
	GetPackage(ctx context.Context, id int64) (*Package, error)
	AddPackage(ctx context.Context, input CreatePackageInput) (*Package, error)
	DeletePackage(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetPackages(ctx context.Context) ([]*Package, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetPackages"),
	)
	log.Debug("start get packages")

	pkgs, err := s.repo.GetPackages(ctx)
	if err != nil {
		log.Error("failed to get packages", zap.Error(err))
		return nil, err
	}

	log.Info("success get packages", zap.Int("count", len(pkgs)))
	return pkgs, nil
}

func (s *service) GetPackage(ctx context.Context, id int64) (*Package, error) {
	return s.repo.GetPackage(ctx, id)
}

func (s *service) AddPackage(ctx context.Context, input CreatePackageInput) (*Package, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddPackage"),
		zap.String("name", input.Name),
	)
	log.Info("start add package")

	if input.Name == "" {
		return nil, ErrInvalidName
	}
	if input.SellingPrice < 0 {
		return nil, ErrInvalidPrice
	}
	if len(input.Items) == 0 {
		return nil, ErrNoItems
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	pkg, err := s.repo.CreatePackage(ctx, input)
	if err != nil {
		log.Error("failed to create package", zap.Error(err))
		return nil, err
	}

	log.Info("success create package", zap.Int64("package_id", pkg.ID))
	return pkg, nil
}

func (s *service) DeletePackage(ctx context.Context, id int64) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "DeletePackage"),
		zap.Int64("package_id", id),
	)

	if err := s.repo.DeletePackage(ctx, id); err != nil {
		log.Error("failed to delete package", zap.Error(err))
		return err
	}

	log.Info("success delete package")
	return nil
}
