package loyalty

import (
	"context"

	"lumak-be/internal/logger"
	"lumak-be/internal/metrics"

	"go.uber.org/zap"
)

type Service interface {
	TransferPoints(ctx context.Context, senderID, recipientID int64, points int) error
}

type service struct {
	repo Repository
	reg  *metrics.Registry
}

func NewService(repo Repository, reg *metrics.Registry) Service {
	return &service{repo: repo, reg: reg}
}

func (s *service) TransferPoints(ctx context.Context, senderID, recipientID int64, points int) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "TransferPoints"),
		zap.Int64("sender_id", senderID),
		zap.Int64("recipient_id", recipientID),
		zap.Int("points", points),
	)
	log.Info("start transfer points")

	if points <= 0 {
		log.Warn("non-positive transfer amount")
		return ErrInvalidAmount
	}
	if senderID == recipientID {
		log.Warn("self transfer rejected")
		return ErrSelfTransfer
	}

	if err := s.repo.TransferPoints(ctx, senderID, recipientID, points); err != nil {
		log.Error("failed to transfer points", zap.Error(err))
		return err
	}

	s.reg.PointsTransferred.Add(uint64(points))
	log.Info("success transfer points")
	return nil
}
