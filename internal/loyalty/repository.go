package loyalty

import (
	"context"
	"database/sql"
	"errors"

	"lumak-be/internal/customer"
	"lumak-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	TransferPoints(ctx context.Context, senderID, recipientID int64, points int) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// TransferPoints moves points between two customers atomically. Both rows
// are locked in ascending id order so two crossing transfers cannot
// deadlock, then the debit re-checks the sender balance under the lock.
func (r *repository) TransferPoints(ctx context.Context, senderID, recipientID int64, points int) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "TransferPoints"),
		zap.Int64("sender_id", senderID),
		zap.Int64("recipient_id", recipientID),
		zap.Int("points", points),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	first, second := senderID, recipientID
	if recipientID < senderID {
		first, second = recipientID, senderID
	}

	for _, id := range []int64{first, second} {
		var locked int64
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM customers WHERE id = $1 FOR UPDATE`, id,
		).Scan(&locked)
		if errors.Is(err, sql.ErrNoRows) {
			return customer.ErrCustomerNotFound
		}
		if err != nil {
			log.Error("failed to lock customer row", zap.Error(err))
			return err
		}
	}

	if err := DebitTx(ctx, tx, senderID, points); err != nil {
		return err
	}

	if err := CreditTx(ctx, tx, recipientID, points); err != nil {
		log.Error("failed to credit recipient", zap.Error(err))
		return err
	}

	return tx.Commit()
}
