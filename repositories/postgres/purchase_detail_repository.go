package postgres

import (
	"context"
	"fmt"

	"github.com/SebasDosman/vortex-bird-test/models"
	"github.com/SebasDosman/vortex-bird-test/repositories"
	"go.uber.org/zap"
)

// PurchaseDetailRepository implements the repositories.PurchaseDetailRepository interface
type PurchaseDetailRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewPurchaseDetailRepository creates a new purchase detail repository
func NewPurchaseDetailRepository(db *DB, logger *zap.Logger) repositories.PurchaseDetailRepository {
	return &PurchaseDetailRepository{db: db, logger: logger}
}

// GetByID retrieves a purchase detail by ID
func (r *PurchaseDetailRepository) GetByID(ctx context.Context, id int64) (*models.PurchaseDetail, error) {
	d, err := scanDetail(GetExecutor(ctx, r.db).QueryRowContext(ctx, detailSelect+` WHERE d.id = $1`, id))
	if err != nil {
		return nil, translateError(fmt.Sprintf("get purchase detail %d", id), err)
	}
	return d, nil
}

// List retrieves purchase details with pagination
func (r *PurchaseDetailRepository) List(ctx context.Context, limit, offset int) ([]*models.PurchaseDetail, error) {
	return queryDetails(ctx, GetExecutor(ctx, r.db), "list purchase details",
		detailSelect+` ORDER BY d.id LIMIT $1 OFFSET $2`, limit, offset)
}

// Delete deletes a purchase detail
func (r *PurchaseDetailRepository) Delete(ctx context.Context, id int64) error {
	op := fmt.Sprintf("delete purchase detail %d", id)
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM purchase_details WHERE id = $1`, id)
	if err != nil {
		return translateError(op, err)
	}
	if err := checkAffected(op, res); err != nil {
		return err
	}
	r.logger.Debug("purchase detail deleted", zap.Int64("id", id))
	return nil
}
