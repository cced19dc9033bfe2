package services

import (
	"context"
	"errors"

	"github.com/SebasDosman/vortex-bird-test/models"
	"github.com/SebasDosman/vortex-bird-test/repositories"
	"go.uber.org/zap"
)

// PurchaseDetailService exposes purchase lines on their own
type PurchaseDetailService struct {
	details repositories.PurchaseDetailRepository
	logger  *zap.Logger
}

func NewPurchaseDetailService(details repositories.PurchaseDetailRepository, logger *zap.Logger) *PurchaseDetailService {
	return &PurchaseDetailService{details: details, logger: logger}
}

func (s *PurchaseDetailService) List(ctx context.Context, page models.PageRequest) (models.Page[*models.PurchaseDetail], error) {
	details, err := s.details.List(ctx, page.Limit(), page.Offset())
	if err != nil {
		return models.Page[*models.PurchaseDetail]{}, WrapInternal("failed to list purchase details", err)
	}
	return models.NewPage(details, page), nil
}

func (s *PurchaseDetailService) GetByID(ctx context.Context, id int64) (*models.PurchaseDetail, error) {
	detail, err := s.details.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, NotFoundf(msgDetailNotFound, id)
		}
		return nil, WrapInternal("failed to get purchase detail", err)
	}
	return detail, nil
}

// Delete removes a single line. The purchase total is left as recorded.
func (s *PurchaseDetailService) Delete(ctx context.Context, id int64) error {
	if err := s.details.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return NotFoundf(msgDetailNotFound, id)
		}
		return WrapInternal("failed to delete purchase detail", err)
	}
	s.logger.Info("purchase detail deleted", zap.Int64("detail_id", id))
	return nil
}
