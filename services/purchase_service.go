package services

import (
	"context"
	"errors"

	"github.com/SebasDosman/vortex-bird-test/auth"
	"github.com/SebasDosman/vortex-bird-test/models"
	"github.com/SebasDosman/vortex-bird-test/repositories"
	"go.uber.org/zap"
)

// PurchaseDetailRequest is one line of a purchase
type PurchaseDetailRequest struct {
	FilmID   int64 `json:"filmId" validate:"required,gt=0"`
	Quantity int   `json:"quantity" validate:"required,gte=1,lte=50"`
}

// PurchaseRequest is the body of a ticket purchase
type PurchaseRequest struct {
	UserID        int64                   `json:"userId" validate:"required,gt=0"`
	PaymentMethod models.PaymentMethod    `json:"paymentMethod" validate:"required,payment_method"`
	Details       []PurchaseDetailRequest `json:"purchaseDetails" validate:"required,min=1,dive"`
}

// PurchaseService records ticket purchases. Non-admin principals only see
// and create purchases of their own account.
type PurchaseService struct {
	purchases repositories.PurchaseRepository
	users     repositories.UserRepository
	films     repositories.FilmRepository
	txMgr     repositories.TransactionManager
	logger    *zap.Logger
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	purchases repositories.PurchaseRepository,
	users repositories.UserRepository,
	films repositories.FilmRepository,
	txMgr repositories.TransactionManager,
	logger *zap.Logger,
) *PurchaseService {
	return &PurchaseService{
		purchases: purchases,
		users:     users,
		films:     films,
		txMgr:     txMgr,
		logger:    logger,
	}
}

// Create prices every line at the film's current ticket price and stores the
// purchase with its details in one transaction.
func (s *PurchaseService) Create(ctx context.Context, actor auth.Principal, req PurchaseRequest) (*models.Purchase, error) {
	purchase, err := WithTransactionResult(ctx, s.txMgr, func(ctx context.Context, _ repositories.Transaction) (*models.Purchase, error) {
		if _, err := s.authorizeOwner(ctx, actor, req.UserID); err != nil {
			return nil, err
		}

		ids := make([]int64, 0, len(req.Details))
		seen := make(map[int64]struct{}, len(req.Details))
		for _, d := range req.Details {
			if _, ok := seen[d.FilmID]; !ok {
				seen[d.FilmID] = struct{}{}
				ids = append(ids, d.FilmID)
			}
		}

		films, err := s.films.GetByIDs(ctx, ids)
		if err != nil {
			return nil, WrapInternal("failed to load films", err)
		}

		details := make([]*models.PurchaseDetail, 0, len(req.Details))
		for _, d := range req.Details {
			film, ok := films[d.FilmID]
			if !ok {
				return nil, NotFoundf(msgFilmIDNotFound, d.FilmID)
			}
			details = append(details, &models.PurchaseDetail{
				FilmID:    film.ID,
				FilmTitle: film.Title,
				Quantity:  d.Quantity,
				UnitPrice: film.TicketPrice,
			})
		}

		purchase := models.NewPurchase(req.UserID, req.PaymentMethod, details)
		if err := s.purchases.Create(ctx, purchase); err != nil {
			var ref *repositories.MissingReferenceError
			switch {
			case errors.Is(err, repositories.ErrFilmReference) && errors.As(err, &ref):
				return nil, NotFoundf(msgFilmIDNotFound, ref.ID)
			case errors.Is(err, repositories.ErrUserReference):
				return nil, NotFoundf(msgUserIDNotFound, req.UserID)
			}
			return nil, WrapInternal("failed to create purchase", err)
		}
		return purchase, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("purchase created",
		zap.Int64("purchase_id", purchase.ID),
		zap.Int64("user_id", purchase.UserID),
		zap.Float64("total_amount", purchase.TotalAmount))
	return purchase, nil
}

func (s *PurchaseService) List(ctx context.Context, page models.PageRequest) (models.Page[*models.Purchase], error) {
	purchases, err := s.purchases.List(ctx, page.Limit(), page.Offset())
	if err != nil {
		return models.Page[*models.Purchase]{}, WrapInternal("failed to list purchases", err)
	}
	return models.NewPage(purchases, page), nil
}

// ListByUser returns the purchases of a user. A user without purchases is
// reported as not found.
func (s *PurchaseService) ListByUser(ctx context.Context, actor auth.Principal, userID int64, page models.PageRequest) (models.Page[*models.Purchase], error) {
	if _, err := s.authorizeOwner(ctx, actor, userID); err != nil {
		return models.Page[*models.Purchase]{}, err
	}

	purchases, err := s.purchases.ListByUserID(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		return models.Page[*models.Purchase]{}, WrapInternal("failed to list purchases", err)
	}
	if len(purchases) == 0 && page.Page == 0 {
		return models.Page[*models.Purchase]{}, NotFoundf(msgUserNoPurchases, userID)
	}
	return models.NewPage(purchases, page), nil
}

func (s *PurchaseService) GetByID(ctx context.Context, actor auth.Principal, id int64) (*models.Purchase, error) {
	purchase, err := s.purchases.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, NotFoundf(msgPurchaseNotFound, id)
		}
		return nil, WrapInternal("failed to get purchase", err)
	}
	if _, err := s.authorizeOwner(ctx, actor, purchase.UserID); err != nil {
		return nil, err
	}
	return purchase, nil
}

// Delete removes a purchase and its details
func (s *PurchaseService) Delete(ctx context.Context, id int64) error {
	if err := s.purchases.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return NotFoundf(msgPurchaseNotFound, id)
		}
		return WrapInternal("failed to delete purchase", err)
	}
	s.logger.Info("purchase deleted", zap.Int64("purchase_id", id))
	return nil
}

// authorizeOwner loads the user and rejects non-admin actors acting on
// another account.
func (s *PurchaseService) authorizeOwner(ctx context.Context, actor auth.Principal, userID int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, NotFoundf(msgUserIDNotFound, userID)
		}
		return nil, WrapInternal("failed to get user", err)
	}
	if !actor.HasAnyRole(string(models.RoleAdmin)) && actor.Subject() != user.Email {
		return nil, ErrForbidden
	}
	return user, nil
}
