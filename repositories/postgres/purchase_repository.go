package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/SebasDosman/vortex-bird-test/models"
	"github.com/SebasDosman/vortex-bird-test/repositories"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

const purchaseColumns = `id, user_id, purchase_date, total_amount, payment_status, payment_method`

const detailSelect = `
	SELECT d.id, d.purchase_id, d.film_id, f.title, d.quantity, d.unit_price
	FROM purchase_details d
	JOIN films f ON f.id = d.film_id
`

// PurchaseRepository implements the repositories.PurchaseRepository interface
type PurchaseRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(db *DB, logger *zap.Logger) repositories.PurchaseRepository {
	return &PurchaseRepository{db: db, logger: logger}
}

// Create inserts the purchase and its details. Callers run it inside a
// transaction so a failing detail leaves nothing behind.
func (r *PurchaseRepository) Create(ctx context.Context, purchase *models.Purchase) error {
	executor := GetExecutor(ctx, r.db)

	err := executor.QueryRowContext(ctx, `
		INSERT INTO purchases (user_id, purchase_date, total_amount, payment_status, payment_method)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		purchase.UserID,
		purchase.PurchaseDate,
		purchase.TotalAmount,
		purchase.PaymentStatus,
		purchase.PaymentMethod,
	).Scan(&purchase.ID)
	if err != nil {
		err = translateError("create purchase", err)
		if errors.Is(err, repositories.ErrUserReference) {
			return &repositories.MissingReferenceError{ID: purchase.UserID, Err: err}
		}
		return err
	}

	for _, d := range purchase.Details {
		d.PurchaseID = purchase.ID
		err := executor.QueryRowContext(ctx, `
			INSERT INTO purchase_details (purchase_id, film_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, d.PurchaseID, d.FilmID, d.Quantity, d.UnitPrice).Scan(&d.ID)
		if err != nil {
			err = translateError("create purchase detail", err)
			if errors.Is(err, repositories.ErrFilmReference) {
				return &repositories.MissingReferenceError{ID: d.FilmID, Err: err}
			}
			return err
		}
	}

	r.logger.Debug("purchase created",
		zap.Int64("id", purchase.ID),
		zap.Int64("user_id", purchase.UserID),
		zap.Int("details", len(purchase.Details)))
	return nil
}

// GetByID retrieves a purchase with its details
func (r *PurchaseRepository) GetByID(ctx context.Context, id int64) (*models.Purchase, error) {
	op := fmt.Sprintf("get purchase %d", id)
	purchase, err := scanPurchase(GetExecutor(ctx, r.db).QueryRowContext(ctx,
		`SELECT `+purchaseColumns+` FROM purchases WHERE id = $1`, id))
	if err != nil {
		return nil, translateError(op, err)
	}
	if err := r.loadDetails(ctx, op, []*models.Purchase{purchase}); err != nil {
		return nil, err
	}
	return purchase, nil
}

// List retrieves purchases with pagination
func (r *PurchaseRepository) List(ctx context.Context, limit, offset int) ([]*models.Purchase, error) {
	return r.query(ctx, "list purchases",
		`SELECT `+purchaseColumns+` FROM purchases ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
}

// ListByUserID retrieves the purchases of a user with pagination
func (r *PurchaseRepository) ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]*models.Purchase, error) {
	return r.query(ctx, fmt.Sprintf("list purchases of user %d", userID),
		`SELECT `+purchaseColumns+` FROM purchases WHERE user_id = $1 ORDER BY id LIMIT $2 OFFSET $3`, userID, limit, offset)
}

// Delete deletes a purchase; details cascade
func (r *PurchaseRepository) Delete(ctx context.Context, id int64) error {
	op := fmt.Sprintf("delete purchase %d", id)
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return translateError(op, err)
	}
	return checkAffected(op, res)
}

func (r *PurchaseRepository) query(ctx context.Context, op, query string, args ...interface{}) ([]*models.Purchase, error) {
	rows, err := GetExecutor(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(op, err)
	}
	defer rows.Close()

	var purchases []*models.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, translateError(op, err)
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(op, err)
	}

	if err := r.loadDetails(ctx, op, purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}

// loadDetails fetches the details of all purchases in one query
func (r *PurchaseRepository) loadDetails(ctx context.Context, op string, purchases []*models.Purchase) error {
	if len(purchases) == 0 {
		return nil
	}

	ids := make([]int64, len(purchases))
	byID := make(map[int64]*models.Purchase, len(purchases))
	for i, p := range purchases {
		ids[i] = p.ID
		byID[p.ID] = p
		p.Details = []*models.PurchaseDetail{}
	}

	details, err := queryDetails(ctx, GetExecutor(ctx, r.db), op,
		detailSelect+` WHERE d.purchase_id = ANY($1) ORDER BY d.id`, pq.Array(ids))
	if err != nil {
		return err
	}
	for _, d := range details {
		if p, ok := byID[d.PurchaseID]; ok {
			p.Details = append(p.Details, d)
		}
	}
	return nil
}

func scanPurchase(row rowScanner) (*models.Purchase, error) {
	p := &models.Purchase{}
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.PurchaseDate,
		&p.TotalAmount,
		&p.PaymentStatus,
		&p.PaymentMethod,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func queryDetails(ctx context.Context, executor Executor, op, query string, args ...interface{}) ([]*models.PurchaseDetail, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(op, err)
	}
	defer rows.Close()

	var details []*models.PurchaseDetail
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, translateError(op, err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(op, err)
	}
	return details, nil
}

func scanDetail(row rowScanner) (*models.PurchaseDetail, error) {
	d := &models.PurchaseDetail{}
	if err := row.Scan(&d.ID, &d.PurchaseID, &d.FilmID, &d.FilmTitle, &d.Quantity, &d.UnitPrice); err != nil {
		return nil, err
	}
	return d, nil
}
