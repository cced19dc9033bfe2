package handlers

import (
	"context"
	"net/http"

	"github.com/SebasDosman/vortex-bird-test/auth"
	"github.com/SebasDosman/vortex-bird-test/middleware"
	"github.com/SebasDosman/vortex-bird-test/models"
	"github.com/SebasDosman/vortex-bird-test/services"
	"github.com/SebasDosman/vortex-bird-test/utils"
	"go.uber.org/zap"
)

// PurchaseService defines the purchase operations the handler exposes
type PurchaseService interface {
	Create(ctx context.Context, actor auth.Principal, req services.PurchaseRequest) (*models.Purchase, error)
	List(ctx context.Context, page models.PageRequest) (models.Page[*models.Purchase], error)
	ListByUser(ctx context.Context, actor auth.Principal, userID int64, page models.PageRequest) (models.Page[*models.Purchase], error)
	GetByID(ctx context.Context, actor auth.Principal, id int64) (*models.Purchase, error)
	Delete(ctx context.Context, id int64) error
}

// PurchaseDetailService defines the purchase line operations the handler exposes
type PurchaseDetailService interface {
	List(ctx context.Context, page models.PageRequest) (models.Page[*models.PurchaseDetail], error)
	GetByID(ctx context.Context, id int64) (*models.PurchaseDetail, error)
	Delete(ctx context.Context, id int64) error
}

// PurchaseHandler handles purchase and purchase detail HTTP requests
type PurchaseHandler struct {
	purchases PurchaseService
	details   PurchaseDetailService
	logger    *zap.Logger
}

// NewPurchaseHandler creates a new PurchaseHandler
func NewPurchaseHandler(purchases PurchaseService, details PurchaseDetailService, logger *zap.Logger) *PurchaseHandler {
	return &PurchaseHandler{purchases: purchases, details: details, logger: logger}
}

// HandleCreate handles POST /purchase
func (h *PurchaseHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req services.PurchaseRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}
	purchase, err := h.purchases.Create(r.Context(), middleware.PrincipalFromContext(r.Context()), req)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	_ = utils.WriteCreated(w, purchase)
}

// HandleList handles GET /purchase
func (h *PurchaseHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, ok := pageRequest(w, r)
	if !ok {
		return
	}
	result, err := h.purchases.List(r.Context(), page)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, result)
}

// HandleListByUser handles GET /purchase/user/{userId}
func (h *PurchaseHandler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	page, ok := pageRequest(w, r)
	if !ok {
		return
	}
	result, err := h.purchases.ListByUser(r.Context(), middleware.PrincipalFromContext(r.Context()), userID, page)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, result)
}

// HandleGet handles GET /purchase/{id}
func (h *PurchaseHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	purchase, err := h.purchases.GetByID(r.Context(), middleware.PrincipalFromContext(r.Context()), id)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, purchase)
}

// HandleDelete handles DELETE /purchase/{id}
func (h *PurchaseHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.purchases.Delete(r.Context(), id); err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	utils.WriteNoContent(w)
}

// HandleListDetails handles GET /purchaseDetail
func (h *PurchaseHandler) HandleListDetails(w http.ResponseWriter, r *http.Request) {
	page, ok := pageRequest(w, r)
	if !ok {
		return
	}
	result, err := h.details.List(r.Context(), page)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, result)
}

// HandleGetDetail handles GET /purchaseDetail/{id}
func (h *PurchaseHandler) HandleGetDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	detail, err := h.details.GetByID(r.Context(), id)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, detail)
}

// HandleDeleteDetail handles DELETE /purchaseDetail/admin/{id}
func (h *PurchaseHandler) HandleDeleteDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.details.Delete(r.Context(), id); err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	utils.WriteNoContent(w)
}
