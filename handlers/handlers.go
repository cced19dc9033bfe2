package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/SebasDosman/vortex-bird-test/middleware"
	"github.com/SebasDosman/vortex-bird-test/models"
	"github.com/SebasDosman/vortex-bird-test/utils"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxBodyBytes bounds every JSON request body
const maxBodyBytes = 1 << 20

// decodeAndValidate parses a JSON body into dst and validates it. It writes
// the 400 response itself and reports whether the handler may continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}, logger *zap.Logger) bool {
	requestID := middleware.GetRequestIDFromContext(r.Context())

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		logger.Warn("failed to parse request body",
			zap.String("request_id", requestID),
			zap.Error(err))
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return false
	}

	if err := utils.ValidateStruct(dst); err != nil {
		logger.Warn("request validation failed",
			zap.String("request_id", requestID),
			zap.Error(err))
		HandleValidationError(w, err, logger)
		return false
	}
	return true
}

// pathID parses a positive integer URL parameter
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		_ = utils.WriteBadRequest(w, fmt.Sprintf("Invalid %s", name), map[string]string{
			name: fmt.Sprintf("%s must be a positive integer", name),
		})
		return 0, false
	}
	return id, true
}

// pageRequest reads the page and size query parameters
func pageRequest(w http.ResponseWriter, r *http.Request) (models.PageRequest, bool) {
	q := r.URL.Query()
	page, size := 0, models.DefaultPageSize
	details := map[string]string{}

	if raw := q.Get("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			details["page"] = "page must be a non-negative integer"
		}
		page = v
	}
	if raw := q.Get("size"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > models.MaxPageSize {
			details["size"] = fmt.Sprintf("size must be between 1 and %d", models.MaxPageSize)
		}
		size = v
	}

	// page*size must stay representable as a row offset
	if len(details) == 0 && page > models.MaxPage(size) {
		details["page"] = fmt.Sprintf("page must be at most %d for size %d", models.MaxPage(size), size)
	}

	if len(details) > 0 {
		_ = utils.WriteBadRequest(w, "Validation failed", details)
		return models.PageRequest{}, false
	}
	return models.NewPageRequest(page, size), true
}
