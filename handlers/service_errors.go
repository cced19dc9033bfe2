package handlers

import (
	"fmt"
	"net/http"

	"github.com/SebasDosman/vortex-bird-test/services"
	"github.com/SebasDosman/vortex-bird-test/utils"
	"go.uber.org/zap"
)

// HandleServiceError maps domain errors to HTTP responses. Only the
// client-safe message of a domain error reaches the body.
func HandleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if err == nil {
		return
	}

	message := services.GetErrorMessage(err)

	var writeErr error
	switch {
	case services.IsNotFoundError(err):
		writeErr = utils.WriteNotFound(w, message)

	case services.IsValidationError(err):
		writeErr = utils.WriteBadRequest(w, message, stringDetails(services.GetErrorDetails(err)))

	case services.IsUnauthorizedError(err):
		writeErr = utils.WriteUnauthorized(w, message)

	case services.IsForbiddenError(err):
		writeErr = utils.WriteForbidden(w, message)

	case services.IsConflictError(err):
		writeErr = utils.WriteConflict(w, message)

	case services.IsInternalError(err):
		logger.Error("internal server error", zap.Error(err))
		writeErr = utils.WriteInternalServerError(w, message)

	default:
		logger.Error("unhandled error type",
			zap.Error(err),
			zap.String("error_type", string(services.GetErrorType(err))))
		writeErr = utils.WriteInternalServerError(w, services.MsgInternal)
	}

	if writeErr != nil {
		logger.Error("failed to write error response", zap.Error(writeErr))
	}
}

// HandleValidationError handles validation errors from request parsing
func HandleValidationError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if utils.IsValidationError(err) {
		if err := utils.WriteBadRequest(w, services.MsgValidationFailed, utils.GetValidationFields(err)); err != nil {
			logger.Error("failed to write validation error response", zap.Error(err))
		}
		return
	}

	logger.Error("validator failure", zap.Error(err))
	if err := utils.WriteInternalServerError(w, services.MsgInternal); err != nil {
		logger.Error("failed to write validation error response", zap.Error(err))
	}
}

func stringDetails(details map[string]interface{}) map[string]string {
	if len(details) == 0 {
		return nil
	}
	out := make(map[string]string, len(details))
	for k, v := range details {
		out[k] = fmt.Sprint(v)
	}
	return out
}
