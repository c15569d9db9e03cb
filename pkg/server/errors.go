package server

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/NVIDIA/cuda-toolkit-locator/pkg/errors"
	"github.com/NVIDIA/cuda-toolkit-locator/pkg/serializer"
)

// writeError writes a structured JSON error response.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, statusCode int,
	code, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// writeDomainError maps a locator/discovery error to an HTTP response.
func (s *Server) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.CodeOf(err)

	var se *errors.StructuredError
	details := map[string]any(nil)
	if stderrors.As(err, &se) {
		details = se.Context
	}

	s.writeError(w, r, statusForCode(code), string(code), err.Error(), retryableCode(code), details)
}

// statusForCode maps structured error codes to HTTP status codes.
func statusForCode(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeNoMatchingInstaller:
		return http.StatusNotFound
	case errors.ErrCodeUnsupportedVersion, errors.ErrCodeUnsupportedPlatform:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeTransportFailure:
		return http.StatusBadGateway
	case errors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// retryableCode reports whether the failure may clear up on retry.
func retryableCode(code errors.ErrorCode) bool {
	switch code {
	case errors.ErrCodeTransportFailure, errors.ErrCodeRateLimitExceeded, errors.ErrCodeInternal:
		return true
	default:
		return false
	}
}
