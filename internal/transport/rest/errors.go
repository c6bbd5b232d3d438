package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/transport/problem"
)

// handleError maps a service error to a problem response. Anything not
// recognised is logged and reported as 500 with the request id.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var validationErr *domain.ValidationError
	var conflictErr *domain.ConflictError

	switch {
	case errors.As(err, &validationErr):
		problem.Write(w, r, http.StatusBadRequest, "request validation failed", validationErr.Errors...)
	case errors.Is(err, domain.ErrValidation):
		problem.Write(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		problem.Write(w, r, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, domain.ErrForbidden):
		problem.Write(w, r, http.StatusForbidden, forbiddenDetail(err))
	case errors.Is(err, domain.ErrNotFound):
		problem.Write(w, r, http.StatusNotFound, "resource not found")
	case errors.As(err, &conflictErr):
		problem.Write(w, r, http.StatusConflict, conflictErr.Message,
			domain.FieldError{Field: conflictErr.Field, Message: conflictErr.Message})
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		problem.Write(w, r, http.StatusConflict, "resource already exists")
	case errors.Is(err, domain.ErrRateLimited):
		problem.Write(w, r, http.StatusTooManyRequests, "rate limit exceeded")
	default:
		log.ErrorContext(r.Context(), "unhandled error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		problem.Write(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// forbiddenDetail strips the sentinel suffix so the caller sees the reason
// without internal wrapping.
func forbiddenDetail(err error) string {
	if msg, ok := strings.CutSuffix(err.Error(), ": "+domain.ErrForbidden.Error()); ok {
		return msg
	}
	return "access denied"
}
