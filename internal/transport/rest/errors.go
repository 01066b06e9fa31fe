package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/sweetshop-backend/internal/domain"
	"github.com/heartmarshall/sweetshop-backend/pkg/ctxutil"
)

// Error kinds reported in the "error" field.
const (
	kindInvalidInput      = "invalid_input"
	kindConflict          = "conflict"
	kindInsufficientStock = "insufficient_stock"
	kindUnauthenticated   = "unauthenticated"
	kindForbidden         = "forbidden"
	kindNotFound          = "not_found"
	kindInternal          = "internal"
)

type errorResponse struct {
	Error  string       `json:"error"`
	Detail string       `json:"detail"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorDetails overrides the human-readable detail per error kind.
type errorDetails struct {
	conflict        string
	notFound        string
	unauthenticated string
}

func writeError(w http.ResponseWriter, status int, kind, detail string) {
	writeJSON(w, status, errorResponse{Error: kind, Detail: detail})
}

func writeInvalidBody(w http.ResponseWriter) {
	writeError(w, http.StatusBadRequest, kindInvalidInput, "Invalid request body")
}

// writeDomainError translates a service error into the HTTP error envelope.
// Unrecognised errors are logged and reported as internal without detail.
func writeDomainError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, d errorDetails) {
	var ve *domain.ValidationError

	switch {
	case errors.As(err, &ve):
		resp := errorResponse{Error: kindInvalidInput, Detail: validationDetail(ve)}
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, kindInvalidInput, "Invalid input")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusBadRequest, kindConflict, or(d.conflict, "Already exists"))
	case errors.Is(err, domain.ErrInsufficientStock):
		writeError(w, http.StatusBadRequest, kindInsufficientStock, "Not enough stock available")
	case errors.Is(err, domain.ErrUnauthorized):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, kindUnauthenticated, or(d.unauthenticated, "Could not validate credentials"))
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, kindForbidden, "Not enough permissions")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, kindNotFound, or(d.notFound, "Not found"))
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())))
		writeError(w, http.StatusInternalServerError, kindInternal, "Internal server error")
	}
}

// validationDetail renders the first field error as a sentence,
// e.g. "Quantity must be positive".
func validationDetail(ve *domain.ValidationError) string {
	if len(ve.Errors) != 1 {
		return "Invalid input"
	}
	fe := ve.Errors[0]
	field := strings.ReplaceAll(fe.Field, "_", " ")
	if field == "" {
		return "Invalid input"
	}
	field = strings.ToUpper(field[:1]) + field[1:]

	if fe.Message == "required" {
		return field + " is required"
	}
	return field + " " + fe.Message
}

func or(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
