package handler

import (
	"errors"
	"net/http"

	perrors "github.com/abgdnv/productapi/internal/product/errors"
	"github.com/abgdnv/productapi/pkg/web"
)

type validationResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// respondErr translates err into the HTTP response. Every handler failure goes through here.
func (h *Handler) respondErr(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *perrors.ValidationError
	var badRequestErr *perrors.BadRequestError

	switch {
	case errors.Is(err, perrors.ErrProductNotFound):
		h.logger.WarnContext(r.Context(), "Product not found", "path", r.URL.Path)
		web.RespondError(w, h.logger, http.StatusNotFound, "Product not found")
	case errors.As(err, &validationErr):
		h.logger.WarnContext(r.Context(), "Validation errors occurred", "errors", validationErr.Fields, "message", validationErr.Message)
		web.RespondJSON(w, h.logger, http.StatusBadRequest, validationResponse{
			Message: validationErr.Message,
			Errors:  validationErr.Fields,
		})
	case errors.As(err, &badRequestErr):
		h.logger.WarnContext(r.Context(), "Bad request", "message", badRequestErr.Message)
		web.RespondError(w, h.logger, http.StatusBadRequest, badRequestErr.Message)
	default:
		h.logger.ErrorContext(r.Context(), "Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, "Internal Server Error")
	}
}
