package handler

import (
	"net/http"
	"strconv"

	perrors "github.com/abgdnv/productapi/internal/product/errors"
	"github.com/go-chi/chi/v5"
)

// queryInt reads an integer query parameter, falling back to defaultValue when it is absent.
// A value that is not an integer reads as 0, which selects an empty page.
func queryInt(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0
	}
	return int(intValue)
}

// parseID extracts the product ID from the request path.
// An ID that is not an integer cannot match any product.
func parseID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, perrors.ErrProductNotFound
	}
	return id, nil
}
