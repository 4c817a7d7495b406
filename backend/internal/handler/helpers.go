package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/teamboard/teamboard/shared/errors"
)

// parseId reads the {id} path parameter.
func parseId(r *http.Request) (int64, error) {
	param := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil || id <= 0 {
		return 0, &errors.ErrorWithStatusCode{Message: "invalid id: must be a positive integer", StatusCode: http.StatusBadRequest}
	}
	return id, nil
}
