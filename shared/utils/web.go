package utils

import (
	"encoding/json"
	goerrors "errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/teamboard/teamboard/shared/errors"
	"github.com/teamboard/teamboard/shared/logger"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// StatusCode maps an error returned by the service layer to an http status.
func StatusCode(err error) int {
	var withCode *errors.ErrorWithStatusCode
	var validation *errors.ValidationError
	var notFound *errors.NotFoundError
	var conflict *errors.ConflictError

	switch {
	case goerrors.As(err, &withCode):
		return withCode.StatusCode
	case goerrors.As(err, &validation):
		return http.StatusBadRequest
	case goerrors.As(err, &notFound):
		return http.StatusNotFound
	case goerrors.As(err, &conflict):
		return http.StatusConflict
	}
	// default error is 500
	return http.StatusInternalServerError
}

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	code := StatusCode(err)
	if code == http.StatusInternalServerError {
		// storage details stay in the logs
		logger.Log.Error("internal error", "error", err)
		http.Error(w, "Internal error", code)
		return
	}
	http.Error(w, err.Error(), code)
}

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("decode body", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: 400}
	}
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("validate body", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: 400}
	}
	return nil
}

func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("decode body", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: 400}
	}
	return nil
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("encode response", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(data, '\n'))
}
