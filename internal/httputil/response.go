package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"cinelog/internal/fault"
	"cinelog/internal/users"
)

type Response struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  *ErrorBody  `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{
		Status: "ok",
		Data:   data,
	})
}

func WriteError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{
		Status: "error",
		Error: &ErrorBody{
			Code:    code,
			Message: message,
		},
	})
}

// WriteFault maps a service error onto the HTTP surface by its fault class.
// Unclassified errors are reported as a generic 500 without leaking the
// underlying message.
func WriteFault(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, users.ErrUsernameTaken):
		WriteError(w, http.StatusConflict, "username_taken", err.Error())
	case errors.Is(err, users.ErrEmailTaken):
		WriteError(w, http.StatusConflict, "email_taken", err.Error())
	case errors.Is(err, fault.ErrInvalidInput):
		WriteError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, fault.ErrNotFound):
		WriteError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, fault.ErrDuplicateKey):
		WriteError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, fault.ErrTransient):
		WriteError(w, http.StatusBadGateway, "upstream_unavailable", err.Error())
	case errors.Is(err, fault.ErrUnavailable):
		WriteError(w, http.StatusServiceUnavailable, "unavailable", err.Error())
	default:
		WriteError(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}

func ReadJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
