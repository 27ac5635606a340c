package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

func DecodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// DecodeAndValidate decodes a JSON body into v and validates it. On failure the
// 400 response is already written and the error is returned to short-circuit the handler.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, validate *validator.Validate, v any) error {
	if err := DecodeBody(r, v); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return err
	}
	if err := validate.Struct(v); err != nil {
		WriteValidationError(w, err)
		return err
	}
	return nil
}

// ValidationErrorResponse contains field-specific validation messages
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func WriteValidationError(w http.ResponseWriter, err error) error {
	res := ValidationErrorResponse{
		Message: "invalid request",
		Fields:  make(map[string]string),
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, err := range ve {
			res.Fields[err.Field()] = err.Tag()
		}
	}

	return WriteJSON(w, res, http.StatusBadRequest)
}

// ErrorResponse describes a standard error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, message string, code int) error {
	return WriteJSON(w, ErrorResponse{Message: message}, code)
}

// MessageResponse is a plain acknowledgement
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

func WriteMessage(w http.ResponseWriter, message string, code int) error {
	return WriteJSON(w, MessageResponse{Message: message}, code)
}
