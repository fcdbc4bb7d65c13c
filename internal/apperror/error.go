package apperror

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Kind int

const (
	KindBadRequest Kind = iota
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindConflict
)

var (
	ErrNotFound     = NewNotFoundErr("not found")
	ErrUnauthorized = &AppError{Message: "unauthorized", kind: KindUnauthorized}
	ErrForbidden    = NewForbiddenErr("forbidden")
	ErrDecodeBody   = NewAppError("failed to decode request body")
	ErrInvalidID    = NewAppError("invalid id")
)

type AppError struct {
	Message string `json:"message"`
	kind    Kind
}

// NewAppError creates a bad request error.
func NewAppError(message string) *AppError {
	return &AppError{
		Message: message,
	}
}

func NewNotFoundErr(message string) *AppError {
	return &AppError{Message: message, kind: KindNotFound}
}

func NewForbiddenErr(message string) *AppError {
	return &AppError{Message: message, kind: KindForbidden}
}

func NewConflictErr(message string) *AppError {
	return &AppError{Message: message, kind: KindConflict}
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Kind() Kind {
	return e.kind
}

func (e *AppError) Status() int {
	switch e.kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func (e *AppError) Marshal() []byte {
	marshal, err := json.Marshal(e)
	if err != nil {
		return nil
	}
	return marshal
}

func NewValidationErr(errs validator.ValidationErrors) *AppError {
	var errMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "required_if":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is required when %s", err.Field(), err.Param()))
		case "email":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not a valid email", err.Field()))
		case "min":
			errMsgs = append(errMsgs, fmt.Sprintf("the minimum length of the %s field is %s characters", err.Field(), err.Param()))
		case "gt", "gte":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s must be greater than %s", err.Field(), err.Param()))
		case "lte", "max":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s must not exceed %s", err.Field(), err.Param()))
		case "oneof":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s must be one of [%s]", err.Field(), err.Param()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return NewAppError(strings.Join(errMsgs, ", "))
}

func internalError() *AppError {
	return NewAppError("internal error")
}
