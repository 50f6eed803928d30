package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrStoreUnavailable
	ErrNotFound
	ErrInvalidID
	ErrInvalidRequest
	ErrMissingField
	ErrValidation
	ErrDuplicateEmail
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:          "success",
	ErrInternal:         "Server Error",
	ErrStoreUnavailable: "database unavailable, try again",
	ErrNotFound:         "Patient not found",
	ErrInvalidID:        "Invalid ID format",
	ErrInvalidRequest:   "invalid request",
	ErrMissingField:     "Please provide all required fields",
	ErrValidation:       "validation failed",
	ErrDuplicateEmail:   "This email address is already registered.",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:          http.StatusOK,
	ErrInternal:         http.StatusInternalServerError,
	ErrStoreUnavailable: http.StatusInternalServerError,
	ErrNotFound:         http.StatusNotFound,
	ErrInvalidID:        http.StatusBadRequest,
	ErrInvalidRequest:   http.StatusBadRequest,
	ErrMissingField:     http.StatusBadRequest,
	ErrValidation:       http.StatusBadRequest,
	ErrDuplicateEmail:   http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:          "0000",
	ErrInternal:         "0001",
	ErrStoreUnavailable: "0002",
	ErrNotFound:         "0003",
	ErrInvalidID:        "0004",
	ErrInvalidRequest:   "0005",
	ErrMissingField:     "0006",
	ErrValidation:       "0007",
	ErrDuplicateEmail:   "0008",
}
