package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrEmailExists
	ErrInvalidPassword
	ErrUploadFailed
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:         "success",
	ErrInternal:        "error internal",
	ErrNotFound:        "data not found",
	ErrInvalidRequest:  "invalid request",
	ErrUnauthorize:     "unauthorize request",
	ErrEmailExists:     "email already registered",
	ErrInvalidPassword: "password invalid",
	ErrUploadFailed:    "profile picture upload failed",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:         http.StatusOK,
	ErrInternal:        http.StatusInternalServerError,
	ErrNotFound:        http.StatusNotFound,
	ErrInvalidRequest:  http.StatusBadRequest,
	ErrUnauthorize:     http.StatusUnauthorized,
	ErrEmailExists:     http.StatusBadRequest,
	ErrInvalidPassword: http.StatusBadRequest,
	ErrUploadFailed:    http.StatusBadGateway,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:         "0000",
	ErrInternal:        "0001",
	ErrNotFound:        "0002",
	ErrInvalidRequest:  "0003",
	ErrUnauthorize:     "0004",
	ErrEmailExists:     "0005",
	ErrInvalidPassword: "0006",
	ErrUploadFailed:    "0007",
}
