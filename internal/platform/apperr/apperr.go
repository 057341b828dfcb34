// Package apperr carries the error code, message and HTTP status the API
// writes for a failed request.
package apperr

import "net/http"

type AppError struct {
	Code    string `json:"error"`
	Message string `json:"message"`
	Err     error  `json:"-"`
	status  int
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.StatusCode())
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *AppError) StatusCode() int {
	if e == nil || e.status == 0 {
		return http.StatusInternalServerError
	}
	return e.status
}

func BadRequest(code, msg string, err error) *AppError {
	return &AppError{Code: code, Message: msg, Err: err, status: http.StatusBadRequest}
}

func Unauthorized(code, msg string, err error) *AppError {
	return &AppError{Code: code, Message: msg, Err: err, status: http.StatusUnauthorized}
}

func Forbidden(code, msg string, err error) *AppError {
	return &AppError{Code: code, Message: msg, Err: err, status: http.StatusForbidden}
}

func NotFound(code, msg string, err error) *AppError {
	return &AppError{Code: code, Message: msg, Err: err, status: http.StatusNotFound}
}

func Conflict(code, msg string, err error) *AppError {
	return &AppError{Code: code, Message: msg, Err: err, status: http.StatusConflict}
}

func TooManyRequests(code, msg string) *AppError {
	return &AppError{Code: code, Message: msg, status: http.StatusTooManyRequests}
}

func Internal(code, msg string, err error) *AppError {
	return &AppError{Code: code, Message: msg, Err: err, status: http.StatusInternalServerError}
}
