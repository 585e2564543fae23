// Package response renders the JSON envelopes of the HTTP API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SuccessResponse is the envelope of every successful response.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ErrorResponse is the envelope of every failed response.
type ErrorResponse struct {
	Message string `json:"message"`           // User-friendly error message
	Code    string `json:"code"`              // Machine-readable error code, e.g. "VALIDATION_FAILED"
	Details string `json:"details,omitempty"` // Extra context, only for 4xx validation and not-found errors
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, message string, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Message: message,
		Data:    data,
	})
}

// OK returns a 200 response.
func OK(c echo.Context, message string, data any) error {
	return Success(c, http.StatusOK, message, data)
}

// Created returns a 201 response.
func Created(c echo.Context, message string, data any) error {
	return Success(c, http.StatusCreated, message, data)
}

// Error returns an error response. Details are dropped for 5xx and for authentication or
// authorization failures.
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = ""
	}

	return c.JSON(statusCode, ErrorResponse{
		Message: message,
		Code:    errorCode,
		Details: details,
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}
