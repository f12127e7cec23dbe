package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
}

// ValidationError indicates a missing or malformed field in a request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError indicates that a requested resource does not exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// NewNotFoundError builds a NotFoundError for the named resource.
func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

// AuthError indicates a missing, invalid, or expired credential.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// NewAuthError builds an AuthError with the given message.
func NewAuthError(message string) error {
	return &AuthError{Message: message}
}

// StorageError wraps a persistence failure. The cause is logged but never
// surfaced to the caller.
type StorageError struct {
	Cause error
}

func (e *StorageError) Error() string { return "storage failure: " + e.Cause.Error() }
func (e *StorageError) Unwrap() error { return e.Cause }

// NewStorageError wraps the underlying persistence error.
func NewStorageError(cause error) error {
	return &StorageError{Cause: cause}
}

// HandleErrors is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.Int("status", status))
	c.JSON(status, ErrorResponse{Message: message})
}

// RespondError maps a service error onto the HTTP status conventions:
// 400 validation, 401 auth, 404 not found, 500 everything else.
func RespondError(c *gin.Context, err error) {
	var (
		ve *ValidationError
		nf *NotFoundError
		ae *AuthError
		se *StorageError
	)
	switch {
	case errors.As(err, &ve):
		JSONError(c, http.StatusBadRequest, ve.Message)
	case errors.As(err, &nf):
		JSONError(c, http.StatusNotFound, nf.Error())
	case errors.As(err, &ae):
		JSONError(c, http.StatusUnauthorized, ae.Message)
	case errors.As(err, &se):
		GetLogger().Error("storage failure", zap.Error(se.Cause))
		JSONError(c, http.StatusInternalServerError, "Server error")
	default:
		GetLogger().Error("unexpected failure", zap.Error(err))
		JSONError(c, http.StatusInternalServerError, "Server error")
	}
}
