package apperrors

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Error codes
const (
	CodeLoginAlreadyInUse       = "LOGIN_ALREADY_IN_USE"
	CodeInvalidLoginCredentials = "INVALID_LOGIN_CREDENTIALS"
	CodeTokenExpired            = "TOKEN_EXPIRED"
	CodeTokenInvalid            = "TOKEN_INVALID"
	CodeTaskNotEditable         = "TASK_NOT_ELIGIBLE_FOR_EDITING"
	CodeNotFound                = "NOT_FOUND"
	CodeForbidden               = "FORBIDDEN"
	CodeValidationFailed        = "VALIDATION_FAILED"
	CodeInternalError           = "INTERNAL_ERROR"
)

// Error is a domain error carrying everything needed to build the HTTP
// response: status, stable machine-readable code, and human-readable text.
// Request path and timestamp are filled in by Respond.
type Error struct {
	Status      int
	Code        string
	Message     string
	Description string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// New creates a domain error.
func New(status int, code, message, description string) *Error {
	return &Error{
		Status:      status,
		Code:        code,
		Message:     message,
		Description: description,
	}
}

// Predefined domain errors
var (
	ErrLoginAlreadyInUse = New(http.StatusBadRequest, CodeLoginAlreadyInUse,
		"Login is already in use.",
		"This Login is already being used by another user.")

	ErrInvalidLoginCredentials = New(http.StatusBadRequest, CodeInvalidLoginCredentials,
		"Invalid login credentials",
		"Invalid login credentials")

	ErrTokenExpired = New(http.StatusUnauthorized, CodeTokenExpired,
		"Token has expired.",
		"Your token has expired. Please login again.")

	ErrTokenInvalid = New(http.StatusUnauthorized, CodeTokenInvalid,
		"Invalid token was provided.",
		"")

	ErrTaskNotEditable = New(http.StatusConflict, CodeTaskNotEditable,
		"Task is not eligible for edition or deletion.",
		"Tasks marked as finished should not be edited or deleted.")

	ErrNotFound = New(http.StatusNotFound, CodeNotFound,
		"Resource not found",
		"")

	ErrForbidden = New(http.StatusForbidden, CodeForbidden,
		"Access denied",
		"The resource does not belong to the authenticated user.")

	ErrInternal = New(http.StatusInternalServerError, CodeInternalError,
		"Internal server error",
		"")
)

// FieldError describes a single request-body validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type responseBody struct {
	Path        string       `json:"path"`
	Code        string       `json:"code"`
	Status      int          `json:"status"`
	Message     string       `json:"message"`
	Timestamp   string       `json:"timestamp"`
	Description string       `json:"description"`
	Details     []FieldError `json:"details,omitempty"`
}

func body(c *gin.Context, e *Error, details []FieldError) responseBody {
	return responseBody{
		Path:        c.Request.URL.Path,
		Code:        e.Code,
		Status:      e.Status,
		Message:     e.Message,
		Timestamp:   time.Now().UTC().Format(http.TimeFormat),
		Description: e.Description,
		Details:     details,
	}
}

// Respond serializes err to the documented error body. Domain errors keep
// their status and code; anything else is logged and answered as a generic
// 500 so no internal detail leaks.
func Respond(c *gin.Context, err error) {
	var domainErr *Error
	if !errors.As(err, &domainErr) {
		log.Printf("unhandled error on %s: %v", c.Request.URL.Path, err)
		domainErr = ErrInternal
	}
	c.JSON(domainErr.Status, body(c, domainErr, nil))
}

// Abort responds with err and stops the middleware chain.
func Abort(c *gin.Context, err error) {
	Respond(c, err)
	c.Abort()
}

// RespondValidation maps a binding failure to 400 VALIDATION_FAILED with
// per-field details when the underlying error exposes them.
func RespondValidation(c *gin.Context, err error) {
	e := New(http.StatusBadRequest, CodeValidationFailed,
		"Invalid request body", err.Error())

	var details []FieldError
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		e.Description = "One or more fields failed validation."
		details = make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldError{
				Field:   fe.Field(),
				Message: fmt.Sprintf("failed on the %q rule", fe.Tag()),
			})
		}
	}

	c.JSON(e.Status, body(c, e, details))
}
