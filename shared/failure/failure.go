package failure

import (
	"errors"
	"net/http"
)

// Failure carries the HTTP status a handler should answer with. The cause, when
// present, stays reachable through errors.Is and errors.As.
type Failure struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	cause   error
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

func (e *Failure) Error() string {
	return e.Message
}

func (e *Failure) Unwrap() error {
	return e.cause
}

func wrap(code int, err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: code, Message: err.Error(), cause: err}
}

// BadRequest marks err as a client error. A nil err stays nil.
func BadRequest(err error) error {
	return wrap(http.StatusBadRequest, err)
}

func BadRequestFromString(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

// Invalid is a bad request with one message per offending field.
func Invalid(msg string, fields map[string]string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg, Fields: fields}
}

func Unauthorized(msg string) error {
	return &Failure{Code: http.StatusUnauthorized, Message: msg}
}

// InternalError exposes err's message with a 500. Pass a sanitized error; the message
// reaches the client.
func InternalError(err error) error {
	return wrap(http.StatusInternalServerError, err)
}

// NotFound reports a missing entity by name.
func NotFound(entityName string) error {
	return &Failure{Code: http.StatusNotFound, Message: entityName}
}

func Conflict(message string) error {
	return &Failure{Code: http.StatusConflict, Message: message}
}

// GetFields returns the per-field messages of err, if any.
func GetFields(err error) map[string]string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Fields
	}

	return nil
}

// GetCode returns the status of the outermost Failure in err's chain, 500 otherwise.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
