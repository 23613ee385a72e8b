// Package response writes the JSON envelopes shared by every handler.
package response

import (
	"encoding/json"
	"net/http"

	"tavola/shared/constant"
	"tavola/shared/failure"
	"tavola/shared/logger"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error  *string           `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

// WithJSON wraps payload in a data envelope.
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Data[any]{Data: &payload})
}

// WithError maps err to its status code. Validation failures carry per-field messages.
func WithError(writer http.ResponseWriter, err error) {
	message := err.Error()

	write(writer, failure.GetCode(err), Error{Error: &message, Fields: failure.GetFields(err)})
}

// WithRaw sends an already encoded body.
func WithRaw(writer http.ResponseWriter, code int, contentType string, body []byte) {
	send(writer, code, contentType, body)
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	send(writer, code, constant.ContentTypeJSON, body)
}

func send(writer http.ResponseWriter, code int, contentType string, body []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, contentType)
	writer.WriteHeader(code)

	if _, err := writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
