package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"tavola/shared/failure"

	"github.com/stretchr/testify/assert"
)

var errQuantity = errors.New("quantity must be positive")

func TestConstructors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{name: "bad request", err: failure.BadRequest(errQuantity), wantCode: http.StatusBadRequest, wantMessage: errQuantity.Error()},
		{name: "bad request from string", err: failure.BadRequestFromString("unknown mode"), wantCode: http.StatusBadRequest, wantMessage: "unknown mode"},
		{name: "unauthorized", err: failure.Unauthorized("token expired"), wantCode: http.StatusUnauthorized, wantMessage: "token expired"},
		{name: "forbidden", err: failure.ForbiddenError, wantCode: http.StatusForbidden, wantMessage: "You don't have the required permissions"},
		{name: "not found", err: failure.NotFound("booking_session"), wantCode: http.StatusNotFound, wantMessage: "booking_session"},
		{name: "conflict", err: failure.Conflict("reservation conflict"), wantCode: http.StatusConflict, wantMessage: "reservation conflict"},
		{name: "internal", err: failure.InternalError(errors.New("please try again")), wantCode: http.StatusInternalServerError, wantMessage: "please try again"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.Equal(t, tt.wantMessage, tt.err.Error())
		})
	}
}

func TestNilCause(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestCauseIsKept(t *testing.T) {
	err := failure.BadRequest(fmt.Errorf("%w: got -1", errQuantity))

	assert.ErrorIs(t, err, errQuantity)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
		{name: "wrapped failure", err: fmt.Errorf("submit: %w", failure.Conflict("taken")), want: http.StatusConflict},
		{name: "outermost failure wins", err: failure.BadRequest(failure.NotFound("table")), want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}

func TestGetFields(t *testing.T) {
	fields := map[string]string{"date": "date must not be in the past"}

	assert.Equal(t, fields, failure.GetFields(failure.Invalid("details are incomplete", fields)))
	assert.Equal(t, fields, failure.GetFields(fmt.Errorf("advance: %w", failure.Invalid("details are incomplete", fields))))
	assert.Nil(t, failure.GetFields(failure.Conflict("taken")))
	assert.Nil(t, failure.GetFields(errors.New("boom")))
}
