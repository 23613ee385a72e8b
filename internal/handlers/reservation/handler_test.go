package reservation_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tavola/infras/otel/mocks"
	"tavola/internal/domains/reservation/model/dto"
	"tavola/internal/handlers/reservation"
	"tavola/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReservations struct {
	reservations map[string]dto.ReservationResponse
	receipts     map[string][]byte
}

func (s stubReservations) Create(context.Context, dto.Submission) (string, error) {
	return "", nil
}

func (s stubReservations) Get(_ context.Context, id string) (dto.ReservationResponse, error) {
	res, ok := s.reservations[id]
	if !ok {
		return dto.ReservationResponse{}, failure.NotFound("reservation not found")
	}

	return res, nil
}

func (s stubReservations) Receipt(_ context.Context, id string) ([]byte, error) {
	body, ok := s.receipts[id]
	if !ok {
		return nil, failure.NotFound("receipt not found")
	}

	return body, nil
}

func TestHandler(t *testing.T) {
	handler := reservation.New(stubReservations{
		reservations: map[string]dto.ReservationResponse{
			"r1": {ID: "r1", GuestName: "Giulia", PartySize: 4, TableID: "t1", MenuMode: "fixed_only"},
		},
		receipts: map[string][]byte{"r1": []byte(`{"id":"r1","total":"2550"}`)},
	}, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	serve := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		return rec
	}

	t.Run("get", func(t *testing.T) {
		rec := serve("/reservations/r1")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data dto.ReservationResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Giulia", body.Data.GuestName)
		assert.Equal(t, 4, body.Data.PartySize)
	})

	t.Run("get missing", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, serve("/reservations/r9").Code)
	})

	t.Run("receipt is served as stored", func(t *testing.T) {
		rec := serve("/reservations/r1/receipt")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":"r1","total":"2550"}`, rec.Body.String())
	})

	t.Run("receipt missing", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, serve("/reservations/r9/receipt").Code)
	})
}
