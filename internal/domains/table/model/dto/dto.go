package dto

import (
	"net/http"

	bookingModel "tavola/internal/domains/booking/model"
	"tavola/internal/domains/table/model"
	"tavola/shared"
	"tavola/shared/constant"
)

// AvailabilityRequest is read from the query string.
type AvailabilityRequest struct {
	Date      string `json:"date"       validate:"required,day"`
	TimeSlot  string `json:"time"       validate:"required,halfhour"`
	PartySize int    `json:"party_size" validate:"required,min=1"`
}

func (a *AvailabilityRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	a.Date = query.Get(constant.RequestParamDate)
	a.TimeSlot = query.Get(constant.RequestParamTime)

	if partySize, err := shared.ConvertStringToInt(query.Get(constant.RequestParamPartySize)); err == nil {
		a.PartySize = partySize
	}
}

type TableResponse struct {
	ID           string                     `json:"id"`
	Name         string                     `json:"name"`
	Capacity     int                        `json:"capacity"`
	Category     bookingModel.TableCategory `json:"category"`
	Availability bookingModel.Availability  `json:"availability"`
}

type AvailabilityResponse struct {
	Date      string          `json:"date"`
	TimeSlot  string          `json:"time"`
	PartySize int             `json:"party_size"`
	Available int             `json:"available"`
	Tables    []TableResponse `json:"tables"`
}

func (a *AvailabilityResponse) FromModels(req AvailabilityRequest, tables []bookingModel.Table) {
	a.Date = req.Date
	a.TimeSlot = req.TimeSlot
	a.PartySize = req.PartySize
	a.Available = 0

	options := bookingModel.ClassifyTables(tables, req.PartySize)
	a.Tables = make([]TableResponse, len(options))

	for i, option := range options {
		if option.Selectable() {
			a.Available++
		}

		a.Tables[i] = TableResponse{
			ID:           option.ID,
			Name:         option.Name,
			Capacity:     option.Capacity,
			Category:     option.Category,
			Availability: option.Availability,
		}
	}
}

// ToDomain marks each table free unless it is in occupied.
func ToDomain(tables []model.DiningTable, occupied []string) []bookingModel.Table {
	taken := make(map[string]struct{}, len(occupied))
	for _, id := range occupied {
		taken[id] = struct{}{}
	}

	result := make([]bookingModel.Table, len(tables))

	for i, table := range tables {
		_, isTaken := taken[table.ID]

		result[i] = bookingModel.Table{
			ID:       table.ID,
			Name:     table.Name,
			Capacity: table.Capacity,
			Category: bookingModel.TableCategory(table.Category),
			Free:     !isTaken,
		}
	}

	return result
}
