package dto_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingModel "tavola/internal/domains/booking/model"
	"tavola/internal/domains/reservation/model"
	"tavola/internal/domains/reservation/model/dto"
)

func TestSubmission_ToModel(t *testing.T) {
	menu := bookingModel.MenuSelection{}.
		SelectFixedPackage(bookingModel.Package{ID: "p1", Name: "Tasting menu", Price: decimal.NewFromInt(500)}).
		SetALaCarteItems([]bookingModel.ItemLine{{Item: bookingModel.Item{ID: "i1", Name: "Bruschetta", Price: decimal.NewFromInt(100)}, Quantity: 2}})

	sub := dto.Submission{
		SessionID: "s1",
		Draft: bookingModel.Draft{
			Contact:       bookingModel.Contact{Name: "Giulia Rossi", Email: "giulia@example.com", Phone: "055 123456"},
			Schedule:      bookingModel.Schedule{Date: "2025-03-15", TimeSlot: "19:30", PartySize: 4},
			Occasion:      bookingModel.OccasionBirthday,
			SelectedTable: &bookingModel.TableRef{ID: "t2", Capacity: 4},
			Menu:          menu,
		},
		Pricing: bookingModel.DefaultDiscountPolicy().Price(menu),
	}

	reservation, items, err := sub.ToModel()
	require.NoError(t, err)

	assert.NotEmpty(t, reservation.ID)
	assert.Empty(t, reservation.UserID)
	assert.Equal(t, "guest", reservation.CreatedBy)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), reservation.Date)
	assert.Equal(t, "birthday", reservation.Occasion)
	assert.Equal(t, "mixed", reservation.MenuMode)
	assert.Equal(t, model.StatusConfirmed, reservation.Status)
	assert.True(t, reservation.Subtotal.Equal(decimal.NewFromInt(700)))
	assert.True(t, reservation.Total.Equal(decimal.NewFromInt(630)))
	assert.False(t, reservation.Paid)
	assert.False(t, reservation.CreatedAt.IsZero())

	require.Len(t, items, 2)
	assert.Equal(t, model.ItemKindFixed, items[0].Kind)
	assert.Equal(t, "p1", items[0].RefID)
	assert.Equal(t, model.ItemKindALaCarte, items[1].Kind)
	assert.Equal(t, 2, items[1].Quantity)

	for _, item := range items {
		assert.Equal(t, reservation.ID, item.ReservationID)
	}
}

func TestSubmission_ToModelRejectsBadDraft(t *testing.T) {
	_, _, err := (&dto.Submission{}).ToModel()
	require.Error(t, err)

	sub := dto.Submission{Draft: bookingModel.Draft{
		SelectedTable: &bookingModel.TableRef{ID: "t1"},
		Schedule:      bookingModel.Schedule{Date: "15/03/2025"},
	}}

	_, _, err = sub.ToModel()
	require.Error(t, err)
}

func TestReceipt_FromModel(t *testing.T) {
	reservation := model.Reservation{
		ID:             "r1",
		GuestName:      "Giulia Rossi",
		Date:           time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		TimeSlot:       "19:30",
		PartySize:      2,
		Subtotal:       decimal.NewFromInt(3000),
		DiscountAmount: decimal.NewFromInt(450),
		Total:          decimal.NewFromInt(2550),
	}

	var receipt dto.Receipt
	receipt.FromModel(reservation, []model.MenuItem{{Kind: model.ItemKindFixed, Quantity: 2}})

	assert.Equal(t, "2025-03-15", receipt.Date)
	assert.True(t, receipt.Discount.Equal(decimal.NewFromInt(450)))
	assert.Len(t, receipt.Lines, 1)
}
