package dto

import (
	"fmt"
	"time"

	bookingModel "tavola/internal/domains/booking/model"
	"tavola/internal/domains/reservation/model"
	"tavola/shared/constant"
	gDto "tavola/shared/dto"
	gModel "tavola/shared/model"
	"tavola/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Submission is a finished draft handed over by the booking flow.
type Submission struct {
	SessionID string
	UserID    string
	Draft     bookingModel.Draft
	Pricing   bookingModel.Pricing
}

func (s *Submission) ToModel() (model.Reservation, []model.MenuItem, error) {
	if s.Draft.SelectedTable == nil {
		return model.Reservation{}, nil, fmt.Errorf("submission %s has no table", s.SessionID)
	}

	date, err := time.Parse(constant.DayFormat, s.Draft.Schedule.Date)
	if err != nil {
		return model.Reservation{}, nil, fmt.Errorf("invalid reservation date: %w", err)
	}

	now := timezone.Now()
	user := s.UserID

	if user == constant.Empty {
		user = constant.ContextGuest
	}

	reservation := model.Reservation{
		ID:             uuid.NewString(),
		UserID:         s.UserID,
		GuestName:      s.Draft.Contact.Name,
		Email:          s.Draft.Contact.Email,
		Phone:          s.Draft.Contact.Phone,
		Date:           date,
		TimeSlot:       s.Draft.Schedule.TimeSlot,
		PartySize:      s.Draft.Schedule.PartySize,
		Occasion:       string(s.Draft.Occasion),
		Notes:          s.Draft.Notes,
		TableID:        s.Draft.SelectedTable.ID,
		MenuMode:       string(s.Draft.Menu.Mode()),
		Subtotal:       s.Pricing.Subtotal,
		DiscountRate:   s.Pricing.DiscountRate,
		DiscountAmount: s.Pricing.DiscountAmount,
		Total:          s.Pricing.Total,
		Status:         model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if payment := s.Draft.Payment; payment != nil {
		reservation.PaymentTransactionID = payment.TransactionID
		reservation.Paid = payment.Paid
	}

	items := []model.MenuItem{}

	for _, line := range s.Draft.Menu.FixedLines() {
		items = append(items, model.MenuItem{
			ID:            uuid.NewString(),
			ReservationID: reservation.ID,
			Kind:          model.ItemKindFixed,
			RefID:         line.Package.ID,
			Name:          line.Package.Name,
			UnitPrice:     line.Package.Price,
			Quantity:      line.Quantity,
		})
	}

	for _, line := range s.Draft.Menu.ItemLines() {
		items = append(items, model.MenuItem{
			ID:            uuid.NewString(),
			ReservationID: reservation.ID,
			Kind:          model.ItemKindALaCarte,
			RefID:         line.Item.ID,
			Name:          line.Item.Name,
			UnitPrice:     line.Item.Price,
			Quantity:      line.Quantity,
		})
	}

	return reservation, items, nil
}

type MenuLineResponse struct {
	Kind      string          `json:"kind"`
	RefID     string          `json:"ref_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

type ReservationResponse struct {
	ID                   string             `json:"id"`
	UserID               string             `json:"user_id,omitempty"`
	GuestName            string             `json:"guest_name"`
	Email                string             `json:"email"`
	Phone                string             `json:"phone"`
	Date                 string             `json:"date"`
	TimeSlot             string             `json:"time"`
	PartySize            int                `json:"party_size"`
	Occasion             string             `json:"occasion,omitempty"`
	Notes                string             `json:"notes,omitempty"`
	TableID              string             `json:"table_id"`
	MenuMode             string             `json:"menu_mode"`
	Lines                []MenuLineResponse `json:"lines"`
	Subtotal             decimal.Decimal    `json:"subtotal"`
	DiscountRate         decimal.Decimal    `json:"discount_rate"`
	DiscountAmount       decimal.Decimal    `json:"discount_amount"`
	Total                decimal.Decimal    `json:"total"`
	PaymentTransactionID string             `json:"payment_transaction_id,omitempty"`
	Paid                 bool               `json:"paid"`
	Status               string             `json:"status"`
	ReceiptURL           string             `json:"receipt_url,omitempty"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(reservation model.Reservation, items []model.MenuItem) {
	r.ID = reservation.ID
	r.UserID = reservation.UserID
	r.GuestName = reservation.GuestName
	r.Email = reservation.Email
	r.Phone = reservation.Phone
	r.Date = reservation.Date.Format(constant.DayFormat)
	r.TimeSlot = reservation.TimeSlot
	r.PartySize = reservation.PartySize
	r.Occasion = reservation.Occasion
	r.Notes = reservation.Notes
	r.TableID = reservation.TableID
	r.MenuMode = reservation.MenuMode
	r.Subtotal = reservation.Subtotal
	r.DiscountRate = reservation.DiscountRate
	r.DiscountAmount = reservation.DiscountAmount
	r.Total = reservation.Total
	r.PaymentTransactionID = reservation.PaymentTransactionID
	r.Paid = reservation.Paid
	r.Status = reservation.Status
	r.ReceiptURL = reservation.ReceiptURL
	r.Metadata.FromModel(reservation.Metadata)

	r.Lines = make([]MenuLineResponse, len(items))
	for i, item := range items {
		r.Lines[i] = MenuLineResponse{
			Kind:      item.Kind,
			RefID:     item.RefID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
	}
}

// Receipt is the document archived to object storage after a successful submission.
type Receipt struct {
	ReservationID string             `json:"reservation_id"`
	GuestName     string             `json:"guest_name"`
	Date          string             `json:"date"`
	TimeSlot      string             `json:"time"`
	PartySize     int                `json:"party_size"`
	TableID       string             `json:"table_id"`
	MenuMode      string             `json:"menu_mode"`
	Lines         []MenuLineResponse `json:"lines"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Discount      decimal.Decimal    `json:"discount"`
	Total         decimal.Decimal    `json:"total"`
	Paid          bool               `json:"paid"`
	IssuedAt      string             `json:"issued_at"`
}

func (r *Receipt) FromModel(reservation model.Reservation, items []model.MenuItem) {
	var full ReservationResponse
	full.FromModel(reservation, items)

	r.ReservationID = reservation.ID
	r.GuestName = reservation.GuestName
	r.Date = full.Date
	r.TimeSlot = reservation.TimeSlot
	r.PartySize = reservation.PartySize
	r.TableID = reservation.TableID
	r.MenuMode = reservation.MenuMode
	r.Lines = full.Lines
	r.Subtotal = reservation.Subtotal
	r.Discount = reservation.DiscountAmount
	r.Total = reservation.Total
	r.Paid = reservation.Paid
	r.IssuedAt = timezone.Format(reservation.CreatedAt, constant.DateFormat)
}
