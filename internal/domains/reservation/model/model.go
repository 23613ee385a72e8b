package model

import (
	"errors"
	"time"

	"tavola/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID         = "id"
	FieldUserID     = "user_id"
	FieldTableID    = "table_id"
	FieldDate       = "reservation_date"
	FieldTimeSlot   = "time_slot"
	FieldStatus     = "status"
	FieldReceiptURL = "receipt_url"
)

const (
	ItemTableName  = "reservation_menu_items"
	ItemEntityName = "reservation_menu_item"

	ReceiptEntityName = "receipt"

	ItemFieldReservationID = "reservation_id"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

const (
	ItemKindFixed    = "fixed"
	ItemKindALaCarte = "a_la_carte"
)

var (
	ErrTableOccupied = errors.New("table is already reserved for this slot")
	ErrTableTooSmall = errors.New("table is too small for the party")
)

type Reservation struct {
	ID                   string          `db:"id"`
	UserID               string          `db:"user_id"`
	GuestName            string          `db:"guest_name"`
	Email                string          `db:"email"`
	Phone                string          `db:"phone"`
	Date                 time.Time       `db:"reservation_date"`
	TimeSlot             string          `db:"time_slot"`
	PartySize            int             `db:"party_size"`
	Occasion             string          `db:"occasion"`
	Notes                string          `db:"notes"`
	TableID              string          `db:"table_id"`
	MenuMode             string          `db:"menu_mode"`
	Subtotal             decimal.Decimal `db:"subtotal"`
	DiscountRate         decimal.Decimal `db:"discount_rate"`
	DiscountAmount       decimal.Decimal `db:"discount_amount"`
	Total                decimal.Decimal `db:"total"`
	PaymentTransactionID string          `db:"payment_transaction_id"`
	Paid                 bool            `db:"paid"`
	Status               string          `db:"status"`
	ReceiptURL           string          `db:"receipt_url"`
	model.Metadata
}

// MenuItem is one ordered line, priced at booking time.
type MenuItem struct {
	ID            string          `db:"id"`
	ReservationID string          `db:"reservation_id"`
	Kind          string          `db:"kind"`
	RefID         string          `db:"ref_id"`
	Name          string          `db:"name"`
	UnitPrice     decimal.Decimal `db:"unit_price"`
	Quantity      int             `db:"quantity"`
}
