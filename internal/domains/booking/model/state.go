package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentResult struct {
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	Paid          bool            `json:"paid"`
}

type PaymentSettings struct {
	Enabled bool `json:"enabled"`
}

// Draft is the reservation being assembled. Nothing in it is persisted before submission.
type Draft struct {
	Contact       Contact        `json:"contact"`
	Schedule      Schedule       `json:"schedule"`
	Occasion      Occasion       `json:"occasion,omitempty"`
	Notes         string         `json:"notes,omitempty"`
	SelectedTable *TableRef      `json:"selected_table,omitempty"`
	Menu          MenuSelection  `json:"menu"`
	Payment       *PaymentResult `json:"payment,omitempty"`
}

// State is one booking session: the current step, the draft and what the guest has
// been told about tables, payment and submission.
type State struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id,omitempty"`
	Step           Step       `json:"step"`
	Draft          Draft      `json:"draft"`
	PaymentEnabled bool       `json:"payment_enabled"`
	Tables         TableView  `json:"tables"`
	TableIssue     TableIssue `json:"table_issue,omitempty"`
	PaymentError   string     `json:"payment_error,omitempty"`
	SubmitError    string     `json:"submit_error,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// PaymentSkipped reports whether the payment step is bypassed for this draft.
func (s State) PaymentSkipped() bool {
	return !s.PaymentEnabled || s.Draft.Menu.Mode() == ModeAtRestaurant
}

func (s State) Paid() bool {
	return s.Draft.Payment != nil && s.Draft.Payment.Paid
}

// TableVerified reports whether the held table was checked against the current query.
func (s State) TableVerified() bool {
	ref := s.Draft.SelectedTable

	return ref != nil && ref.VerifiedFor == s.Tables.Query.Generation
}
