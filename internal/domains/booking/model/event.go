package model

import "github.com/shopspring/decimal"

// Event is an input to Flow.Apply.
type Event interface {
	EventName() string
}

type (
	SetContact struct {
		Contact Contact
	}

	SetSchedule struct {
		Schedule Schedule
	}

	SetOccasion struct {
		Occasion Occasion
	}

	SetNotes struct {
		Notes string
	}

	// TablesLoaded delivers the tables fetched for the query with the given generation.
	TablesLoaded struct {
		Generation int64
		Tables     []Table
	}

	TablesFailed struct {
		Generation int64
		Message    string
	}

	SelectTable struct {
		TableID string
	}

	ToggleMode struct {
		Mode    Mode
		Checked bool
	}

	SelectFixedPackage struct {
		Package Package
	}

	ChangeFixedQuantity struct {
		PackageID string
		Delta     int
	}

	RemoveFixedPackage struct {
		PackageID string
	}

	SetALaCarteItems struct {
		Lines []ItemLine
	}

	PaymentSettingsLoaded struct {
		Settings PaymentSettings
	}

	PaymentConfirmed struct {
		TransactionID string
		Amount        decimal.Decimal
	}

	PaymentFailed struct {
		Message string
	}

	Advance struct{}

	Retreat struct{}

	// SubmissionFailed reports a rejected submission. A non-empty Issue means the held
	// table was taken or is too small.
	SubmissionFailed struct {
		Issue   TableIssue
		Message string
	}
)

func (SetContact) EventName() string            { return "set_contact" }
func (SetSchedule) EventName() string           { return "set_schedule" }
func (SetOccasion) EventName() string           { return "set_occasion" }
func (SetNotes) EventName() string              { return "set_notes" }
func (TablesLoaded) EventName() string          { return "tables_loaded" }
func (TablesFailed) EventName() string          { return "tables_failed" }
func (SelectTable) EventName() string           { return "select_table" }
func (ToggleMode) EventName() string            { return "toggle_mode" }
func (SelectFixedPackage) EventName() string    { return "select_fixed_package" }
func (ChangeFixedQuantity) EventName() string   { return "change_fixed_quantity" }
func (RemoveFixedPackage) EventName() string    { return "remove_fixed_package" }
func (SetALaCarteItems) EventName() string      { return "set_a_la_carte_items" }
func (PaymentSettingsLoaded) EventName() string { return "payment_settings_loaded" }
func (PaymentConfirmed) EventName() string      { return "payment_confirmed" }
func (PaymentFailed) EventName() string         { return "payment_failed" }
func (Advance) EventName() string               { return "advance" }
func (Retreat) EventName() string               { return "retreat" }
func (SubmissionFailed) EventName() string      { return "submission_failed" }

// Effect is work the caller should perform after a transition.
type Effect interface {
	EffectName() string
}

// ScrollToTop asks the presentation layer to bring the top of the flow into view.
type ScrollToTop struct{}

// FetchTables asks the caller to load tables for Query and report back with
// TablesLoaded or TablesFailed.
type FetchTables struct {
	Query TableQuery
}

func (ScrollToTop) EffectName() string { return "scroll_to_top" }
func (FetchTables) EffectName() string { return "fetch_tables" }
