package dto

import (
	"tavola/internal/domains/booking/model"

	"github.com/shopspring/decimal"
)

// DetailsRequest carries the whole details step. Completeness is checked when the guest
// advances, so only length limits are enforced here.
type DetailsRequest struct {
	Name      string `json:"name"       validate:"max=120"`
	Email     string `json:"email"      validate:"max=254"`
	Phone     string `json:"phone"      validate:"max=32"`
	Date      string `json:"date"       validate:"max=10"`
	TimeSlot  string `json:"time"       validate:"max=5"`
	PartySize int    `json:"party_size" validate:"min=0,max=1000"`
	Occasion  string `json:"occasion"   validate:"omitempty,oneof=birthday anniversary business date other"`
	Notes     string `json:"notes"      validate:"max=1000"`
}

func (d *DetailsRequest) ToEvents() []model.Event {
	return []model.Event{
		model.SetContact{Contact: model.Contact{Name: d.Name, Email: d.Email, Phone: d.Phone}},
		model.SetSchedule{Schedule: model.Schedule{Date: d.Date, TimeSlot: d.TimeSlot, PartySize: d.PartySize}},
		model.SetOccasion{Occasion: model.Occasion(d.Occasion)},
		model.SetNotes{Notes: d.Notes},
	}
}

type SelectTableRequest struct {
	TableID string `json:"table_id" validate:"required,max=64"`
}

type ToggleModeRequest struct {
	Mode    string `json:"mode"    validate:"required,oneof=at_restaurant fixed_only a_la_carte_only"`
	Checked bool   `json:"checked"`
}

func (t *ToggleModeRequest) ToEvent() model.Event {
	return model.ToggleMode{Mode: model.Mode(t.Mode), Checked: t.Checked}
}

type SelectPackageRequest struct {
	PackageID string `json:"package_id" validate:"required,max=64"`
}

type ChangeQuantityRequest struct {
	Delta int `json:"delta" validate:"required,min=-100,max=100"`
}

type ItemQuantity struct {
	ItemID   string `json:"item_id"  validate:"required,max=64"`
	Quantity int    `json:"quantity" validate:"min=0,max=100"`
}

type ItemsRequest struct {
	Items []ItemQuantity `json:"items" validate:"dive"`
}

type PaymentRequest struct {
	TransactionID string          `json:"transaction_id" validate:"required,max=128"`
	Amount        decimal.Decimal `json:"amount"`
}

func (p *PaymentRequest) ToEvent() model.Event {
	return model.PaymentConfirmed{TransactionID: p.TransactionID, Amount: p.Amount}
}

type PaymentFailureRequest struct {
	Message string `json:"message" validate:"required,max=500"`
}

// SessionResponse is everything the guest needs to render the current step.
type SessionResponse struct {
	ID             string                `json:"id"`
	Step           string                `json:"step"`
	Steps          []model.StepIndicator `json:"steps"`
	CanAdvance     bool                  `json:"can_advance"`
	Draft          model.Draft           `json:"draft"`
	MenuMode       model.Mode            `json:"menu_mode"`
	Pricing        model.Pricing         `json:"pricing"`
	PaymentDue     decimal.Decimal       `json:"payment_due"`
	PaymentEnabled bool                  `json:"payment_enabled"`
	PaymentSkipped bool                  `json:"payment_skipped"`
	Tables         model.TableView       `json:"tables"`
	TableIssue     *TableIssueResponse   `json:"table_issue,omitempty"`
	DetailsErrors  map[string]string     `json:"details_errors,omitempty"`
	PaymentError   string                `json:"payment_error,omitempty"`
	SubmitError    string                `json:"submit_error,omitempty"`
	TimeSlots      []string              `json:"time_slots"`
	Effects        []string              `json:"effects,omitempty"`
}

type TableIssueResponse struct {
	Reason  model.TableIssue `json:"reason"`
	Message string           `json:"message"`
}

// FromState renders state. Details errors are only reported while the guest is on the
// details step.
func (s *SessionResponse) FromState(flow *model.Flow, state model.State, effects []model.Effect) {
	s.ID = state.ID
	s.Step = state.Step.String()
	s.Steps = flow.Indicators(state)
	s.CanAdvance = state.Step != model.StepConfirmation && flow.CanAdvance(state)
	s.Draft = state.Draft
	s.MenuMode = state.Draft.Menu.Mode()
	s.Pricing = flow.Pricing(state)
	s.PaymentDue = flow.PaymentDue(state)
	s.PaymentEnabled = state.PaymentEnabled
	s.PaymentSkipped = state.PaymentSkipped()
	s.Tables = state.Tables
	s.PaymentError = state.PaymentError
	s.SubmitError = state.SubmitError
	s.TimeSlots = model.TimeSlots()

	if state.TableIssue != model.TableIssueNone {
		s.TableIssue = &TableIssueResponse{Reason: state.TableIssue, Message: state.TableIssue.Message()}
	}

	if state.Step == model.StepDetails {
		s.DetailsErrors = flow.DetailsErrors(state.Draft)
	}

	for _, effect := range effects {
		s.Effects = append(s.Effects, effect.EffectName())
	}
}

type SubmitResponse struct {
	ReservationID string `json:"reservation_id"`
}
