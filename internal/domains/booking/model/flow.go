package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Flow is the booking state machine. Apply never mutates the state it is given.
type Flow struct {
	policy       DiscountPolicy
	maxPartySize int
	now          func() time.Time
}

func NewFlow(policy DiscountPolicy, maxPartySize int, now func() time.Time) *Flow {
	return &Flow{
		policy:       policy,
		maxPartySize: maxPartySize,
		now:          now,
	}
}

func (f *Flow) Policy() DiscountPolicy {
	return f.policy
}

// Start opens a session on the details step.
func (f *Flow) Start(id, userID string, settings PaymentSettings) State {
	now := f.now()

	return State{
		ID:             id,
		UserID:         userID,
		Step:           StepDetails,
		PaymentEnabled: settings.Enabled,
		Tables:         TableView{Status: TableViewNeedsDetails},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (f *Flow) Pricing(state State) Pricing {
	return f.policy.Price(state.Draft.Menu)
}

func (f *Flow) Indicators(state State) []StepIndicator {
	return Indicators(state.Step, state.PaymentSkipped())
}

// DetailsErrors validates the details step against today's date.
func (f *Flow) DetailsErrors(draft Draft) map[string]string {
	return ValidateDetails(draft.Contact, draft.Schedule, draft.Occasion, f.now(), f.maxPartySize)
}

// CanAdvance reports whether the current step is complete.
func (f *Flow) CanAdvance(state State) bool {
	switch state.Step {
	case StepDetails:
		return f.DetailsErrors(state.Draft) == nil
	case StepTable:
		return state.TableVerified()
	case StepMenu:
		return true
	case StepPayment:
		return state.PaymentSkipped() || state.Paid()
	default:
		return true
	}
}

// ReadyToSubmit checks every step again before the draft leaves the flow.
func (f *Flow) ReadyToSubmit(state State) error {
	if state.Step != StepConfirmation {
		return ErrWrongStep
	}

	if fields := f.DetailsErrors(state.Draft); fields != nil {
		return &DetailsError{Fields: fields}
	}

	if state.Draft.SelectedTable == nil {
		return fmt.Errorf("%w: no table selected", ErrStepIncomplete)
	}

	if !state.PaymentSkipped() && !state.Paid() {
		return fmt.Errorf("%w: payment is missing", ErrStepIncomplete)
	}

	return nil
}

// Apply runs one transition and returns the next state with the effects it asks for.
// On error the given state is returned unchanged.
func (f *Flow) Apply(state State, event Event) (State, []Effect, error) {
	var (
		next    State
		effects []Effect
		err     error
	)

	switch e := event.(type) {
	case SetContact:
		next, err = f.setContact(state, e)
	case SetSchedule:
		next, effects, err = f.setSchedule(state, e)
	case SetOccasion:
		next, err = f.setOccasion(state, e)
	case SetNotes:
		next, err = f.setNotes(state, e)
	case TablesLoaded:
		next = f.tablesLoaded(state, e)
	case TablesFailed:
		next = f.tablesFailed(state, e)
	case SelectTable:
		next, err = f.selectTable(state, e)
	case ToggleMode:
		next, err = f.changeMenu(state, func(menu MenuSelection) (MenuSelection, error) {
			return menu.ToggleMode(e.Mode, e.Checked)
		})
	case SelectFixedPackage:
		next, err = f.changeMenu(state, func(menu MenuSelection) (MenuSelection, error) {
			return menu.SelectFixedPackage(e.Package), nil
		})
	case ChangeFixedQuantity:
		next, err = f.changeMenu(state, func(menu MenuSelection) (MenuSelection, error) {
			return menu.ChangeFixedQuantity(e.PackageID, e.Delta)
		})
	case RemoveFixedPackage:
		next, err = f.changeMenu(state, func(menu MenuSelection) (MenuSelection, error) {
			return menu.RemoveFixedPackage(e.PackageID), nil
		})
	case SetALaCarteItems:
		next, err = f.changeMenu(state, func(menu MenuSelection) (MenuSelection, error) {
			return menu.SetALaCarteItems(e.Lines), nil
		})
	case PaymentSettingsLoaded:
		next = state
		next.PaymentEnabled = e.Settings.Enabled
	case PaymentConfirmed:
		next, effects, err = f.paymentConfirmed(state, e)
	case PaymentFailed:
		next, err = f.paymentFailed(state, e)
	case Advance:
		next, effects, err = f.advance(state)
	case Retreat:
		next, effects, err = f.retreat(state)
	case SubmissionFailed:
		next, effects, err = f.submissionFailed(state, e)
	default:
		err = fmt.Errorf("%w: %T", ErrUnknownEvent, event)
	}

	if err != nil {
		return state, nil, err
	}

	return next, effects, nil
}

func (f *Flow) requireStep(state State, step Step) error {
	if state.Step != step {
		return fmt.Errorf("%w: expected %s, at %s", ErrWrongStep, step, state.Step)
	}

	return nil
}

func (f *Flow) setContact(state State, e SetContact) (State, error) {
	if err := f.requireStep(state, StepDetails); err != nil {
		return state, err
	}

	next := state
	next.Draft.Contact = Contact{
		Name:  strings.TrimSpace(e.Contact.Name),
		Email: strings.TrimSpace(e.Contact.Email),
		Phone: strings.TrimSpace(e.Contact.Phone),
	}

	return next, nil
}

func (f *Flow) setOccasion(state State, e SetOccasion) (State, error) {
	if err := f.requireStep(state, StepDetails); err != nil {
		return state, err
	}

	next := state
	next.Draft.Occasion = e.Occasion

	return next, nil
}

func (f *Flow) setNotes(state State, e SetNotes) (State, error) {
	if err := f.requireStep(state, StepDetails); err != nil {
		return state, err
	}

	next := state
	next.Draft.Notes = strings.TrimSpace(e.Notes)

	return next, nil
}

// setSchedule starts a new table query whenever date, time or party size change. When
// only the party size moves the last table list is reclassified in place.
func (f *Flow) setSchedule(state State, e SetSchedule) (State, []Effect, error) {
	if err := f.requireStep(state, StepDetails); err != nil {
		return state, nil, err
	}

	previous := state.Draft.Schedule
	if previous == e.Schedule {
		return state, nil, nil
	}

	next := state
	next.Draft.Schedule = e.Schedule
	query := TableQuery{
		Generation: state.Tables.Query.Generation + 1,
		Date:       e.Schedule.Date,
		TimeSlot:   e.Schedule.TimeSlot,
		PartySize:  e.Schedule.PartySize,
	}

	if ref := next.Draft.SelectedTable; ref != nil && ref.Capacity < e.Schedule.PartySize {
		next.Draft.SelectedTable = nil
		next.TableIssue = TableIssueTooSmall
	}

	if !e.Schedule.Complete() {
		next.Tables = TableView{Status: TableViewNeedsDetails, Query: query}

		return next, nil, nil
	}

	reusable := previous.SameSlot(e.Schedule) &&
		(state.Tables.Status == TableViewReady || state.Tables.Status == TableViewEmpty)
	if reusable {
		return f.applyTables(next, query, state.Tables.Tables()), nil, nil
	}

	next.Tables = TableView{Status: TableViewLoading, Query: query}

	return next, []Effect{FetchTables{Query: query}}, nil
}

func (f *Flow) tablesLoaded(state State, e TablesLoaded) State {
	if e.Generation != state.Tables.Query.Generation || state.Tables.Status == TableViewNeedsDetails {
		return state
	}

	return f.applyTables(state, state.Tables.Query, e.Tables)
}

// applyTables classifies tables for query and revalidates the held table against them.
func (f *Flow) applyTables(state State, query TableQuery, tables []Table) State {
	next := state
	status := TableViewReady

	if len(tables) == 0 {
		status = TableViewEmpty
	}

	next.Tables = TableView{
		Status:  status,
		Query:   query,
		Options: ClassifyTables(tables, query.PartySize),
	}

	if ref := next.Draft.SelectedTable; ref != nil {
		if issue := Revalidate(*ref, tables, query.PartySize); issue != TableIssueNone {
			next.Draft.SelectedTable = nil
			next.TableIssue = issue

			return next
		}

		verified := *ref
		verified.VerifiedFor = query.Generation
		next.Draft.SelectedTable = &verified
	}

	return next
}

func (f *Flow) tablesFailed(state State, e TablesFailed) State {
	if e.Generation != state.Tables.Query.Generation || state.Tables.Status == TableViewNeedsDetails {
		return state
	}

	next := state
	next.Tables = TableView{
		Status: TableViewError,
		Query:  state.Tables.Query,
		Error:  e.Message,
	}

	return next
}

func (f *Flow) selectTable(state State, e SelectTable) (State, error) {
	if err := f.requireStep(state, StepTable); err != nil {
		return state, err
	}

	if state.Tables.Status != TableViewReady {
		return state, ErrTablesStale
	}

	option, ok := state.Tables.Option(e.TableID)
	if !ok {
		return state, fmt.Errorf("%w: %s", ErrUnknownTable, e.TableID)
	}

	switch option.Availability {
	case AvailabilityOccupied:
		return state, &TableError{TableID: option.ID, Issue: TableIssueOccupied}
	case AvailabilityInsufficient:
		return state, &TableError{TableID: option.ID, Issue: TableIssueTooSmall}
	}

	next := state
	next.Draft.SelectedTable = &TableRef{
		ID:          option.ID,
		Name:        option.Name,
		Capacity:    option.Capacity,
		Category:    option.Category,
		VerifiedFor: state.Tables.Query.Generation,
	}
	next.TableIssue = TableIssueNone

	return next, nil
}

func (f *Flow) changeMenu(state State, change func(MenuSelection) (MenuSelection, error)) (State, error) {
	if err := f.requireStep(state, StepMenu); err != nil {
		return state, err
	}

	if state.Draft.Payment != nil {
		return state, ErrMenuLocked
	}

	menu, err := change(state.Draft.Menu)
	if err != nil {
		return state, err
	}

	next := state
	next.Draft.Menu = menu

	return next, nil
}

func (f *Flow) paymentConfirmed(state State, e PaymentConfirmed) (State, []Effect, error) {
	if err := f.requireStep(state, StepPayment); err != nil {
		return state, nil, err
	}

	if state.PaymentSkipped() {
		return state, nil, ErrPaymentNotRequired
	}

	total := f.Pricing(state).Total
	if !e.Amount.Equal(total) {
		return state, nil, fmt.Errorf("%w: paid %s, total %s", ErrPaymentAmount, e.Amount, total)
	}

	next := state
	next.Draft.Payment = &PaymentResult{
		TransactionID: e.TransactionID,
		Amount:        e.Amount,
		Paid:          true,
	}
	next.PaymentError = ""
	next.Step = StepConfirmation

	return next, []Effect{ScrollToTop{}}, nil
}

func (f *Flow) paymentFailed(state State, e PaymentFailed) (State, error) {
	if err := f.requireStep(state, StepPayment); err != nil {
		return state, err
	}

	next := state
	next.PaymentError = e.Message

	return next, nil
}

func (f *Flow) advance(state State) (State, []Effect, error) {
	switch state.Step {
	case StepConfirmation:
		return state, nil, ErrLastStep
	case StepDetails:
		if fields := f.DetailsErrors(state.Draft); fields != nil {
			return state, nil, &DetailsError{Fields: fields}
		}
	case StepTable:
		if state.Draft.SelectedTable != nil && !state.TableVerified() {
			return state, nil, ErrTablesStale
		}
	}

	if !f.CanAdvance(state) {
		return state, nil, fmt.Errorf("%w: %s", ErrStepIncomplete, state.Step)
	}

	next := state
	next.Step = state.Step + 1

	if next.Step == StepPayment && state.PaymentSkipped() {
		next.Step = StepConfirmation
	}

	effects := []Effect{ScrollToTop{}}
	if next.Step == StepTable && next.Tables.Status == TableViewLoading {
		effects = append(effects, FetchTables{Query: next.Tables.Query})
	}

	return next, effects, nil
}

func (f *Flow) retreat(state State) (State, []Effect, error) {
	if state.Step == StepDetails {
		return state, nil, ErrFirstStep
	}

	next := state
	next.Step = state.Step - 1

	if next.Step == StepPayment && state.PaymentSkipped() {
		next.Step = StepMenu
	}

	next.SubmitError = ""

	return next, []Effect{ScrollToTop{}}, nil
}

// submissionFailed keeps the draft. A table conflict sends the guest back to pick
// another table.
func (f *Flow) submissionFailed(state State, e SubmissionFailed) (State, []Effect, error) {
	if err := f.requireStep(state, StepConfirmation); err != nil {
		return state, nil, err
	}

	next := state

	if e.Issue == TableIssueNone {
		next.SubmitError = e.Message

		return next, nil, nil
	}

	query := state.Tables.Query
	query.Generation++

	next.Draft.SelectedTable = nil
	next.TableIssue = e.Issue
	next.SubmitError = ""
	next.Step = StepTable
	next.Tables = TableView{Status: TableViewLoading, Query: query}

	return next, []Effect{ScrollToTop{}, FetchTables{Query: query}}, nil
}

// PaymentDue is the amount the payment step asks for.
func (f *Flow) PaymentDue(state State) decimal.Decimal {
	if state.PaymentSkipped() {
		return decimal.Zero
	}

	return f.Pricing(state).Total
}
