package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"tavola/config"
	"tavola/infras/otel"
	"tavola/internal/domains/booking/model"
	"tavola/internal/domains/booking/model/dto"
	"tavola/internal/domains/booking/repository"
	catalogDto "tavola/internal/domains/catalog/model/dto"
	reservationDto "tavola/internal/domains/reservation/model/dto"
	settingDto "tavola/internal/domains/setting/model/dto"
	"tavola/shared/constant"
	"tavola/shared/failure"
	"tavola/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	messageTablesFailed     = "tables could not be loaded, please try again"
	messageSubmissionFailed = "your reservation could not be completed, please try again"
)

// TableSource lists every table with its free flag for a date and time slot.
type TableSource interface {
	Availability(ctx context.Context, date, timeSlot string) ([]model.Table, error)
}

type CatalogSource interface {
	Package(ctx context.Context, id string) (model.Package, error)
	Items(ctx context.Context, query catalogDto.ItemQuery) (catalogDto.ItemsResponse, error)
}

type PaymentSettingsSource interface {
	Payment(ctx context.Context) (settingDto.PaymentSettingResponse, error)
}

type ReservationWriter interface {
	Create(ctx context.Context, submission reservationDto.Submission) (string, error)
}

type LoyaltyAwarder interface {
	Award(ctx context.Context, userID, reservationID string, mode model.Mode) error
}

type Booking interface {
	Start(ctx context.Context) (dto.SessionResponse, error)
	Get(ctx context.Context, id string) (dto.SessionResponse, error)
	Abandon(ctx context.Context, id string) error
	UpdateDetails(ctx context.Context, id string, req dto.DetailsRequest) (dto.SessionResponse, error)
	LoadTables(ctx context.Context, id string) (dto.SessionResponse, error)
	SelectTable(ctx context.Context, id string, req dto.SelectTableRequest) (dto.SessionResponse, error)
	ToggleMode(ctx context.Context, id string, req dto.ToggleModeRequest) (dto.SessionResponse, error)
	SelectPackage(ctx context.Context, id string, req dto.SelectPackageRequest) (dto.SessionResponse, error)
	ChangePackageQuantity(ctx context.Context, id, packageID string, req dto.ChangeQuantityRequest) (dto.SessionResponse, error)
	RemovePackage(ctx context.Context, id, packageID string) (dto.SessionResponse, error)
	SetItems(ctx context.Context, id string, req dto.ItemsRequest) (dto.SessionResponse, error)
	ConfirmPayment(ctx context.Context, id string, req dto.PaymentRequest) (dto.SessionResponse, error)
	ReportPaymentFailure(ctx context.Context, id string, req dto.PaymentFailureRequest) (dto.SessionResponse, error)
	Advance(ctx context.Context, id string) (dto.SessionResponse, error)
	Retreat(ctx context.Context, id string) (dto.SessionResponse, error)
	Submit(ctx context.Context, id string) (dto.SubmitResponse, error)
}

type serviceImpl struct {
	flow         *model.Flow
	repo         repository.Session
	tables       TableSource
	catalog      CatalogSource
	settings     PaymentSettingsSource
	reservations ReservationWriter
	loyalty      LoyaltyAwarder
	cfg          *config.Config
	otel         otel.Otel
}

// NewFlow builds the booking state machine from the discount and party size settings.
func NewFlow(cfg *config.Config) (*model.Flow, error) {
	discount := cfg.Booking.Discount

	policy, err := model.NewDiscountPolicy(discount.StandardRate, discount.PremiumRate, discount.HighThreshold)
	if err != nil {
		return nil, fmt.Errorf("invalid discount policy: %w", err)
	}

	return model.NewFlow(policy, cfg.Booking.MaxPartySize, timezone.Now), nil
}

func New(
	flow *model.Flow,
	repo repository.Session,
	tables TableSource,
	catalog CatalogSource,
	settings PaymentSettingsSource,
	reservations ReservationWriter,
	loyalty LoyaltyAwarder,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		flow:         flow,
		repo:         repo,
		tables:       tables,
		catalog:      catalog,
		settings:     settings,
		reservations: reservations,
		loyalty:      loyalty,
		cfg:          cfg,
		otel:         otel,
	}
}

// transition computes the next state of a locked session.
type transition func(ctx context.Context, state model.State) (model.State, []model.Effect, error)

func (s *serviceImpl) Start(ctx context.Context) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Start")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	settings, err := s.settings.Payment(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load payment settings, using default")

		settings = settingDto.PaymentSettingResponse{Enabled: s.cfg.Payment.Enabled, Default: true}
	}

	state := s.flow.Start(uuid.NewString(), userID, settings.ToDomain())

	if err = s.repo.Save(ctx, state); err != nil {
		log.Error().Err(err).Msg("failed to start booking session")

		return res, fmt.Errorf("failed to start booking session: %w", err)
	}

	scope.SetAttribute("session", state.ID)

	res.FromState(s.flow, state, nil)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	state, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, s.mapError(err, id)
	}

	res.FromState(s.flow, state, nil)

	return res, nil
}

// Abandon drops the draft. Nothing was persisted, so nothing needs undoing.
func (s *serviceImpl) Abandon(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Abandon")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.repo.Get(ctx, id); err != nil {
		return s.mapError(err, id)
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("session", id).Msg("failed to abandon booking session")

		return fmt.Errorf("failed to abandon booking session: %w", err)
	}

	return nil
}

func (s *serviceImpl) UpdateDetails(ctx context.Context, id string, req dto.DetailsRequest) (dto.SessionResponse, error) {
	return s.run(ctx, "UpdateDetails", id, s.events(req.ToEvents()...))
}

// LoadTables refetches the tables of the current query, unless the schedule is incomplete.
func (s *serviceImpl) LoadTables(ctx context.Context, id string) (dto.SessionResponse, error) {
	return s.run(ctx, "LoadTables", id, func(_ context.Context, state model.State) (model.State, []model.Effect, error) {
		if state.Tables.Status == model.TableViewNeedsDetails {
			return state, nil, nil
		}

		return state, []model.Effect{model.FetchTables{Query: state.Tables.Query}}, nil
	})
}

func (s *serviceImpl) SelectTable(ctx context.Context, id string, req dto.SelectTableRequest) (dto.SessionResponse, error) {
	return s.run(ctx, "SelectTable", id, s.events(model.SelectTable{TableID: req.TableID}))
}

func (s *serviceImpl) ToggleMode(ctx context.Context, id string, req dto.ToggleModeRequest) (dto.SessionResponse, error) {
	return s.run(ctx, "ToggleMode", id, s.events(req.ToEvent()))
}

func (s *serviceImpl) SelectPackage(ctx context.Context, id string, req dto.SelectPackageRequest) (dto.SessionResponse, error) {
	return s.run(ctx, "SelectPackage", id, func(ctx context.Context, state model.State) (model.State, []model.Effect, error) {
		pkg, err := s.catalog.Package(ctx, req.PackageID)
		if err != nil {
			return state, nil, err
		}

		return s.flow.Apply(state, model.SelectFixedPackage{Package: pkg})
	})
}

func (s *serviceImpl) ChangePackageQuantity(ctx context.Context, id, packageID string, req dto.ChangeQuantityRequest) (dto.SessionResponse, error) {
	return s.run(ctx, "ChangePackageQuantity", id, s.events(model.ChangeFixedQuantity{PackageID: packageID, Delta: req.Delta}))
}

func (s *serviceImpl) RemovePackage(ctx context.Context, id, packageID string) (dto.SessionResponse, error) {
	return s.run(ctx, "RemovePackage", id, s.events(model.RemoveFixedPackage{PackageID: packageID}))
}

// SetItems replaces the à-la-carte lines with the requested quantities, resolved against
// the current catalog.
func (s *serviceImpl) SetItems(ctx context.Context, id string, req dto.ItemsRequest) (dto.SessionResponse, error) {
	return s.run(ctx, "SetItems", id, func(ctx context.Context, state model.State) (model.State, []model.Effect, error) {
		catalog, err := s.catalog.Items(ctx, catalogDto.ItemQuery{})
		if err != nil {
			return state, nil, err
		}

		picker := model.NewALaCartePicker(catalog.Items, nil)

		for _, item := range req.Items {
			if err := picker.SetQuantity(item.ItemID, item.Quantity); err != nil {
				return state, nil, err
			}
		}

		return s.flow.Apply(state, model.SetALaCarteItems{Lines: picker.Lines()})
	})
}

func (s *serviceImpl) ConfirmPayment(ctx context.Context, id string, req dto.PaymentRequest) (dto.SessionResponse, error) {
	return s.run(ctx, "ConfirmPayment", id, s.events(req.ToEvent()))
}

func (s *serviceImpl) ReportPaymentFailure(ctx context.Context, id string, req dto.PaymentFailureRequest) (dto.SessionResponse, error) {
	return s.run(ctx, "ReportPaymentFailure", id, s.events(model.PaymentFailed{Message: req.Message}))
}

func (s *serviceImpl) Advance(ctx context.Context, id string) (dto.SessionResponse, error) {
	return s.run(ctx, "Advance", id, s.events(model.Advance{}))
}

func (s *serviceImpl) Retreat(ctx context.Context, id string) (dto.SessionResponse, error) {
	return s.run(ctx, "Retreat", id, s.events(model.Retreat{}))
}

// Submit writes the reservation. On a table conflict the guest is sent back to the table
// step and fresh tables are loaded; any other failure keeps the draft for a retry.
func (s *serviceImpl) Submit(ctx context.Context, id string) (res dto.SubmitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var (
		state         model.State
		effects       []model.Effect
		submitErr     error
		reservationID string
	)

	_, _, err = s.locked(ctx, id, func(ctx context.Context, current model.State) (model.State, []model.Effect, error) {
		if err := s.flow.ReadyToSubmit(current); err != nil {
			return current, nil, err
		}

		state = current

		reservationID, submitErr = s.reservations.Create(ctx, reservationDto.Submission{
			SessionID: current.ID,
			UserID:    current.UserID,
			Draft:     current.Draft,
			Pricing:   s.flow.Pricing(current),
		})
		if submitErr == nil {
			return current, nil, nil
		}

		log.Error().Err(submitErr).Str("session", id).Msg("failed to submit reservation")

		failed := model.SubmissionFailed{Message: messageSubmissionFailed}

		var tableErr *model.TableError
		if errors.As(submitErr, &tableErr) {
			failed = model.SubmissionFailed{Issue: tableErr.Issue}
		}

		next, produced, applyErr := s.flow.Apply(current, failed)
		effects = produced

		return next, produced, applyErr
	})
	if err != nil {
		return res, s.mapError(err, id)
	}

	if submitErr != nil {
		s.follow(ctx, id, effects)

		var fail *failure.Failure
		if errors.As(submitErr, &fail) {
			return res, submitErr
		}

		return res, failure.InternalError(errors.New(messageSubmissionFailed)) // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("session", id).Msg("failed to remove submitted booking session")
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.loyalty.Award(c, state.UserID, reservationID, state.Draft.Menu.Mode()); err != nil {
			log.Warn().Err(err).Str("reservation", reservationID).Msg("loyalty award skipped")
		}
	}()

	log.Info().Str("session", id).Str("reservation", reservationID).Msg("reservation submitted")

	res.ReservationID = reservationID

	return res, nil
}

// events applies a fixed list of events in order.
func (s *serviceImpl) events(events ...model.Event) transition {
	return func(_ context.Context, state model.State) (model.State, []model.Effect, error) {
		var effects []model.Effect

		for _, event := range events {
			next, produced, err := s.flow.Apply(state, event)
			if err != nil {
				return state, nil, err
			}

			state = next
			effects = append(effects, produced...)
		}

		return state, effects, nil
	}
}

// run applies fn to the session, then carries out the effects it asked for.
func (s *serviceImpl) run(ctx context.Context, operation, id string, fn transition) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking."+operation)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	state, effects, err := s.locked(ctx, id, fn)
	if err != nil {
		return res, s.mapError(err, id)
	}

	if followed, ok := s.follow(ctx, id, effects); ok {
		state = followed
	}

	res.FromState(s.flow, state, effects)

	return res, nil
}

// locked loads the session under its lock, applies fn and saves the result. When fn
// fails the stored session is left untouched.
func (s *serviceImpl) locked(ctx context.Context, id string, fn transition) (model.State, []model.Effect, error) {
	unlock, err := s.repo.Lock(ctx, id)
	if err != nil {
		return model.State{}, nil, err
	}
	defer unlock()

	state, err := s.repo.Get(ctx, id)
	if err != nil {
		return model.State{}, nil, err
	}

	next, effects, err := fn(ctx, state)
	if err != nil {
		return state, nil, err
	}

	next.UpdatedAt = timezone.Now()

	if err = s.repo.Save(ctx, next); err != nil {
		return state, nil, err
	}

	return next, effects, nil
}

// follow performs the table fetch requested by effects outside the session lock and
// feeds the result back. The reducer drops it if the schedule moved on meanwhile.
func (s *serviceImpl) follow(ctx context.Context, id string, effects []model.Effect) (model.State, bool) {
	var (
		fetch model.FetchTables
		found bool
	)

	for _, effect := range effects {
		if f, ok := effect.(model.FetchTables); ok {
			fetch, found = f, true
		}
	}

	if !found {
		return model.State{}, false
	}

	var event model.Event

	tables, err := s.tables.Availability(ctx, fetch.Query.Date, fetch.Query.TimeSlot)
	if err != nil {
		log.Error().Err(err).Str("session", id).Int64("generation", fetch.Query.Generation).Msg("failed to fetch tables")

		event = model.TablesFailed{Generation: fetch.Query.Generation, Message: messageTablesFailed}
	} else {
		event = model.TablesLoaded{Generation: fetch.Query.Generation, Tables: tables}
	}

	state, _, err := s.locked(ctx, id, s.events(event))
	if err != nil {
		log.Error().Err(err).Str("session", id).Msg("failed to store fetched tables")

		return model.State{}, false
	}

	return state, true
}

var badRequestErrors = []error{
	model.ErrWrongStep,
	model.ErrStepIncomplete,
	model.ErrFirstStep,
	model.ErrLastStep,
	model.ErrTablesStale,
	model.ErrUnknownTable,
	model.ErrUnknownMode,
	model.ErrPackageNotSelected,
	model.ErrUnknownItem,
	model.ErrItemOutOfStock,
	model.ErrMenuLocked,
	model.ErrPaymentAmount,
	model.ErrPaymentNotRequired,
	model.ErrUnknownEvent,
}

func (s *serviceImpl) mapError(err error, id string) error {
	var (
		fail       *failure.Failure
		detailsErr *model.DetailsError
		tableErr   *model.TableError
	)

	switch {
	case errors.As(err, &fail):
		return err
	case errors.As(err, &detailsErr):
		return failure.Invalid(detailsErr.Error(), detailsErr.Fields) // nolint:wrapcheck
	case errors.As(err, &tableErr):
		return fmt.Errorf("%w: %w", failure.Conflict(tableErr.Error()), tableErr)
	case errors.Is(err, model.ErrSessionNotFound):
		return failure.NotFound(model.EntityName) // nolint:wrapcheck
	case errors.Is(err, model.ErrSessionBusy):
		return failure.Conflict(err.Error()) // nolint:wrapcheck
	}

	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return failure.BadRequest(err) // nolint:wrapcheck
		}
	}

	log.Error().Err(err).Str("session", id).Msg("booking session operation failed")

	return fmt.Errorf("booking session operation failed: %w", err)
}
