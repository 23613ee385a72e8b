package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tavola/config"
	"tavola/infras/otel/mocks"
	bookingMocks "tavola/internal/domains/booking/mocks"
	"tavola/internal/domains/booking/model"
	"tavola/internal/domains/booking/model/dto"
	"tavola/internal/domains/booking/service"
	catalogDto "tavola/internal/domains/catalog/model/dto"
	reservationDto "tavola/internal/domains/reservation/model/dto"
	settingDto "tavola/internal/domains/setting/model/dto"
	"tavola/shared/constant"
	"tavola/shared/failure"
)

var (
	today = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	details = dto.DetailsRequest{
		Name:      "Giulia Rossi",
		Email:     "giulia@example.com",
		Phone:     "+39 055 123456",
		Date:      "2025-03-15",
		TimeSlot:  "19:30",
		PartySize: 4,
		Occasion:  "birthday",
	}

	floor = []model.Table{
		{ID: "t1", Name: "Window 1", Capacity: 2, Category: model.TableCategoryWindow, Free: true},
		{ID: "t2", Name: "Center 1", Capacity: 4, Category: model.TableCategoryCenter, Free: true},
		{ID: "t3", Name: "Booth 1", Capacity: 6, Category: model.TableCategoryBooth, Free: false},
	}

	tastingMenu = model.Package{ID: "p1", Name: "Tasting menu", Price: decimal.NewFromInt(500)}

	catalog = catalogDto.ItemsResponse{
		Items: []model.Item{
			{ID: "i1", Name: "Bruschetta", Price: decimal.NewFromInt(100), CategoryID: "starters", InStock: true},
			{ID: "i3", Name: "Ossobuco", Price: decimal.NewFromInt(420), CategoryID: "mains", InStock: false},
		},
		Categories: []string{"starters", "mains"},
	}
)

// fixture backs the session repository with a map holding the JSON the Redis store
// would hold.
type fixture struct {
	svc          service.Booking
	tables       *bookingMocks.MockTableSource
	catalog      *bookingMocks.MockCatalogSource
	settings     *bookingMocks.MockPaymentSettingsSource
	reservations *bookingMocks.MockReservationWriter
	loyalty      *bookingMocks.MockLoyaltyAwarder

	mu       sync.Mutex
	sessions map[string][]byte
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := bookingMocks.NewMockSession(ctrl)

	f := &fixture{
		tables:       bookingMocks.NewMockTableSource(ctrl),
		catalog:      bookingMocks.NewMockCatalogSource(ctrl),
		settings:     bookingMocks.NewMockPaymentSettingsSource(ctrl),
		reservations: bookingMocks.NewMockReservationWriter(ctrl),
		loyalty:      bookingMocks.NewMockLoyaltyAwarder(ctrl),
		sessions:     map[string][]byte{},
	}

	repo.EXPECT().
		Lock(gomock.Any(), gomock.Any()).
		Return(func() {}, nil).
		AnyTimes()

	repo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, state model.State) error {
			body, err := json.Marshal(state)
			require.NoError(t, err)

			f.mu.Lock()
			defer f.mu.Unlock()

			f.sessions[state.ID] = body

			return nil
		}).
		AnyTimes()

	repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string) (model.State, error) {
			f.mu.Lock()
			defer f.mu.Unlock()

			var state model.State

			body, ok := f.sessions[id]
			if !ok {
				return state, model.ErrSessionNotFound
			}

			require.NoError(t, json.Unmarshal(body, &state))

			return state, nil
		}).
		AnyTimes()

	repo.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string) error {
			f.mu.Lock()
			defer f.mu.Unlock()

			delete(f.sessions, id)

			return nil
		}).
		AnyTimes()

	cfg := &config.Config{}
	cfg.Payment.Enabled = true

	flow := model.NewFlow(model.DefaultDiscountPolicy(), 20, func() time.Time { return today })

	f.svc = service.New(flow, repo, f.tables, f.catalog, f.settings, f.reservations, f.loyalty, cfg, mocks.NewOtel())

	return f
}

func (f *fixture) start(t *testing.T, paymentEnabled bool) string {
	t.Helper()

	f.settings.EXPECT().
		Payment(gomock.Any()).
		Return(settingDto.PaymentSettingResponse{Enabled: paymentEnabled}, nil)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")

	res, err := f.svc.Start(ctx)
	require.NoError(t, err)

	return res.ID
}

// atMenu walks a new session through details and table selection.
func (f *fixture) atMenu(t *testing.T, paymentEnabled bool) string {
	t.Helper()

	ctx := context.Background()
	id := f.start(t, paymentEnabled)

	f.tables.EXPECT().Availability(gomock.Any(), "2025-03-15", "19:30").Return(floor, nil)

	_, err := f.svc.UpdateDetails(ctx, id, details)
	require.NoError(t, err)

	_, err = f.svc.Advance(ctx, id)
	require.NoError(t, err)

	_, err = f.svc.SelectTable(ctx, id, dto.SelectTableRequest{TableID: "t2"})
	require.NoError(t, err)

	res, err := f.svc.Advance(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "menu", res.Step)

	return id
}

func TestBookingService_Start(t *testing.T) {
	f := newFixture(t)

	f.settings.EXPECT().
		Payment(gomock.Any()).
		Return(settingDto.PaymentSettingResponse{}, errors.New("database error"))

	res, err := f.svc.Start(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "details", res.Step)
	assert.True(t, res.PaymentEnabled)
	assert.False(t, res.CanAdvance)
	assert.Equal(t, model.TableViewNeedsDetails, res.Tables.Status)
	assert.Contains(t, res.DetailsErrors, "name")
	assert.Len(t, res.Steps, 5)
	assert.Contains(t, res.TimeSlots, "19:30")
}

func TestBookingService_CompleteReservation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id := f.start(t, true)

	f.tables.EXPECT().Availability(gomock.Any(), "2025-03-15", "19:30").Return(floor, nil)

	res, err := f.svc.UpdateDetails(ctx, id, details)
	require.NoError(t, err)
	assert.Equal(t, model.TableViewReady, res.Tables.Status)
	assert.Contains(t, res.Effects, "fetch_tables")
	assert.Empty(t, res.DetailsErrors)
	assert.True(t, res.CanAdvance)

	res, err = f.svc.Advance(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "table", res.Step)
	assert.Equal(t, []string{"scroll_to_top"}, res.Effects)

	res, err = f.svc.SelectTable(ctx, id, dto.SelectTableRequest{TableID: "t2"})
	require.NoError(t, err)
	require.NotNil(t, res.Draft.SelectedTable)
	assert.Equal(t, "t2", res.Draft.SelectedTable.ID)

	_, err = f.svc.Advance(ctx, id)
	require.NoError(t, err)

	f.catalog.EXPECT().Package(gomock.Any(), "p1").Return(tastingMenu, nil)

	_, err = f.svc.SelectPackage(ctx, id, dto.SelectPackageRequest{PackageID: "p1"})
	require.NoError(t, err)

	f.catalog.EXPECT().Items(gomock.Any(), catalogDto.ItemQuery{}).Return(catalog, nil)

	res, err = f.svc.SetItems(ctx, id, dto.ItemsRequest{Items: []dto.ItemQuantity{{ItemID: "i1", Quantity: 2}}})
	require.NoError(t, err)
	assert.Equal(t, model.ModeMixed, res.MenuMode)
	assert.True(t, res.Pricing.Subtotal.Equal(decimal.NewFromInt(700)))
	assert.True(t, res.Pricing.Total.Equal(decimal.NewFromInt(630)))

	res, err = f.svc.Advance(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "payment", res.Step)
	assert.True(t, res.PaymentDue.Equal(decimal.NewFromInt(630)))

	res, err = f.svc.ConfirmPayment(ctx, id, dto.PaymentRequest{TransactionID: "tx-1", Amount: decimal.NewFromInt(630)})
	require.NoError(t, err)
	assert.Equal(t, "confirmation", res.Step)

	awarded := make(chan struct{})

	f.reservations.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, submission reservationDto.Submission) (string, error) {
			assert.Equal(t, id, submission.SessionID)
			assert.Equal(t, "user-1", submission.UserID)
			assert.Equal(t, "t2", submission.Draft.SelectedTable.ID)
			assert.True(t, submission.Pricing.Total.Equal(decimal.NewFromInt(630)))
			assert.Equal(t, "tx-1", submission.Draft.Payment.TransactionID)

			return "r1", nil
		})

	f.loyalty.EXPECT().
		Award(gomock.Any(), "user-1", "r1", model.ModeMixed).
		DoAndReturn(func(context.Context, string, string, model.Mode) error {
			close(awarded)

			return nil
		})

	submitted, err := f.svc.Submit(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "r1", submitted.ReservationID)

	select {
	case <-awarded:
	case <-time.After(time.Second):
		t.Fatal("loyalty points were not awarded")
	}

	_, err = f.svc.Get(ctx, id)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBookingService_AtRestaurantSkipsPayment(t *testing.T) {
	f := newFixture(t)

	id := f.atMenu(t, true)

	res, err := f.svc.Advance(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, "confirmation", res.Step)
	assert.True(t, res.PaymentSkipped)
	assert.Equal(t, model.StepStatusSkipped, res.Steps[3].Status)
	assert.True(t, res.PaymentDue.IsZero())

	res, err = f.svc.Retreat(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "menu", res.Step)
}

func TestBookingService_SubmitConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id := f.atMenu(t, false)

	_, err := f.svc.Advance(ctx, id)
	require.NoError(t, err)

	f.reservations.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return("", fmt.Errorf("%w: %w", failure.Conflict("reservation conflict"), &model.TableError{TableID: "t2", Issue: model.TableIssueOccupied}))

	taken := []model.Table{floor[0], {ID: "t2", Name: "Center 1", Capacity: 4, Category: model.TableCategoryCenter, Free: false}, floor[2]}
	f.tables.EXPECT().Availability(gomock.Any(), "2025-03-15", "19:30").Return(taken, nil)

	_, err = f.svc.Submit(ctx, id)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	var tableErr *model.TableError
	require.ErrorAs(t, err, &tableErr)
	assert.Equal(t, model.TableIssueOccupied, tableErr.Issue)

	res, err := f.svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "table", res.Step)
	assert.Nil(t, res.Draft.SelectedTable)
	require.NotNil(t, res.TableIssue)
	assert.Equal(t, model.TableIssueOccupied, res.TableIssue.Reason)
	assert.Equal(t, model.TableViewReady, res.Tables.Status)

	option, ok := res.Tables.Option("t2")
	require.True(t, ok)
	assert.Equal(t, model.AvailabilityOccupied, option.Availability)

	res, err = f.svc.SelectTable(ctx, id, dto.SelectTableRequest{TableID: "t3"})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestBookingService_SubmitFailureKeepsDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id := f.atMenu(t, false)

	_, err := f.svc.Advance(ctx, id)
	require.NoError(t, err)

	f.reservations.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return("", errors.New("connection reset by peer"))

	_, err = f.svc.Submit(ctx, id)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.NotContains(t, err.Error(), "connection reset")

	res, err := f.svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "confirmation", res.Step)
	assert.NotEmpty(t, res.SubmitError)
	require.NotNil(t, res.Draft.SelectedTable)
	assert.Equal(t, "t2", res.Draft.SelectedTable.ID)
	assert.Equal(t, "Giulia Rossi", res.Draft.Contact.Name)
}

func TestBookingService_SubmitBeforeConfirmation(t *testing.T) {
	f := newFixture(t)

	id := f.atMenu(t, true)

	_, err := f.svc.Submit(context.Background(), id)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestBookingService_DetailsValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id := f.start(t, true)

	req := details
	req.Name = ""
	req.Date = "2025-03-01"

	f.tables.EXPECT().Availability(gomock.Any(), gomock.Any(), gomock.Any()).Return(floor, nil)

	res, err := f.svc.UpdateDetails(ctx, id, req)
	require.NoError(t, err)
	assert.Contains(t, res.DetailsErrors, "name")
	assert.Contains(t, res.DetailsErrors, "date")
	assert.False(t, res.CanAdvance)

	_, err = f.svc.Advance(ctx, id)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	fields := failure.GetFields(err)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "date")

	_, err = f.svc.SelectTable(ctx, id, dto.SelectTableRequest{TableID: "t2"})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestBookingService_TableFetchRetry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id := f.start(t, true)

	res, err := f.svc.LoadTables(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.TableViewNeedsDetails, res.Tables.Status)

	f.tables.EXPECT().Availability(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

	res, err = f.svc.UpdateDetails(ctx, id, details)
	require.NoError(t, err)
	assert.Equal(t, model.TableViewError, res.Tables.Status)
	assert.NotEmpty(t, res.Tables.Error)

	f.tables.EXPECT().Availability(gomock.Any(), gomock.Any(), gomock.Any()).Return(floor, nil)

	res, err = f.svc.LoadTables(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.TableViewReady, res.Tables.Status)
	assert.Len(t, res.Tables.Options, 3)
}

func TestBookingService_MenuErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id := f.atMenu(t, true)

	tests := []struct {
		name      string
		setupMock func()
		call      func() error
		wantCode  int
	}{
		{
			name: "out of stock item",
			setupMock: func() {
				f.catalog.EXPECT().Items(gomock.Any(), gomock.Any()).Return(catalog, nil)
			},
			call: func() error {
				_, err := f.svc.SetItems(ctx, id, dto.ItemsRequest{Items: []dto.ItemQuantity{{ItemID: "i3", Quantity: 1}}})

				return err
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown item",
			setupMock: func() {
				f.catalog.EXPECT().Items(gomock.Any(), gomock.Any()).Return(catalog, nil)
			},
			call: func() error {
				_, err := f.svc.SetItems(ctx, id, dto.ItemsRequest{Items: []dto.ItemQuantity{{ItemID: "i9", Quantity: 1}}})

				return err
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "catalog unavailable",
			setupMock: func() {
				f.catalog.EXPECT().Items(gomock.Any(), gomock.Any()).Return(catalogDto.ItemsResponse{}, errors.New("database error"))
			},
			call: func() error {
				_, err := f.svc.SetItems(ctx, id, dto.ItemsRequest{})

				return err
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "unknown package",
			setupMock: func() {
				f.catalog.EXPECT().Package(gomock.Any(), "p9").Return(model.Package{}, failure.NotFound("menu_package"))
			},
			call: func() error {
				_, err := f.svc.SelectPackage(ctx, id, dto.SelectPackageRequest{PackageID: "p9"})

				return err
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "quantity of a package that is not selected",
			setupMock: func() {},
			call: func() error {
				_, err := f.svc.ChangePackageQuantity(ctx, id, "p1", dto.ChangeQuantityRequest{Delta: 1})

				return err
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "unknown mode",
			setupMock: func() {},
			call: func() error {
				_, err := f.svc.ToggleMode(ctx, id, dto.ToggleModeRequest{Mode: "buffet", Checked: true})

				return err
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := tt.call()
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}

	res, err := f.svc.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, res.Draft.Menu.IsEmpty())
}

func TestBookingService_PackageQuantities(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id := f.atMenu(t, true)

	f.catalog.EXPECT().Package(gomock.Any(), "p1").Return(tastingMenu, nil).Times(2)

	_, err := f.svc.SelectPackage(ctx, id, dto.SelectPackageRequest{PackageID: "p1"})
	require.NoError(t, err)

	res, err := f.svc.SelectPackage(ctx, id, dto.SelectPackageRequest{PackageID: "p1"})
	require.NoError(t, err)
	assert.True(t, res.Pricing.Subtotal.Equal(decimal.NewFromInt(1000)))

	res, err = f.svc.ChangePackageQuantity(ctx, id, "p1", dto.ChangeQuantityRequest{Delta: -1})
	require.NoError(t, err)
	assert.Equal(t, model.ModeFixedOnly, res.MenuMode)
	assert.True(t, res.Pricing.Total.Equal(decimal.NewFromInt(450)))

	res, err = f.svc.RemovePackage(ctx, id, "p1")
	require.NoError(t, err)
	assert.Equal(t, model.ModeAtRestaurant, res.MenuMode)
	assert.True(t, res.Pricing.Total.IsZero())

	res, err = f.svc.ToggleMode(ctx, id, dto.ToggleModeRequest{Mode: "a_la_carte_only", Checked: true})
	require.NoError(t, err)
	assert.Equal(t, model.ModeAtRestaurant, res.MenuMode)
}

func TestBookingService_Payment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id := f.atMenu(t, true)

	f.catalog.EXPECT().Package(gomock.Any(), "p1").Return(tastingMenu, nil)

	_, err := f.svc.SelectPackage(ctx, id, dto.SelectPackageRequest{PackageID: "p1"})
	require.NoError(t, err)

	res, err := f.svc.Advance(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "payment", res.Step)
	assert.False(t, res.CanAdvance)

	_, err = f.svc.ConfirmPayment(ctx, id, dto.PaymentRequest{TransactionID: "tx-1", Amount: decimal.NewFromInt(500)})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.ErrorIs(t, err, model.ErrPaymentAmount)

	res, err = f.svc.ReportPaymentFailure(ctx, id, dto.PaymentFailureRequest{Message: "card declined"})
	require.NoError(t, err)
	assert.Equal(t, "card declined", res.PaymentError)
	assert.Equal(t, "payment", res.Step)

	res, err = f.svc.ConfirmPayment(ctx, id, dto.PaymentRequest{TransactionID: "tx-2", Amount: decimal.NewFromInt(450)})
	require.NoError(t, err)
	assert.Equal(t, "confirmation", res.Step)
	assert.Empty(t, res.PaymentError)
}

func TestBookingService_Abandon(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id := f.start(t, true)

	require.NoError(t, f.svc.Abandon(ctx, id))

	_, err := f.svc.Get(ctx, id)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	err = f.svc.Abandon(ctx, id)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBookingService_SessionBusy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := bookingMocks.NewMockSession(ctrl)
	repo.EXPECT().Lock(gomock.Any(), "s1").Return(nil, model.ErrSessionBusy)

	flow := model.NewFlow(model.DefaultDiscountPolicy(), 20, func() time.Time { return today })
	svc := service.New(flow, repo, nil, nil, nil, nil, nil, &config.Config{}, mocks.NewOtel())

	_, err := svc.Advance(context.Background(), "s1")
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestNewFlow(t *testing.T) {
	cfg := &config.Config{}
	cfg.Booking.MaxPartySize = 20
	cfg.Booking.Discount.StandardRate = "0.10"
	cfg.Booking.Discount.PremiumRate = "0.15"
	cfg.Booking.Discount.HighThreshold = "3000"

	flow, err := service.NewFlow(cfg)
	require.NoError(t, err)
	assert.True(t, flow.Policy().PremiumRate.Equal(decimal.RequireFromString("0.15")))

	cfg.Booking.Discount.PremiumRate = "fifteen"

	_, err = service.NewFlow(cfg)
	assert.Error(t, err)
}
