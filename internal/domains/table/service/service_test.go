package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tavola/config"
	"tavola/infras/otel/mocks"
	bookingModel "tavola/internal/domains/booking/model"
	reservationMocks "tavola/internal/domains/reservation/mocks"
	tableMocks "tavola/internal/domains/table/mocks"
	"tavola/internal/domains/table/model"
	"tavola/internal/domains/table/model/dto"
	"tavola/internal/domains/table/service"
	cacheMocks "tavola/shared/cache/mocks"
)

var floor = []model.DiningTable{
	{ID: "t1", Name: "Window 1", Capacity: 2, Category: "window", Active: true},
	{ID: "t2", Name: "Center 1", Capacity: 4, Category: "center", Active: true},
	{ID: "t3", Name: "Booth 1", Capacity: 6, Category: "booth", Active: true},
}

func TestTableService_Availability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := tableMocks.NewMockDiningTable(ctrl)
	mockReservations := reservationMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockReservations, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		want      []bookingModel.Table
		wantErr   bool
	}{
		{
			name: "tables from the database",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "table:gets", gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(floor, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), "table:gets", gomock.Any(), 3600).
					Return(nil).
					AnyTimes()

				mockReservations.EXPECT().
					OccupiedTableIDs(gomock.Any(), "2025-03-15", "19:30").
					Return([]string{"t3"}, nil)
			},
			want: []bookingModel.Table{
				{ID: "t1", Name: "Window 1", Capacity: 2, Category: bookingModel.TableCategoryWindow, Free: true},
				{ID: "t2", Name: "Center 1", Capacity: 4, Category: bookingModel.TableCategoryCenter, Free: true},
				{ID: "t3", Name: "Booth 1", Capacity: 6, Category: bookingModel.TableCategoryBooth, Free: false},
			},
		},
		{
			name: "tables from the cache",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "table:gets", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						tables, _ := value.(*[]model.DiningTable)
						*tables = floor[:1]

						return nil
					})

				mockReservations.EXPECT().
					OccupiedTableIDs(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			want: []bookingModel.Table{
				{ID: "t1", Name: "Window 1", Capacity: 2, Category: bookingModel.TableCategoryWindow, Free: true},
			},
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "occupancy error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(floor, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockReservations.EXPECT().
					OccupiedTableIDs(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			got, err := svc.Availability(context.Background(), "2025-03-15", "19:30")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestTableService_Classified(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := tableMocks.NewMockDiningTable(ctrl)
	mockReservations := reservationMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, mockReservations, &config.Config{}, mockCache, mocks.NewOtel())

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(floor, nil)
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockReservations.EXPECT().OccupiedTableIDs(gomock.Any(), gomock.Any(), gomock.Any()).Return([]string{"t3"}, nil)

	res, err := svc.Classified(context.Background(), dto.AvailabilityRequest{Date: "2025-03-15", TimeSlot: "19:30", PartySize: 3})
	require.NoError(t, err)

	assert.Equal(t, 3, res.PartySize)
	assert.Equal(t, 1, res.Available)
	require.Len(t, res.Tables, 3)
	assert.Equal(t, bookingModel.AvailabilityInsufficient, res.Tables[0].Availability)
	assert.Equal(t, bookingModel.AvailabilityAvailable, res.Tables[1].Availability)
	assert.Equal(t, bookingModel.AvailabilityOccupied, res.Tables[2].Availability)

	time.Sleep(10 * time.Millisecond)
}
