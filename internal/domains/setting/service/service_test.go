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
	settingMocks "tavola/internal/domains/setting/mocks"
	"tavola/internal/domains/setting/model"
	"tavola/internal/domains/setting/model/dto"
	"tavola/internal/domains/setting/service"
	cacheMocks "tavola/shared/cache/mocks"
)

func TestSettingService_Payment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := settingMocks.NewMockPaymentSetting(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Payment.Enabled = true

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	tests := []struct {
		name        string
		setupMock   func()
		wantEnabled bool
		wantDefault bool
	}{
		{
			name: "stored setting",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "setting:payment", gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.PaymentSetting{ID: model.PaymentSettingID, Enabled: false}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), "setting:payment", gomock.Any(), 3600).
					Return(nil).
					AnyTimes()
			},
			wantEnabled: false,
		},
		{
			name: "no stored row falls back to config",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.PaymentSetting{}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantEnabled: true,
			wantDefault: true,
		},
		{
			name: "database error falls back to config",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.PaymentSetting{}, errors.New("database error"))
			},
			wantEnabled: true,
			wantDefault: true,
		},
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "setting:payment", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						res, _ := value.(*dto.PaymentSettingResponse)
						res.Enabled = false

						return nil
					})
			},
			wantEnabled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Payment(context.Background())
			require.NoError(t, err)

			assert.Equal(t, tt.wantEnabled, res.Enabled)
			assert.Equal(t, tt.wantDefault, res.Default)
			assert.Equal(t, tt.wantEnabled, res.ToDomain().Enabled)

			time.Sleep(10 * time.Millisecond)
		})
	}
}
