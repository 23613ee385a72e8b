package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tavola/config"
	"tavola/infras/otel/mocks"
	bookingModel "tavola/internal/domains/booking/model"
	catalogMocks "tavola/internal/domains/catalog/mocks"
	"tavola/internal/domains/catalog/model"
	"tavola/internal/domains/catalog/model/dto"
	"tavola/internal/domains/catalog/service"
	cacheMocks "tavola/shared/cache/mocks"
	gDto "tavola/shared/dto"
	"tavola/shared/failure"
)

var (
	packages = []model.MenuPackage{
		{ID: "p1", Name: "Tasting menu", Price: decimal.NewFromInt(500), SortOrder: 1, Active: true},
		{ID: "p2", Name: "Chef's menu", Price: decimal.NewFromInt(1200), SortOrder: 2, Active: true},
	}
	items = []model.MenuItem{
		{ID: "i1", Name: "Bruschetta", Price: decimal.NewFromInt(100), CategoryID: "starters", InStock: true, Active: true},
		{ID: "i2", Name: "Tiramisu", Price: decimal.NewFromInt(80), CategoryID: "desserts", InStock: true, Active: true},
		{ID: "i4", Name: "Burrata", Price: decimal.NewFromInt(120), CategoryID: "starters", InStock: true, Active: true},
	}
)

func TestCatalogService_Packages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPackages := catalogMocks.NewMockPackage(ctrl)
	mockItems := catalogMocks.NewMockItem(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockPackages, mockItems, cfg, mockCache, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantIDs   []string
		wantErr   bool
	}{
		{
			name: "packages from the database",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "catalog:packages", gomock.Any()).
					Return(errors.New("cache miss"))

				mockPackages.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(packages, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), "catalog:packages", gomock.Any(), 3600).
					Return(nil).
					AnyTimes()
			},
			wantIDs: []string{"p1", "p2"},
		},
		{
			name: "packages from the cache",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "catalog:packages", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						res, _ := value.(*dto.PackagesResponse)
						res.Packages = []bookingModel.Package{{ID: "p2"}}

						return nil
					})
			},
			wantIDs: []string{"p2"},
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockPackages.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Packages(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)

				ids := make([]string, len(res.Packages))
				for i, pkg := range res.Packages {
					ids[i] = pkg.ID
				}

				assert.Equal(t, tt.wantIDs, ids)
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestCatalogService_Package(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPackages := catalogMocks.NewMockPackage(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockPackages, catalogMocks.NewMockItem(ctrl), &config.Config{}, mockCache, mocks.NewOtel())

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	mockPackages.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(packages, nil).Times(2)
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	pkg, err := svc.Package(context.Background(), "p2")
	require.NoError(t, err)
	assert.Equal(t, "Chef's menu", pkg.Name)
	assert.True(t, pkg.Price.Equal(decimal.NewFromInt(1200)))

	_, err = svc.Package(context.Background(), "p9")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	time.Sleep(10 * time.Millisecond)
}

func TestCatalogService_Items(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockItems := catalogMocks.NewMockItem(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	svc := service.New(catalogMocks.NewMockPackage(ctrl), mockItems, cfg, mockCache, mocks.NewOtel())

	inStock := true

	tests := []struct {
		name           string
		query          dto.ItemQuery
		setupMock      func()
		wantItems      int
		wantCategories []string
		wantErr        bool
	}{
		{
			name:  "every item",
			query: dto.ItemQuery{},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "catalog:items", gomock.Any()).
					Return(errors.New("cache miss"))

				mockItems.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(items, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), "catalog:items", gomock.Any(), 60).
					Return(nil).
					AnyTimes()
			},
			wantItems:      3,
			wantCategories: []string{"starters", "desserts"},
		},
		{
			name:  "filtered by category and stock",
			query: dto.ItemQuery{CategoryID: "starters", InStock: &inStock},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "catalog:items:starters:true", gomock.Any()).
					Return(errors.New("cache miss"))

				mockItems.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.MenuItem, error) {
						assert.Len(t, filter.Filters, 3)

						return []model.MenuItem{items[0], items[2]}, nil
					})

				mockCache.EXPECT().
					Save(gomock.Any(), "catalog:items:starters:true", gomock.Any(), 60).
					Return(nil).
					AnyTimes()
			},
			wantItems:      2,
			wantCategories: []string{"starters"},
		},
		{
			name:  "repository error",
			query: dto.ItemQuery{CategoryID: "mains"},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "catalog:items:mains", gomock.Any()).
					Return(errors.New("cache miss"))

				mockItems.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Items(context.Background(), tt.query)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Len(t, res.Items, tt.wantItems)
				assert.Equal(t, tt.wantCategories, res.Categories)
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}
