package dto

import (
	"net/http"

	bookingModel "tavola/internal/domains/booking/model"
	"tavola/internal/domains/catalog/model"
	"tavola/shared"
	"tavola/shared/constant"
)

// ItemQuery narrows the à-la-carte catalog. A nil InStock returns every item.
type ItemQuery struct {
	CategoryID string `json:"category_id" validate:"omitempty,max=64"`
	InStock    *bool  `json:"in_stock"`
}

func (q *ItemQuery) FromRequest(r *http.Request) {
	query := r.URL.Query()

	q.CategoryID = query.Get(constant.RequestParamCategory)
	q.InStock = shared.ConvertStringToBool(query.Get(constant.RequestParamInStock))
}

type PackagesResponse struct {
	Packages []bookingModel.Package `json:"packages"`
}

func (p *PackagesResponse) FromModels(models []model.MenuPackage) {
	p.Packages = PackagesToDomain(models)
}

type ItemsResponse struct {
	Items      []bookingModel.Item `json:"items"`
	Categories []string            `json:"categories"`
}

func (i *ItemsResponse) FromModels(models []model.MenuItem) {
	i.Items = ItemsToDomain(models)
	i.Categories = []string{}

	seen := map[string]struct{}{}

	for _, item := range models {
		if _, ok := seen[item.CategoryID]; ok {
			continue
		}

		seen[item.CategoryID] = struct{}{}
		i.Categories = append(i.Categories, item.CategoryID)
	}
}

func PackagesToDomain(models []model.MenuPackage) []bookingModel.Package {
	packages := make([]bookingModel.Package, len(models))

	for i, pkg := range models {
		packages[i] = bookingModel.Package{
			ID:          pkg.ID,
			Name:        pkg.Name,
			Description: pkg.Description,
			Price:       pkg.Price,
			ImageRef:    pkg.ImageRef,
		}
	}

	return packages
}

func ItemsToDomain(models []model.MenuItem) []bookingModel.Item {
	items := make([]bookingModel.Item, len(models))

	for i, item := range models {
		items[i] = bookingModel.Item{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			CategoryID:  item.CategoryID,
			InStock:     item.InStock,
		}
	}

	return items
}
