package model

import (
	"tavola/shared/model"

	"github.com/shopspring/decimal"
)

const (
	PackageTableName  = "menu_packages"
	PackageEntityName = "menu_package"

	ItemTableName  = "menu_items"
	ItemEntityName = "menu_item"

	FieldID         = "id"
	FieldName       = "name"
	FieldActive     = "active"
	FieldCategoryID = "category_id"
	FieldInStock    = "in_stock"
	FieldSortOrder  = "sort_order"
)

// MenuPackage is a fixed menu offered for booking.
type MenuPackage struct {
	ID          string          `db:"id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	ImageRef    string          `db:"image_ref"`
	SortOrder   int             `db:"sort_order"`
	Active      bool            `db:"active"`
	model.Metadata
}

// MenuItem is an à-la-carte dish.
type MenuItem struct {
	ID          string          `db:"id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	CategoryID  string          `db:"category_id"`
	InStock     bool            `db:"in_stock"`
	SortOrder   int             `db:"sort_order"`
	Active      bool            `db:"active"`
	model.Metadata
}
