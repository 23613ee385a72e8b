package model

import "tavola/shared/model"

const (
	TableName  = "dining_tables"
	EntityName = "dining_table"

	FieldID       = "id"
	FieldName     = "name"
	FieldCapacity = "capacity"
	FieldCategory = "category"
	FieldActive   = "active"
)

// DiningTable is a physical table of the restaurant floor.
type DiningTable struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Capacity int    `db:"capacity"`
	Category string `db:"category"`
	Active   bool   `db:"active"`
	model.Metadata
}
