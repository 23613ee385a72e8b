package model_test

import (
	"testing"

	"tavola/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
)

func sampleTables() []model.Table {
	return []model.Table{
		{ID: "t1", Name: "Window 1", Capacity: 2, Category: model.TableCategoryWindow, Free: true},
		{ID: "t2", Name: "Center 1", Capacity: 4, Category: model.TableCategoryCenter, Free: true},
		{ID: "t3", Name: "Booth 1", Capacity: 6, Category: model.TableCategoryBooth, Free: false},
		{ID: "t4", Name: "Corner 1", Capacity: 8, Category: model.TableCategoryCorner, Free: true},
		{ID: "t5", Name: "Center 2", Capacity: 4, Category: model.TableCategoryCenter, Free: false},
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		table     model.Table
		partySize int
		want      model.Availability
	}{
		{name: "free and large enough", table: model.Table{Capacity: 4, Free: true}, partySize: 4, want: model.AvailabilityAvailable},
		{name: "free but too small", table: model.Table{Capacity: 2, Free: true}, partySize: 3, want: model.AvailabilityInsufficient},
		{name: "occupied wins over capacity", table: model.Table{Capacity: 2, Free: false}, partySize: 6, want: model.AvailabilityOccupied},
		{name: "occupied and large", table: model.Table{Capacity: 10, Free: false}, partySize: 2, want: model.AvailabilityOccupied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Classify(tt.table, tt.partySize))
		})
	}
}

func TestAvailableTablesMatchesDefinition(t *testing.T) {
	tables := sampleTables()

	for partySize := 1; partySize <= 12; partySize++ {
		available := model.AvailableTables(tables, partySize)

		want := []model.Table{}
		for _, table := range tables {
			if table.Free && table.Capacity >= partySize {
				want = append(want, table)
			}
		}

		assert.Equal(t, want, available, "party size %d", partySize)

		selectable := 0
		for _, option := range model.ClassifyTables(tables, partySize) {
			if option.Selectable() {
				selectable++
			}
		}

		assert.Equal(t, len(want), selectable, "party size %d", partySize)
	}
}

func TestRevalidate(t *testing.T) {
	ref := model.TableRef{ID: "t2", Capacity: 4}

	tests := []struct {
		name      string
		tables    []model.Table
		partySize int
		want      model.TableIssue
	}{
		{name: "still fine", tables: sampleTables(), partySize: 4, want: model.TableIssueNone},
		{name: "party grew", tables: sampleTables(), partySize: 5, want: model.TableIssueTooSmall},
		{
			name:      "taken meanwhile",
			tables:    []model.Table{{ID: "t2", Capacity: 4, Free: false}},
			partySize: 2,
			want:      model.TableIssueOccupied,
		},
		{name: "gone from the list", tables: []model.Table{{ID: "t1", Capacity: 2, Free: true}}, partySize: 2, want: model.TableIssueOccupied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Revalidate(ref, tt.tables, tt.partySize))
		})
	}
}

func TestTableIssueMessagesDiffer(t *testing.T) {
	assert.NotEqual(t, model.TableIssueOccupied.Message(), model.TableIssueTooSmall.Message())
}
