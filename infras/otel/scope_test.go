package otel

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestKeyValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  attribute.Value
	}{
		{name: "string", value: "table-4", want: attribute.StringValue("table-4")},
		{name: "bool", value: true, want: attribute.BoolValue(true)},
		{name: "int", value: 6, want: attribute.IntValue(6)},
		{name: "int64", value: int64(3000), want: attribute.Int64Value(3000)},
		{name: "float", value: 0.15, want: attribute.Float64Value(0.15)},
		{name: "strings", value: []string{"admin", "superadmin"}, want: attribute.StringSliceValue([]string{"admin", "superadmin"})},
		{name: "stringer", value: decimal.RequireFromString("2550.00"), want: attribute.StringValue("2550")},
		{name: "other", value: []int{1, 2}, want: attribute.StringValue("[1 2]")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := keyValue("k", tt.value)

			assert.Equal(t, attribute.Key("k"), kv.Key)
			assert.Equal(t, tt.want, kv.Value)
		})
	}
}
