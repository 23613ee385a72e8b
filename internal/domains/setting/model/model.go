package model

import "tavola/shared/model"

const (
	TableName  = "payment_settings"
	EntityName = "payment_setting"

	FieldID      = "id"
	FieldEnabled = "enabled"

	// PaymentSettingID is the key of the only row the table holds.
	PaymentSettingID = "default"
)

type PaymentSetting struct {
	ID      string `db:"id"`
	Enabled bool   `db:"enabled"`
	model.Metadata
}
