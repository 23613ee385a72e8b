package dto

import (
	bookingModel "tavola/internal/domains/booking/model"
	"tavola/internal/domains/setting/model"
	gDto "tavola/shared/dto"
)

type PaymentSettingResponse struct {
	Enabled bool `json:"enabled"`
	// Default is true when no row is stored and the configured value applies.
	Default bool `json:"default"`
	gDto.Metadata
}

func (p *PaymentSettingResponse) FromModel(setting model.PaymentSetting) {
	p.Enabled = setting.Enabled
	p.Metadata.FromModel(setting.Metadata)
}

func (p *PaymentSettingResponse) ToDomain() bookingModel.PaymentSettings {
	return bookingModel.PaymentSettings{Enabled: p.Enabled}
}
