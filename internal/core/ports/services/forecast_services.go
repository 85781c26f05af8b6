package services

import (
	"github.com/paletteworks/studio-finance/internal/core/domain"
)

// CashFlowForecaster defines the weekly cash-position projection.
type CashFlowForecaster interface {
	// GenerateCashFlowForecast projects the cash position forward week by
	// week under the Best Case, Expected and Worst Case scenarios.
	GenerateCashFlowForecast(req domain.ForecastRequest) domain.CashFlowForecast
}
