package services

import (
	"log/slog"

	portssvc "github.com/paletteworks/studio-finance/internal/core/ports/services"
)

// NewServiceContainer builds the full set of calculation engines sharing one
// logger. The surrounding application wires this container into its handlers
// and scheduled jobs.
func NewServiceContainer(logger *slog.Logger) *portssvc.Container {
	return &portssvc.Container{
		Budget:   NewBudgetService(WithBudgetLogger(logger)),
		Invoice:  NewInvoiceService(WithInvoiceLogger(logger)),
		Aging:    NewAgingService(WithAgingLogger(logger)),
		Forecast: NewForecastService(WithForecastLogger(logger)),
	}
}
