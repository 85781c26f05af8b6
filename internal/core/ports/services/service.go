package services

// Container holds instances of all the calculation engines. This is the main
// entry point for the surrounding application (handlers, jobs, reports) to
// reach the financial core.
type Container struct {
	Budget   BudgetCalculator
	Invoice  InvoiceCalculator
	Aging    AgingClassifier
	Forecast CashFlowForecaster
}
