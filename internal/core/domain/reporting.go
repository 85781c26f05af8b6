package domain

import "time"

// AgingDaysUnbounded marks an aging bucket range side with no bound.
const AgingDaysUnbounded = -1

// AgingBucket accumulates outstanding balances whose days-overdue fall inside
// its closed day range.
type AgingBucket struct {
	Label   string `json:"label"`
	MinDays int    `json:"minDays"` // inclusive; AgingDaysUnbounded when open below
	MaxDays int    `json:"maxDays"` // inclusive; AgingDaysUnbounded when open above
	Total   Amount `json:"total"`
	Count   int    `json:"count"`
}

// NewAgingBuckets returns the five fixed, empty AR aging buckets. The ranges
// are closed and never overlap: day 30 belongs to 1-30, day 31 to 31-60.
func NewAgingBuckets() []AgingBucket {
	return []AgingBucket{
		{Label: "Current", MinDays: AgingDaysUnbounded, MaxDays: 0},
		{Label: "1-30", MinDays: 1, MaxDays: 30},
		{Label: "31-60", MinDays: 31, MaxDays: 60},
		{Label: "61-90", MinDays: 61, MaxDays: 90},
		{Label: "90+", MinDays: 91, MaxDays: AgingDaysUnbounded},
	}
}

// AgingReport is the full AR aging classification as of a given date.
type AgingReport struct {
	Buckets           []AgingBucket `json:"buckets"`
	TotalOutstanding  Amount        `json:"totalOutstanding"`
	TotalOverdueCount int           `json:"totalOverdueCount"`
}

// DefaultForecastWeeks is the forecast horizon used when a request does not
// name one.
const DefaultForecastWeeks = 12

// Forecast scenario names.
const (
	ScenarioBestCase  = "Best Case"
	ScenarioExpected  = "Expected"
	ScenarioWorstCase = "Worst Case"
)

// ForecastWeek is one 7-day window of a cash-flow projection. RunningBalance
// is always the previous week's running balance plus this week's net flow.
type ForecastWeek struct {
	WeekStart       time.Time `json:"weekStart"`
	WeekEnd         time.Time `json:"weekEnd"`
	ExpectedInflow  Amount    `json:"expectedInflow"`
	ExpectedOutflow Amount    `json:"expectedOutflow"`
	NetCashFlow     Amount    `json:"netCashFlow"`
	RunningBalance  Amount    `json:"runningBalance"`
}

// ForecastScenario is one named projection across the full horizon.
type ForecastScenario struct {
	Name          string         `json:"name"`
	Weeks         []ForecastWeek `json:"weeks"`
	TotalInflow   Amount         `json:"totalInflow"`
	TotalOutflow  Amount         `json:"totalOutflow"`
	EndingBalance Amount         `json:"endingBalance"`
}

// ForecastRequest carries everything a cash-flow projection reads. AsOf is the
// explicit "now" so identical requests always produce identical forecasts.
type ForecastRequest struct {
	AsOf                time.Time            `json:"asOf"`
	StartingBalance     Amount               `json:"startingBalance"`
	OutstandingInvoices []OutstandingInvoice `json:"outstandingInvoices"`
	PlannedExpenses     []PlannedExpense     `json:"plannedExpenses"`
	Weeks               int                  `json:"weeks"` // 0 means DefaultForecastWeeks
	LowBalanceThreshold Amount               `json:"lowBalanceThreshold"`
}

// CashFlowForecast is the three-scenario projection returned to the caller.
// LowBalanceAlertWeek is the zero-based index of the first Expected-scenario
// week whose running balance drops below the threshold, or nil.
type CashFlowForecast struct {
	Best                ForecastScenario `json:"best"`
	Expected            ForecastScenario `json:"expected"`
	Worst               ForecastScenario `json:"worst"`
	LowBalanceAlertWeek *int             `json:"lowBalanceAlertWeek"`
}
