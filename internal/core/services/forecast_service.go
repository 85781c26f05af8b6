package services

import (
	"log/slog"

	"github.com/paletteworks/studio-finance/internal/core/domain"
	portssvc "github.com/paletteworks/studio-finance/internal/core/ports/services"
	"github.com/paletteworks/studio-finance/internal/utils/moneycalc"
	"github.com/shopspring/decimal"
)

// scenarioProfile bundles one scenario's collection assumptions: the
// probability that a balance in each aging category is collected within the
// horizon, and the multiplier applied to planned spend.
type scenarioProfile struct {
	name string
	// collectionProbability is indexed by aging category:
	// current, 1-30, 31-60, 61-90, 90+.
	collectionProbability [5]decimal.Decimal
	expenseMultiplier     decimal.Decimal
}

func defaultScenarioProfiles() [3]scenarioProfile {
	return [3]scenarioProfile{
		{
			name: domain.ScenarioBestCase,
			collectionProbability: [5]decimal.Decimal{
				decimal.New(95, -2),
				decimal.New(85, -2),
				decimal.New(70, -2),
				decimal.New(50, -2),
				decimal.New(25, -2),
			},
			expenseMultiplier: decimal.New(90, -2),
		},
		{
			name: domain.ScenarioExpected,
			collectionProbability: [5]decimal.Decimal{
				decimal.New(90, -2),
				decimal.New(70, -2),
				decimal.New(50, -2),
				decimal.New(30, -2),
				decimal.New(10, -2),
			},
			expenseMultiplier: decimal.New(100, -2),
		},
		{
			name: domain.ScenarioWorstCase,
			collectionProbability: [5]decimal.Decimal{
				decimal.New(75, -2),
				decimal.New(50, -2),
				decimal.New(30, -2),
				decimal.New(15, -2),
				decimal.New(5, -2),
			},
			expenseMultiplier: decimal.New(115, -2),
		},
	}
}

// forecastService implements the CashFlowForecaster interface
type forecastService struct {
	BaseService
	profiles [3]scenarioProfile
}

// ForecastServiceOption is a functional option for configuring the forecast service
type ForecastServiceOption func(*forecastService)

// WithForecastLogger sets the logger for the forecast service.
func WithForecastLogger(logger *slog.Logger) ForecastServiceOption {
	return func(s *forecastService) {
		s.Logger = logger
	}
}

// NewForecastService creates a new forecast service with the provided options.
// The scenario profiles are fixed at construction so every call projects with
// the same assumptions.
func NewForecastService(options ...ForecastServiceOption) portssvc.CashFlowForecaster {
	svc := &forecastService{
		profiles: defaultScenarioProfiles(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure forecastService implements the CashFlowForecaster interface
var _ portssvc.CashFlowForecaster = (*forecastService)(nil)

// GenerateCashFlowForecast projects the cash position across consecutive
// 7-day windows from req.AsOf under all three scenarios. The low-balance
// alert is evaluated on the Expected scenario only.
func (s *forecastService) GenerateCashFlowForecast(req domain.ForecastRequest) domain.CashFlowForecast {
	weeks := req.Weeks
	if weeks <= 0 {
		weeks = domain.DefaultForecastWeeks
	}

	forecast := domain.CashFlowForecast{
		Best:     s.buildScenario(s.profiles[0], req, weeks),
		Expected: s.buildScenario(s.profiles[1], req, weeks),
		Worst:    s.buildScenario(s.profiles[2], req, weeks),
	}
	forecast.LowBalanceAlertWeek = lowBalanceAlertWeek(forecast.Expected, req.LowBalanceThreshold)

	s.LogDebug("generated cash flow forecast",
		slog.Int("weeks", weeks),
		slog.Int64("expectedEndingBalance", int64(forecast.Expected.EndingBalance)))
	return forecast
}

func (s *forecastService) buildScenario(p scenarioProfile, req domain.ForecastRequest, weeks int) domain.ForecastScenario {
	inflows := make([]domain.Amount, weeks)
	outflows := make([]domain.Amount, weeks)

	for _, inv := range req.OutstandingInvoices {
		if inv.BalanceDue <= 0 {
			continue
		}
		if inv.Status == domain.StatusPaid || inv.Status == domain.StatusWrittenOff {
			continue
		}
		cat := agingCategoryIndex(wholeDaysBetween(inv.DueDate, req.AsOf))
		expected := domain.Amount(moneycalc.RoundHalfUp(inv.BalanceDue.Decimal().Mul(p.collectionProbability[cat])))
		if expected <= 0 {
			continue
		}
		if inv.DueDate.Before(req.AsOf) {
			// Already overdue: the probability-weighted remainder arrives
			// spread evenly across the horizon. Integer split, with the odd
			// units going to the earliest weeks so the spread sums exactly.
			base := int64(expected) / int64(weeks)
			rem := int64(expected) % int64(weeks)
			for i := range inflows {
				inflows[i] += domain.Amount(base)
				if int64(i) < rem {
					inflows[i]++
				}
			}
			continue
		}
		// Due-dated inflow lands in the week containing the due date.
		// Invoices due beyond the horizon contribute nothing.
		if w := wholeDaysBetween(req.AsOf, inv.DueDate) / 7; w < weeks {
			inflows[w] = moneycalc.Add(inflows[w], expected)
		}
	}

	var totalPlanned domain.Amount
	datedExpenses := make([]int, weeks)
	for _, e := range req.PlannedExpenses {
		totalPlanned = moneycalc.Add(totalPlanned, e.Amount)
		days := wholeDaysBetween(req.AsOf, e.Date)
		if days < 0 {
			continue
		}
		if w := days / 7; w < weeks {
			scaled := domain.Amount(moneycalc.RoundHalfUp(e.Amount.Decimal().Mul(p.expenseMultiplier)))
			outflows[w] = moneycalc.Add(outflows[w], scaled)
			datedExpenses[w]++
		}
	}

	// Weeks with no dated expense still burn the baseline weekly spend, so
	// outflows never silently drop to zero while spend is expected.
	var baselineBurn domain.Amount
	if totalPlanned > 0 {
		baselineBurn = domain.Amount(moneycalc.RoundHalfUp(
			totalPlanned.Decimal().Mul(p.expenseMultiplier).Div(decimal.NewFromInt(int64(weeks)))))
	}

	scenario := domain.ForecastScenario{
		Name:  p.name,
		Weeks: make([]domain.ForecastWeek, 0, weeks),
	}
	running := req.StartingBalance
	for i := 0; i < weeks; i++ {
		outflow := outflows[i]
		if datedExpenses[i] == 0 && totalPlanned > 0 {
			outflow = baselineBurn
		}
		net := moneycalc.Subtract(inflows[i], outflow)
		running = moneycalc.Add(running, net)

		weekStart := req.AsOf.AddDate(0, 0, 7*i)
		scenario.Weeks = append(scenario.Weeks, domain.ForecastWeek{
			WeekStart:       weekStart,
			WeekEnd:         weekStart.AddDate(0, 0, 6),
			ExpectedInflow:  inflows[i],
			ExpectedOutflow: outflow,
			NetCashFlow:     net,
			RunningBalance:  running,
		})
		scenario.TotalInflow = moneycalc.Add(scenario.TotalInflow, inflows[i])
		scenario.TotalOutflow = moneycalc.Add(scenario.TotalOutflow, outflow)
	}
	scenario.EndingBalance = running
	return scenario
}

func lowBalanceAlertWeek(expected domain.ForecastScenario, threshold domain.Amount) *int {
	for i, week := range expected.Weeks {
		if week.RunningBalance < threshold {
			idx := i
			return &idx
		}
	}
	return nil
}
