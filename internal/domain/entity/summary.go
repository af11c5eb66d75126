package entity

import "fmt"

// Security score weights for the service-active scheme: an account is scored
// by which protection services are switched on, capped at 100.
const (
	scoreSimProtection = 65
	scoreCreditLock    = 20
	scoreDataBroker    = 15
	scoreCap           = 100
)

const coverageMillionThreshold = 1_000_000

// Summary holds the derived dashboard counters for one account snapshot.
type Summary struct {
	ActiveAlertCount int    `json:"active_alert_count"`
	SecurityScore    int    `json:"security_score"`
	CoverageTotal    string `json:"coverage_total"`
}

// ComputeSummary derives the dashboard counters from an account snapshot.
// It is a pure function: the account is not modified and two calls on the
// same snapshot yield identical results.
func ComputeSummary(account *Account) Summary {
	summary := Summary{CoverageTotal: FormatCoverage(0)}
	if account == nil {
		return summary
	}

	for i := range account.Alerts {
		if account.Alerts[i].Active() {
			summary.ActiveAlertCount++
		}
	}

	profile := account.SimProtection
	if profile == nil {
		return summary
	}

	score := 0
	var coverage int64
	if profile.Active {
		score += scoreSimProtection
		coverage += profile.CoverageAmount
	}
	if profile.CreditLockActive {
		score += scoreCreditLock
		coverage += profile.CreditLockCover
	}
	if profile.DataBrokerActive {
		score += scoreDataBroker
		coverage += profile.DataBrokerCover
	}
	if score > scoreCap {
		score = scoreCap
	}

	summary.SecurityScore = score
	summary.CoverageTotal = FormatCoverage(coverage)

	return summary
}

// FormatCoverage renders a rand amount as "{n}K" below one million and
// "{n}M" from one million up.
func FormatCoverage(amount int64) string {
	if amount >= coverageMillionThreshold {
		return fmt.Sprintf("%dM", amount/coverageMillionThreshold)
	}

	return fmt.Sprintf("%dK", amount/1_000)
}
