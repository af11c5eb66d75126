package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func protectedAccount() *Account {
	return &Account{
		PhoneNumber: "0821234567",
		SimProtection: &SimProtectionProfile{
			LinkedNumber:     "0821234567",
			Active:           true,
			CoverageAmount:   250_000,
			CreditLockActive: true,
			CreditLockCover:  100_000,
		},
	}
}

func TestComputeSummary_SecurityScoreWeighting(t *testing.T) {
	account := protectedAccount()

	// sim protection 65 + credit lock 20, data broker off
	summary := ComputeSummary(account)
	assert.Equal(t, 85, summary.SecurityScore)

	account.SimProtection.DataBrokerActive = true
	assert.Equal(t, 100, ComputeSummary(account).SecurityScore)

	account.SimProtection.Active = false
	account.SimProtection.CreditLockActive = false
	account.SimProtection.DataBrokerActive = false
	assert.Equal(t, 0, ComputeSummary(account).SecurityScore)
}

func TestComputeSummary_ScoreClamped(t *testing.T) {
	account := protectedAccount()
	account.SimProtection.DataBrokerActive = true

	summary := ComputeSummary(account)
	assert.LessOrEqual(t, summary.SecurityScore, 100)
	assert.GreaterOrEqual(t, summary.SecurityScore, 0)
}

func TestComputeSummary_ActiveAlertCount(t *testing.T) {
	now := time.Now()
	account := protectedAccount()
	account.Alerts = []Alert{
		NewAlert("0821234567", nil, nil, now),
		{Status: StatusPending},
		{Status: StatusAuthorized},
		{Status: StatusNotAuthorized},
		{Status: StatusResolved},
	}

	assert.Equal(t, 2, ComputeSummary(account).ActiveAlertCount)
}

func TestComputeSummary_CoverageFormatting(t *testing.T) {
	account := protectedAccount()

	// 250K + 100K
	assert.Equal(t, "350K", ComputeSummary(account).CoverageTotal)

	account.SimProtection.CoverageAmount = 1_500_000
	account.SimProtection.CreditLockActive = false
	assert.Equal(t, "1M", ComputeSummary(account).CoverageTotal)
}

func TestComputeSummary_Idempotent(t *testing.T) {
	account := protectedAccount()
	account.Alerts = []Alert{{Status: StatusNew}}

	first := ComputeSummary(account)
	second := ComputeSummary(account)
	assert.Equal(t, first, second)
}

func TestComputeSummary_NilInputs(t *testing.T) {
	assert.Equal(t, Summary{CoverageTotal: "0K"}, ComputeSummary(nil))

	summary := ComputeSummary(&Account{})
	assert.Equal(t, 0, summary.SecurityScore)
	assert.Equal(t, "0K", summary.CoverageTotal)
}

func TestFormatCoverage(t *testing.T) {
	assert.Equal(t, "0K", FormatCoverage(0))
	assert.Equal(t, "500K", FormatCoverage(500_000))
	assert.Equal(t, "999K", FormatCoverage(999_999))
	assert.Equal(t, "1M", FormatCoverage(1_000_000))
	assert.Equal(t, "2M", FormatCoverage(2_500_000))
}
