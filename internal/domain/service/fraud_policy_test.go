package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"simsure/internal/domain/entity"
)

func TestThresholdFraudPolicy_Assess(t *testing.T) {
	policy := NewThresholdFraudPolicy(0, 0) // defaults: >5 high, >2 medium

	tests := []struct {
		name    string
		signals entity.FraudSignals
		want    entity.RiskLevel
	}{
		{name: "no signals", signals: entity.FraudSignals{}, want: entity.RiskLow},
		{name: "duplicate sim", signals: entity.FraudSignals{DuplicateSIM: true}, want: entity.RiskHigh},
		{name: "two spikes", signals: entity.FraudSignals{SpikeCount: 2}, want: entity.RiskLow},
		{name: "three spikes", signals: entity.FraudSignals{SpikeCount: 3}, want: entity.RiskMedium},
		{name: "five spikes", signals: entity.FraudSignals{SpikeCount: 5}, want: entity.RiskMedium},
		{name: "six spikes", signals: entity.FraudSignals{SpikeCount: 6}, want: entity.RiskHigh},
		{name: "duplicate beats spike count", signals: entity.FraudSignals{DuplicateSIM: true, SpikeCount: 1}, want: entity.RiskHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Assess(tt.signals))
		})
	}
}

func TestNewThresholdFraudPolicy_Overrides(t *testing.T) {
	policy := NewThresholdFraudPolicy(10, 4)

	assert.Equal(t, entity.RiskLow, policy.Assess(entity.FraudSignals{SpikeCount: 4}))
	assert.Equal(t, entity.RiskMedium, policy.Assess(entity.FraudSignals{SpikeCount: 10}))
	assert.Equal(t, entity.RiskHigh, policy.Assess(entity.FraudSignals{SpikeCount: 11}))
}
