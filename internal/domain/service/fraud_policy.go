package service

import "simsure/internal/domain/entity"

// FraudPolicy maps derived sale signals to a risk bucket. It is deliberately
// pluggable: the default threshold policy is a placeholder for a real model.
type FraudPolicy interface {
	Assess(signals entity.FraudSignals) entity.RiskLevel
}

// ThresholdFraudPolicy is the default bucket policy: a duplicate SIM or a
// spike count above the high threshold is high risk, a spike count above the
// medium threshold is medium risk, anything else is low.
type ThresholdFraudPolicy struct {
	HighSpikeThreshold   int
	MediumSpikeThreshold int
}

// NewThresholdFraudPolicy builds the default policy with the observed
// cutoffs (>5 spikes high, >2 medium) unless overridden.
func NewThresholdFraudPolicy(high, medium int) *ThresholdFraudPolicy {
	if high <= 0 {
		high = 5
	}
	if medium <= 0 {
		medium = 2
	}

	return &ThresholdFraudPolicy{
		HighSpikeThreshold:   high,
		MediumSpikeThreshold: medium,
	}
}

// Assess implements FraudPolicy.
func (p *ThresholdFraudPolicy) Assess(signals entity.FraudSignals) entity.RiskLevel {
	switch {
	case signals.DuplicateSIM || signals.SpikeCount > p.HighSpikeThreshold:
		return entity.RiskHigh
	case signals.SpikeCount > p.MediumSpikeThreshold:
		return entity.RiskMedium
	default:
		return entity.RiskLow
	}
}
