package calc

import (
	"sort"

	"wattplan-cloud/internal/refdata"
)

// Strategic-fit tiers for a VPP offer.
const (
	FitExcellent = "excellent"
	FitGood      = "good"
	FitModerate  = "moderate"
	FitPoor      = "poor"
)

// VppComparison is one scored provider offer.
type VppComparison struct {
	Provider             string  `json:"provider"`
	Program              string  `json:"program"`
	DailyCredit          float64 `json:"dailyCredit"`
	EventPayment         float64 `json:"eventPayment"`
	EventsPerYear        float64 `json:"eventsPerYear"`
	GasBundleDiscount    float64 `json:"gasBundleDiscount"`
	HasGasBundle         bool    `json:"hasGasBundle"`
	EstimatedAnnualValue float64 `json:"estimatedAnnualValue"`
	FitScore             int     `json:"fitScore"`
	StrategicFit         string  `json:"strategicFit"`
}

// VppSelection holds the ranked comparison list. The first entry is the
// selected offer used by the rest of the pipeline.
type VppSelection struct {
	Comparisons []VppComparison `json:"comparisons"`
}

// Selected returns the top-ranked offer, or nil when no provider survived
// the filters.
func (s VppSelection) Selected() *VppComparison {
	if len(s.Comparisons) == 0 {
		return nil
	}
	return &s.Comparisons[0]
}

// SelectedAnnualValue is the selected offer's annual value, zero when none.
func (s VppSelection) SelectedAnnualValue() float64 {
	if selected := s.Selected(); selected != nil {
		return selected.EstimatedAnnualValue
	}
	return 0
}

// CompareVpp filters offers to the customer's state, optionally to those
// bundling gas, scores each and ranks descending by annual value. Equal
// values keep the original catalog order.
func CompareVpp(providers []refdata.VppProvider, state string, needsGasBundle bool) VppSelection {
	comparisons := make([]VppComparison, 0, len(providers))
	for _, provider := range providers {
		if !provider.AvailableIn(state) {
			continue
		}
		if needsGasBundle && !provider.HasGasBundle {
			continue
		}
		comparisons = append(comparisons, scoreProvider(provider, needsGasBundle))
	}

	sort.SliceStable(comparisons, func(i, j int) bool {
		return comparisons[i].EstimatedAnnualValue > comparisons[j].EstimatedAnnualValue
	})

	return VppSelection{Comparisons: comparisons}
}

func scoreProvider(provider refdata.VppProvider, needsGasBundle bool) VppComparison {
	value := round2(provider.DailyCredit*DaysPerYear +
		provider.EventPayment*provider.EventsPerYear +
		provider.GasBundleDiscount)

	score := 0
	switch {
	case value >= 500:
		score += 3
	case value >= 300:
		score += 2
	case value >= 100:
		score++
	}
	if needsGasBundle && provider.HasGasBundle {
		score += 2
	}
	if !needsGasBundle {
		score++
	}

	fit := FitPoor
	switch {
	case score >= 4:
		fit = FitExcellent
	case score >= 3:
		fit = FitGood
	case score >= 2:
		fit = FitModerate
	}

	return VppComparison{
		Provider:             provider.Name,
		Program:              provider.Program,
		DailyCredit:          provider.DailyCredit,
		EventPayment:         provider.EventPayment,
		EventsPerYear:        provider.EventsPerYear,
		GasBundleDiscount:    provider.GasBundleDiscount,
		HasGasBundle:         provider.HasGasBundle,
		EstimatedAnnualValue: value,
		FitScore:             score,
		StrategicFit:         fit,
	}
}
