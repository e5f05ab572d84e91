package calc

import "math"

// SizeSolar recommends a solar system large enough to cover annual usage
// with 10% oversizing, daily battery cycling and any EV charging load.
// Only called when the customer has no existing solar.
func SizeSolar(yearlyUsageKwh, batteryKwh, evAnnualKwh float64) SolarRecommendation {
	target := yearlyUsageKwh*SolarOversizeFactor +
		batteryKwh*DaysPerYear*BatteryDailyCycleFraction +
		evAnnualKwh

	rawKw := target / (SolarYieldKwhPerKwPerDay * DaysPerYear)
	// Deliverable systems come in half-kilowatt steps; always size up.
	kw := math.Ceil(rawKw*2) / 2

	return SolarRecommendation{
		TargetGenerationKwh: round2(target),
		RecommendedKw:       kw,
		PanelCount:          int(math.Ceil(kw * 1000 / SolarPanelWatts)),
		EstimatedCost:       roundCurrency(kw * SolarCostPerKw),
		AnnualGenerationKwh: round2(kw * SolarYieldKwhPerKwPerDay * DaysPerYear),
	}
}
