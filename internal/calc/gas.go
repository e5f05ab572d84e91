package calc

// AnalyzeGas normalizes a gas bill into annualized cost, kWh equivalent and
// CO2 load. Only invoked when a gas bill exists; its absence gates every
// downstream gas slide and electrification calculator.
func AnalyzeGas(bill GasBill) GasAnalysis {
	days := float64(bill.Days())
	dailyCost := bill.TotalAmount / days

	return GasAnalysis{
		AnnualGasCost:    round2(dailyCost * DaysPerYear),
		GasKwhEquivalent: round2(bill.UsageMJ * MJToKwh),
		CO2EmissionsKg:   round2(bill.UsageMJ * GasCO2KgPerMJ * DaysPerYear / days),
		DailyGasCost:     round2(dailyCost),
	}
}
