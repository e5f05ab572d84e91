package calc

// ProjectUsage normalizes a billing-period electricity bill into daily,
// monthly and yearly projections. A bill with zero usage or amount simply
// projects to zero; rejecting absent bills is the orchestrator caller's job.
func ProjectUsage(bill ElectricityBill) UsageProjection {
	days := float64(bill.Days())

	// The monthly and yearly figures multiply the rounded daily average so
	// the three usage fields stay mutually consistent at two decimals.
	dailyKwh := round2(bill.TotalUsageKwh / days)
	dailyCost := round2(bill.TotalAmount / days)

	return UsageProjection{
		DailyAverageKwh:     dailyKwh,
		MonthlyUsageKwh:     round2(dailyKwh * DaysPerMonth),
		YearlyUsageKwh:      round2(dailyKwh * DaysPerYear),
		DailyAverageCost:    dailyCost,
		ProjectedAnnualCost: round2(dailyCost * DaysPerYear),
	}
}
