package calc

// EstimatePoolHeatPump sizes a pool heat pump from the pool volume and
// estimates its seasonal running cost. Heating is assumed to run 8 hours a
// day for half the year; the gas comparison uses a fixed cost ratio rather
// than a measured gas heater quote.
func EstimatePoolHeatPump(poolVolumeLitres, electricityRate float64) PoolAnalysis {
	if electricityRate <= 0 {
		electricityRate = DefaultElectricityRatePerKwh
	}

	kwPer1000L := (PoolPumpKwPer1000LLow + PoolPumpKwPer1000LHigh) / 2
	heatPumpKw := round2(poolVolumeLitres / 1000 * kwPer1000L)

	runningKwh := heatPumpKw * PoolHeatingHoursPerDay * PoolHeatingDaysPerYear / HeatPumpCOP
	runningCost := round2(runningKwh * electricityRate)
	gasCost := round2(runningCost * PoolGasCostRatio)

	return PoolAnalysis{
		HeatPumpKw:        heatPumpKw,
		AnnualRunningCost: runningCost,
		GasComparisonCost: gasCost,
		AnnualSavings:     round2(gasCost - runningCost),
	}
}
