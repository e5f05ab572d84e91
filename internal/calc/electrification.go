package calc

// ElectrificationSavings converts the gas appliance categories to electric
// equivalents. The category shares of total gas usage are fixed domain
// allocations; hot water and heating convert through a heat-pump COP while
// induction cooking uses a plain efficiency divisor.
func ElectrificationSavings(gas GasBill, electricityRate float64) Electrification {
	if electricityRate <= 0 {
		electricityRate = DefaultElectricityRatePerKwh
	}

	hotWater := applianceSavings(gas, HotWaterGasShare, HeatPumpCOP, electricityRate)
	heating := applianceSavings(gas, HeatingGasShare, HeatPumpCOP, electricityRate)
	cooking := applianceSavings(gas, CookingGasShare, InductionEfficiencyRatio, electricityRate)
	supplyCharge := round2(gas.DailySupplyCharge * DaysPerYear)

	return Electrification{
		HotWater:                  hotWater,
		HotWaterSupplyChargeSaved: supplyCharge,
		Heating:                   heating,
		Cooking:                   cooking,
		TotalAnnualSavings: round2(hotWater.AnnualSavings +
			heating.AnnualSavings + cooking.AnnualSavings + supplyCharge),
	}
}

func applianceSavings(gas GasBill, share, divisor, electricityRate float64) ApplianceSavings {
	categoryMJ := gas.AnnualUsageMJ() * share
	currentCost := round2(categoryMJ * gas.EffectiveRate())

	electricKwh := categoryMJ * MJToKwh / divisor
	electricCost := round2(electricKwh * electricityRate)

	return ApplianceSavings{
		CurrentGasCost:         currentCost,
		ElectricEquivalentCost: electricCost,
		AnnualSavings:          round2(currentCost - electricCost),
	}
}
