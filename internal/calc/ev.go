package calc

// EstimateEVSavings compares EV running costs against petrol using fixed
// fleet-average assumptions. The solar-charge case treats charging energy
// as free, so its saving equals the full petrol cost.
func EstimateEVSavings(electricityRate float64) EVAnalysis {
	if electricityRate <= 0 {
		electricityRate = DefaultElectricityRatePerKwh
	}

	consumptionKwh := float64(EVAnnualKm) / 100 * EVKwhPer100Km
	petrolCost := round2(float64(EVAnnualKm) / 100 * EVPetrolLitresPer100Km * PetrolPricePerLitre)
	gridCost := round2(consumptionKwh * electricityRate)

	return EVAnalysis{
		AnnualKm:              EVAnnualKm,
		AnnualConsumptionKwh:  consumptionKwh,
		PetrolAnnualCost:      petrolCost,
		GridChargeAnnualCost:  gridCost,
		SolarChargeAnnualCost: 0,
		SavingsVsPetrol:       round2(petrolCost - gridCost),
		SavingsWithSolar:      petrolCost,
	}
}
