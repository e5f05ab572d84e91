package calc

import "math"

// CalculateEmissions converts the current and projected energy mix into CO2
// tonnes. Solar generation offsets the electric term down to zero; the gas
// term drops out entirely when gas is being eliminated.
func CalculateEmissions(annualElectricityKwh, annualGasMJ, solarGenerationKwh float64, gasEliminated bool) EmissionsImpact {
	current := (annualElectricityKwh*GridCO2KgPerKwh + annualGasMJ*GasCO2KgPerMJ) / 1000

	projectedElectricity := math.Max(0, annualElectricityKwh-solarGenerationKwh)
	projectedGas := annualGasMJ
	if gasEliminated {
		projectedGas = 0
	}
	projected := (projectedElectricity*GridCO2KgPerKwh + projectedGas*GasCO2KgPerMJ) / 1000

	reduction := current - projected
	var percent float64
	if current > 0 {
		percent = reduction / current * 100
	}

	return EmissionsImpact{
		CurrentCO2Tonnes:   round2(current),
		ProjectedCO2Tonnes: round2(projected),
		ReductionTonnes:    round2(reduction),
		ReductionPercent:   round2(percent),
		TreesEquivalent:    int(math.Round(reduction * TreesPerTonneCO2)),
		CarsEquivalent:     round2(reduction / CarTonnesCO2PerYear),
	}
}
