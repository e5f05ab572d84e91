package calc

// Domain constants shared by the calculators. These are indicative
// Australian residential figures, not measured quotes.
const (
	DefaultBillingDays = 90
	DaysPerYear        = 365
	DaysPerMonth       = 30

	// MJToKwh converts gas megajoules to kilowatt-hours.
	MJToKwh = 0.2778
	// GasCO2KgPerMJ is the emissions factor for natural gas.
	GasCO2KgPerMJ = 0.0512
	// GridCO2KgPerKwh is the grid emissions factor.
	GridCO2KgPerKwh = 0.79

	// Fixed allocation of total gas usage per appliance category.
	HotWaterGasShare = 0.40
	HeatingGasShare  = 0.35
	CookingGasShare  = 0.05

	// HeatPumpCOP applies to hot water and heating conversions.
	HeatPumpCOP = 4.0
	// InductionEfficiencyRatio is the gas-to-induction energy ratio.
	// Cooking uses this physical efficiency divisor, not a COP.
	InductionEfficiencyRatio = 2.25

	// Fallback tariffs when a bill carries no usable rate.
	DefaultElectricityRatePerKwh = 0.30
	DefaultGasRatePerMJ          = 0.035

	PoolPumpKwPer1000LLow    = 0.5
	PoolPumpKwPer1000LHigh   = 0.7
	PoolHeatingHoursPerDay   = 8
	PoolHeatingDaysPerYear   = 182.5
	PoolGasCostRatio         = 3.5

	EVAnnualKm             = 10000
	EVKwhPer100Km          = 15
	EVPetrolLitresPer100Km = 8
	PetrolPricePerLitre    = 1.80

	BatteryUsageFraction = 0.45
	BatteryEVBonusKwh    = 5
	BatteryVPPFloorKwh   = 10
	BatteryCostPerKwh    = 900

	SolarOversizeFactor       = 1.1
	BatteryDailyCycleFraction = 0.5
	SolarYieldKwhPerKwPerDay  = 4.0
	SolarPanelWatts           = 400
	SolarCostPerKw            = 1100

	// SolarSelfConsumptionOffset is the share of the projected annual
	// electricity cost assumed avoided once solar plus battery is installed.
	SolarSelfConsumptionOffset = 0.70

	// Indicative electrification hardware prices.
	HeatPumpHotWaterPrice = 3500
	ReverseCycleACPrice   = 8000
	InductionCooktopPrice = 2000
	EVChargerPrice        = 1500
	PoolHeatPumpPrice     = 4000

	// Emissions equivalencies for presentation.
	TreesPerTonneCO2     = 45
	CarTonnesCO2PerYear  = 2.3
)

// BatterySizeLadder is the fixed set of deliverable battery sizes in kWh.
// Raw sizing output is snapped to the nearest entry; exact ties prefer the
// earlier entry.
var BatterySizeLadder = []float64{5, 7, 10, 13, 15, 20, 26, 30}
