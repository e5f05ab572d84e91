package calc

import "time"

// Calculations is the single output aggregate of one orchestrator run.
// Optional sections are nil when the corresponding feature is absent; nil
// sections never contribute to any derived total. The record is persisted
// as an opaque payload and is the sole input to the slide assembler.
type Calculations struct {
	GeneratedAt time.Time `json:"generatedAt"`

	Usage UsageProjection `json:"usage"`

	Gas             *GasAnalysis     `json:"gas,omitempty"`
	Electrification *Electrification `json:"electrification,omitempty"`
	Pool            *PoolAnalysis    `json:"pool,omitempty"`
	EV              *EVAnalysis      `json:"ev,omitempty"`

	Battery BatteryRecommendation `json:"battery"`
	Solar   *SolarRecommendation  `json:"solar,omitempty"`

	Vpp VppSelection `json:"vpp"`

	Investment InvestmentSummary `json:"investment"`
	Emissions  EmissionsImpact   `json:"emissions"`

	// TotalAnnualSavings sums every savings stream shown on the savings
	// summary: electrification savings, pool savings, EV savings and the
	// selected VPP annual value.
	TotalAnnualSavings float64 `json:"totalAnnualSavings"`
}

// UsageProjection normalizes one electricity bill to daily, monthly and
// yearly usage and cost figures.
type UsageProjection struct {
	DailyAverageKwh     float64 `json:"dailyAverageKwh"`
	MonthlyUsageKwh     float64 `json:"monthlyUsageKwh"`
	YearlyUsageKwh      float64 `json:"yearlyUsageKwh"`
	DailyAverageCost    float64 `json:"dailyAverageCost"`
	ProjectedAnnualCost float64 `json:"projectedAnnualCost"`
}

// GasAnalysis normalizes one gas bill to annual cost, energy and emissions.
type GasAnalysis struct {
	AnnualGasCost    float64 `json:"annualGasCost"`
	GasKwhEquivalent float64 `json:"gasKwhEquivalent"`
	CO2EmissionsKg   float64 `json:"co2EmissionsKg"`
	DailyGasCost     float64 `json:"dailyGasCost"`
}

// ApplianceSavings compares one gas appliance category against its electric
// replacement.
type ApplianceSavings struct {
	CurrentGasCost         float64 `json:"currentGasCost"`
	ElectricEquivalentCost float64 `json:"electricEquivalentCost"`
	AnnualSavings          float64 `json:"annualSavings"`
}

// Electrification bundles the three appliance conversions.
type Electrification struct {
	HotWater ApplianceSavings `json:"hotWater"`
	// HotWaterSupplyChargeSaved is the annualized gas daily supply charge,
	// eliminated entirely by full electrification.
	HotWaterSupplyChargeSaved float64          `json:"hotWaterSupplyChargeSaved"`
	Heating                   ApplianceSavings `json:"heating"`
	Cooking                   ApplianceSavings `json:"cooking"`
	// TotalAnnualSavings = the three category savings plus the supply charge.
	TotalAnnualSavings float64 `json:"totalAnnualSavings"`
}

// PoolAnalysis sizes and costs a pool heat pump.
type PoolAnalysis struct {
	HeatPumpKw        float64 `json:"heatPumpKw"`
	AnnualRunningCost float64 `json:"annualRunningCost"`
	GasComparisonCost float64 `json:"gasComparisonCost"`
	AnnualSavings     float64 `json:"annualSavings"`
}

// EVAnalysis compares EV running costs against petrol.
type EVAnalysis struct {
	AnnualKm             float64 `json:"annualKm"`
	AnnualConsumptionKwh float64 `json:"annualConsumptionKwh"`
	PetrolAnnualCost     float64 `json:"petrolAnnualCost"`
	GridChargeAnnualCost float64 `json:"gridChargeAnnualCost"`
	SolarChargeAnnualCost float64 `json:"solarChargeAnnualCost"`
	SavingsVsPetrol      float64 `json:"savingsVsPetrol"`
	SavingsWithSolar     float64 `json:"savingsWithSolar"`
}

// BatteryRecommendation is the sized battery.
type BatteryRecommendation struct {
	RawKwh         float64 `json:"rawKwh"`
	RecommendedKwh float64 `json:"recommendedKwh"`
	EstimatedCost  float64 `json:"estimatedCost"`
}

// SolarRecommendation is the sized solar system. Only present when the
// customer has no existing solar.
type SolarRecommendation struct {
	TargetGenerationKwh float64 `json:"targetGenerationKwh"`
	RecommendedKw       float64 `json:"recommendedKw"`
	PanelCount          int     `json:"panelCount"`
	EstimatedCost       float64 `json:"estimatedCost"`
	AnnualGenerationKwh float64 `json:"annualGenerationKwh"`
}

// InvestmentSummary aggregates investments, rebates and annual benefits.
type InvestmentSummary struct {
	Investments    map[string]float64 `json:"investments"`
	Rebates        map[string]float64 `json:"rebates"`
	AnnualBenefits map[string]float64 `json:"annualBenefits"`

	TotalInvestment    float64 `json:"totalInvestment"`
	TotalRebates       float64 `json:"totalRebates"`
	NetInvestment      float64 `json:"netInvestment"`
	TotalAnnualBenefit float64 `json:"totalAnnualBenefit"`

	// PaybackYears is 0 when TotalAnnualBenefit is 0; PaybackUndefined
	// distinguishes that sentinel from a genuine instant payback.
	PaybackYears     float64 `json:"paybackYears"`
	PaybackUndefined bool    `json:"paybackUndefined"`

	TenYearSavings        float64 `json:"tenYearSavings"`
	TwentyFiveYearSavings float64 `json:"twentyFiveYearSavings"`
}

// EmissionsImpact converts energy deltas into CO2 tonnes.
type EmissionsImpact struct {
	CurrentCO2Tonnes   float64 `json:"currentCo2Tonnes"`
	ProjectedCO2Tonnes float64 `json:"projectedCo2Tonnes"`
	ReductionTonnes    float64 `json:"reductionTonnes"`
	ReductionPercent   float64 `json:"reductionPercent"`
	TreesEquivalent    int     `json:"treesEquivalent"`
	CarsEquivalent     float64 `json:"carsEquivalent"`
}
