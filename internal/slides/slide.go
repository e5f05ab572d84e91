// Package slides turns a Calculations aggregate and a customer profile into
// the ordered slide records every renderer consumes. The slide list is the
// wire format between the engine and the HTML, PDF and workbook outputs:
// renaming a content field breaks all of them at once.
package slides

import "wattplan-cloud/internal/calc"

// SlideType discriminates the content payload of a slide.
type SlideType string

// The full set of slide types in canonical order.
const (
	TypeCover                     SlideType = "cover"
	TypeExecutiveSummary          SlideType = "executive_summary"
	TypeBillAnalysis              SlideType = "bill_analysis"
	TypeUsageAnalysis             SlideType = "usage_analysis"
	TypeYearlyProjection          SlideType = "yearly_projection"
	TypeGasFootprint              SlideType = "gas_footprint"
	TypeGasAppliances             SlideType = "gas_appliances"
	TypeStrategicAssessment       SlideType = "strategic_assessment"
	TypeBatteryRecommendation     SlideType = "battery_recommendation"
	TypeSolarSystem               SlideType = "solar_system"
	TypeVppComparison             SlideType = "vpp_comparison"
	TypeVppRecommendation         SlideType = "vpp_recommendation"
	TypeHotWater                  SlideType = "hot_water"
	TypeHeatingCooling            SlideType = "heating_cooling"
	TypeInductionCooking          SlideType = "induction_cooking"
	TypeEVAnalysis                SlideType = "ev_analysis"
	TypeEVCharger                 SlideType = "ev_charger"
	TypePoolHeatPump              SlideType = "pool_heat_pump"
	TypeElectrificationInvestment SlideType = "electrification_investment"
	TypeSavingsSummary            SlideType = "savings_summary"
	TypeFinancialSummary          SlideType = "financial_summary"
	TypeEnvironmentalImpact       SlideType = "environmental_impact"
	TypeRoadmap                   SlideType = "roadmap"
	TypeConclusion                SlideType = "conclusion"
	TypeContact                   SlideType = "contact"
)

// Slide is one semantic presentation section. Slides are produced fresh on
// every assembly call and never mutated afterwards.
type Slide struct {
	SlideNumber   int       `json:"slideNumber"`
	SlideType     SlideType `json:"slideType"`
	Title         string    `json:"title"`
	IsConditional bool      `json:"isConditional"`
	IsIncluded    bool      `json:"isIncluded"`
	Content       Content   `json:"content"`
}

// Content is the sealed union of slide payloads. Renderers switch on the
// concrete type; the compiler keeps every switch honest when a type is
// added.
type Content interface {
	isSlideContent()
}

// CoverContent opens the presentation.
type CoverContent struct {
	CustomerName string `json:"customerName"`
	Address      string `json:"address"`
	PreparedDate string `json:"preparedDate"`
}

// ExecutiveSummaryContent gives the one-page numbers.
type ExecutiveSummaryContent struct {
	ProjectedAnnualCost float64 `json:"projectedAnnualCost"`
	TotalAnnualSavings  float64 `json:"totalAnnualSavings"`
	NetInvestment       float64 `json:"netInvestment"`
	PaybackYears        float64 `json:"paybackYears"`
	PaybackUndefined    bool    `json:"paybackUndefined"`
	BatteryKwh          float64 `json:"batteryKwh"`
	SolarKw             float64 `json:"solarKw,omitempty"`
}

// BillAnalysisContent breaks down the current electricity bill.
type BillAnalysisContent struct {
	DailyAverageCost    float64 `json:"dailyAverageCost"`
	DailyAverageKwh     float64 `json:"dailyAverageKwh"`
	ProjectedAnnualCost float64 `json:"projectedAnnualCost"`
}

// UsageAnalysisContent shows consumption patterns.
type UsageAnalysisContent struct {
	DailyAverageKwh float64 `json:"dailyAverageKwh"`
	MonthlyUsageKwh float64 `json:"monthlyUsageKwh"`
	YearlyUsageKwh  float64 `json:"yearlyUsageKwh"`
}

// YearlyProjectionContent projects the status quo forward.
type YearlyProjectionContent struct {
	YearlyUsageKwh      float64 `json:"yearlyUsageKwh"`
	ProjectedAnnualCost float64 `json:"projectedAnnualCost"`
	TenYearCost         float64 `json:"tenYearCost"`
}

// GasFootprintContent summarizes the gas bill.
type GasFootprintContent struct {
	AnnualGasCost    float64 `json:"annualGasCost"`
	GasKwhEquivalent float64 `json:"gasKwhEquivalent"`
	CO2EmissionsKg   float64 `json:"co2EmissionsKg"`
	DailyGasCost     float64 `json:"dailyGasCost"`
}

// GasAppliancesContent lists the captured gas appliances.
type GasAppliancesContent struct {
	Appliances []string `json:"appliances"`
}

// StrategicAssessmentContent positions the overall recommendation.
type StrategicAssessmentContent struct {
	BatteryKwh         float64 `json:"batteryKwh"`
	SolarKw            float64 `json:"solarKw,omitempty"`
	VppStrategicFit    string  `json:"vppStrategicFit,omitempty"`
	TotalAnnualSavings float64 `json:"totalAnnualSavings"`
}

// BatteryRecommendationContent presents the sized battery.
type BatteryRecommendationContent struct {
	RecommendedKwh float64 `json:"recommendedKwh"`
	EstimatedCost  float64 `json:"estimatedCost"`
}

// SolarSystemContent presents the sized solar system.
type SolarSystemContent struct {
	RecommendedKw       float64 `json:"recommendedKw"`
	PanelCount          int     `json:"panelCount"`
	EstimatedCost       float64 `json:"estimatedCost"`
	AnnualGenerationKwh float64 `json:"annualGenerationKwh"`
}

// VppComparisonContent carries the full ranked provider table.
type VppComparisonContent struct {
	Comparisons []calc.VppComparison `json:"comparisons"`
}

// VppRecommendationContent presents the selected provider.
type VppRecommendationContent struct {
	Provider     string  `json:"provider"`
	Program      string  `json:"program"`
	AnnualValue  float64 `json:"annualValue"`
	StrategicFit string  `json:"strategicFit"`
}

// HotWaterContent presents the heat-pump hot-water conversion.
type HotWaterContent struct {
	calc.ApplianceSavings
	SupplyChargeSaved float64 `json:"supplyChargeSaved"`
}

// HeatingCoolingContent presents the reverse-cycle conversion.
type HeatingCoolingContent struct {
	calc.ApplianceSavings
}

// InductionCookingContent presents the induction conversion.
type InductionCookingContent struct {
	calc.ApplianceSavings
}

// EVAnalysisContent presents EV running-cost comparisons.
type EVAnalysisContent struct {
	calc.EVAnalysis
}

// EVChargerContent presents the home charger line item.
type EVChargerContent struct {
	EstimatedCost float64 `json:"estimatedCost"`
	Rebate        float64 `json:"rebate,omitempty"`
}

// PoolHeatPumpContent presents the pool heat pump.
type PoolHeatPumpContent struct {
	calc.PoolAnalysis
}

// ElectrificationInvestmentContent itemizes the electrification spend.
type ElectrificationInvestmentContent struct {
	Items              map[string]float64 `json:"items"`
	Rebates            map[string]float64 `json:"rebates"`
	TotalAnnualSavings float64            `json:"totalAnnualSavings"`
}

// SavingsSummaryContent totals every savings stream.
type SavingsSummaryContent struct {
	ElectrificationSavings float64 `json:"electrificationSavings,omitempty"`
	PoolSavings            float64 `json:"poolSavings,omitempty"`
	EVSavings              float64 `json:"evSavings,omitempty"`
	VppAnnualValue         float64 `json:"vppAnnualValue,omitempty"`
	TotalAnnualSavings     float64 `json:"totalAnnualSavings"`
}

// FinancialSummaryContent presents the payback economics.
type FinancialSummaryContent struct {
	TotalInvestment       float64 `json:"totalInvestment"`
	TotalRebates          float64 `json:"totalRebates"`
	NetInvestment         float64 `json:"netInvestment"`
	TotalAnnualBenefit    float64 `json:"totalAnnualBenefit"`
	PaybackYears          float64 `json:"paybackYears"`
	PaybackUndefined      bool    `json:"paybackUndefined"`
	TenYearSavings        float64 `json:"tenYearSavings"`
	TwentyFiveYearSavings float64 `json:"twentyFiveYearSavings"`
}

// EnvironmentalImpactContent presents the emissions delta.
type EnvironmentalImpactContent struct {
	calc.EmissionsImpact
}

// RoadmapContent lists the installation phases.
type RoadmapContent struct {
	Steps []string `json:"steps"`
}

// ConclusionContent closes the argument.
type ConclusionContent struct {
	TotalAnnualSavings float64 `json:"totalAnnualSavings"`
	NetInvestment      float64 `json:"netInvestment"`
	PaybackYears       float64 `json:"paybackYears"`
	PaybackUndefined   bool    `json:"paybackUndefined"`
}

// ContactContent ends with next steps.
type ContactContent struct {
	CustomerName string `json:"customerName"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

func (CoverContent) isSlideContent()                     {}
func (ExecutiveSummaryContent) isSlideContent()          {}
func (BillAnalysisContent) isSlideContent()              {}
func (UsageAnalysisContent) isSlideContent()             {}
func (YearlyProjectionContent) isSlideContent()          {}
func (GasFootprintContent) isSlideContent()              {}
func (GasAppliancesContent) isSlideContent()             {}
func (StrategicAssessmentContent) isSlideContent()       {}
func (BatteryRecommendationContent) isSlideContent()     {}
func (SolarSystemContent) isSlideContent()               {}
func (VppComparisonContent) isSlideContent()             {}
func (VppRecommendationContent) isSlideContent()         {}
func (HotWaterContent) isSlideContent()                  {}
func (HeatingCoolingContent) isSlideContent()            {}
func (InductionCookingContent) isSlideContent()          {}
func (EVAnalysisContent) isSlideContent()                {}
func (EVChargerContent) isSlideContent()                 {}
func (PoolHeatPumpContent) isSlideContent()              {}
func (ElectrificationInvestmentContent) isSlideContent() {}
func (SavingsSummaryContent) isSlideContent()            {}
func (FinancialSummaryContent) isSlideContent()          {}
func (EnvironmentalImpactContent) isSlideContent()       {}
func (RoadmapContent) isSlideContent()                   {}
func (ConclusionContent) isSlideContent()                {}
func (ContactContent) isSlideContent()                   {}
