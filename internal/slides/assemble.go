package slides

import (
	"errors"

	"wattplan-cloud/internal/calc"
	"wattplan-cloud/internal/customer"
)

// ErrNilCalculations is returned when assembling without a calculation run.
var ErrNilCalculations = errors.New("slides: nil calculations")

// input bundles the assembler's two read-only inputs.
type input struct {
	cust customer.Customer
	calc *calc.Calculations
}

// slideEntry is one entry of the canonical sequence. The table order is the
// only ordering authority; values never reorder slides, only the include
// predicate decides presence.
type slideEntry struct {
	slideType   SlideType
	title       string
	conditional bool
	include     func(input) bool
	build       func(input) Content
}

func always(input) bool { return true }

// canonicalSequence is the fixed slide order.
var canonicalSequence = []slideEntry{
	{TypeCover, "Your Energy Independence Plan", false, always, buildCover},
	{TypeExecutiveSummary, "Executive Summary", false, always, buildExecutiveSummary},
	{TypeBillAnalysis, "Your Electricity Bill Today", false, always, buildBillAnalysis},
	{TypeUsageAnalysis, "How You Use Energy", false, always, buildUsageAnalysis},
	{TypeYearlyProjection, "Your Costs Over Time", false, always, buildYearlyProjection},
	{TypeGasFootprint, "Your Gas Footprint", true, hasGas, buildGasFootprint},
	{TypeGasAppliances, "Your Gas Appliances", true, hasGasAppliances, buildGasAppliances},
	{TypeStrategicAssessment, "Strategic Assessment", false, always, buildStrategicAssessment},
	{TypeBatteryRecommendation, "Recommended Battery", false, always, buildBattery},
	{TypeSolarSystem, "Recommended Solar System", true, hasSolar, buildSolar},
	{TypeVppComparison, "Virtual Power Plant Comparison", false, always, buildVppComparison},
	{TypeVppRecommendation, "Recommended VPP Program", false, always, buildVppRecommendation},
	{TypeHotWater, "Heat Pump Hot Water", true, includeHotWater, buildHotWater},
	{TypeHeatingCooling, "Reverse Cycle Heating & Cooling", true, includeHeating, buildHeatingCooling},
	{TypeInductionCooking, "Induction Cooking", true, includeCooking, buildInduction},
	{TypeEVAnalysis, "Electric Vehicle Savings", true, wantsEV, buildEVAnalysis},
	{TypeEVCharger, "Home EV Charging", true, wantsEV, buildEVCharger},
	{TypePoolHeatPump, "Pool Heat Pump", true, hasPool, buildPoolHeatPump},
	{TypeElectrificationInvestment, "Electrification Investment", true, hasGas, buildElectrificationInvestment},
	{TypeSavingsSummary, "Your Annual Savings", false, always, buildSavingsSummary},
	{TypeFinancialSummary, "Investment & Payback", false, always, buildFinancialSummary},
	{TypeEnvironmentalImpact, "Environmental Impact", false, always, buildEnvironmentalImpact},
	{TypeRoadmap, "Your Roadmap", false, always, buildRoadmap},
	{TypeConclusion, "The Bottom Line", false, always, buildConclusion},
	{TypeContact, "Next Steps", false, always, buildContact},
}

// Assemble produces the full canonical slide list with inclusion flags.
// Numbering is contiguous from 1 across every emitted slide; excluded
// slides keep their canonical position and carry no content.
func Assemble(cust customer.Customer, calculations *calc.Calculations) ([]Slide, error) {
	if calculations == nil {
		return nil, ErrNilCalculations
	}
	in := input{cust: cust, calc: calculations}

	result := make([]Slide, 0, len(canonicalSequence))
	for i, spec := range canonicalSequence {
		slide := Slide{
			SlideNumber:   i + 1,
			SlideType:     spec.slideType,
			Title:         spec.title,
			IsConditional: spec.conditional,
			IsIncluded:    spec.include(in),
		}
		if slide.IsIncluded {
			slide.Content = spec.build(in)
		}
		result = append(result, slide)
	}
	return result, nil
}

// IncludedOnly filters a full assembly down to the included slides and
// renumbers them contiguously from 1. The relative order is untouched.
func IncludedOnly(all []Slide) []Slide {
	result := make([]Slide, 0, len(all))
	for _, slide := range all {
		if !slide.IsIncluded {
			continue
		}
		slide.SlideNumber = len(result) + 1
		result = append(result, slide)
	}
	return result
}

// ---- inclusion predicates ----

func hasGas(in input) bool  { return in.calc.Gas != nil }
func hasPool(in input) bool { return in.cust.HasPool && in.calc.Pool != nil }
func wantsEV(in input) bool { return in.cust.WantsEV() && in.calc.EV != nil }
func hasSolar(in input) bool {
	return !in.cust.HasExistingSolar && in.calc.Solar != nil
}
func hasGasAppliances(in input) bool {
	return in.calc.Gas != nil && len(in.cust.GasAppliances) > 0
}
func includeHotWater(in input) bool {
	return in.calc.Electrification != nil && in.cust.HasGasHotWater()
}
func includeHeating(in input) bool {
	return in.calc.Electrification != nil && in.cust.HasGasHeating()
}
func includeCooking(in input) bool {
	return in.calc.Electrification != nil && in.cust.HasGasCooktop()
}

// ---- content builders ----

func buildCover(in input) Content {
	return CoverContent{
		CustomerName: in.cust.Name,
		Address:      in.cust.Address,
		PreparedDate: in.calc.GeneratedAt.Format("2 January 2006"),
	}
}

func buildExecutiveSummary(in input) Content {
	content := ExecutiveSummaryContent{
		ProjectedAnnualCost: in.calc.Usage.ProjectedAnnualCost,
		TotalAnnualSavings:  in.calc.TotalAnnualSavings,
		NetInvestment:       in.calc.Investment.NetInvestment,
		PaybackYears:        in.calc.Investment.PaybackYears,
		PaybackUndefined:    in.calc.Investment.PaybackUndefined,
		BatteryKwh:          in.calc.Battery.RecommendedKwh,
	}
	if in.calc.Solar != nil {
		content.SolarKw = in.calc.Solar.RecommendedKw
	}
	return content
}

func buildBillAnalysis(in input) Content {
	return BillAnalysisContent{
		DailyAverageCost:    in.calc.Usage.DailyAverageCost,
		DailyAverageKwh:     in.calc.Usage.DailyAverageKwh,
		ProjectedAnnualCost: in.calc.Usage.ProjectedAnnualCost,
	}
}

func buildUsageAnalysis(in input) Content {
	return UsageAnalysisContent{
		DailyAverageKwh: in.calc.Usage.DailyAverageKwh,
		MonthlyUsageKwh: in.calc.Usage.MonthlyUsageKwh,
		YearlyUsageKwh:  in.calc.Usage.YearlyUsageKwh,
	}
}

func buildYearlyProjection(in input) Content {
	return YearlyProjectionContent{
		YearlyUsageKwh:      in.calc.Usage.YearlyUsageKwh,
		ProjectedAnnualCost: in.calc.Usage.ProjectedAnnualCost,
		TenYearCost:         in.calc.Usage.ProjectedAnnualCost * 10,
	}
}

func buildGasFootprint(in input) Content {
	return GasFootprintContent{
		AnnualGasCost:    in.calc.Gas.AnnualGasCost,
		GasKwhEquivalent: in.calc.Gas.GasKwhEquivalent,
		CO2EmissionsKg:   in.calc.Gas.CO2EmissionsKg,
		DailyGasCost:     in.calc.Gas.DailyGasCost,
	}
}

func buildGasAppliances(in input) Content {
	return GasAppliancesContent{Appliances: in.cust.GasAppliances}
}

func buildStrategicAssessment(in input) Content {
	content := StrategicAssessmentContent{
		BatteryKwh:         in.calc.Battery.RecommendedKwh,
		TotalAnnualSavings: in.calc.TotalAnnualSavings,
	}
	if in.calc.Solar != nil {
		content.SolarKw = in.calc.Solar.RecommendedKw
	}
	if selected := in.calc.Vpp.Selected(); selected != nil {
		content.VppStrategicFit = selected.StrategicFit
	}
	return content
}

func buildBattery(in input) Content {
	return BatteryRecommendationContent{
		RecommendedKwh: in.calc.Battery.RecommendedKwh,
		EstimatedCost:  in.calc.Battery.EstimatedCost,
	}
}

func buildSolar(in input) Content {
	return SolarSystemContent{
		RecommendedKw:       in.calc.Solar.RecommendedKw,
		PanelCount:          in.calc.Solar.PanelCount,
		EstimatedCost:       in.calc.Solar.EstimatedCost,
		AnnualGenerationKwh: in.calc.Solar.AnnualGenerationKwh,
	}
}

func buildVppComparison(in input) Content {
	return VppComparisonContent{Comparisons: in.calc.Vpp.Comparisons}
}

func buildVppRecommendation(in input) Content {
	selected := in.calc.Vpp.Selected()
	if selected == nil {
		return VppRecommendationContent{}
	}
	return VppRecommendationContent{
		Provider:     selected.Provider,
		Program:      selected.Program,
		AnnualValue:  selected.EstimatedAnnualValue,
		StrategicFit: selected.StrategicFit,
	}
}

func buildHotWater(in input) Content {
	return HotWaterContent{
		ApplianceSavings:  in.calc.Electrification.HotWater,
		SupplyChargeSaved: in.calc.Electrification.HotWaterSupplyChargeSaved,
	}
}

func buildHeatingCooling(in input) Content {
	return HeatingCoolingContent{ApplianceSavings: in.calc.Electrification.Heating}
}

func buildInduction(in input) Content {
	return InductionCookingContent{ApplianceSavings: in.calc.Electrification.Cooking}
}

func buildEVAnalysis(in input) Content {
	return EVAnalysisContent{EVAnalysis: *in.calc.EV}
}

func buildEVCharger(in input) Content {
	return EVChargerContent{
		EstimatedCost: in.calc.Investment.Investments[calc.ItemEVCharger],
		Rebate:        in.calc.Investment.Rebates[calc.ItemEVCharger],
	}
}

func buildPoolHeatPump(in input) Content {
	return PoolHeatPumpContent{PoolAnalysis: *in.calc.Pool}
}

// electrificationItems are the investment lines shown on the
// electrification investment slide.
var electrificationItems = []string{
	calc.ItemHeatPumpHW, calc.ItemReverseCycle, calc.ItemInduction,
}

func buildElectrificationInvestment(in input) Content {
	items := map[string]float64{}
	rebates := map[string]float64{}
	for _, item := range electrificationItems {
		if amount, ok := in.calc.Investment.Investments[item]; ok {
			items[item] = amount
		}
		if amount, ok := in.calc.Investment.Rebates[item]; ok {
			rebates[item] = amount
		}
	}
	return ElectrificationInvestmentContent{
		Items:              items,
		Rebates:            rebates,
		TotalAnnualSavings: in.calc.Electrification.TotalAnnualSavings,
	}
}

func buildSavingsSummary(in input) Content {
	content := SavingsSummaryContent{
		VppAnnualValue:     in.calc.Vpp.SelectedAnnualValue(),
		TotalAnnualSavings: in.calc.TotalAnnualSavings,
	}
	if in.calc.Electrification != nil {
		content.ElectrificationSavings = in.calc.Electrification.TotalAnnualSavings
	}
	if in.calc.Pool != nil {
		content.PoolSavings = in.calc.Pool.AnnualSavings
	}
	if in.calc.EV != nil {
		if in.calc.Solar != nil {
			content.EVSavings = in.calc.EV.SavingsWithSolar
		} else {
			content.EVSavings = in.calc.EV.SavingsVsPetrol
		}
	}
	return content
}

func buildFinancialSummary(in input) Content {
	inv := in.calc.Investment
	return FinancialSummaryContent{
		TotalInvestment:       inv.TotalInvestment,
		TotalRebates:          inv.TotalRebates,
		NetInvestment:         inv.NetInvestment,
		TotalAnnualBenefit:    inv.TotalAnnualBenefit,
		PaybackYears:          inv.PaybackYears,
		PaybackUndefined:      inv.PaybackUndefined,
		TenYearSavings:        inv.TenYearSavings,
		TwentyFiveYearSavings: inv.TwentyFiveYearSavings,
	}
}

func buildEnvironmentalImpact(in input) Content {
	return EnvironmentalImpactContent{EmissionsImpact: in.calc.Emissions}
}

func buildRoadmap(in input) Content {
	steps := []string{
		"Site assessment and final system design",
		"Battery and switchboard installation",
	}
	if in.calc.Solar != nil {
		steps = append(steps, "Solar panel installation and grid connection")
	}
	if in.calc.Electrification != nil {
		steps = append(steps, "Staged appliance electrification", "Gas disconnection")
	}
	if selected := in.calc.Vpp.Selected(); selected != nil {
		steps = append(steps, "VPP enrolment with "+selected.Provider)
	}
	steps = append(steps, "Final review and handover")
	return RoadmapContent{Steps: steps}
}

func buildConclusion(in input) Content {
	return ConclusionContent{
		TotalAnnualSavings: in.calc.TotalAnnualSavings,
		NetInvestment:      in.calc.Investment.NetInvestment,
		PaybackYears:       in.calc.Investment.PaybackYears,
		PaybackUndefined:   in.calc.Investment.PaybackUndefined,
	}
}

func buildContact(in input) Content {
	return ContactContent{
		CustomerName: in.cust.Name,
		Email:        in.cust.Email,
		Phone:        in.cust.Phone,
	}
}
