// Package render turns assembled slides into the output formats consumed
// by the presentation boundary: per-slide HTML fragments for the live
// progress UI, and whole-proposal PDF and XLSX exports.
package render

import (
	"fmt"
	"sort"
	"strings"

	"wattplan-cloud/internal/slides"
)

// Field is one label/value line of a rendered slide. Every renderer works
// from the same field extraction so the three outputs agree on content.
type Field struct {
	Label string
	Value string
}

func money(v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}
	whole := fmt.Sprintf("%.0f", v)
	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	if negative {
		return "-$" + b.String()
	}
	return "$" + b.String()
}

func kwh(v float64) string { return fmt.Sprintf("%.2f kWh", v) }
func kw(v float64) string  { return fmt.Sprintf("%.1f kW", v) }

func years(v float64, undefined bool) string {
	if undefined {
		return "n/a"
	}
	return fmt.Sprintf("%.1f years", v)
}

func itemLabel(item string) string {
	words := strings.Split(item, "_")
	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}

func amountFields(amounts map[string]float64) []Field {
	keys := make([]string, 0, len(amounts))
	for key := range amounts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	fields := make([]Field, 0, len(keys))
	for _, key := range keys {
		fields = append(fields, Field{Label: itemLabel(key), Value: money(amounts[key])})
	}
	return fields
}

// SlideFields extracts the display lines for a slide's content. The switch
// is exhaustive over the content union; an unknown payload is an error so
// a new slide type cannot silently render blank.
func SlideFields(content slides.Content) ([]Field, error) {
	switch c := content.(type) {
	case slides.CoverContent:
		return []Field{
			{"Prepared for", c.CustomerName},
			{"Address", c.Address},
			{"Date", c.PreparedDate},
		}, nil
	case slides.ExecutiveSummaryContent:
		fields := []Field{
			{"Current annual electricity cost", money(c.ProjectedAnnualCost)},
			{"Total annual savings", money(c.TotalAnnualSavings)},
			{"Net investment", money(c.NetInvestment)},
			{"Payback period", years(c.PaybackYears, c.PaybackUndefined)},
			{"Recommended battery", fmt.Sprintf("%.0f kWh", c.BatteryKwh)},
		}
		if c.SolarKw > 0 {
			fields = append(fields, Field{"Recommended solar", kw(c.SolarKw)})
		}
		return fields, nil
	case slides.BillAnalysisContent:
		return []Field{
			{"Daily average cost", money(c.DailyAverageCost)},
			{"Daily average usage", kwh(c.DailyAverageKwh)},
			{"Projected annual cost", money(c.ProjectedAnnualCost)},
		}, nil
	case slides.UsageAnalysisContent:
		return []Field{
			{"Daily average", kwh(c.DailyAverageKwh)},
			{"Monthly usage", kwh(c.MonthlyUsageKwh)},
			{"Yearly usage", kwh(c.YearlyUsageKwh)},
		}, nil
	case slides.YearlyProjectionContent:
		return []Field{
			{"Yearly usage", kwh(c.YearlyUsageKwh)},
			{"Projected annual cost", money(c.ProjectedAnnualCost)},
			{"Cost over ten years", money(c.TenYearCost)},
		}, nil
	case slides.GasFootprintContent:
		return []Field{
			{"Annual gas cost", money(c.AnnualGasCost)},
			{"Energy equivalent", kwh(c.GasKwhEquivalent)},
			{"Annual CO2", fmt.Sprintf("%.0f kg", c.CO2EmissionsKg)},
			{"Daily gas cost", money(c.DailyGasCost)},
		}, nil
	case slides.GasAppliancesContent:
		fields := make([]Field, 0, len(c.Appliances))
		for i, appliance := range c.Appliances {
			fields = append(fields, Field{fmt.Sprintf("Appliance %d", i+1), appliance})
		}
		return fields, nil
	case slides.StrategicAssessmentContent:
		fields := []Field{
			{"Battery", fmt.Sprintf("%.0f kWh", c.BatteryKwh)},
			{"Total annual savings", money(c.TotalAnnualSavings)},
		}
		if c.SolarKw > 0 {
			fields = append(fields, Field{"Solar", kw(c.SolarKw)})
		}
		if c.VppStrategicFit != "" {
			fields = append(fields, Field{"VPP strategic fit", c.VppStrategicFit})
		}
		return fields, nil
	case slides.BatteryRecommendationContent:
		return []Field{
			{"Recommended capacity", fmt.Sprintf("%.0f kWh", c.RecommendedKwh)},
			{"Estimated cost", money(c.EstimatedCost)},
		}, nil
	case slides.SolarSystemContent:
		return []Field{
			{"System size", kw(c.RecommendedKw)},
			{"Panels", fmt.Sprintf("%d x 400 W", c.PanelCount)},
			{"Estimated cost", money(c.EstimatedCost)},
			{"Annual generation", kwh(c.AnnualGenerationKwh)},
		}, nil
	case slides.VppComparisonContent:
		fields := make([]Field, 0, len(c.Comparisons))
		for _, comparison := range c.Comparisons {
			fields = append(fields, Field{
				Label: comparison.Provider + " - " + comparison.Program,
				Value: fmt.Sprintf("%s/year (%s)", money(comparison.EstimatedAnnualValue), comparison.StrategicFit),
			})
		}
		return fields, nil
	case slides.VppRecommendationContent:
		if c.Provider == "" {
			return []Field{{"VPP program", "No eligible program in your state"}}, nil
		}
		return []Field{
			{"Provider", c.Provider},
			{"Program", c.Program},
			{"Annual value", money(c.AnnualValue)},
			{"Strategic fit", c.StrategicFit},
		}, nil
	case slides.HotWaterContent:
		return []Field{
			{"Current gas cost", money(c.CurrentGasCost)},
			{"Heat pump running cost", money(c.ElectricEquivalentCost)},
			{"Annual savings", money(c.AnnualSavings)},
			{"Supply charge eliminated", money(c.SupplyChargeSaved)},
		}, nil
	case slides.HeatingCoolingContent:
		return []Field{
			{"Current gas cost", money(c.CurrentGasCost)},
			{"Reverse cycle running cost", money(c.ElectricEquivalentCost)},
			{"Annual savings", money(c.AnnualSavings)},
		}, nil
	case slides.InductionCookingContent:
		return []Field{
			{"Current gas cost", money(c.CurrentGasCost)},
			{"Induction running cost", money(c.ElectricEquivalentCost)},
			{"Annual savings", money(c.AnnualSavings)},
		}, nil
	case slides.EVAnalysisContent:
		return []Field{
			{"Annual distance", fmt.Sprintf("%.0f km", c.AnnualKm)},
			{"Petrol cost", money(c.PetrolAnnualCost)},
			{"Grid charging cost", money(c.GridChargeAnnualCost)},
			{"Solar charging cost", money(c.SolarChargeAnnualCost)},
			{"Savings vs petrol", money(c.SavingsVsPetrol)},
			{"Savings with solar", money(c.SavingsWithSolar)},
		}, nil
	case slides.EVChargerContent:
		fields := []Field{{"Home charger", money(c.EstimatedCost)}}
		if c.Rebate > 0 {
			fields = append(fields, Field{"Available rebate", money(c.Rebate)})
		}
		return fields, nil
	case slides.PoolHeatPumpContent:
		return []Field{
			{"Heat pump size", kw(c.HeatPumpKw)},
			{"Annual running cost", money(c.AnnualRunningCost)},
			{"Gas heating comparison", money(c.GasComparisonCost)},
			{"Annual savings", money(c.AnnualSavings)},
		}, nil
	case slides.ElectrificationInvestmentContent:
		fields := amountFields(c.Items)
		for _, rebate := range amountFields(c.Rebates) {
			fields = append(fields, Field{"Rebate: " + rebate.Label, rebate.Value})
		}
		fields = append(fields, Field{"Total annual savings", money(c.TotalAnnualSavings)})
		return fields, nil
	case slides.SavingsSummaryContent:
		var fields []Field
		if c.ElectrificationSavings > 0 {
			fields = append(fields, Field{"Electrification", money(c.ElectrificationSavings)})
		}
		if c.PoolSavings > 0 {
			fields = append(fields, Field{"Pool heating", money(c.PoolSavings)})
		}
		if c.EVSavings > 0 {
			fields = append(fields, Field{"Electric vehicle", money(c.EVSavings)})
		}
		if c.VppAnnualValue > 0 {
			fields = append(fields, Field{"VPP income", money(c.VppAnnualValue)})
		}
		return append(fields, Field{"Total annual savings", money(c.TotalAnnualSavings)}), nil
	case slides.FinancialSummaryContent:
		return []Field{
			{"Total investment", money(c.TotalInvestment)},
			{"Total rebates", money(c.TotalRebates)},
			{"Net investment", money(c.NetInvestment)},
			{"Total annual benefit", money(c.TotalAnnualBenefit)},
			{"Payback period", years(c.PaybackYears, c.PaybackUndefined)},
			{"Ten year position", money(c.TenYearSavings)},
			{"Twenty-five year position", money(c.TwentyFiveYearSavings)},
		}, nil
	case slides.EnvironmentalImpactContent:
		return []Field{
			{"Current emissions", fmt.Sprintf("%.2f t CO2e/year", c.CurrentCO2Tonnes)},
			{"Projected emissions", fmt.Sprintf("%.2f t CO2e/year", c.ProjectedCO2Tonnes)},
			{"Reduction", fmt.Sprintf("%.2f t (%.0f%%)", c.ReductionTonnes, c.ReductionPercent)},
			{"Equivalent trees planted", fmt.Sprintf("%d", c.TreesEquivalent)},
			{"Equivalent cars off the road", fmt.Sprintf("%.1f", c.CarsEquivalent)},
		}, nil
	case slides.RoadmapContent:
		fields := make([]Field, 0, len(c.Steps))
		for i, step := range c.Steps {
			fields = append(fields, Field{fmt.Sprintf("Phase %d", i+1), step})
		}
		return fields, nil
	case slides.ConclusionContent:
		return []Field{
			{"Total annual savings", money(c.TotalAnnualSavings)},
			{"Net investment", money(c.NetInvestment)},
			{"Payback period", years(c.PaybackYears, c.PaybackUndefined)},
		}, nil
	case slides.ContactContent:
		fields := []Field{{"Prepared for", c.CustomerName}}
		if c.Email != "" {
			fields = append(fields, Field{"Email", c.Email})
		}
		if c.Phone != "" {
			fields = append(fields, Field{"Phone", c.Phone})
		}
		return fields, nil
	case nil:
		return nil, nil
	}
	return nil, fmt.Errorf("render: unknown slide content %T", content)
}
