package calc

// Named keys of the investment, rebate and benefit maps. Fixed strings form
// part of the persisted payload, so renaming one is a breaking change.
const (
	ItemBattery       = "battery"
	ItemSolar         = "solar"
	ItemHeatPumpHW    = "heat_pump_hot_water"
	ItemReverseCycle  = "reverse_cycle_ac"
	ItemInduction     = "induction_cooktop"
	ItemEVCharger     = "ev_charger"
	ItemPoolHeatPump  = "pool_heat_pump"

	BenefitElectricity    = "electricity"
	BenefitGasElimination = "gas_elimination"
	BenefitVppIncome      = "vpp_income"
	BenefitEVSavings      = "ev_savings"
)

// CalculatePayback aggregates investments, rebates and annual benefits into
// net investment, payback period and multi-year returns. A zero total
// benefit yields PaybackYears 0 with PaybackUndefined set; that sentinel
// means "undefined", not "instant payback".
func CalculatePayback(investments, rebates, benefits map[string]float64) InvestmentSummary {
	totalInvestment := roundCurrency(sumAmounts(investments))
	totalRebates := roundCurrency(sumAmounts(rebates))
	totalBenefit := roundCurrency(sumAmounts(benefits))
	netInvestment := totalInvestment - totalRebates

	summary := InvestmentSummary{
		Investments:           investments,
		Rebates:               rebates,
		AnnualBenefits:        benefits,
		TotalInvestment:       totalInvestment,
		TotalRebates:          totalRebates,
		NetInvestment:         netInvestment,
		TotalAnnualBenefit:    totalBenefit,
		TenYearSavings:        roundCurrency(totalBenefit*10 - netInvestment),
		TwentyFiveYearSavings: roundCurrency(totalBenefit*25 - netInvestment),
	}

	if totalBenefit == 0 {
		summary.PaybackUndefined = true
		return summary
	}
	summary.PaybackYears = round2(netInvestment / totalBenefit)
	return summary
}

func sumAmounts(amounts map[string]float64) float64 {
	var total float64
	for _, amount := range amounts {
		total += amount
	}
	return total
}
