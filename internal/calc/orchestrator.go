package calc

import (
	"errors"
	"time"

	"wattplan-cloud/internal/customer"
	"wattplan-cloud/internal/refdata"
)

// ErrMissingElectricityBill is returned when a run is requested without an
// electricity bill. Callers are expected to reject such requests upstream.
var ErrMissingElectricityBill = errors.New("calc: electricity bill required")

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock uses time.Now in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// Orchestrator runs the calculators in their fixed dependency order and
// assembles one Calculations aggregate. It holds only immutable reference
// data, so any number of runs may execute concurrently.
type Orchestrator struct {
	catalog refdata.Catalog
	clock   Clock
}

// NewOrchestrator constructs an Orchestrator.
func NewOrchestrator(catalog refdata.Catalog, clock Clock) (*Orchestrator, error) {
	if len(catalog.Providers) == 0 {
		return nil, refdata.ErrEmptyCatalog
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Orchestrator{catalog: catalog, clock: clock}, nil
}

// Run derives the full recommendation for one household. The gas bill is
// optional; its absence simply skips the gas and electrification branches.
func (o *Orchestrator) Run(cust customer.Customer, electricity ElectricityBill, gas *GasBill) (*Calculations, error) {
	if electricity.TotalUsageKwh <= 0 && electricity.TotalAmount <= 0 {
		return nil, ErrMissingElectricityBill
	}

	rate := electricity.EffectiveRate()
	result := &Calculations{
		GeneratedAt: o.clock.Now(),
		Usage:       ProjectUsage(electricity),
	}

	if gas != nil {
		analysis := AnalyzeGas(*gas)
		result.Gas = &analysis
		electrification := ElectrificationSavings(*gas, rate)
		result.Electrification = &electrification
	}

	if cust.HasPool {
		pool := EstimatePoolHeatPump(cust.PoolVolumeLitres, rate)
		result.Pool = &pool
	}

	if cust.WantsEV() {
		ev := EstimateEVSavings(rate)
		result.EV = &ev
	}

	// VPP participation is assumed for every recommendation today, which
	// forces the battery floor. Kept as an explicit argument so the
	// assumption stays visible.
	result.Battery = SizeBattery(result.Usage.DailyAverageKwh, cust.WantsEV(), true)

	if !cust.HasExistingSolar {
		var evKwh float64
		if result.EV != nil {
			evKwh = result.EV.AnnualConsumptionKwh
		}
		solar := SizeSolar(result.Usage.YearlyUsageKwh, result.Battery.RecommendedKwh, evKwh)
		result.Solar = &solar
	}

	result.Vpp = CompareVpp(o.catalog.Providers, cust.State, gas != nil)

	investments, rebates, benefits := o.assembleAmounts(cust, result)
	result.Investment = CalculatePayback(investments, rebates, benefits)

	var solarGeneration float64
	gasMJ := 0.0
	if gas != nil {
		gasMJ = gas.AnnualUsageMJ()
	}
	if result.Solar != nil {
		solarGeneration = result.Solar.AnnualGenerationKwh
	}
	result.Emissions = CalculateEmissions(result.Usage.YearlyUsageKwh, gasMJ, solarGeneration, gas != nil)

	result.TotalAnnualSavings = round2(totalAnnualSavings(result))
	return result, nil
}

// assembleAmounts builds the three named-amount maps fed to the payback
// calculator. Absent features contribute no entry at all; they are never
// defaulted to zero rows.
func (o *Orchestrator) assembleAmounts(cust customer.Customer, result *Calculations) (investments, rebates, benefits map[string]float64) {
	investments = map[string]float64{
		ItemBattery: result.Battery.EstimatedCost,
	}
	if result.Solar != nil {
		investments[ItemSolar] = result.Solar.EstimatedCost
	}
	if result.Gas != nil {
		if cust.HasGasHotWater() {
			investments[ItemHeatPumpHW] = HeatPumpHotWaterPrice
		}
		if cust.HasGasHeating() {
			investments[ItemReverseCycle] = ReverseCycleACPrice
		}
		if cust.HasGasCooktop() {
			investments[ItemInduction] = InductionCooktopPrice
		}
	}
	if cust.WantsEV() {
		investments[ItemEVCharger] = EVChargerPrice
	}
	if cust.HasPool {
		investments[ItemPoolHeatPump] = PoolHeatPumpPrice
	}

	rebates = map[string]float64{}
	addRebate := func(item, category string) {
		if _, invested := investments[item]; !invested {
			return
		}
		if amount := refdata.RebateFor(o.catalog.Rebates, cust.State, category); amount > 0 {
			rebates[item] = amount
		}
	}
	addRebate(ItemBattery, refdata.RebateBattery)
	addRebate(ItemSolar, refdata.RebateSolar)
	addRebate(ItemHeatPumpHW, refdata.RebateHeatPumpHW)
	addRebate(ItemReverseCycle, refdata.RebateHeatPumpAC)
	addRebate(ItemInduction, refdata.RebateInduction)
	addRebate(ItemEVCharger, refdata.RebateEVCharger)

	benefits = map[string]float64{}
	if result.Solar != nil {
		benefits[BenefitElectricity] = round2(result.Usage.ProjectedAnnualCost * SolarSelfConsumptionOffset)
	}
	if result.Gas != nil {
		benefits[BenefitGasElimination] = result.Gas.AnnualGasCost
	}
	if value := result.Vpp.SelectedAnnualValue(); value > 0 {
		benefits[BenefitVppIncome] = value
	}
	if result.EV != nil {
		benefits[BenefitEVSavings] = evAnnualSavings(result)
	}
	return investments, rebates, benefits
}

// evAnnualSavings picks the EV savings stream matching the recommendation:
// the full petrol cost when solar covers charging, otherwise petrol minus
// grid charging.
func evAnnualSavings(result *Calculations) float64 {
	if result.EV == nil {
		return 0
	}
	if result.Solar != nil {
		return result.EV.SavingsWithSolar
	}
	return result.EV.SavingsVsPetrol
}

func totalAnnualSavings(result *Calculations) float64 {
	var total float64
	if result.Electrification != nil {
		total += result.Electrification.TotalAnnualSavings
	}
	if result.Pool != nil {
		total += result.Pool.AnnualSavings
	}
	if result.EV != nil {
		total += evAnnualSavings(result)
	}
	total += result.Vpp.SelectedAnnualValue()
	return total
}
