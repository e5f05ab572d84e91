// Package refdata holds the read-only reference data consumed by the
// calculation engine: VPP program offers and state rebate schedules.
package refdata

// Rebate categories as they appear in state rebate schedules.
const (
	RebateSolar          = "solar"
	RebateBattery        = "battery"
	RebateHeatPumpHW     = "heat_pump_hw"
	RebateHeatPumpAC     = "heat_pump_ac"
	RebateEVCharger      = "ev_charger"
	RebateInduction      = "induction"
)

// VppProvider describes one virtual-power-plant program offer.
type VppProvider struct {
	Name              string   `yaml:"name" json:"name"`
	Program           string   `yaml:"program" json:"program"`
	States            []string `yaml:"states" json:"states"`
	DailyCredit       float64  `yaml:"daily_credit" json:"dailyCredit"`
	EventPayment      float64  `yaml:"event_payment" json:"eventPayment"`
	EventsPerYear     float64  `yaml:"events_per_year" json:"eventsPerYear"`
	GasBundleDiscount float64  `yaml:"gas_bundle_discount" json:"gasBundleDiscount"`
	HasGasBundle      bool     `yaml:"has_gas_bundle" json:"hasGasBundle"`
}

// AvailableIn reports whether the program operates in the given state.
func (p VppProvider) AvailableIn(state string) bool {
	for _, s := range p.States {
		if s == state {
			return true
		}
	}
	return false
}

// StateRebate is one incentive line of a state rebate schedule.
type StateRebate struct {
	State    string  `yaml:"state" json:"state"`
	Category string  `yaml:"category" json:"category"`
	Amount   float64 `yaml:"amount" json:"amount"`
}

// RebateFor returns the rebate amount for a state and category, zero when
// no schedule line matches.
func RebateFor(rebates []StateRebate, state, category string) float64 {
	for _, r := range rebates {
		if r.State == state && r.Category == category {
			return r.Amount
		}
	}
	return 0
}
