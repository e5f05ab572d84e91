package customer

import "strings"

// Customer holds the household profile used as read-only input to a
// calculation run. It is never mutated by the engine.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	// State is the Australian state code, e.g. "VIC" or "NSW".
	State string `json:"state"`

	HasPool          bool    `json:"hasPool"`
	PoolVolumeLitres float64 `json:"poolVolumeLitres,omitempty"`

	HasEV      bool `json:"hasEv"`
	EVInterest bool `json:"evInterest"`

	HasExistingSolar      bool    `json:"hasExistingSolar"`
	ExistingSolarKw       float64 `json:"existingSolarKw,omitempty"`
	ExistingSolarAgeYears int     `json:"existingSolarAgeYears,omitempty"`

	// GasAppliances lists appliance descriptions as captured from the
	// customer, e.g. "Gas Hot Water", "Ducted Gas Heating", "Gas Cooktop".
	GasAppliances []string `json:"gasAppliances,omitempty"`
}

// WantsEV reports whether EV-related calculators apply.
func (c Customer) WantsEV() bool { return c.HasEV || c.EVInterest }

// HasGasHotWater reports whether a gas hot-water appliance was captured.
func (c Customer) HasGasHotWater() bool {
	return c.hasAppliance("hot water", "hws")
}

// HasGasHeating reports whether a gas heating appliance was captured.
func (c Customer) HasGasHeating() bool {
	return c.hasAppliance("heating", "heater", "ducted")
}

// HasGasCooktop reports whether a gas cooking appliance was captured.
func (c Customer) HasGasCooktop() bool {
	return c.hasAppliance("cooktop", "stove", "oven", "cooking")
}

func (c Customer) hasAppliance(keywords ...string) bool {
	for _, appliance := range c.GasAppliances {
		name := strings.ToLower(appliance)
		for _, keyword := range keywords {
			if strings.Contains(name, keyword) {
				return true
			}
		}
	}
	return false
}
