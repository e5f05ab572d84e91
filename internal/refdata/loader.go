package refdata

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyCatalog is returned when a loaded catalog has no providers.
var ErrEmptyCatalog = errors.New("refdata: empty provider catalog")

// Catalog bundles the reference data one deployment works with.
type Catalog struct {
	Providers []VppProvider `yaml:"vpp_providers"`
	Rebates   []StateRebate `yaml:"state_rebates"`
}

// Load reads a catalog from a yaml file, or returns the built-in defaults
// when path is empty. A file that parses but lists no providers is rejected
// so a bad deploy cannot silently erase every VPP offer.
func Load(path string) (Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, err
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return Catalog{}, err
	}
	if len(catalog.Providers) == 0 {
		return Catalog{}, ErrEmptyCatalog
	}
	if catalog.Rebates == nil {
		catalog.Rebates = DefaultCatalog().Rebates
	}
	return catalog, nil
}

// DefaultCatalog returns the built-in Australian reference data.
func DefaultCatalog() Catalog {
	return Catalog{
		Providers: []VppProvider{
			{
				Name:          "AGL",
				Program:       "AGL VPP",
				States:        []string{"NSW", "VIC", "QLD", "SA"},
				DailyCredit:   0.50,
				EventPayment:  1.00,
				EventsPerYear: 40,
				HasGasBundle:  true, GasBundleDiscount: 120,
			},
			{
				Name:          "Origin",
				Program:       "Origin Loop",
				States:        []string{"NSW", "VIC", "QLD", "SA", "ACT"},
				DailyCredit:   0.40,
				EventPayment:  1.20,
				EventsPerYear: 35,
				HasGasBundle:  true, GasBundleDiscount: 100,
			},
			{
				Name:          "Energy Locals",
				Program:       "Tesla Energy Plan",
				States:        []string{"NSW", "VIC", "QLD", "SA", "ACT", "TAS"},
				DailyCredit:   0.60,
				EventPayment:  0,
				EventsPerYear: 0,
				HasGasBundle:  false,
			},
			{
				Name:          "Simply Energy",
				Program:       "Simply VPP",
				States:        []string{"VIC", "SA"},
				DailyCredit:   0.30,
				EventPayment:  1.50,
				EventsPerYear: 30,
				HasGasBundle:  true, GasBundleDiscount: 80,
			},
			{
				Name:          "Discover Energy",
				Program:       "Discover VPP",
				States:        []string{"NSW", "VIC", "QLD", "SA"},
				DailyCredit:   0.25,
				EventPayment:  2.00,
				EventsPerYear: 25,
				HasGasBundle:  false,
			},
		},
		Rebates: []StateRebate{
			{State: "VIC", Category: RebateSolar, Amount: 1400},
			{State: "VIC", Category: RebateBattery, Amount: 2950},
			{State: "VIC", Category: RebateHeatPumpHW, Amount: 1000},
			{State: "VIC", Category: RebateHeatPumpAC, Amount: 1000},
			{State: "VIC", Category: RebateInduction, Amount: 900},
			{State: "NSW", Category: RebateBattery, Amount: 1600},
			{State: "NSW", Category: RebateHeatPumpHW, Amount: 800},
			{State: "NSW", Category: RebateEVCharger, Amount: 500},
			{State: "SA", Category: RebateBattery, Amount: 2000},
			{State: "QLD", Category: RebateBattery, Amount: 3000},
			{State: "ACT", Category: RebateHeatPumpAC, Amount: 2500},
		},
	}
}
