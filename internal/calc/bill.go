package calc

import "math"

// ElectricityBill holds the billing-period facts of one electricity bill.
// Values come from the extraction boundary; the engine never mutates them.
type ElectricityBill struct {
	Retailer          string  `json:"retailer"`
	TotalAmount       float64 `json:"totalAmount"`
	TotalUsageKwh     float64 `json:"totalUsageKwh"`
	BillingDays       int     `json:"billingDays"`
	RatePerKwh        float64 `json:"ratePerKwh,omitempty"`
	DailySupplyCharge float64 `json:"dailySupplyCharge,omitempty"`
	SolarExportKwh    float64 `json:"solarExportKwh,omitempty"`
	FeedInRatePerKwh  float64 `json:"feedInRatePerKwh,omitempty"`
}

// Days returns the billing period length, defaulting when absent.
func (b ElectricityBill) Days() int {
	if b.BillingDays <= 0 {
		return DefaultBillingDays
	}
	return b.BillingDays
}

// EffectiveRate returns the per-kWh rate: the tariff rate when extracted,
// otherwise the bill-derived blended rate, otherwise the domain default.
func (b ElectricityBill) EffectiveRate() float64 {
	if b.RatePerKwh > 0 {
		return b.RatePerKwh
	}
	if b.TotalUsageKwh > 0 && b.TotalAmount > 0 {
		return b.TotalAmount / b.TotalUsageKwh
	}
	return DefaultElectricityRatePerKwh
}

// GasBill holds the billing-period facts of one gas bill.
type GasBill struct {
	Retailer          string  `json:"retailer"`
	TotalAmount       float64 `json:"totalAmount"`
	UsageMJ           float64 `json:"usageMj"`
	BillingDays       int     `json:"billingDays"`
	RatePerMJ         float64 `json:"ratePerMj,omitempty"`
	DailySupplyCharge float64 `json:"dailySupplyCharge,omitempty"`
}

// Days returns the billing period length, defaulting when absent.
func (b GasBill) Days() int {
	if b.BillingDays <= 0 {
		return DefaultBillingDays
	}
	return b.BillingDays
}

// EffectiveRate returns the usage-only per-MJ rate. Supply charges are
// excluded so electrification savings compare usage against usage.
func (b GasBill) EffectiveRate() float64 {
	if b.RatePerMJ > 0 {
		return b.RatePerMJ
	}
	if b.UsageMJ > 0 {
		usageAmount := b.TotalAmount - b.DailySupplyCharge*float64(b.Days())
		if usageAmount > 0 {
			return usageAmount / b.UsageMJ
		}
	}
	return DefaultGasRatePerMJ
}

// AnnualUsageMJ projects the billing-period gas usage to a full year.
func (b GasBill) AnnualUsageMJ() float64 {
	return b.UsageMJ * DaysPerYear / float64(b.Days())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundCurrency(v float64) float64 {
	return math.Round(v)
}
