// Package extraction defines the boundary types produced by the external
// bill-extraction collaborator and the validation rules applied to them
// before a calculation run. No OCR happens here.
package extraction

import "wattplan-cloud/internal/calc"

// ElectricityBillData is the extracted electricity bill plus the
// collaborator's confidence in the extraction.
type ElectricityBillData struct {
	Retailer          string  `json:"retailer"`
	TotalAmount       float64 `json:"totalAmount"`
	TotalUsageKwh     float64 `json:"totalUsageKwh"`
	BillingDays       int     `json:"billingDays"`
	RatePerKwh        float64 `json:"ratePerKwh,omitempty"`
	DailySupplyCharge float64 `json:"dailySupplyCharge,omitempty"`
	SolarExportKwh    float64 `json:"solarExportKwh,omitempty"`
	FeedInRatePerKwh  float64 `json:"feedInRatePerKwh,omitempty"`
	// ExtractionConfidence is 0-100.
	ExtractionConfidence float64 `json:"extractionConfidence"`
}

// ToBill converts to the engine's bill value.
func (d ElectricityBillData) ToBill() calc.ElectricityBill {
	return calc.ElectricityBill{
		Retailer:          d.Retailer,
		TotalAmount:       d.TotalAmount,
		TotalUsageKwh:     d.TotalUsageKwh,
		BillingDays:       d.BillingDays,
		RatePerKwh:        d.RatePerKwh,
		DailySupplyCharge: d.DailySupplyCharge,
		SolarExportKwh:    d.SolarExportKwh,
		FeedInRatePerKwh:  d.FeedInRatePerKwh,
	}
}

// GasBillData is the extracted gas bill.
type GasBillData struct {
	Retailer             string  `json:"retailer"`
	TotalAmount          float64 `json:"totalAmount"`
	UsageMJ              float64 `json:"usageMj"`
	BillingDays          int     `json:"billingDays"`
	RatePerMJ            float64 `json:"ratePerMj,omitempty"`
	DailySupplyCharge    float64 `json:"dailySupplyCharge,omitempty"`
	ExtractionConfidence float64 `json:"extractionConfidence"`
}

// ToBill converts to the engine's bill value.
func (d GasBillData) ToBill() calc.GasBill {
	return calc.GasBill{
		Retailer:          d.Retailer,
		TotalAmount:       d.TotalAmount,
		UsageMJ:           d.UsageMJ,
		BillingDays:       d.BillingDays,
		RatePerMJ:         d.RatePerMJ,
		DailySupplyCharge: d.DailySupplyCharge,
	}
}
