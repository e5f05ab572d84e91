package extraction

import "errors"

// Hard validation failures. These reject the calculation request.
var (
	ErrAmountRequired   = errors.New("extraction: bill amount must be positive")
	ErrUsageRequired    = errors.New("extraction: bill usage must be positive")
	ErrRetailerRequired = errors.New("extraction: retailer required")
)

// Data-quality warning codes. Warnings are advisory: the calculation still
// runs and the caller decides whether to act on them.
const (
	WarnLowConfidence       = "low_confidence"
	WarnImplausibleBillDays = "implausible_billing_days"
)

const (
	minConfidence  = 50
	minBillingDays = 1
	maxBillingDays = 120
)

// Warning is one advisory data-quality flag.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidateElectricity applies the collaborator rule set to an extracted
// electricity bill, returning advisory warnings alongside any hard failure.
func ValidateElectricity(data ElectricityBillData) ([]Warning, error) {
	if data.TotalAmount <= 0 {
		return nil, ErrAmountRequired
	}
	if data.TotalUsageKwh <= 0 {
		return nil, ErrUsageRequired
	}
	if data.Retailer == "" {
		return nil, ErrRetailerRequired
	}
	return qualityWarnings(data.BillingDays, data.ExtractionConfidence), nil
}

// ValidateGas applies the same rule set to an extracted gas bill.
func ValidateGas(data GasBillData) ([]Warning, error) {
	if data.TotalAmount <= 0 {
		return nil, ErrAmountRequired
	}
	if data.UsageMJ <= 0 {
		return nil, ErrUsageRequired
	}
	if data.Retailer == "" {
		return nil, ErrRetailerRequired
	}
	return qualityWarnings(data.BillingDays, data.ExtractionConfidence), nil
}

func qualityWarnings(billingDays int, confidence float64) []Warning {
	var warnings []Warning
	if billingDays != 0 && (billingDays < minBillingDays || billingDays > maxBillingDays) {
		warnings = append(warnings, Warning{
			Code:    WarnImplausibleBillDays,
			Message: "billing days outside the plausible 1-120 range",
		})
	}
	if confidence < minConfidence {
		warnings = append(warnings, Warning{
			Code:    WarnLowConfidence,
			Message: "extraction confidence below 50",
		})
	}
	return warnings
}
