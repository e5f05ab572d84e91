package render

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"wattplan-cloud/internal/calc"
	"wattplan-cloud/internal/slides"
)

// BuildProposalXLSX renders the calculation summary and the slide content
// into a workbook: one summary sheet of headline numbers plus a slides
// sheet listing every included slide's fields.
func BuildProposalXLSX(customerName string, calculations *calc.Calculations, slideList []slides.Slide) ([]byte, error) {
	if calculations == nil {
		return nil, slides.ErrNilCalculations
	}

	f := excelize.NewFile()
	summarySheet := "summary"
	slidesSheet := "slides"
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(slidesSheet); err != nil {
		return nil, err
	}

	_ = f.SetCellValue(summarySheet, "A1", "Energy Plan Summary")
	_ = f.SetCellValue(summarySheet, "A2", customerName)

	row := 4
	put := func(label string, value any) {
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), label)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), value)
		row++
	}
	put("Projected annual electricity cost", calculations.Usage.ProjectedAnnualCost)
	put("Yearly usage (kWh)", calculations.Usage.YearlyUsageKwh)
	if calculations.Gas != nil {
		put("Annual gas cost", calculations.Gas.AnnualGasCost)
	}
	put("Recommended battery (kWh)", calculations.Battery.RecommendedKwh)
	if calculations.Solar != nil {
		put("Recommended solar (kW)", calculations.Solar.RecommendedKw)
	}
	put("Total investment", calculations.Investment.TotalInvestment)
	put("Total rebates", calculations.Investment.TotalRebates)
	put("Net investment", calculations.Investment.NetInvestment)
	put("Total annual benefit", calculations.Investment.TotalAnnualBenefit)
	if calculations.Investment.PaybackUndefined {
		put("Payback (years)", "n/a")
	} else {
		put("Payback (years)", calculations.Investment.PaybackYears)
	}
	put("Total annual savings", calculations.TotalAnnualSavings)
	put("CO2 reduction (t/year)", calculations.Emissions.ReductionTonnes)

	_ = f.SetCellValue(slidesSheet, "A1", "Slide")
	_ = f.SetCellValue(slidesSheet, "B1", "Title")
	_ = f.SetCellValue(slidesSheet, "C1", "Field")
	_ = f.SetCellValue(slidesSheet, "D1", "Value")

	slideRow := 2
	for _, slide := range slideList {
		if !slide.IsIncluded {
			continue
		}
		fields, err := SlideFields(slide.Content)
		if err != nil {
			return nil, err
		}
		for _, field := range fields {
			_ = f.SetCellValue(slidesSheet, fmt.Sprintf("A%d", slideRow), slide.SlideNumber)
			_ = f.SetCellValue(slidesSheet, fmt.Sprintf("B%d", slideRow), slide.Title)
			_ = f.SetCellValue(slidesSheet, fmt.Sprintf("C%d", slideRow), field.Label)
			_ = f.SetCellValue(slidesSheet, fmt.Sprintf("D%d", slideRow), field.Value)
			slideRow++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
