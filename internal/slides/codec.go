package slides

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UnmarshalJSON restores a slide from its persisted form, decoding the
// content payload into the concrete type named by slideType. Unknown slide
// types are an error, never a silently dropped payload.
func (s *Slide) UnmarshalJSON(data []byte) error {
	var raw struct {
		SlideNumber   int             `json:"slideNumber"`
		SlideType     SlideType       `json:"slideType"`
		Title         string          `json:"title"`
		IsConditional bool            `json:"isConditional"`
		IsIncluded    bool            `json:"isIncluded"`
		Content       json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.SlideNumber = raw.SlideNumber
	s.SlideType = raw.SlideType
	s.Title = raw.Title
	s.IsConditional = raw.IsConditional
	s.IsIncluded = raw.IsIncluded
	s.Content = nil

	if len(raw.Content) == 0 || bytes.Equal(raw.Content, []byte("null")) {
		return nil
	}
	content, err := decodeContent(raw.SlideType, raw.Content)
	if err != nil {
		return err
	}
	s.Content = content
	return nil
}

// decodeAs decodes data into the value content type T so reloaded slides
// carry the same concrete types as freshly assembled ones.
func decodeAs[T Content](data []byte) (Content, error) {
	var v T
	err := json.Unmarshal(data, &v)
	return v, err
}

func decodeContent(slideType SlideType, data []byte) (Content, error) {
	switch slideType {
	case TypeCover:
		return decodeAs[CoverContent](data)
	case TypeExecutiveSummary:
		return decodeAs[ExecutiveSummaryContent](data)
	case TypeBillAnalysis:
		return decodeAs[BillAnalysisContent](data)
	case TypeUsageAnalysis:
		return decodeAs[UsageAnalysisContent](data)
	case TypeYearlyProjection:
		return decodeAs[YearlyProjectionContent](data)
	case TypeGasFootprint:
		return decodeAs[GasFootprintContent](data)
	case TypeGasAppliances:
		return decodeAs[GasAppliancesContent](data)
	case TypeStrategicAssessment:
		return decodeAs[StrategicAssessmentContent](data)
	case TypeBatteryRecommendation:
		return decodeAs[BatteryRecommendationContent](data)
	case TypeSolarSystem:
		return decodeAs[SolarSystemContent](data)
	case TypeVppComparison:
		return decodeAs[VppComparisonContent](data)
	case TypeVppRecommendation:
		return decodeAs[VppRecommendationContent](data)
	case TypeHotWater:
		return decodeAs[HotWaterContent](data)
	case TypeHeatingCooling:
		return decodeAs[HeatingCoolingContent](data)
	case TypeInductionCooking:
		return decodeAs[InductionCookingContent](data)
	case TypeEVAnalysis:
		return decodeAs[EVAnalysisContent](data)
	case TypeEVCharger:
		return decodeAs[EVChargerContent](data)
	case TypePoolHeatPump:
		return decodeAs[PoolHeatPumpContent](data)
	case TypeElectrificationInvestment:
		return decodeAs[ElectrificationInvestmentContent](data)
	case TypeSavingsSummary:
		return decodeAs[SavingsSummaryContent](data)
	case TypeFinancialSummary:
		return decodeAs[FinancialSummaryContent](data)
	case TypeEnvironmentalImpact:
		return decodeAs[EnvironmentalImpactContent](data)
	case TypeRoadmap:
		return decodeAs[RoadmapContent](data)
	case TypeConclusion:
		return decodeAs[ConclusionContent](data)
	case TypeContact:
		return decodeAs[ContactContent](data)
	}
	return nil, fmt.Errorf("slides: unknown slide type %q", slideType)
}
