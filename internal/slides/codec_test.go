package slides

import (
	"encoding/json"
	"testing"
)

func TestSlideJSONRoundTrip(t *testing.T) {
	cust := fullCustomer()
	all, err := Assemble(cust, runCalculations(t, cust, true))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	data, err := json.Marshal(all)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var restored []Slide
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(restored) != len(all) {
		t.Fatalf("restored %d slides, want %d", len(restored), len(all))
	}
	for i, slide := range restored {
		original := all[i]
		if slide.SlideType != original.SlideType || slide.SlideNumber != original.SlideNumber {
			t.Fatalf("slide %d identity changed: %s/%d", i, slide.SlideType, slide.SlideNumber)
		}
		if (slide.Content == nil) != (original.Content == nil) {
			t.Fatalf("slide %s content presence changed", slide.SlideType)
		}
	}

	// Concrete content types survive the round trip.
	cover := restored[0]
	if _, ok := cover.Content.(CoverContent); !ok {
		t.Fatalf("cover content restored as %T", cover.Content)
	}
	battery := slideByType(t, restored, TypeBatteryRecommendation)
	if _, ok := battery.Content.(BatteryRecommendationContent); !ok {
		t.Fatalf("battery content restored as %T", battery.Content)
	}
}

func TestSlideUnmarshal_ExcludedSlideHasNoContent(t *testing.T) {
	raw := `{"slideNumber":6,"slideType":"gas_footprint","title":"Your Gas Footprint","isConditional":true,"isIncluded":false}`

	var slide Slide
	if err := json.Unmarshal([]byte(raw), &slide); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if slide.Content != nil {
		t.Fatalf("excluded slide decoded content %T", slide.Content)
	}
	if !slide.IsConditional || slide.IsIncluded {
		t.Fatal("flags lost in decoding")
	}
}

func TestSlideUnmarshal_UnknownTypeRejected(t *testing.T) {
	raw := `{"slideNumber":1,"slideType":"mystery","title":"?","isIncluded":true,"content":{}}`

	var slide Slide
	if err := json.Unmarshal([]byte(raw), &slide); err == nil {
		t.Fatal("expected error for unknown slide type")
	}
}
