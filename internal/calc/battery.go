package calc

import "math"

// SizeBattery recommends a battery capacity from daily usage. The raw value
// is snapped to the nearest deliverable size in BatterySizeLadder. The VPP
// floor is a named input rather than a baked-in assumption; today's
// orchestrator always passes true.
func SizeBattery(dailyUsageKwh float64, wantsEV, vppAssumed bool) BatteryRecommendation {
	raw := dailyUsageKwh * BatteryUsageFraction
	if wantsEV {
		raw += BatteryEVBonusKwh
	}
	if vppAssumed && raw < BatteryVPPFloorKwh {
		raw = BatteryVPPFloorKwh
	}

	recommended := snapToLadder(raw)

	return BatteryRecommendation{
		RawKwh:         round2(raw),
		RecommendedKwh: recommended,
		EstimatedCost:  roundCurrency(recommended * BatteryCostPerKwh),
	}
}

// snapToLadder picks the ladder entry with the smallest absolute distance
// to raw. Exact ties keep the earlier entry.
func snapToLadder(raw float64) float64 {
	best := BatterySizeLadder[0]
	bestDiff := math.Abs(raw - best)
	for _, size := range BatterySizeLadder[1:] {
		diff := math.Abs(raw - size)
		if diff < bestDiff {
			best = size
			bestDiff = diff
		}
	}
	return best
}
