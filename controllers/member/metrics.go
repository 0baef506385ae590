package member

// Display-only heuristics. These are rough engagement estimates with no
// authoritative backend equivalent; they are always served under the
// "estimated" object and must never drive a business decision.

// EstimateAdherence scores engagement from today's meal count and this
// week's workout count, capped at 100.
func EstimateAdherence(mealsToday, workoutsThisWeek int64) int {
	score := mealsToday*25 + workoutsThisWeek*15
	if score > 100 {
		return 100
	}
	return int(score)
}

// EstimateCompliance compares logged calories against the target. 100
// means on target; the score drops with the relative deviation.
func EstimateCompliance(caloriesToday, targetCalories float64) int {
	if targetCalories <= 0 {
		return 0
	}
	deviation := caloriesToday - targetCalories
	if deviation < 0 {
		deviation = -deviation
	}
	score := 100 - int(deviation*100/targetCalories)
	if score < 0 {
		return 0
	}
	return score
}

// NeedsAttention buckets a member for the coach dashboard: no logs this
// week or an adherence estimate under 40 flags them.
func NeedsAttention(logsThisWeek int64, adherence int) bool {
	return logsThisWeek == 0 || adherence < 40
}
