package domain

// PickWeighted chooses a quote with probability proportional to its weight.
//
// candidates must be in a deterministic order (ascending id) and u must lie in
// [0, 1). The draw is scaled to r = u * total and the first quote whose
// cumulative weight reaches r wins, so identical inputs always give the same
// pick. Non-positive weights never contribute. It returns nil when there is
// nothing to choose from.
func PickWeighted(candidates []*Quote, u float64) *Quote {
	var total int64
	for _, q := range candidates {
		if q.Weight > 0 {
			total += int64(q.Weight)
		}
	}

	if total == 0 {
		return nil
	}

	r := u * float64(total)

	var cumulative int64
	var last *Quote

	for _, q := range candidates {
		if q.Weight <= 0 {
			continue
		}

		cumulative += int64(q.Weight)
		last = q

		if float64(cumulative) >= r {
			return q
		}
	}

	// Only reachable when u >= 1 slipped through.
	return last
}
