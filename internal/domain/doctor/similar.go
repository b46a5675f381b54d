package doctor

import (
	"math"
	"sort"
)

// DefaultSimilarLimit caps Similar when the caller passes no limit.
const DefaultSimilarLimit = 10

// Similar ranks the doctors that share target's specialty.
//
// Doctors in the same area come first. Within each group the one whose rating
// is closest to target's ranks higher. target itself is never included.
func Similar(records []Record, target Record, limit int) []Record {
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}

	candidates := make([]Record, 0)
	for _, r := range records {
		if r.Specialty == target.Specialty && !r.sameID(target) {
			candidates = append(candidates, r)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		aLocal, bLocal := a.Area == target.Area, b.Area == target.Area
		if aLocal != bLocal {
			return aLocal
		}
		return math.Abs(a.ReviewScore-target.ReviewScore) < math.Abs(b.ReviewScore-target.ReviewScore)
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}
