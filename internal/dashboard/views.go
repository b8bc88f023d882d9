package dashboard

import (
	"math"
	"sort"
	"strings"
	"time"

	"jobmate/recruit-service/internal/model"
)

// Sort keys and directions accepted by FilterAndSort.
const (
	SortByDate       = "date"
	SortByCandidates = "candidates"
	SortByDeadline   = "deadline"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// Filter values. Anything other than these two is matched against the order
// status (active, completed, closed).
const (
	FilterAll    = "all"
	FilterUrgent = "urgent"
)

// noDeadlineSentinel makes deadline-less orders sort last in ascending order.
const noDeadlineSentinel = "9999-12-31"

const dateLayout = "2006-01-02"

// FilterAndSort returns a filtered, sorted copy of orders. It is pure: it
// never mutates its inputs and recomputes from scratch on every call. Ties
// keep their input order (stable sort).
func FilterAndSort(orders []model.JobPostingOrder, candidates model.CandidateMap, filterBy, sortBy, sortOrder string) []model.JobPostingOrder {
	filtered := make([]model.JobPostingOrder, 0, len(orders))
	for _, o := range orders {
		switch filterBy {
		case FilterAll, "":
			filtered = append(filtered, o)
		case FilterUrgent:
			if o.IsUrgent {
				filtered = append(filtered, o)
			}
		default:
			if string(o.Status) == filterBy {
				filtered = append(filtered, o)
			}
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		cmp := compareOrders(filtered[i], filtered[j], candidates, sortBy)
		if sortOrder == SortDesc {
			cmp = -cmp
		}
		return cmp < 0
	})

	return filtered
}

// compareOrders returns a negative, zero, or positive value per the ascending
// order of a and b under sortBy. YYYY-MM-DD strings compare lexicographically
// in chronological order, so both date keys are plain string comparisons.
func compareOrders(a, b model.JobPostingOrder, candidates model.CandidateMap, sortBy string) int {
	switch sortBy {
	case SortByDate:
		return strings.Compare(a.CreatedAt, b.CreatedAt)
	case SortByCandidates:
		return len(candidates[a.ID]) - len(candidates[b.ID])
	case SortByDeadline:
		return strings.Compare(deadlineOrSentinel(a), deadlineOrSentinel(b))
	}
	return 0
}

func deadlineOrSentinel(o model.JobPostingOrder) string {
	if o.Deadline == "" {
		return noDeadlineSentinel
	}
	return o.Deadline
}

// MatchTier buckets a match rate for downstream styling and reporting.
type MatchTier string

const (
	TierTop    MatchTier = "top"
	TierHigh   MatchTier = "high"
	TierMid    MatchTier = "mid"
	TierLow    MatchTier = "low"
	TierReject MatchTier = "reject"
)

// MatchInfo is the fit classification derived from a candidate's match rate.
type MatchInfo struct {
	Label string    `json:"label"`
	Emoji string    `json:"emoji"`
	Tier  MatchTier `json:"tier"`
}

// MatchInfoFor classifies a 0-100 match rate. Thresholds are fixed and the
// result is fully determined by the input.
func MatchInfoFor(matchRate int) MatchInfo {
	switch {
	case matchRate >= 90:
		return MatchInfo{Label: "Strong match", Emoji: "⭐", Tier: TierTop}
	case matchRate >= 80:
		return MatchInfo{Label: "Good fit", Emoji: "✅", Tier: TierHigh}
	case matchRate >= 70:
		return MatchInfo{Label: "Suitable", Emoji: "👌", Tier: TierMid}
	case matchRate >= 50:
		return MatchInfo{Label: "Borderline", Emoji: "⚠️", Tier: TierLow}
	default:
		return MatchInfo{Label: "Not suitable", Emoji: "❌", Tier: TierReject}
	}
}

// DaysRemaining returns the number of days from now until the YYYY-MM-DD
// deadline, rounded up. Negative once the deadline has passed; zero for an
// unparseable deadline.
func DaysRemaining(deadline string, now time.Time) int {
	d, err := time.Parse(dateLayout, deadline)
	if err != nil {
		return 0
	}
	diff := d.Sub(now)
	return int(math.Ceil(diff.Hours() / 24))
}
