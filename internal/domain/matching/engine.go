package matching

import "strings"

// Score contributions. Exact focus and partial focus are mutually
// exclusive tiers; rating scales linearly until the cap; location is a
// flat bonus. Max total: 50 + 30 + 20.
const (
	exactFocusPoints   = 50.0
	partialFocusPoints = 25.0
	ratingPointsPer    = 6.0
	ratingPointsMax    = 30.0
	locationPoints     = 20.0

	categorySeparator = " & "
)

type Seeker struct {
	Location           string
	IndustryPreference string
}

type Candidate struct {
	ServiceFocus string
	Rating       float64
	Location     string
}

// Score computes the compatibility between one candidate provider and one
// seeker. It is a pure function of its arguments.
func Score(c Candidate, s Seeker) float64 {
	score := focusScore(c.ServiceFocus, s.IndustryPreference)

	contrib := c.Rating * ratingPointsPer
	if contrib > ratingPointsMax {
		contrib = ratingPointsMax
	}
	score += contrib

	if c.Location != "" && s.Location != "" && strings.EqualFold(c.Location, s.Location) {
		score += locationPoints
	}

	return score
}

// focusScore awards the exact tier on literal, case-sensitive equality.
// The partial tier only applies when both fields are set and their
// lower-cased " & "-separated category sets intersect.
func focusScore(serviceFocus, industryPreference string) float64 {
	if serviceFocus == industryPreference {
		return exactFocusPoints
	}
	if serviceFocus == "" || industryPreference == "" {
		return 0
	}

	candidate := categories(serviceFocus)
	wanted := categories(industryPreference)
	for cat := range wanted {
		if _, ok := candidate[cat]; ok {
			return partialFocusPoints
		}
	}
	return 0
}

func categories(focus string) map[string]struct{} {
	parts := strings.Split(strings.ToLower(focus), categorySeparator)
	set := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		set[p] = struct{}{}
	}
	return set
}
