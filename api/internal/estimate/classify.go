package estimate

import "strings"

// Condition is the coarse quality bucket derived from a free-text condition
// description. Buckets are ordered by severity: fair is the worst.
type Condition string

const (
	ConditionFair  Condition = "fair"
	ConditionGood  Condition = "good"
	ConditionGreat Condition = "great"
)

// Keyword tiers checked in severity order. Fair wins over great wins over
// good, so a description with mixed signals always lands in the worst
// matching bucket.
var (
	fairKeywords = []string{
		"crack", "shatter", "broken", "major dent", "heavy wear", "missing",
		"doesn't power", "water damage", "deep scratch", "severe",
		"unusable", "parts only",
	}
	greatKeywords = []string{
		"like new", "pristine", "excellent", "no visible marks",
		"minimal wear", "mint",
	}
	goodKeywords = []string{
		"minor scratch", "scuff", "small dent", "moderate wear",
		"fully functional", "good condition", "some wear", "cosmetic",
	}
)

// ClassifyCondition maps a condition description to a bucket. Matching is
// case-insensitive substring membership and short-circuits on the first
// matching tier. An empty description and a description with no known
// keyword both default to good.
func ClassifyCondition(description string) Condition {
	d := strings.ToLower(description)
	switch {
	case containsAny(d, fairKeywords):
		return ConditionFair
	case containsAny(d, greatKeywords):
		return ConditionGreat
	case containsAny(d, goodKeywords):
		return ConditionGood
	default:
		return ConditionGood
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
