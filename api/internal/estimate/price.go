package estimate

import (
	"fmt"
	"strings"
)

// PriceRange is an inclusive [min, max] pair in whole dollars.
type PriceRange [2]int

// PriceTable maps a canonical device type to per-condition price ranges.
// The reserved "unknown" row is the universal fallback for device types the
// table does not know.
type PriceTable map[string]map[Condition]PriceRange

// DefaultPriceTable is the static e-waste price structure. Read-only after
// initialization; requests never mutate it.
var DefaultPriceTable = PriceTable{
	"smartphone": {ConditionFair: {10, 50}, ConditionGood: {51, 150}, ConditionGreat: {151, 400}},
	"laptop":     {ConditionFair: {30, 100}, ConditionGood: {101, 350}, ConditionGreat: {351, 800}},
	"tablet":     {ConditionFair: {20, 70}, ConditionGood: {71, 200}, ConditionGreat: {201, 500}},
	"monitor":    {ConditionFair: {5, 25}, ConditionGood: {26, 75}, ConditionGreat: {76, 150}},
	"keyboard":   {ConditionFair: {1, 5}, ConditionGood: {6, 15}, ConditionGreat: {16, 40}},
	"mouse":      {ConditionFair: {1, 5}, ConditionGood: {6, 15}, ConditionGreat: {16, 35}},
	"unknown":    {ConditionFair: {1, 10}, ConditionGood: {1, 10}, ConditionGreat: {1, 10}},
}

// fallbackEstimate is the answer of last resort when the table is malformed
// for the resolved device. A price request never fails outright.
const fallbackEstimate = "$1 - $10 (default fallback)"

// NormalizeDeviceType lowercases, trims and aliases a raw device type to a
// canonical table key. Empty input maps to "unknown".
func NormalizeDeviceType(deviceType string) string {
	d := strings.ToLower(strings.TrimSpace(deviceType))
	switch {
	case d == "":
		return "unknown"
	case strings.Contains(d, "laptop"):
		return "laptop"
	case strings.Contains(d, "smart phone"), strings.Contains(d, "cell phone"):
		return "smartphone"
	case strings.Contains(d, "computer monitor"):
		return "monitor"
	}
	return d
}

// EstimatePrice resolves a "$min - $max" string for a device type and
// condition. Unknown device types fall back to the "unknown" row and a
// condition missing from the resolved row falls back to that row's fair
// range. If even that is absent the fixed sentinel is returned.
func EstimatePrice(deviceType string, c Condition, table PriceTable) string {
	key := NormalizeDeviceType(deviceType)
	row, ok := table[key]
	if !ok {
		row = table["unknown"]
	}
	if r, ok := row[c]; ok {
		return fmt.Sprintf("$%d - $%d", r[0], r[1])
	}
	if r, ok := row[ConditionFair]; ok {
		return fmt.Sprintf("$%d - $%d", r[0], r[1])
	}
	return fallbackEstimate
}
