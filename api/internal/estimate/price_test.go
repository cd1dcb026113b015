package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDeviceType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Laptop", "laptop"},
		{"gaming laptop", "laptop"},
		{"smart phone", "smartphone"},
		{"old cell phone", "smartphone"},
		{"Computer Monitor", "monitor"},
		{"  Tablet  ", "tablet"},
		{"", "unknown"},
		{"toaster", "toaster"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDeviceType(tt.in), "input %q", tt.in)
	}
}

func TestEstimatePrice(t *testing.T) {
	t.Run("known device and condition", func(t *testing.T) {
		assert.Equal(t, "$101 - $350", EstimatePrice("laptop", ConditionGood, DefaultPriceTable))
		assert.Equal(t, "$151 - $400", EstimatePrice("smartphone", ConditionGreat, DefaultPriceTable))
	})

	t.Run("alias resolves to canonical row", func(t *testing.T) {
		assert.Equal(t, "$26 - $75", EstimatePrice("computer monitor", ConditionGood, DefaultPriceTable))
		assert.Equal(t, "$10 - $50", EstimatePrice("old cell phone", ConditionFair, DefaultPriceTable))
	})

	t.Run("unknown device falls back to unknown row", func(t *testing.T) {
		assert.Equal(t, "$1 - $10", EstimatePrice("toaster", ConditionGreat, DefaultPriceTable))
	})

	t.Run("missing condition falls back to the device's fair range", func(t *testing.T) {
		table := PriceTable{
			"laptop":  {ConditionFair: {30, 100}},
			"unknown": {ConditionFair: {1, 10}},
		}
		assert.Equal(t, "$30 - $100", EstimatePrice("laptop", ConditionGreat, table))
	})

	t.Run("malformed table yields the sentinel", func(t *testing.T) {
		table := PriceTable{"laptop": {}}
		assert.Equal(t, "$1 - $10 (default fallback)", EstimatePrice("laptop", ConditionGood, table))
	})
}

// End-to-end over the pure pipeline: model JSON in, price string out.
func TestPipelineRoundTrip(t *testing.T) {
	a, err := ParseAnalysis(plainAnalysis)
	require.NoError(t, err)

	c := ClassifyCondition(a.ConditionDescription)
	assert.Equal(t, ConditionGood, c)
	assert.Equal(t, "$101 - $350", EstimatePrice(a.DeviceType, c, DefaultPriceTable))
}
