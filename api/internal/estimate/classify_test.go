package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCondition(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        Condition
	}{
		{"fair keyword", "the screen is cracked in two places", ConditionFair},
		{"great keyword", "pristine, looks barely used", ConditionGreat},
		{"good keyword", "minor scratch on the lid", ConditionGood},
		{"fair beats great on mixed signals", "like new except the hinge is broken", ConditionFair},
		{"fair beats good on mixed signals", "minor scratch plus a deep scratch across the back", ConditionFair},
		{"great beats good on mixed signals", "excellent shape, fully functional", ConditionGreat},
		{"no keywords defaults to good", "an ordinary looking device", ConditionGood},
		{"empty description defaults to good", "", ConditionGood},
		{"case insensitive", "SCREEN IS CRACKED", ConditionFair},
		{"multiword fair keyword", "shows heavy wear around the edges", ConditionFair},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCondition(tt.description))
		})
	}
}
