package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uyouii/rangefield/model"
	"github.com/uyouii/rangefield/utils"
)

func TestCmToImperial(t *testing.T) {
	cases := []struct {
		name string
		cm   float64
		want model.Imperial
	}{
		{"exact six foot", 182.88, model.Imperial{Feet: 6, Inches: 0, TotalInches: 72}},
		{"rounds up into next foot", 182.0, model.Imperial{Feet: 6, Inches: 0, TotalInches: 72}},
		{"five eleven", 180.34, model.Imperial{Feet: 5, Inches: 11, TotalInches: 71}},
		{"five ten", 178, model.Imperial{Feet: 5, Inches: 10, TotalInches: 70}},
		{"short", 120, model.Imperial{Feet: 3, Inches: 11, TotalInches: 47}},
		{"tall", 220, model.Imperial{Feet: 7, Inches: 3, TotalInches: 87}},
		{"zero", 0, model.Imperial{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CmToImperial(tc.cm)
			if got != tc.want {
				t.Errorf("CmToImperial(%v) = %+v; want %+v", tc.cm, got, tc.want)
			}
			assert.Less(t, got.Inches, InchesPerFoot)
		})
	}
}

func TestCompactAndSpoken(t *testing.T) {
	assert.Equal(t, "6′0″", Compact(utils.Float(182.88)))
	assert.Equal(t, "6 ft 0 in", Spoken(utils.Float(182.88)))
	assert.Equal(t, "5′11″", Compact(utils.Float(180)))
	assert.Equal(t, "5 ft 11 in", Spoken(utils.Float(180)))

	for _, v := range []*float64{nil, utils.Float(math.NaN()), utils.Float(math.Inf(-1))} {
		assert.Equal(t, "", Compact(v))
		assert.Equal(t, "", Spoken(v))
	}
}

func TestRangeStrings(t *testing.T) {
	lo, hi := utils.Float(160), utils.Float(188)
	assert.Equal(t, "≈ 5′3″–6′2″", RangeCompact(lo, hi))
	assert.Equal(t, "Approximately 5 ft 3 in to 6 ft 2 in", RangeSpoken(lo, hi))
	assert.Equal(t, "", RangeCompact(nil, hi))
	assert.Equal(t, "", RangeSpoken(lo, nil))
}
