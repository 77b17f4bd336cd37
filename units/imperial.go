package units

import (
	"fmt"
	"math"

	"github.com/uyouii/rangefield/model"
	"github.com/uyouii/rangefield/utils"
)

const (
	CmPerInch     = 2.54
	InchesPerFoot = 12
)

// CmToImperial rounds cm to the nearest whole inch and splits it into feet and inches.
func CmToImperial(cm float64) model.Imperial {
	totalInches := int(math.Round(cm / CmPerInch))
	feet := int(math.Floor(float64(totalInches) / InchesPerFoot))
	inches := totalInches - feet*InchesPerFoot
	if inches == InchesPerFoot {
		feet += 1
		inches = 0
	}
	return model.Imperial{
		Feet:        feet,
		Inches:      inches,
		TotalInches: totalInches,
	}
}

// Compact renders 5′11″, empty for an absent or non-finite value.
func Compact(cm *float64) string {
	if !utils.FiniteValue(cm) {
		return ""
	}
	imperial := CmToImperial(*cm)
	return fmt.Sprintf("%d′%d″", imperial.Feet, imperial.Inches)
}

// Spoken renders "5 ft 11 in", empty for an absent or non-finite value.
func Spoken(cm *float64) string {
	if !utils.FiniteValue(cm) {
		return ""
	}
	imperial := CmToImperial(*cm)
	return fmt.Sprintf("%d ft %d in", imperial.Feet, imperial.Inches)
}

func RangeCompact(lo, hi *float64) string {
	loStr, hiStr := Compact(lo), Compact(hi)
	if loStr == "" || hiStr == "" {
		return ""
	}
	return fmt.Sprintf("≈ %s–%s", loStr, hiStr)
}

func RangeSpoken(lo, hi *float64) string {
	loStr, hiStr := Spoken(lo), Spoken(hi)
	if loStr == "" || hiStr == "" {
		return ""
	}
	return fmt.Sprintf("Approximately %s to %s", loStr, hiStr)
}
