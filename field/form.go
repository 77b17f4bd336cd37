package field

import "github.com/uyouii/rangefield/model"

// Form is the host form system: values are read and written back by dotted path.
type Form interface {
	Value(path string) *float64
	SetValue(path string, v *float64, opts model.SetOptions)
}

const (
	// DefaultAnchorPath is where the user's own height lives
	DefaultAnchorPath = "physical_info.self.height_cm"

	minSuffix = ".min"
	maxSuffix = ".max"
)

var commitOptions = model.SetOptions{ShouldDirty: true, ShouldValidate: true}

func MinPath(base string) string {
	return base + minSuffix
}

func MaxPath(base string) string {
	return base + maxSuffix
}
