package chart

const (
	DefaultWidth  = 720
	DefaultHeight = 180

	GaussianSamples = 260
	IncomeSamples   = 240

	// floor for the joint maximum so an all-zero chart does not divide by zero
	MinDensity = 1e-9

	// a selected band is never drawn thinner than this
	MinBandWidth = 1
)

type Axis int

const (
	AxisLinear Axis = 0
	AxisLog    Axis = 1
)

func (a Axis) String() string {
	if a == AxisLog {
		return "log"
	}
	return "linear"
}
