package scale

const (
	MinIncome = 14_000
	MaxIncome = 500_000

	SliderMin = 0
	SliderMax = 100

	DefaultStepDollars = 1_000
	DefaultMedianUSD   = 70_000
	DefaultP90USD      = 180_000

	// values within LabelEpsilon of a domain edge collapse to the "less than" / "plus" labels
	LabelEpsilon = 1

	// quantiles used as the default income range
	DefaultLowQuantile  = 0.1
	DefaultHighQuantile = 0.9
)

const (
	LawLinear     = "linear"
	LawLog        = "log"
	LawPercentile = "percentile"

	DefaultLaw = LawLog
)
