package constraint

const (
	// the low endpoint may never exceed 109% of the anchor
	MinCapRatio = 1.09
	// the high endpoint may never fall below 91% of the anchor
	MaxFloorRatio = 0.91

	DefaultMinCm  = 120
	DefaultMaxCm  = 220
	DefaultStepCm = 1
)
