package common

import "errors"

var (
	ErrorInvalidValue        = errors.New("invalid value")
	ErrorInvalidDistribution = errors.New("invalid distribution parameters")
	ErrorInvalidScale        = errors.New("invalid slider scale")
	ErrorInvalidConfig       = errors.New("invalid config")
)
