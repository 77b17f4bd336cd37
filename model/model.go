package model

import "fmt"

// EndpointPair is the (low, high) value of a range field, Low <= High inside the field domain.
type EndpointPair struct {
	Low  float64 `json:"min"`
	High float64 `json:"max"`
}

func (p EndpointPair) DebugString() string {
	return fmt.Sprintf("[%v, %v]", p.Low, p.High)
}

func (p EndpointPair) Crossed() bool {
	return p.Low > p.High
}

type Gaussian struct {
	Mean   float64 `json:"mean" toml:"mean" yaml:"mean"`
	StdDev float64 `json:"stddev" toml:"stddev" yaml:"stddev"`
}

// NamedGaussian keeps a group name ("men", "women") with its parameters,
// slices of them are plotted in order.
type NamedGaussian struct {
	Name     string `json:"name" toml:"name" yaml:"name"`
	Gaussian `yaml:",inline"`
}

type LogNormal struct {
	Mu    float64 `json:"mu"`
	Sigma float64 `json:"sigma"`
}

// LogNormalSource is the caller facing income configuration a LogNormal is fit from.
type LogNormalSource struct {
	MedianUSD float64 `json:"median_usd" toml:"median_usd" yaml:"median_usd"`
	P90USD    float64 `json:"p90_usd" toml:"p90_usd" yaml:"p90_usd"`
}

type Imperial struct {
	Feet        int `json:"feet"`
	Inches      int `json:"inches"`
	TotalInches int `json:"total_inches"`
}
