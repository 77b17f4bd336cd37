package model

type ChartState int

const (
	ChartReady ChartState = 0
	ChartEmpty ChartState = 1
	ChartError ChartState = 2
)

func (s ChartState) String() string {
	switch s {
	case ChartEmpty:
		return "empty"
	case ChartError:
		return "error"
	default:
		return "ready"
	}
}

type Margin struct {
	Left   float64 `json:"l"`
	Right  float64 `json:"r"`
	Top    float64 `json:"t"`
	Bottom float64 `json:"b"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Path struct {
	Name   string  `json:"name"`
	Points []Point `json:"-"`
	// D is the svg path description, "M x,y L x,y ..."
	D string `json:"d"`
}

// Marker is a vertical line at a committed value.
type Marker struct {
	Value float64 `json:"value"`
	X     float64 `json:"x"`
	Y1    float64 `json:"y1"`
	Y2    float64 `json:"y2"`
}

// Band is the shaded rectangle between the two endpoints of a range.
type Band struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Chart struct {
	Width    float64    `json:"width"`
	Height   float64    `json:"height"`
	Margin   Margin     `json:"margin"`
	Baseline float64    `json:"y0"`
	Paths    []Path     `json:"paths"`
	Markers  []Marker   `json:"markers"`
	Band     *Band      `json:"band,omitempty"`
	State    ChartState `json:"state"`
	Reasons  []string   `json:"reasons,omitempty"`
}

func (c *Chart) PathFor(name string) (Path, bool) {
	if c == nil {
		return Path{}, false
	}
	for _, p := range c.Paths {
		if p.Name == name {
			return p, true
		}
	}
	return Path{}, false
}
