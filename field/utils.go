package field

import (
	"fmt"

	"github.com/uyouii/rangefield/constraint"
	"github.com/uyouii/rangefield/model"
)

func rangeCm(bounds constraint.Bounds) string {
	return fmt.Sprintf("%v–%v cm", bounds.Min, bounds.Max)
}

func legend(dists []model.NamedGaussian) []string {
	res := make([]string, 0, len(dists))
	for _, d := range dists {
		res = append(res, d.Name)
	}
	return res
}
