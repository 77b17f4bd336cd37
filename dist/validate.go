package dist

import (
	"fmt"

	"github.com/uyouii/rangefield/model"
	"github.com/uyouii/rangefield/utils"
	"go.uber.org/multierr"
)

// ValidateGaussians checks each distribution against the domain [min, max].
// Non-finite or non-positive stddev entries are dropped; a mean outside the
// domain is reported but the entry stays usable.
func ValidateGaussians(dists []model.NamedGaussian, min, max float64) ([]model.NamedGaussian, []string) {
	var errs error
	usable := make([]model.NamedGaussian, 0, len(dists))

	for _, d := range dists {
		if !utils.IsFinite(d.Mean) || !utils.IsFinite(d.StdDev) {
			errs = multierr.Append(errs, fmt.Errorf("%s: non-numeric mean/stddev", d.Name))
			continue
		}
		if d.StdDev <= 0 {
			errs = multierr.Append(errs, fmt.Errorf("%s: stddev must be > 0", d.Name))
			continue
		}
		if d.Mean < min || d.Mean > max {
			errs = multierr.Append(errs, fmt.Errorf("%s: mean %v outside [%v, %v]", d.Name, d.Mean, min, max))
		}
		usable = append(usable, d)
	}

	var reasons []string
	for _, err := range multierr.Errors(errs) {
		reasons = append(reasons, err.Error())
	}
	return usable, reasons
}
