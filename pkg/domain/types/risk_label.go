package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

var labelPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// RiskLabel names a severity tier of a risk level (e.g. "low", "very-high")
type RiskLabel string

// Validate checks if the RiskLabel is valid
func (x RiskLabel) Validate() error {
	if x == "" {
		return goerr.New("risk label cannot be empty")
	}
	if !labelPattern.MatchString(string(x)) {
		return goerr.New("risk label must be lowercase alphanumeric with hyphens", goerr.V("label", x))
	}
	return nil
}

// String returns the string representation of the RiskLabel
func (x RiskLabel) String() string {
	return string(x)
}
