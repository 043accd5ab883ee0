package config

import "github.com/m-mizutani/goerr/v2"

// Configuration errors
var (
	ErrConfigNotFound    = goerr.New("configuration file not found")
	ErrMissingAffordance = goerr.New("binding affordance is required")
	ErrMissingHazard     = goerr.New("binding hazard is required")
	ErrInvalidRisk       = goerr.New("binding must declare exactly one of a level or ranges")
)
