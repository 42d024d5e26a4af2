package config

import "time"

// this holds the resolved configuration values from CLI
//
//nolint:lll // readablity
var (
	LogLevel          string        // sets the log level (zap log level values)
	LogFormat         string        // text vs json
	LogConfig         string        // logger name filter rules (zapfilter syntax)
	EnableTelemetry   bool          // enable telemetry
	TelemetryEndpoint string        // endpoint for telemetry, stdout exporters if empty
	CacheExpiration   time.Duration // how long calculated profiles are kept
	DiveIndex         int           // index of the dive in files containing a list of dives
)
