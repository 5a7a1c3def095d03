package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDataObservations sets the location of the observations dataset.
func OptDataObservations(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Data Observations", s) {
			c.Data.Observations = s
		}
	}
}

// OptDataSpecies sets the location of the species dataset.
func OptDataSpecies(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Data Species", s) {
			c.Data.Species = s
		}
	}
}

// OptDashboardDefaultPark sets the park selected at the start of a session.
// Whether the park exists is checked against the data at startup.
func OptDashboardDefaultPark(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Dashboard Default Park", s) {
			c.Dashboard.DefaultPark = s
		}
	}
}

// OptDashboardDefaultCategories sets a comma-separated list of categories
// selected at the start of a session.
func OptDashboardDefaultCategories(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Dashboard Default Categories", s) {
			c.Dashboard.DefaultCategories = s
		}
	}
}

// OptServerPort sets the TCP port of the web server.
func OptServerPort(i int) Option {
	return func(c *Config) {
		if isValidPort("Server Port", i) {
			c.Server.Port = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for parallel operations.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
