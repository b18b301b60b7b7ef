// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New() to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// ScoresPath locates the delimited happiness score table.
	ScoresPath string `koanf:"scores_path"`

	// GeometryPath locates the world polygon collection.
	GeometryPath string `koanf:"geometry_path"`

	// EventsPath locates the historical-event document.
	EventsPath string `koanf:"events_path"`

	// DefaultYear is the year selected at startup.
	DefaultYear int `koanf:"default_year"`

	// TriggerQueueSize bounds the in-memory trigger queue.
	TriggerQueueSize int `koanf:"trigger_queue_size"`

	// ColorSteps is the number of buckets on the rank color scale.
	ColorSteps int `koanf:"color_steps"`

	// PrePeriodStart/PrePeriodEnd bound the pre-cutoff comparison range.
	PrePeriodStart int `koanf:"pre_period_start"`
	PrePeriodEnd   int `koanf:"pre_period_end"`

	// PostPeriodStart opens the unbounded post-cutoff range.
	PostPeriodStart int `koanf:"post_period_start"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":9090",
		ScoresPath:       "data/scores.csv",
		GeometryPath:     "data/world.geojson",
		EventsPath:       "data/events.json",
		DefaultYear:      2024,
		TriggerQueueSize: 1024,
		ColorSteps:       9,
		PrePeriodStart:   2015,
		PrePeriodEnd:     2019,
		PostPeriodStart:  2020,
	}
}
