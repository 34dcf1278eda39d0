package config

import "time"

// Config is the root configuration structure.
type Config struct {
	Player PlayerConfig `toml:"player"`
	Log    LogConfig    `toml:"log"`
}

// PlayerConfig holds the player's periodic task settings. Intervals are in
// milliseconds.
type PlayerConfig struct {
	TickInterval  int    `toml:"tick_interval"`
	TrackInterval int    `toml:"track_interval"`
	TrackPrefix   string `toml:"track_prefix"`
}

// Tick returns the tick interval as a duration.
func (c PlayerConfig) Tick() time.Duration {
	return time.Duration(c.TickInterval) * time.Millisecond
}

// Track returns the add-track interval as a duration.
func (c PlayerConfig) Track() time.Duration {
	return time.Duration(c.TrackInterval) * time.Millisecond
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	Color      string `toml:"color"`
	TimeFormat string `toml:"time_format"`
}
