package config

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Player: PlayerConfig{
			TickInterval:  1000,
			TrackInterval: 2000,
			TrackPrefix:   "Track ",
		},
		Log: LogConfig{
			Level: "info",
			Color: "auto",
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	// Player
	if c.Player.TickInterval == 0 {
		c.Player.TickInterval = d.Player.TickInterval
	}
	if c.Player.TrackInterval == 0 {
		c.Player.TrackInterval = d.Player.TrackInterval
	}
	if c.Player.TrackPrefix == "" {
		c.Player.TrackPrefix = d.Player.TrackPrefix
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Color == "" {
		c.Log.Color = d.Log.Color
	}
}
