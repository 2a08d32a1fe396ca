package config

// Default returns the default configuration.
func Default() Config {
	diagnose := true
	return Config{
		Scheme:   "platformer",
		Tick:     "16ms",
		Diagnose: &diagnose,
		Colors: Colors{
			Active:     "#c2edab",
			Inactive:   "#808080",
			Background: "#000000",
		},
		Log: Log{
			Level: "info",
		},
	}
}
