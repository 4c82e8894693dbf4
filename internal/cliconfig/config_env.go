package cliconfig

import "os"

// EnvPrefix prefixes every environment variable read by ApplyEnvConfig.
const EnvPrefix = "CATCARD_"

// ApplyEnvConfig applies CATCARD_* environment variables to cfg.
// Environment overrides file config but not explicitly set flags.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("greeting", os.Getenv(EnvPrefix+"GREETING"), &cfg.Greeting)
	s.setString("who", os.Getenv(EnvPrefix+"WHO"), &cfg.Who)
	s.setString("color", os.Getenv(EnvPrefix+"COLOR"), &cfg.Color)
	s.setString("service-url", os.Getenv(EnvPrefix+"SERVICE_URL"), &cfg.ServiceURL)
	s.setString("output", os.Getenv(EnvPrefix+"OUTPUT"), &cfg.Output)
	s.setString("log-level", os.Getenv(EnvPrefix+"LOG_LEVEL"), &cfg.LogLevel)
	s.setString("log-file", os.Getenv(EnvPrefix+"LOG_FILE"), &cfg.LogFile)

	ints := []struct {
		flag string
		env  string
		dst  *int
	}{
		{"width", "WIDTH", &cfg.Width},
		{"height", "HEIGHT", &cfg.Height},
		{"size", "SIZE", &cfg.Size},
		{"quality", "QUALITY", &cfg.Quality},
	}
	for _, v := range ints {
		if err := s.setIntFromString(v.flag, os.Getenv(EnvPrefix+v.env), v.dst); err != nil {
			return err
		}
	}

	return s.setDuration("timeout", os.Getenv(EnvPrefix+"HTTP_TIMEOUT"), &cfg.HTTPTimeout)
}
