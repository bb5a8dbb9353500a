package config

import (
	"os"
	"time"
)

type Config struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	InstanceName string

	Domain          string
	SessionSecret   string
	SessionDuration time.Duration
	GoogleKey       string
	GoogleSecret    string

	PlatformURL     string
	PlatformAnonKey string
}

func Load() Config {
	return Config{
		Port:         getEnv("BACKEND_PORT", "8080"),
		ReadTimeout:  getEnvAsDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout: getEnvAsDuration("WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:  getEnvAsDuration("IDLE_TIMEOUT", 60*time.Second),
		InstanceName: getEnv("INSTANCE_NAME", "reportly-1"),

		Domain:          getEnv("DOMAIN", "localhost:8080"),
		SessionSecret:   getEnv("SESSION_SECRET", ""),
		SessionDuration: getEnvAsDuration("SESSION_DURATION", 24*time.Hour),
		GoogleKey:       getEnv("GOOGLE_KEY", ""),
		GoogleSecret:    getEnv("GOOGLE_SECRET", ""),

		PlatformURL:     getEnv("PLATFORM_URL", ""),
		PlatformAnonKey: getEnv("PLATFORM_ANON_KEY", ""),
	}
}

// CallbackURL is the address Google redirects back to after consent.
func (c Config) CallbackURL() string {
	return "http://" + c.Domain + "/auth/google/callback"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if dur, err := time.ParseDuration(value); err == nil {
			return dur
		}
	}
	return defaultValue
}
