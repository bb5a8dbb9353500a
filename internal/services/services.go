package services

import (
	"log"

	"Reportly/internal/analytics"
	"Reportly/internal/config"
	"Reportly/internal/platform"
)

type Services struct {
	Platform *platform.Client
	Tracker  *analytics.Tracker
}

func New(cfg config.Config) *Services {
	// Missing platform credentials must not stop the build of the
	// service; the client reports ErrNotConfigured on first use.
	platformClient, err := platform.New(cfg.PlatformURL, cfg.PlatformAnonKey)
	if err != nil {
		log.Printf("Warning: %v", err)
	}

	return &Services{
		Platform: platformClient,
		Tracker:  analytics.New(platformClient),
	}
}
