package cmd

import "time"

// Config carries the runtime settings of the fulfillment service.
// Values come from the environment; see cmd/app for the loading.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// StaleSessionAfter is the age after which a still-running session is
	// reported by the stale session job.
	StaleSessionAfter time.Duration
}
