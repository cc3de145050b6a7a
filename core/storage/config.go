package storage

// Config holds configuration for the snapshot bucket.
type Config struct {
	// Enabled turns on archiving of raw upstream payloads.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Endpoint is the host (and optional scheme) of the S3 compatible service.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:""`
	SecretKey string `mapstructure:"secret_key" default:""`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket receives objects under snapshots/<run-id>/.
	Bucket string `mapstructure:"bucket" default:"aoe4-snapshots"`
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds dialing, TLS and the first response byte.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Configured reports whether endpoint and both keys are present.
func (c Config) Configured() bool {
	return c.Endpoint != "" && c.AccessKey != "" && c.SecretKey != ""
}
