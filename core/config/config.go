package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"aoe4-sync/core/database"
	"aoe4-sync/core/logger"
	"aoe4-sync/core/server"
	"aoe4-sync/core/storage"
	"aoe4-sync/feature/aoe4world"
	"aoe4-sync/feature/sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrConfiguration marks missing or inconsistent settings.
var ErrConfiguration = errors.New("invalid configuration")

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// API holds configuration for the AoE4 World client.
	API aoe4world.Config `mapstructure:"api"`
	// Storage holds configuration for the snapshot archive.
	Storage storage.Config `mapstructure:"storage"`
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Sync holds the defaults of sync runs.
	Sync sync.Config `mapstructure:"sync"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." || path == "" {
		envPath = ".env"
	}

	// A missing .env is normal in production.
	_ = godotenv.Overload(envPath)

	v := viper.New()
	bindValues(v, Config{}, "")

	// DATABASE_HOST -> database.host
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	return &config, nil
}

// Validate reports missing database credentials, or archiving enabled without storage credentials.
func (c *Config) Validate() error {
	var problems []string
	if !c.Database.Configured() {
		problems = append(problems, "database host, user and password (or DATABASE_DSN) are required")
	}
	if c.Storage.Enabled && !c.Storage.Configured() {
		problems = append(problems, "storage endpoint, access key and secret key are required when STORAGE_ENABLED is set")
	}
	if c.Sync.LeaderboardCount < 0 {
		problems = append(problems, "sync leaderboard count must not be negative")
	}
	for _, lb := range c.Sync.Leaderboards {
		if !aoe4world.IsLeaderboard(lb) {
			problems = append(problems, fmt.Sprintf("unknown leaderboard %q in SYNC_LEADERBOARDS", lb))
		}
	}
	for _, rank := range c.Sync.RankLevels {
		if !aoe4world.IsRankLevel(rank) {
			problems = append(problems, fmt.Sprintf("unknown rank level %q in SYNC_RANK_LEVELS", rank))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrConfiguration, strings.Join(problems, "; "))
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Registering empty defaults too makes the key visible to AutomaticEnv.
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
