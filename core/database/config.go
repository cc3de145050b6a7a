package database

// Config holds configuration for the database connection.
type Config struct {
	// Driver is the database driver (postgres, mysql, sqlite).
	Driver string `mapstructure:"driver" default:"postgres"`
	// DSN is a full connection string. When set it takes precedence over the discrete fields.
	DSN string `mapstructure:"dsn" default:""`
	// Host is the database host.
	Host string `mapstructure:"host" default:""`
	// Port is the database port.
	Port int `mapstructure:"port" default:"5432"`
	// User is the database user.
	User string `mapstructure:"user" default:"postgres"`
	// Password is the database password (the Supabase database key).
	Password string `mapstructure:"password" default:""`
	// Name is the database name, or the file path for sqlite.
	Name string `mapstructure:"name" default:"postgres"`
	// SSLMode is passed through to PostgreSQL.
	SSLMode string `mapstructure:"sslmode" default:"require"`
	// TimeoutSeconds bounds connection setup and the initial ping.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Configured reports whether enough connection settings are present to attempt a connection.
func (c Config) Configured() bool {
	if c.DSN != "" {
		return true
	}
	if c.Driver == DriverSQLite {
		return c.Name != ""
	}
	return c.Host != "" && c.User != "" && c.Password != ""
}
