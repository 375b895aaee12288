package config

import "fmt"

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// GetAddr returns the host:port listen address
func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// GetAddr returns the host:port Redis address
func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// AdmissionConfig holds the tunable windows and limits of the admission
// engine. The inactivity and heartbeat windows are deployment-dependent
// and must not be hard-coded in guard logic.
type AdmissionConfig struct {
	// InactivityWindowMinutes is how long a device session stays safe from
	// eviction after its last activity; beyond it the session is stale and
	// may be displaced by a new device.
	InactivityWindowMinutes int `mapstructure:"inactivity_window_minutes"`
	// HeartbeatWindowMinutes is how long a playback heartbeat counts
	// against the plan's concurrent stream ceiling.
	HeartbeatWindowMinutes int `mapstructure:"heartbeat_window_minutes"`
	// RestrictionTimezone is the timezone used to evaluate curfew and
	// allowed-hours windows.
	RestrictionTimezone string `mapstructure:"restriction_timezone"`
	// TrialDeviceLimit and TrialStreamLimit bound the synthetic
	// legacy-trial entitlement.
	TrialDeviceLimit int `mapstructure:"trial_device_limit"`
	TrialStreamLimit int `mapstructure:"trial_stream_limit"`
	// EntitlementCacheTTLSeconds bounds how stale a cached entitlement
	// may be.
	EntitlementCacheTTLSeconds int `mapstructure:"entitlement_cache_ttl_seconds"`
}

// GeoIPConfig holds the MaxMind database location
type GeoIPConfig struct {
	DatabasePath string `mapstructure:"database_path"`
}
