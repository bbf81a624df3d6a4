package config

import "time"

// Config holds runtime settings for the brandsync client.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - LocalDSN: SQLite DSN of the device-local field store.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - SyncInterval: how often queued changes are reconciled in the background.
//   - DebounceDelay: quiet period applied to field edits before saving.
type Config struct {
	ServerEndpointAddr  string
	LocalDSN            string
	OnlineCheckInterval time.Duration
	SyncInterval        time.Duration
	DebounceDelay       time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.LocalDSN = "brandsync.db"
	c.OnlineCheckInterval = 3 * time.Second
	c.SyncInterval = 30 * time.Second
	c.DebounceDelay = 500 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
