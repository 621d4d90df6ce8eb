package config

import "github.com/caarlos0/env/v11"

type Config struct {
	Server    ServerConfig
	Profiler  ProfilerConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Pprof     PprofConfig
	TLS       TLSConfig
}

type ServerConfig struct {
	Host               string `env:"SERVER_HOST" envDefault:"localhost"`
	Port               int    `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections     int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
	MaxRequestBodySize string `env:"SERVER_MAX_BODY_SIZE" envDefault:"1M"`
}

type ProfilerConfig struct {
	// EnableByDefault turns CPU sampling on for every request unless a
	// request opts out via the query parameter.
	EnableByDefault bool `env:"PROFILER_ENABLE_BY_DEFAULT" envDefault:"false"`

	// QueryParam toggles CPU sampling per request: "?profile=true" enables,
	// "?profile=false" disables.
	QueryParam string `env:"PROFILER_QUERY_PARAM" envDefault:"profile"`

	// MaxRetainedRequests bounds the in-memory measurement store.
	MaxRetainedRequests int `env:"PROFILER_MAX_RETAINED_REQUESTS" envDefault:"1000"`
}

type CacheConfig struct {
	MaxSizePow2 int `env:"CACHE_MAX_SIZE_POW2" envDefault:"20"`
}

type RateLimitConfig struct {
	Enabled       bool    `env:"RATE_LIMIT_ENABLED" envDefault:"false"`
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"100"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"200"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET" envDefault:""`
}

type PprofConfig struct {
	Enabled bool   `env:"PPROF_ENABLED" envDefault:"false"`
	Secret  string `env:"PPROF_SECRET" envDefault:""`
}

type TLSConfig struct {
	Enabled  bool   `env:"TLS_ENABLED" envDefault:"false"`
	Port     int    `env:"TLS_PORT" envDefault:"8443"`
	CertFile string `env:"TLS_CERT_FILE" envDefault:""`
	KeyFile  string `env:"TLS_KEY_FILE" envDefault:""`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
