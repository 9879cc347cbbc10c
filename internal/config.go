package internal

import "time"

// Config is loaded from the environment by go-env in cmd/server.
// Timeouts default to the values the sweep/heartbeat protocol was
// designed around: sessions are considered stale after 10 minutes
// without a heartbeat and swept every 5 minutes.
type Config struct {
	Host     string `env:"HOST,required=true"`
	Port     int    `env:"PORT,required=true"`
	LogLevel string `env:"LOG_LEVEL,required=true"`

	JWTSecret string `env:"JWT_SECRET,required=true"`

	HeartbeatTimeout time.Duration `env:"HEARTBEAT_TIMEOUT,default=10m"`
	SweepInterval    time.Duration `env:"SWEEP_INTERVAL,default=5m"`
	WriteTimeout     time.Duration `env:"WRITE_TIMEOUT,default=10s"`
	ReadLimit        int64         `env:"READ_LIMIT,default=4096"`
	MetricInterval   time.Duration `env:"METRIC_INTERVAL,default=30s"`
}
