package pg

import "time"

type Config struct {
	DatabaseURL       string        `env:"DATABASE_URL,required"`                 // DatabaseURL is the postgres connection string.
	PoolSize          int32         `env:"DB_POOL_SIZE" envDefault:"10"`          // PoolSize is the maximum number of open connections.
	MinIdleConns      int32         `env:"DB_MIN_IDLE_CONNS" envDefault:"2"`      // MinIdleConns is the number of idle connections kept warm.
	HealthCheckPeriod time.Duration `env:"DB_HEALTHCHECK_PERIOD" envDefault:"1m"` // HealthCheckPeriod is the period between pool health checks.
	MaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"10m"`
	MaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`

	RetryAttempts int           `env:"DB_RETRY_ATTEMPTS" envDefault:"3"` // RetryAttempts is the number of connection attempts at startup.
	RetryInterval time.Duration `env:"DB_RETRY_INTERVAL" envDefault:"5s"`

	MigrationsPath  string `env:"DB_MIGRATIONS_PATH" envDefault:"migrations"`
	MigrationsTable string `env:"DB_MIGRATIONS_TABLE" envDefault:"schema_migrations"`
}
