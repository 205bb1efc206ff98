package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache stores one parsed value per configuration struct type so that every
// component reading the same config sees the identical instance for the
// lifetime of the process.
type cache struct {
	mu     sync.Mutex
	values map[string]any
}

var (
	loaded = &cache{values: make(map[string]any)}

	envFileOnce sync.Once
)

// loadEnvFile loads ".env.<APP_ENV>" if it exists, falling back to ".env".
// Missing files are not an error; real environments inject variables directly.
func loadEnvFile() {
	envFileOnce.Do(func() {
		appEnv := os.Getenv("APP_ENV")
		if appEnv == "" {
			appEnv = "development"
		}
		if err := godotenv.Load(".env." + appEnv); err != nil {
			_ = godotenv.Load()
		}
	})
}

// Load parses environment variables into the given configuration struct.
//
// Each distinct struct type is parsed exactly once per process; subsequent
// calls for the same type return the cached value, so all consumers of a
// config type observe identical settings. Parsing honors the `env`,
// `envDefault` and `,required` tags of caarlos0/env.
//
// Example:
//
//	type ServerConfig struct {
//		Port   int    `env:"PORT" envDefault:"3000"`
//		APIURL string `env:"API_URL"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		// missing or malformed required variables
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	loadEnvFile()

	key := typeKey[T]()

	loaded.mu.Lock()
	defer loaded.mu.Unlock()

	if cached, ok := loaded.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	// Store a copy so callers mutating their struct cannot poison the cache.
	loaded.values[key] = *v
	return nil
}

// MustLoad works like Load but panics on failure. Use it for configuration
// without which the process cannot start; the panic happens during boot,
// before any listener is opened.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset drops all cached configuration values. Intended for test harness
// setup/teardown only.
func Reset() {
	loaded.mu.Lock()
	defer loaded.mu.Unlock()
	loaded.values = make(map[string]any)
}

func typeKey[T any]() string {
	var zero T
	if t := reflect.TypeOf(zero); t != nil {
		return t.String()
	}
	return fmt.Sprintf("%T", *new(T))
}
