// Package config loads typed application configuration from environment
// variables.
//
// Configuration is declared as plain structs tagged for caarlos0/env and
// loaded through the generic Load/MustLoad helpers. A struct type is parsed
// at most once per process and cached, which gives every component the same
// view of the environment without global configuration objects being passed
// around implicitly.
//
// A local ".env.<APP_ENV>" (or ".env") file is read once before the first
// parse to ease development setups; production deployments are expected to
// provide real environment variables.
package config
