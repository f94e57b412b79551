// Package config provides configuration loading and validation for pulse.
//
// It uses Viper to load configuration from a config.yml file, a .env file,
// and environment variables, then unmarshals the merged result into the
// service config struct. Environment variables override file values.
package config
