package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// loadEnvFiles loads .env files before env overrides are applied. ENV_FILE,
// when set, is loaded exclusively; otherwise .env.local overrides .env.
// Missing files are not an error.
func loadEnvFiles() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	if err := godotenv.Load(".env.local"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env.local: %w", err)
	}
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// load reads a YAML config file and applies environment overrides declared
// with `env` struct tags. A missing config file is tolerated: defaults plus
// environment variables then fully define the configuration.
func load(path string, cfg *Config) error {
	if err := loadEnvFiles(); err != nil {
		return fmt.Errorf("load environment files: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("read config file %s: %w", path, err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return fmt.Errorf("parse config: %w", err)
			}
		}
	}

	setDefaults(cfg)

	// Env always wins, including over defaults.
	applyEnvOverrides(reflect.ValueOf(cfg).Elem())
	return nil
}

func applyEnvOverrides(v reflect.Value) {
	if v.Kind() != reflect.Struct {
		return
	}

	t := v.Type()
	for i := range v.NumField() {
		field := v.Field(i)
		fieldType := t.Field(i)

		if field.Kind() == reflect.Struct && fieldType.Type != reflect.TypeOf(time.Duration(0)) {
			applyEnvOverrides(field)
			continue
		}

		envName := fieldType.Tag.Get("env")
		if envName == "" {
			continue
		}
		envValue := os.Getenv(envName)
		if envValue == "" {
			continue
		}
		setField(field, envValue)
	}
}

func setField(field reflect.Value, value string) {
	if !field.CanSet() {
		return
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Bool:
		if parsed, err := strconv.ParseBool(value); err == nil {
			field.SetBool(parsed)
		}
	case reflect.Int, reflect.Int64:
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			if parsed, err := time.ParseDuration(value); err == nil {
				field.SetInt(int64(parsed))
			}
			return
		}
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			field.SetInt(parsed)
		}
	case reflect.Float64:
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			field.SetFloat(parsed)
		}
	default:
	}
}
