package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"model-binder/core/binding"
	"model-binder/core/database"
	"model-binder/core/logger"
	"model-binder/core/request"
	"model-binder/core/server"
	"model-binder/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig loads configuration from a .env file, an optional config.yaml
// and environment variables, then binds it with the binding engine.
//
// A malformed value does not abort loading: the field keeps its zero value
// and the fault is returned as a problem. The error is reserved for an
// unreadable config file.
func LoadConfig(path string) (*Config, []binding.Problem, error) {
	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	// Register every key with its default so AutomaticEnv can see it
	bindValues(v, Config{}, "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg, problems, err := binding.Bind[Config](request.FromViper(v), zap.L())
	if err != nil {
		return nil, nil, err
	}
	return &cfg, problems, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
