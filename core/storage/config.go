package storage

import (
	"path"
	"strings"
)

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	Region    string `mapstructure:"region" default:""`
	// Bucket is the name of the bucket holding input documents.
	Bucket string `mapstructure:"bucket" default:"documents"`
	// Prefix is prepended to every object name read for binding.
	Prefix string `mapstructure:"prefix" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// ObjectKey returns the full key of a document, joining Prefix and name.
// Leading slashes in name are ignored.
func (c Config) ObjectKey(name string) string {
	name = strings.TrimLeft(name, "/")
	if c.Prefix == "" {
		return name
	}
	return path.Join(c.Prefix, name)
}
