package storage_test

import (
	"testing"

	"model-binder/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestConfig_ObjectKey(t *testing.T) {
	tests := []struct {
		prefix string
		name   string
		want   string
	}{
		{"", "server.yaml", "server.yaml"},
		{"", "/server.yaml", "server.yaml"},
		{"configs", "server.yaml", "configs/server.yaml"},
		{"configs/", "/prod/server.yaml", "configs/prod/server.yaml"},
	}

	for _, tt := range tests {
		cfg := storage.Config{Prefix: tt.prefix}
		assert.Equal(t, tt.want, cfg.ObjectKey(tt.name))
	}
}
