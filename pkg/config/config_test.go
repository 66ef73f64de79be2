package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/snifftrap/pkg/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.PrintSignatureNames)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(*config.Config) {}},
		{name: "always", mutate: func(c *config.Config) { c.Color = "always" }},
		{name: "never", mutate: func(c *config.Config) { c.Color = "never" }},
		{name: "empty color", mutate: func(c *config.Config) { c.Color = "" }},
		{name: "bad color", mutate: func(c *config.Config) { c.Color = "rainbow" }, wantErr: true},
		{name: "warning level", mutate: func(c *config.Config) { c.LogLevel = "warning" }},
		{name: "bad level", mutate: func(c *config.Config) { c.LogLevel = "loud" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
