package types

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func validConfig() AppConfig {
	return AppConfig{
		Data: DataConfig{
			Dir:     "/home/user/.todowing",
			Backend: "file",
			Format:  "json",
			Key:     "todos",
		},
	}
}

func TestAppConfig_Validation(t *testing.T) {
	v := validator.New()

	cfg := validConfig()
	assert.NoError(t, v.Struct(&cfg))

	cfg.Data.Dir = ""
	assert.NoError(t, v.Struct(&cfg), "dir is optional")

	tests := []struct {
		name   string
		mutate func(*AppConfig)
	}{
		{"unknown backend", func(c *AppConfig) { c.Data.Backend = "redis" }},
		{"toml format", func(c *AppConfig) { c.Data.Format = "toml" }},
		{"empty key", func(c *AppConfig) { c.Data.Key = "" }},
		{"key with slash", func(c *AppConfig) { c.Data.Key = "../todos" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			assert.Error(t, v.Struct(&cfg))
		})
	}
}
