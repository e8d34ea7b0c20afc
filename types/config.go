/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool       `mapstructure:"verbose"`
	Config  string     `mapstructure:"config"`
	Data    DataConfig `mapstructure:"data" validate:"required"`
}

// DataConfig holds data storage configuration
type DataConfig struct {
	// Dir is resolved by config.GetDataDir when left empty.
	Dir     string `mapstructure:"dir"`
	Backend string `mapstructure:"backend" validate:"required,oneof=file sqlite"`
	Format  string `mapstructure:"format" validate:"required,oneof=json yaml"`
	Key     string `mapstructure:"key" validate:"required,excludesall=/\\"`
}
