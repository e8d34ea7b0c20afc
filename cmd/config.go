package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/todowing/internal/config"
	"github.com/josephgoksu/todowing/types"
	"github.com/spf13/viper"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate is a single instance of Validate, it caches struct info
var validate = validator.New()

// flagKeys maps persistent flags to their config keys.
var flagKeys = map[string]string{
	"config":      "config",
	"verbose":     "verbose",
	"json":        "json",
	"quiet":       "quiet",
	"data-dir":    "data.dir",
	"backend":     "data.backend",
	"data-format": "data.format",
}

// InitConfig reads in config file and ENV variables if set, then validates
// the result into GlobalAppConfig.
func InitConfig() error {
	// It's okay if .env file doesn't exist.
	_ = godotenv.Load()

	for flag, key := range flagKeys {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	// Environment variables must be set up before reading the config file.
	viper.SetEnvPrefix(config.EnvPrefix)                   // e.g., TODOWING_DATA_DIR
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // data.dir -> DATA_DIR
	viper.AutomaticEnv()

	viper.SetDefault("data.backend", config.DefaultBackend)
	viper.SetDefault("data.format", config.DefaultFormat)
	viper.SetDefault("data.key", config.DefaultKey)

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// A project-local .todowing directory wins over home and cwd.
		if wd, err := os.Getwd(); err == nil {
			if dir, ok := config.FindLocalDataDir(wd); ok {
				viper.AddConfigPath(dir)
			}
		}
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(config.ConfigFileName)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			// Config file not found by search paths, which is fine.
		case viper.GetString("config") != "" && os.IsNotExist(err):
			return fmt.Errorf("config file not found: %s", viper.GetString("config"))
		default:
			return fmt.Errorf("read config %s: %w", viper.ConfigFileUsed(), err)
		}
	}

	var cfg types.AppConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Data.Format = strings.ToLower(cfg.Data.Format)
	if cfg.Data.Format == "yml" {
		cfg.Data.Format = "yaml"
	}
	if err := validate.Struct(&cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	GlobalAppConfig = cfg
	return nil
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
