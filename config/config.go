package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"errorviews/internal/model"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Error resolution
	Profile  ProfileConfig
	Resolver ResolverConfig

	// Administrative routes
	Admin AdminConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ProfileConfig selects where exception handlers are attached.
type ProfileConfig struct {
	Strategy model.Strategy
}

// ResolverConfig configures the mapping table and the views it renders.
type ResolverConfig struct {
	Enabled            bool
	Source             model.Source
	MappingsFile       string
	DatabaseView       string
	ExceptionAttribute string
	DefaultErrorView   string
	StatusCodes        map[string]int // view name -> HTTP status
}

type AdminConfig struct {
	RateLimitPerMin int
}

// ActiveProfile returns the profile shown to views.
func (c *Config) ActiveProfile() model.Profile {
	return model.Profile{Strategy: c.Profile.Strategy, Source: c.Resolver.Source}
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/errorviews/
// A non-empty path reads that file instead.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/errorviews/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Error resolution
	cfg.Profile.Strategy = model.Strategy(strings.ToLower(v.GetString("profile.strategy")))
	cfg.Resolver.Enabled = v.GetBool("resolver.enabled")
	cfg.Resolver.Source = model.Source(strings.ToLower(v.GetString("resolver.source")))
	cfg.Resolver.MappingsFile = expandEnvVar(v, v.GetString("resolver.mappings_file"))
	cfg.Resolver.DatabaseView = v.GetString("resolver.database_view")
	cfg.Resolver.ExceptionAttribute = v.GetString("resolver.exception_attribute")
	cfg.Resolver.DefaultErrorView = v.GetString("resolver.default_error_view")

	// viper lowercases map keys: views are matched case-insensitively.
	cfg.Resolver.StatusCodes = map[string]int{}
	codes := v.GetStringMap("resolver.status_codes")
	for view := range codes {
		cfg.Resolver.StatusCodes[view] = getIntFromMap(codes, view)
	}

	// Administrative routes
	cfg.Admin.RateLimitPerMin = v.GetInt("admin.rate_limit_per_min")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("profile.strategy", string(model.StrategyGlobal))
	v.SetDefault("resolver.enabled", false)
	v.SetDefault("resolver.source", string(model.SourceCode))
	v.SetDefault("resolver.mappings_file", "./config/mappings.yaml")
	v.SetDefault("resolver.database_view", model.ViewDatabaseError)
	v.SetDefault("resolver.exception_attribute", model.AttrException)
	v.SetDefault("resolver.default_error_view", model.ViewError)
	v.SetDefault("admin.rate_limit_per_min", 60)
}

// Validate checks the closed sets and required values.
func (c *Config) Validate() error {
	if !c.Profile.Strategy.Valid() {
		return fmt.Errorf("profile.strategy: unknown strategy %q (controller, global or table)", c.Profile.Strategy)
	}
	if !c.Resolver.Source.Valid() {
		return fmt.Errorf("resolver.source: unknown source %q (code or file)", c.Resolver.Source)
	}
	if c.Resolver.Source == model.SourceFile && c.Resolver.MappingsFile == "" {
		return fmt.Errorf("resolver.mappings_file is required when resolver.source is file")
	}
	switch c.Resolver.DatabaseView {
	case model.ViewDatabaseError, model.ViewDatabaseExc:
	default:
		return fmt.Errorf("resolver.database_view: %q is not %s or %s", c.Resolver.DatabaseView, model.ViewDatabaseError, model.ViewDatabaseExc)
	}
	if c.Resolver.ExceptionAttribute == "" {
		return fmt.Errorf("resolver.exception_attribute is required")
	}
	switch c.Resolver.DefaultErrorView {
	case model.ViewError, model.ViewDefaultErrorPage:
	default:
		return fmt.Errorf("resolver.default_error_view: %q is not %s or %s", c.Resolver.DefaultErrorView, model.ViewError, model.ViewDefaultErrorPage)
	}
	for view, code := range c.Resolver.StatusCodes {
		if code < 400 || code > 599 {
			return fmt.Errorf("resolver.status_codes.%s: %d is not an error status", view, code)
		}
	}
	if c.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
