package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	DBDriver      string `mapstructure:"DB_DRIVER"`
	DBSource      string `mapstructure:"DB_SOURCE"`
	MongoURI      string `mapstructure:"MONGO_URI"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`

	GeocoderBaseURL string        `mapstructure:"GEOCODER_BASE_URL"`
	GeocoderAPIKey  string        `mapstructure:"GEOCODER_API_KEY"`
	GeocoderTimeout time.Duration `mapstructure:"GEOCODER_TIMEOUT"`
	DeviceTimeout   time.Duration `mapstructure:"DEVICE_TIMEOUT"`
	CacheTTL        time.Duration `mapstructure:"CACHE_TTL"`
	DebounceDelay   time.Duration `mapstructure:"DEBOUNCE_DELAY"`
	GeoIPCityDB     string        `mapstructure:"GEOIP_CITY_DB"`

	LogLevel           string `mapstructure:"LOG_LEVEL"`
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

// Store drivers accepted in DB_DRIVER.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

func setDefaults(v *viper.Viper) {
	// Keys without a useful default are still registered so AutomaticEnv picks them up.
	for _, key := range []string{"DB_SOURCE", "MONGO_URI", "GEOCODER_API_KEY", "GEOIP_CITY_DB"} {
		v.SetDefault(key, "")
	}
	v.SetDefault("DB_DRIVER", DriverMemory)
	v.SetDefault("MONGO_DATABASE", "locality")
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("GEOCODER_BASE_URL", "https://maps.googleapis.com/maps/api")
	v.SetDefault("GEOCODER_TIMEOUT", 10*time.Second)
	v.SetDefault("DEVICE_TIMEOUT", 10*time.Second)
	v.SetDefault("CACHE_TTL", 30*time.Minute)
	v.SetDefault("DEBOUNCE_DELAY", 300*time.Millisecond)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

// LoadConfig reads configuration from app.env in path, overridden by environment variables.
// A missing file is not an error; the defaults and the environment are used instead.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	setDefaults(v)
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	config.DBDriver = strings.ToLower(strings.TrimSpace(config.DBDriver))
	return config, config.validate()
}

func (c Config) validate() error {
	switch c.DBDriver {
	case DriverMemory:
	case DriverPostgres:
		if c.DBSource == "" {
			return fmt.Errorf("config: DB_SOURCE is required for driver %q", c.DBDriver)
		}
	case DriverMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("config: MONGO_URI is required for driver %q", c.DBDriver)
		}
	default:
		return fmt.Errorf("config: unknown DB_DRIVER %q", c.DBDriver)
	}
	return nil
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
