package pkgconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// legacyEnv maps configuration keys to the environment variable names the
// server accepted before the YAML layout existed.
var legacyEnv = map[string]string{
	"app.server.port":                    "PORT",
	"app.server.host":                    "HOST",
	"app.transport":                      "TRANSPORT",
	"app.server.rate_limit.max_requests": "RATE_LIMIT_MAX",
	"app.server.rate_limit.window_ms":    "RATE_LIMIT_WINDOW_MS",
	"modules.travel.map.provider":        "MAP_PROVIDER",
	"modules.travel.map.mapbox_token":    "MAPBOX_TOKEN",
	"modules.travel.geocoding.provider":  "GEOCODING_PROVIDER",
	"modules.travel.cache.enabled":       "CACHE_ENABLED",
	"modules.travel.cache.ttl_seconds":   "CACHE_TTL",
}

var envReplacer = strings.NewReplacer(".", "_", "-", "_")

type viperConfig struct {
	v *viper.Viper
}

// NewViper loads the YAML file at path. A .env file in the working
// directory is applied to the process environment first, and any key can be
// overridden by its upper-cased, underscore separated environment variable.
func NewViper(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()

	for key, env := range legacyEnv {
		if err := v.BindEnv(key, strings.ToUpper(envReplacer.Replace(key)), env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return &viperConfig{v: v}, nil
}

func (c *viperConfig) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *viperConfig) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *viperConfig) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *viperConfig) GetFloat64(key string) float64 {
	return c.v.GetFloat64(key)
}

func (c *viperConfig) GetDuration(key string) time.Duration {
	return c.v.GetDuration(key)
}

func (c *viperConfig) Close() error {
	return nil
}

// NewStatic builds a Config from in-memory values keyed by dotted path.
func NewStatic(values map[string]any) Config {
	v := viper.New()
	for key, value := range values {
		v.Set(key, value)
	}
	return &viperConfig{v: v}
}
