package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

var placeholderPattern = regexp.MustCompile(`\${(\w+)(:([^}]*))?}`)

// envBindings maps config keys to the conventional environment variable names.
var envBindings = map[string]string{
	"providers.openai.api_key":           "OPENAI_API_KEY",
	"providers.replicate.api_token":      "REPLICATE_API_TOKEN",
	"providers.replicate.webhook_secret": "REPLICATE_WEBHOOK_SECRET",
	"providers.stripe.secret_key":        "STRIPE_SECRET_KEY",
	"providers.stripe.webhook_secret":    "STRIPE_WEBHOOK_SECRET",
	"app.public_url":                     "APP_BASE_URL",
	"store.firestore.project_id":         "FIREBASE_PROJECT_ID",
	"store.firestore.credentials_file":   "GOOGLE_APPLICATION_CREDENTIALS",
}

// Load reads configs/config.yaml, then configs/config.<APP_ENV>.yaml, then the environment.
func Load() (*Config, error) {
	return LoadFrom("configs")
}

// LoadFrom is Load with an explicit config directory.
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if err := loadConfigFile(v, filepath.Join(dir, "config.yaml"), false); err != nil {
		return nil, err
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	if err := loadConfigFile(v, filepath.Join(dir, fmt.Sprintf("config.%s.yaml", env)), true); err != nil {
		return nil, err
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, name := range envBindings {
		if err := v.BindEnv(key, name); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", name, err)
		}
	}

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.App.PublicURL = strings.TrimRight(cfg.App.PublicURL, "/")

	return &cfg, nil
}

// loadConfigFile reads path, expands ${VAR:default} placeholders and merges it into v.
func loadConfigFile(v *viper.Viper, path string, optional bool) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	reader := strings.NewReader(expandEnv(string(content)))
	if v.ConfigFileUsed() == "" {
		if err := v.ReadConfig(reader); err != nil {
			return fmt.Errorf("failed to read processed config %s: %w", path, err)
		}
		v.SetConfigFile(path)
	} else {
		if err := v.MergeConfig(reader); err != nil {
			return fmt.Errorf("failed to merge processed config %s: %w", path, err)
		}
	}

	return nil
}

// expandEnv replaces ${VAR} and ${VAR:default}. An unset variable without default expands to "".
func expandEnv(s string) string {
	return placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
		submatch := placeholderPattern.FindStringSubmatch(match)
		if val, ok := os.LookupEnv(submatch[1]); ok {
			return val
		}
		return submatch[3]
	})
}

// MustLoad is Load that panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "film-forge-api")
	v.SetDefault("app.version", "v0.0.0")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.public_url", "http://localhost:8080")

	v.SetDefault("server.http.host", "0.0.0.0")
	v.SetDefault("server.http.port", 8080)
	v.SetDefault("server.http.read_timeout", "30s")
	v.SetDefault("server.http.write_timeout", "150s")
	v.SetDefault("server.http.idle_timeout", "120s")

	v.SetDefault("providers.openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("providers.openai.chat_model", "gpt-4o-mini")
	v.SetDefault("providers.openai.temperature", 0.7)
	v.SetDefault("providers.openai.max_tokens", 4000)
	v.SetDefault("providers.openai.timeout", "55s")
	v.SetDefault("providers.openai.image_model", "dall-e-3")
	v.SetDefault("providers.openai.image_size", "1024x1024")
	v.SetDefault("providers.openai.image_quality", "standard")
	v.SetDefault("providers.openai.max_image_prompt_length", 4000)

	v.SetDefault("providers.replicate.base_url", "https://api.replicate.com/v1")
	v.SetDefault("providers.replicate.storyboard_model", "black-forest-labs/flux-schnell")
	v.SetDefault("providers.replicate.audio_model", "meta/musicgen")
	v.SetDefault("providers.replicate.poll_interval", "1s")
	v.SetDefault("providers.replicate.timeout", "110s")
	v.SetDefault("providers.replicate.max_prompt_length", 1000)

	v.SetDefault("providers.stripe.success_path", "/success?session_id={CHECKOUT_SESSION_ID}")
	v.SetDefault("providers.stripe.cancel_path", "/pricing")

	v.SetDefault("store.driver", "firestore")
	v.SetDefault("store.firestore.asset_collection", "audio_assets")
	v.SetDefault("store.firestore.purchase_collection", "purchases")
	v.SetDefault("store.postgres.host", "localhost")
	v.SetDefault("store.postgres.port", 5432)
	v.SetDefault("store.postgres.user", "postgres")
	v.SetDefault("store.postgres.database", "film_forge")
	v.SetDefault("store.postgres.ssl_mode", "disable")
	v.SetDefault("store.postgres.max_open_conns", 20)
	v.SetDefault("store.postgres.max_idle_conns", 5)
	v.SetDefault("store.postgres.conn_max_lifetime", "30m")
	v.SetDefault("store.postgres.conn_max_idle_time", "5m")
	v.SetDefault("store.postgres.auto_migrate", true)

	v.SetDefault("cache.redis.enabled", true)
	v.SetDefault("cache.redis.host", "localhost")
	v.SetDefault("cache.redis.port", 6379)
	v.SetDefault("cache.redis.db", 0)
	v.SetDefault("cache.redis.pool_size", 20)
	v.SetDefault("cache.redis.min_idle_conns", 2)
	v.SetDefault("cache.redis.dial_timeout", "2s")
	v.SetDefault("cache.redis.read_timeout", "1s")
	v.SetDefault("cache.redis.write_timeout", "1s")

	v.SetDefault("observability.logging.level", "info")
	v.SetDefault("observability.logging.format", "json")
	v.SetDefault("observability.logging.raw_output_limit", 2000)
	v.SetDefault("observability.tracing.enabled", false)
	v.SetDefault("observability.tracing.endpoint", "localhost:4317")
	v.SetDefault("observability.tracing.sample_rate", 1.0)
	v.SetDefault("observability.metrics.enabled", true)
	v.SetDefault("observability.metrics.path", "/metrics")

	v.SetDefault("security.rate_limit.enabled", true)
	v.SetDefault("security.rate_limit.requests", 30)
	v.SetDefault("security.rate_limit.window", "1m")

	v.SetDefault("handlers.text_timeout", "60s")
	v.SetDefault("handlers.image_timeout", "120s")
	v.SetDefault("handlers.archive_timeout", "120s")
	v.SetDefault("handlers.asset_fetch_concurrency", 4)
	v.SetDefault("handlers.asset_fetch_timeout", "30s")
	v.SetDefault("handlers.max_asset_bytes", 50<<20)

	v.SetDefault("features.debug_endpoint", true)
	v.SetDefault("features.sound_audio_jobs", false)
}
