// Package config holds the service configuration.
package config

import (
	"strings"
	"time"
)

// Config is the root configuration.
type Config struct {
	App           AppConfig           `yaml:"app" mapstructure:"app"`
	Server        ServerConfig        `yaml:"server" mapstructure:"server"`
	Providers     ProvidersConfig     `yaml:"providers" mapstructure:"providers"`
	Store         StoreConfig         `yaml:"store" mapstructure:"store"`
	Cache         CacheConfig         `yaml:"cache" mapstructure:"cache"`
	Observability ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
	Security      SecurityConfig      `yaml:"security" mapstructure:"security"`
	Handlers      HandlersConfig      `yaml:"handlers" mapstructure:"handlers"`
	Features      FeaturesConfig      `yaml:"features" mapstructure:"features"`
}

// AppConfig is the application identity.
type AppConfig struct {
	Name    string `yaml:"name" mapstructure:"name"`
	Version string `yaml:"version" mapstructure:"version"`
	Env     string `yaml:"env" mapstructure:"env"`
	// PublicURL is the externally reachable base URL, used for webhook and checkout redirects.
	PublicURL string `yaml:"public_url" mapstructure:"public_url"`
}

// ServerConfig groups listener settings.
type ServerConfig struct {
	HTTP HTTPServerConfig `yaml:"http" mapstructure:"http"`
}

// HTTPServerConfig HTTP listener settings.
type HTTPServerConfig struct {
	Host         string        `yaml:"host" mapstructure:"host"`
	Port         int           `yaml:"port" mapstructure:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" mapstructure:"idle_timeout"`
}

// ProvidersConfig groups the external provider credentials.
type ProvidersConfig struct {
	OpenAI    OpenAIConfig    `yaml:"openai" mapstructure:"openai"`
	Replicate ReplicateConfig `yaml:"replicate" mapstructure:"replicate"`
	Stripe    StripeConfig    `yaml:"stripe" mapstructure:"stripe"`
}

// OpenAIConfig covers both chat completion and portrait image generation.
type OpenAIConfig struct {
	APIKey      string        `yaml:"api_key" mapstructure:"api_key"`
	BaseURL     string        `yaml:"base_url" mapstructure:"base_url"`
	ChatModel   string        `yaml:"chat_model" mapstructure:"chat_model"`
	Temperature float64       `yaml:"temperature" mapstructure:"temperature"`
	MaxTokens   int           `yaml:"max_tokens" mapstructure:"max_tokens"`
	Timeout     time.Duration `yaml:"timeout" mapstructure:"timeout"`

	ImageModel           string `yaml:"image_model" mapstructure:"image_model"`
	ImageSize            string `yaml:"image_size" mapstructure:"image_size"`
	ImageQuality         string `yaml:"image_quality" mapstructure:"image_quality"`
	MaxImagePromptLength int    `yaml:"max_image_prompt_length" mapstructure:"max_image_prompt_length"`
}

// Configured reports whether an API key is present.
func (c OpenAIConfig) Configured() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// ReplicateConfig covers storyboard frames and audio jobs.
type ReplicateConfig struct {
	APIToken        string        `yaml:"api_token" mapstructure:"api_token"`
	BaseURL         string        `yaml:"base_url" mapstructure:"base_url"`
	StoryboardModel string        `yaml:"storyboard_model" mapstructure:"storyboard_model"`
	AudioModel      string        `yaml:"audio_model" mapstructure:"audio_model"`
	WebhookSecret   string        `yaml:"webhook_secret" mapstructure:"webhook_secret"`
	PollInterval    time.Duration `yaml:"poll_interval" mapstructure:"poll_interval"`
	Timeout         time.Duration `yaml:"timeout" mapstructure:"timeout"`
	MaxPromptLength int           `yaml:"max_prompt_length" mapstructure:"max_prompt_length"`
}

// Configured reports whether an API token is present.
func (c ReplicateConfig) Configured() bool {
	return strings.TrimSpace(c.APIToken) != ""
}

// StripeConfig payment provider settings.
type StripeConfig struct {
	SecretKey     string `yaml:"secret_key" mapstructure:"secret_key"`
	WebhookSecret string `yaml:"webhook_secret" mapstructure:"webhook_secret"`
	SuccessPath   string `yaml:"success_path" mapstructure:"success_path"`
	CancelPath    string `yaml:"cancel_path" mapstructure:"cancel_path"`
}

// Configured reports whether a secret key is present.
func (c StripeConfig) Configured() bool {
	return strings.TrimSpace(c.SecretKey) != ""
}

// StoreConfig selects the external document store.
type StoreConfig struct {
	// Driver is one of firestore, postgres or none.
	Driver    string          `yaml:"driver" mapstructure:"driver"`
	Firestore FirestoreConfig `yaml:"firestore" mapstructure:"firestore"`
	Postgres  PostgresConfig  `yaml:"postgres" mapstructure:"postgres"`
}

// FirestoreConfig Firebase project settings.
type FirestoreConfig struct {
	ProjectID          string `yaml:"project_id" mapstructure:"project_id"`
	CredentialsFile    string `yaml:"credentials_file" mapstructure:"credentials_file"`
	AssetCollection    string `yaml:"asset_collection" mapstructure:"asset_collection"`
	PurchaseCollection string `yaml:"purchase_collection" mapstructure:"purchase_collection"`
}

// PostgresConfig PostgreSQL settings.
type PostgresConfig struct {
	Host            string        `yaml:"host" mapstructure:"host"`
	Port            int           `yaml:"port" mapstructure:"port"`
	User            string        `yaml:"user" mapstructure:"user"`
	Password        string        `yaml:"password" mapstructure:"password"`
	Database        string        `yaml:"database" mapstructure:"database"`
	SSLMode         string        `yaml:"ssl_mode" mapstructure:"ssl_mode"`
	MaxOpenConns    int           `yaml:"max_open_conns" mapstructure:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns" mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time" mapstructure:"conn_max_idle_time"`
	AutoMigrate     bool          `yaml:"auto_migrate" mapstructure:"auto_migrate"`
}

// CacheConfig cache settings.
type CacheConfig struct {
	Redis RedisConfig `yaml:"redis" mapstructure:"redis"`
}

// RedisConfig Redis settings.
type RedisConfig struct {
	Enabled      bool          `yaml:"enabled" mapstructure:"enabled"`
	Host         string        `yaml:"host" mapstructure:"host"`
	Port         int           `yaml:"port" mapstructure:"port"`
	Password     string        `yaml:"password" mapstructure:"password"`
	DB           int           `yaml:"db" mapstructure:"db"`
	PoolSize     int           `yaml:"pool_size" mapstructure:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns" mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `yaml:"dial_timeout" mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
}

// ObservabilityConfig observability settings.
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
	Tracing TracingConfig `yaml:"tracing" mapstructure:"tracing"`
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

// LoggingConfig logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
	// RawOutputLimit caps how much of an unparseable provider response is logged.
	RawOutputLimit int `yaml:"raw_output_limit" mapstructure:"raw_output_limit"`
}

// TracingConfig tracing settings.
type TracingConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
}

// MetricsConfig metrics settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path" mapstructure:"path"`
}

// SecurityConfig security settings.
type SecurityConfig struct {
	RateLimit RateLimitConfig `yaml:"rate_limit" mapstructure:"rate_limit"`
	CORS      CORSConfig      `yaml:"cors" mapstructure:"cors"`
}

// RateLimitConfig limits the expensive generation routes per client.
type RateLimitConfig struct {
	Enabled  bool          `yaml:"enabled" mapstructure:"enabled"`
	Requests int           `yaml:"requests" mapstructure:"requests"`
	Window   time.Duration `yaml:"window" mapstructure:"window"`
}

// CORSConfig CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods" mapstructure:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers" mapstructure:"allowed_headers"`
}

// HandlersConfig execution ceilings and archive limits.
type HandlersConfig struct {
	TextTimeout    time.Duration `yaml:"text_timeout" mapstructure:"text_timeout"`
	ImageTimeout   time.Duration `yaml:"image_timeout" mapstructure:"image_timeout"`
	ArchiveTimeout time.Duration `yaml:"archive_timeout" mapstructure:"archive_timeout"`

	AssetFetchConcurrency int           `yaml:"asset_fetch_concurrency" mapstructure:"asset_fetch_concurrency"`
	AssetFetchTimeout     time.Duration `yaml:"asset_fetch_timeout" mapstructure:"asset_fetch_timeout"`
	MaxAssetBytes         int64         `yaml:"max_asset_bytes" mapstructure:"max_asset_bytes"`
	// AssetHosts restricts archive downloads to these hosts and their subdomains. Empty allows any public host.
	AssetHosts []string `yaml:"asset_hosts" mapstructure:"asset_hosts"`
}

// FeaturesConfig feature switches.
type FeaturesConfig struct {
	DebugEndpoint bool `yaml:"debug_endpoint" mapstructure:"debug_endpoint"`
	// SoundAudioJobs starts one asynchronous audio job per generated sound asset.
	SoundAudioJobs bool `yaml:"sound_audio_jobs" mapstructure:"sound_audio_jobs"`
}
