package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultConfigKey          = "default"
	defaultPublicCacheTTL     = 5 * time.Minute
	defaultAccessTokenTTL     = 15 * time.Minute
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`

		// Origins allowed by CORS; empty allows any origin
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	// DynamicConfig controls the admin-editable configuration store
	DynamicConfig *DynamicConfigConfig `json:"dynamicConfig" yaml:"dynamicConfig"`

	// Redis backs the public configuration cache; nil disables caching
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for activity event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// NATS connection used by the nats pubsub provider and the activity worker
	NATS *NATSConfig `json:"nats" yaml:"nats"`

	// QRCode configuration for teacher share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	// Seed configuration for tuitionctl import/export
	Seed *SeedConfig `json:"seed" yaml:"seed"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`

	// SQL statements slower than this are logged at warn level; zero keeps the default
	SlowQuery time.Duration `json:"slowQuery" yaml:"slowQuery"`
}

// DynamicConfigConfig defines behaviour of the configuration store
type DynamicConfigConfig struct {
	// Key used when a request does not name one
	DefaultKey string `json:"defaultKey" yaml:"defaultKey"`

	// Create the default configuration on first read; when false, tuitionctl seed must run first.
	// Unset means true.
	AutoSeed *bool `json:"autoSeed" yaml:"autoSeed"`

	// How long the public projection stays cached
	PublicCacheTTL time.Duration `json:"publicCacheTtl" yaml:"publicCacheTtl"`
}

// SeedsOnRead reports whether an absent config is created on first read.
func (c *DynamicConfigConfig) SeedsOnRead() bool {
	return c == nil || c.AutoSeed == nil || *c.AutoSeed
}

// RedisConfig defines the Redis connection
type RedisConfig struct {
	Address   string `json:"address" yaml:"address"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google" or "nats"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// NATSConfig defines the NATS connection
type NATSConfig struct {
	URL     string `json:"url" yaml:"url"`
	Subject string `json:"subject" yaml:"subject"`
	Queue   string `json:"queue" yaml:"queue"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// MetricsConfig defines the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// SeedConfig defines where configuration bundles are read from and written to
type SeedConfig struct {
	// Bucket URL understood by gocloud.dev/blob, e.g. file:///var/seed or gs://bucket
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Object name of the bundle inside the bucket
	Object string `json:"object" yaml:"object"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills optional sections so consumers can dereference them freely.
func applyDefaults(cfg *Config) {
	if cfg.DynamicConfig == nil {
		cfg.DynamicConfig = &DynamicConfigConfig{}
	}
	if cfg.DynamicConfig.AutoSeed == nil {
		autoSeed := true
		cfg.DynamicConfig.AutoSeed = &autoSeed
	}
	if strings.TrimSpace(cfg.DynamicConfig.DefaultKey) == "" {
		cfg.DynamicConfig.DefaultKey = defaultConfigKey
	}
	if cfg.DynamicConfig.PublicCacheTTL <= 0 {
		cfg.DynamicConfig.PublicCacheTTL = defaultPublicCacheTTL
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}

	if cfg.Metrics != nil && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
