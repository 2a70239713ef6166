// Package config loads application configuration from YAML files with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	// Firestore configuration for the hosted document database
	Firestore *FirestoreConfig `json:"firestore" yaml:"firestore"`

	// Firebase configuration for identity verification and push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Directory configuration for the business cache/pagination layer
	Directory *DirectoryConfig `json:"directory" yaml:"directory"`

	// LocalStore configuration for the on-device snapshot cache
	LocalStore *LocalStoreConfig `json:"localStore" yaml:"localStore"`

	// PubSub configuration for analytics event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Media configuration for business image storage
	Media *MediaConfig `json:"media" yaml:"media"`

	// QRCode configuration for business share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirestoreConfig defines the connection to the hosted document database
type FirestoreConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// FirebaseConfig defines Firebase configuration for auth and push
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// DirectoryConfig tunes the business list cache and pagination behavior
type DirectoryConfig struct {
	// Number of businesses fetched per page
	PageSize int `json:"pageSize" yaml:"pageSize"`

	// How long a fetched snapshot stays fresh before a refetch is required
	CacheTTL time.Duration `json:"cacheTtl" yaml:"cacheTtl"`

	// TTL for memoized single-business lookups that missed the list
	LookupTTL time.Duration `json:"lookupTtl" yaml:"lookupTtl"`

	// Delay used to coalesce favorite-set persistence writes
	FavoritesDebounce time.Duration `json:"favoritesDebounce" yaml:"favoritesDebounce"`
}

// LocalStoreConfig selects the key-value store backing the snapshot cache
type LocalStoreConfig struct {
	// Provider type: "file" for on-disk storage or "redis"
	Provider string `json:"provider" yaml:"provider"`

	// Directory for the file provider
	Path string `json:"path" yaml:"path"`

	// Redis connection for the redis provider
	Redis struct {
		Addr     string `json:"addr" yaml:"addr"`
		Password string `json:"password" yaml:"password"`
		DB       int    `json:"db" yaml:"db"`
	} `json:"redis" yaml:"redis"`
}

// PubSubConfig defines Pub/Sub configuration for analytics events
type PubSubConfig struct {
	// Provider type: "google" for Google Pub/Sub, empty disables publishing
	Provider string `json:"provider" yaml:"provider"`

	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`
}

// MediaConfig defines object storage for business media
type MediaConfig struct {
	// Bucket URL understood by gocloud.dev/blob, e.g. gs://bucket or file:///dir
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Base URL prefixed to stored object keys to form public URLs
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// Defaults applied when the directory section is missing or partial.
const (
	DefaultPageSize          = 20
	DefaultCacheTTL          = 5 * time.Minute
	DefaultLookupTTL         = time.Minute
	DefaultFavoritesDebounce = 500 * time.Millisecond
)

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
			// Example: LOCALSTORE_PROVIDER -> localStore.provider (not localstore.provider)
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

	cfg.applyDirectoryDefaults()

	return cfg, nil
}

// applyDirectoryDefaults fills the cache/pagination tunables the rest of the
// app assumes are always present.
func (c *Config) applyDirectoryDefaults() {
	if c.Directory == nil {
		c.Directory = &DirectoryConfig{}
	}
	if c.Directory.PageSize <= 0 {
		c.Directory.PageSize = DefaultPageSize
	}
	if c.Directory.CacheTTL <= 0 {
		c.Directory.CacheTTL = DefaultCacheTTL
	}
	if c.Directory.LookupTTL <= 0 {
		c.Directory.LookupTTL = DefaultLookupTTL
	}
	if c.Directory.FavoritesDebounce <= 0 {
		c.Directory.FavoritesDebounce = DefaultFavoritesDebounce
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
