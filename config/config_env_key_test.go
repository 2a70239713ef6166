package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"localStore": map[string]any{
			"provider": "file",
			"redis": map[string]any{
				"addr": "localhost:6379",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"directory": map[string]any{
			"cacheTtl": "5m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "LOCALSTORE_PROVIDER", want: "localStore.provider"},
		{envKey: "LOCALSTORE_REDIS_ADDR", want: "localStore.redis.addr"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "DIRECTORY_CACHETTL", want: "directory.cacheTtl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDirectoryDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDirectoryDefaults()

	if cfg.Directory.PageSize != DefaultPageSize {
		t.Fatalf("PageSize = %d, want %d", cfg.Directory.PageSize, DefaultPageSize)
	}
	if cfg.Directory.CacheTTL != DefaultCacheTTL {
		t.Fatalf("CacheTTL = %s, want %s", cfg.Directory.CacheTTL, DefaultCacheTTL)
	}

	// Explicit values survive.
	cfg = &Config{Directory: &DirectoryConfig{PageSize: 50, CacheTTL: time.Minute}}
	cfg.applyDirectoryDefaults()
	if cfg.Directory.PageSize != 50 || cfg.Directory.CacheTTL != time.Minute {
		t.Fatalf("explicit directory values were overwritten: %+v", cfg.Directory)
	}
	if cfg.Directory.FavoritesDebounce != DefaultFavoritesDebounce {
		t.Fatalf("FavoritesDebounce default missing: %s", cfg.Directory.FavoritesDebounce)
	}
}
