package impl

import (
	"io"
	"log/slog"
	"time"

	"localfy/config"
	"localfy/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Directory = &config.DirectoryConfig{
		PageSize:          3,
		CacheTTL:          5 * time.Minute,
		LookupTTL:         time.Minute,
		FavoritesDebounce: time.Millisecond,
	}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	return cfg
}

func newBusiness(id, name, category string) *entity.Business {
	return &entity.Business{
		ID:       id,
		Name:     name,
		Category: category,
	}
}
