package imagecache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kopkit/storefront/internal/infra/logging"
)

const dirPrefixLength = 2 // 16^2 = 256 directories

// FilesystemRepositoryConfig holds configuration for the filesystem-based
// rendering cache.
type FilesystemRepositoryConfig struct {
	// Basedir is the root directory for cached renderings
	Basedir string `env:"BASEDIR" default:"var/cache/placeholders"`
}

// FilesystemRepository implements Repository on the local filesystem.
// Cache keys are hashed into a shallow directory hierarchy so a large
// catalog does not pile every file into one directory.
type FilesystemRepository struct {
	cfg FilesystemRepositoryConfig
	log logging.Logger
}

var _ Repository = (*FilesystemRepository)(nil)

// FilesystemRepositoryFactory creates a factory function that returns a new
// FilesystemRepository. The factory function implements the RepositoryFactory type.
func FilesystemRepositoryFactory(cfg FilesystemRepositoryConfig) RepositoryFactory {
	return func() (Repository, error) {
		return NewFilesystemRepository(cfg)
	}
}

// NewFilesystemRepository creates a new FilesystemRepository rooted at the
// configured base directory, creating it if needed.
func NewFilesystemRepository(cfg FilesystemRepositoryConfig) (*FilesystemRepository, error) {
	log := logging.GetLogger("repo.imagecache.filesystem_repository").With(
		logging.Group("cache", "basedir", cfg.Basedir),
	)

	if err := os.MkdirAll(cfg.Basedir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir all: %w", err)
	}

	return &FilesystemRepository{
		cfg: cfg,
		log: log,
	}, nil
}

// Fetch implements Repository.Fetch.
func (r *FilesystemRepository) Fetch(ctx context.Context, key string) ([]byte, bool, error) {
	filename := r.filename(key)

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("read cache entry: %w", err)
	}

	r.log.DebugContext(ctx, "cache hit", logging.Group("cache", "key", key))

	return data, true, nil
}

// Store implements Repository.Store.
func (r *FilesystemRepository) Store(ctx context.Context, key string, data []byte) (err error) {
	filename := r.filename(key)

	defer func() {
		log := r.log.With(logging.Group("cache", "key", key, "filename", filename))
		if err != nil {
			log.ErrorContext(ctx, "cache store failed", "error", err)
		} else {
			log.DebugContext(ctx, "cache entry stored", "size", len(data))
		}
	}()

	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("mkdir all: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}

	return nil
}

func (r *FilesystemRepository) filename(key string) string {
	sum := sha256.Sum256([]byte(key))
	basename := hex.EncodeToString(sum[:])

	return filepath.Join(r.cfg.Basedir, basename[:dirPrefixLength], basename+".png")
}
