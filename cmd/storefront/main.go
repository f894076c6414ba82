package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/kopkit/storefront/internal/infra/config"
	context_ "github.com/kopkit/storefront/internal/infra/context"
	"github.com/kopkit/storefront/internal/infra/logging"
	"github.com/kopkit/storefront/internal/repo/imagecache"
	"github.com/kopkit/storefront/internal/repo/kv"
	"github.com/kopkit/storefront/internal/session"
	"github.com/kopkit/storefront/internal/svc/imagesvc"
)

const (
	appName = "kopkit"
	svcName = "storefront"
)

type Config struct {
	config.EnvConfig

	Log   logging.LoggerConfig                  `envPrefix:"LOG_"`
	KV    kv.SQLiteRepositoryConfig             `envPrefix:"KV_"`
	Cache imagecache.FilesystemRepositoryConfig `envPrefix:"CACHE_"`
	Image imagesvc.PlaceholderConfig            `envPrefix:"IMAGE_"`
}

func loadDotenv() {
	for _, p := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Overload(p)

			return
		}
	}
}

func main() {
	var (
		cfg Config
		ctx = context.Background()

		configPrefix = strings.ToUpper(strings.Join([]string{appName, svcName}, "_"))
		loggerName   = strings.ToLower(strings.Join([]string{appName, svcName}, "."))
	)

	loadDotenv()

	if err := config.Parse(ctx, &cfg, configPrefix); err != nil {
		panic(err)
	}

	logging.Configure(ctx, cfg.Log, loggerName)

	if err := run(ctx, cfg); err != nil {
		panic(err)
	}
}

// run opens a session against the durable store and walks the containers
// once, the way the storefront UI would.
func run(ctx context.Context, cfg Config) (err error) {
	log := logging.GetLogger("cmd.storefront")

	defer func() {
		if err != nil {
			log.ErrorContext(ctx, "error", "err", err)

			return
		}

		log.InfoContext(ctx, "session closed")
	}()

	if err := os.MkdirAll(filepath.Dir(cfg.KV.DatabasePath), 0o755); err != nil {
		return fmt.Errorf("mkdir storage dir: %w", err)
	}

	cache, err := imagecache.NewFilesystemRepository(cfg.Cache)
	if err != nil {
		return fmt.Errorf("new image cache: %w", err)
	}

	artwork := imagesvc.NewPlaceholderRenderer(cfg.Image, cache)

	sess, err := session.New(ctx, kv.SQLiteRepositoryFactory(cfg.KV), artwork)
	if err != nil {
		return fmt.Errorf("new session: %w", err)
	}
	defer func() {
		if closeErr := sess.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close session: %w", closeErr)
		}
	}()

	ctx = context_.WithSessionID(ctx, sess.ID)

	if identity := sess.Identity.Current(); identity != nil {
		log.InfoContext(ctx, "identity restored from snapshot",
			logging.Group("identity", "username", identity.Username, "role", identity.Role))
	} else {
		ok, err := sess.Identity.Login(ctx, "demo", "demo123")
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}

		log.InfoContext(ctx, "demo login", "ok", ok)
	}

	ctx = context_.WithUsername(ctx, sess.Username())

	sess.Catalog.SetQuery("teh")

	for _, product := range sess.Catalog.FilteredProducts() {
		sess.Cart.AddToCart(product)

		if err := sess.Catalog.ToggleLike(ctx, sess.Username(), product.ID); err != nil {
			return fmt.Errorf("toggle like: %w", err)
		}
	}

	log.InfoContext(ctx, "cart filled", logging.Group("cart",
		"items", sess.Cart.TotalItems(),
		"total", sess.Cart.TotalPrice(),
	))

	for _, method := range sess.Config.ShippingMethods() {
		log.InfoContext(ctx, "shipping method", logging.Group("method",
			"id", method.ID,
			"price", method.Price,
			"enabled", method.Enabled,
		))
	}

	return nil
}
