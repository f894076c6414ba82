package session

import (
	"context"
	"fmt"

	"github.com/kopkit/storefront/internal/infra/logging"
	"github.com/kopkit/storefront/internal/repo/kv"
	"github.com/kopkit/storefront/internal/svc/cartsvc"
	"github.com/kopkit/storefront/internal/svc/catalogsvc"
	"github.com/kopkit/storefront/internal/svc/configsvc"
	"github.com/kopkit/storefront/internal/svc/identitysvc"
	"github.com/kopkit/storefront/internal/util/sessionid"
)

// Session composes the four storefront state containers for one user
// session. The containers are independent of each other; identity and
// catalog share one key-value repository under disjoint keys. A session is
// constructed at start, used single-threaded, and closed at the end.
type Session struct {
	// ID identifies this session in log output.
	ID string

	Identity *identitysvc.IdentityService
	Cart     *cartsvc.CartService
	Catalog  *catalogsvc.CatalogService
	Config   *configsvc.ConfigService

	store kv.Repository
	log   logging.Logger
}

// New creates a session backed by a repository from the given factory.
// The artwork renderer may be nil; the catalog then leaves missing product
// images empty.
func New(ctx context.Context, storeFactory kv.RepositoryFactory, artwork catalogsvc.Artwork) (*Session, error) {
	log := logging.GetLogger("session")

	store, err := storeFactory()
	if err != nil {
		return nil, fmt.Errorf("new store: %w", err)
	}

	identity, err := identitysvc.NewIdentityService(ctx, store)
	if err != nil {
		_ = store.Close()

		return nil, fmt.Errorf("new identity service: %w", err)
	}

	sess := &Session{
		ID:       sessionid.New(),
		Identity: identity,
		Cart:     cartsvc.NewCartService(),
		Catalog:  catalogsvc.NewCatalogService(store, artwork),
		Config:   configsvc.NewConfigService(),
		store:    store,
		log:      log,
	}

	log.DebugContext(ctx, "session started", logging.Group("session", "id", sess.ID))

	return sess, nil
}

// Username returns the active identity's username, or "" when logged out.
// It is the identity parameter the catalog's liked-set operations take.
func (s *Session) Username() string {
	identity := s.Identity.Current()
	if identity == nil {
		return ""
	}

	return identity.Username
}

// Close releases the session's storage.
func (s *Session) Close() error {
	if err := s.store.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}

	return nil
}
