package identitysvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/kopkit/storefront/internal/domain"
	"github.com/kopkit/storefront/internal/infra/logging"
	"github.com/kopkit/storefront/internal/repo/kv"
)

// Storage keys for the identity container's durable snapshots.
const (
	keyIdentity = "user"
	keyRegistry = "registeredUsers"
)

// IdentityService owns the session identity and the durable credential
// registry. The active identity and the registry are held in memory and
// written through to the key-value repository on every mutation; the
// persisted snapshots are the source of truth across restarts.
//
// Login is a closed plain-text comparison against two built-in credentials
// and the registry. It models a state-transition contract, not a security
// boundary.
type IdentityService struct {
	Store kv.Repository
	Log   logging.Logger

	current  *domain.Identity
	registry []domain.Credential
}

// NewIdentityService creates an IdentityService backed by the given
// repository and restores the persisted identity and registry snapshots.
// Malformed snapshots degrade to a nil identity / empty registry with a
// warning; only storage access failures are returned as errors.
func NewIdentityService(ctx context.Context, store kv.Repository) (*IdentityService, error) {
	log := logging.GetLogger("svc.identitysvc.identity_service")

	svc := &IdentityService{
		Store: store,
		Log:   log,
	}

	if err := svc.restore(ctx); err != nil {
		return nil, fmt.Errorf("restore snapshots: %w", err)
	}

	return svc, nil
}

func (s *IdentityService) restore(ctx context.Context) error {
	var identity domain.Identity

	ok, err := kv.GetJSON(ctx, s.Store, keyIdentity, &identity)
	switch {
	case errors.Is(err, kv.ErrMalformedValue):
		// Corrupt snapshot: start the session logged out.
		s.Log.WarnContext(ctx, "discarding malformed identity snapshot", "error", err)
	case err != nil:
		return fmt.Errorf("load identity: %w", err)
	case ok:
		s.current = &identity
	}

	var registry []domain.Credential

	_, err = kv.GetJSON(ctx, s.Store, keyRegistry, &registry)
	switch {
	case errors.Is(err, kv.ErrMalformedValue):
		s.Log.WarnContext(ctx, "discarding malformed registry snapshot", "error", err)

		registry = nil
	case err != nil:
		return fmt.Errorf("load registry: %w", err)
	}

	s.registry = registry

	return nil
}

// Login authenticates against the built-in credentials first, then the
// registry, by exact equality. On a match it sets and persists the current
// identity (never the password) and returns true. On no match it returns
// false with no side effects.
func (s *IdentityService) Login(ctx context.Context, username, password string) (ok bool, err error) {
	log := s.Log.With(logging.Group("identity", "username", username))

	defer func() {
		switch {
		case err != nil:
			log.ErrorContext(ctx, "login failed", "error", err)
		case !ok:
			log.DebugContext(ctx, "login rejected")
		default:
			log.DebugContext(ctx, "login successful")
		}
	}()

	identity, ok := authenticate(s.registry, username, password)
	if !ok {
		return false, nil
	}

	s.current = &identity

	if err := s.persistIdentity(ctx); err != nil {
		return false, fmt.Errorf("persist identity: %w", err)
	}

	return true, nil
}

// Register appends a new credential record with the default user role and
// performs an implicit login. It returns false without mutating anything if
// the username is already registered or collides with a built-in name.
func (s *IdentityService) Register(ctx context.Context, username, password, address string) (ok bool, err error) {
	log := s.Log.With(logging.Group("identity", "username", username))

	defer func() {
		switch {
		case err != nil:
			log.ErrorContext(ctx, "register failed", "error", err)
		case !ok:
			log.DebugContext(ctx, "register rejected")
		default:
			log.DebugContext(ctx, "user registered")
		}
	}()

	if reason := checkRegistration(s.registry, username); reason != nil {
		log.DebugContext(ctx, "registration not allowed", "reason", reason)

		return false, nil
	}

	s.registry = append(s.registry, domain.Credential{
		Username: username,
		Password: password,
		Address:  address,
		Role:     domain.RoleUser,
	})

	if err := s.persistRegistry(ctx); err != nil {
		return false, fmt.Errorf("persist registry: %w", err)
	}

	// Implicit login.
	s.current = &domain.Identity{
		Username: username,
		Role:     domain.RoleUser,
		Address:  address,
	}

	if err := s.persistIdentity(ctx); err != nil {
		return false, fmt.Errorf("persist identity: %w", err)
	}

	return true, nil
}

// Logout clears the current identity and removes its persisted snapshot.
// The credential registry is untouched.
func (s *IdentityService) Logout(ctx context.Context) (err error) {
	defer func() {
		if err != nil {
			s.Log.ErrorContext(ctx, "logout failed", "error", err)
		} else {
			s.Log.DebugContext(ctx, "logged out")
		}
	}()

	s.current = nil

	if err := s.Store.Delete(ctx, keyIdentity); err != nil {
		return fmt.Errorf("delete identity: %w", err)
	}

	return nil
}

// UpdateAddress replaces the active identity's address. It is a
// specialization of UpdateProfile restricted to the address field.
func (s *IdentityService) UpdateAddress(ctx context.Context, address string) error {
	return s.UpdateProfile(ctx, domain.ProfilePatch{Address: &address})
}

// UpdateProfile shallow-merges the patch into the active identity, persists
// it, and applies the same fields to the matching registry entry so the
// shared fields stay in sync. It is a no-op when nobody is logged in.
func (s *IdentityService) UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (err error) {
	if s.current == nil {
		return nil
	}

	log := s.Log.With(logging.Group("identity", "username", s.current.Username))

	defer func() {
		if err != nil {
			log.ErrorContext(ctx, "update profile failed", "error", err)
		} else {
			log.DebugContext(ctx, "profile updated")
		}
	}()

	// The registry entry is located by the pre-merge username so a username
	// change still finds its record.
	previous := s.current.Username

	merged := patch.Apply(*s.current)
	s.current = &merged

	if err := s.persistIdentity(ctx); err != nil {
		return fmt.Errorf("persist identity: %w", err)
	}

	for i, cred := range s.registry {
		if cred.Username == previous {
			s.registry[i] = patch.ApplyCredential(cred)

			if err := s.persistRegistry(ctx); err != nil {
				return fmt.Errorf("persist registry: %w", err)
			}

			break
		}
	}

	return nil
}

// Current returns a copy of the active identity, or nil when logged out.
func (s *IdentityService) Current() *domain.Identity {
	if s.current == nil {
		return nil
	}

	identity := *s.current

	return &identity
}

// Registered reports whether a credential record exists for username.
// Built-in names count as registered.
func (s *IdentityService) Registered(username string) bool {
	return checkRegistration(s.registry, username) != nil
}

func (s *IdentityService) persistIdentity(ctx context.Context) error {
	return kv.PutJSON(ctx, s.Store, keyIdentity, s.current)
}

func (s *IdentityService) persistRegistry(ctx context.Context) error {
	return kv.PutJSON(ctx, s.Store, keyRegistry, s.registry)
}
