package identitysvc

import (
	"fmt"

	"github.com/kopkit/storefront/internal/domain"
)

// builtin is a fixed credential shipped with the store. Built-in names are
// reserved: registration under them always fails.
type builtin struct {
	password string
	identity domain.Identity
}

//nolint:gochecknoglobals
var builtins = map[string]builtin{
	"admin": {
		password: "kopkit123",
		identity: domain.Identity{Username: "admin", Role: domain.RoleAdmin, Address: "Kantor Pusat"},
	},
	"demo": {
		password: "demo123",
		identity: domain.Identity{Username: "demo", Role: domain.RoleUser, Address: "Jl. Contoh No. 123"},
	},
}

// authenticate checks the built-in credentials first, then scans the
// registry for an exact username/password match. Matching is plain equality:
// no case folding, no hashing. Returns the resulting identity and whether a
// match was found. Pure: no storage access, no side effects.
func authenticate(registry []domain.Credential, username, password string) (domain.Identity, bool) {
	if b, ok := builtins[username]; ok && b.password == password {
		return b.identity, true
	}

	for _, cred := range registry {
		if cred.Username == username && cred.Password == password {
			return domain.Identity{
				Username: cred.Username,
				Role:     cred.Role,
				Address:  cred.Address,
			}, true
		}
	}

	return domain.Identity{}, false
}

// checkRegistration reports why a username may not be registered, or nil if
// registration is allowed. Pure.
func checkRegistration(registry []domain.Credential, username string) error {
	if _, ok := builtins[username]; ok {
		return fmt.Errorf("%w: %s", domain.ErrReservedUsername, username)
	}

	for _, cred := range registry {
		if cred.Username == username {
			return fmt.Errorf("%w: %s", domain.ErrUserExists, username)
		}
	}

	return nil
}
