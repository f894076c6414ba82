package domain

import "errors"

var (
	// ErrUserExists is returned when registering a username that is already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrReservedUsername is returned when registering one of the built-in usernames.
	ErrReservedUsername = errors.New("username is reserved")
)

// Role classifies an identity's privileges within the store.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Identity is the active session identity. It never carries the password;
// credentials live in the registry as Credential records.
type Identity struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Address  string `json:"address"`
}

// Credential is a durable registry entry for a registered user.
// The password is stored in plain text: the storefront's login is a closed
// demo comparison, not an authentication mechanism.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Address  string `json:"address"`
	Role     Role   `json:"role"`
}

// ProfilePatch is a shallow merge applied to the active identity and its
// registry entry. Nil fields are left unchanged.
type ProfilePatch struct {
	Username *string
	Address  *string
}

// Apply merges the patch into an identity.
func (p ProfilePatch) Apply(id Identity) Identity {
	if p.Username != nil {
		id.Username = *p.Username
	}

	if p.Address != nil {
		id.Address = *p.Address
	}

	return id
}

// ApplyCredential merges the patch's shared fields into a registry entry.
func (p ProfilePatch) ApplyCredential(cred Credential) Credential {
	if p.Username != nil {
		cred.Username = *p.Username
	}

	if p.Address != nil {
		cred.Address = *p.Address
	}

	return cred
}
