package identitysvc_test

import (
	"context"
	"testing"

	"github.com/kopkit/storefront/internal/domain"
	"github.com/kopkit/storefront/internal/repo/kv"
	"github.com/kopkit/storefront/internal/svc/identitysvc"
)

func setupTestService(t *testing.T) (*identitysvc.IdentityService, *kv.MemoryRepository) {
	t.Helper()

	store := kv.NewMemoryRepository()

	svc, err := identitysvc.NewIdentityService(context.Background(), store)
	if err != nil {
		t.Fatalf("new identity service: %v", err)
	}

	return svc, store
}

func TestIdentityService_Login(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
		wantOK   bool
		want     *domain.Identity
	}{
		{
			name:     "built-in admin",
			username: "admin",
			password: "kopkit123",
			wantOK:   true,
			want:     &domain.Identity{Username: "admin", Role: domain.RoleAdmin, Address: "Kantor Pusat"},
		},
		{
			name:     "built-in demo",
			username: "demo",
			password: "demo123",
			wantOK:   true,
			want:     &domain.Identity{Username: "demo", Role: domain.RoleUser, Address: "Jl. Contoh No. 123"},
		},
		{
			name:     "wrong password for built-in",
			username: "admin",
			password: "wrong",
			wantOK:   false,
		},
		{
			name:     "unregistered pair",
			username: "ghost",
			password: "whatever",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, store := setupTestService(t)

			ok, err := svc.Login(ctx, tt.username, tt.password)
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}

			if ok != tt.wantOK {
				t.Fatalf("Login() = %v, want %v", ok, tt.wantOK)
			}

			got := svc.Current()

			if tt.want == nil {
				if got != nil {
					t.Errorf("Current() = %+v, want nil", got)
				}

				// No match must leave storage untouched.
				if _, present, _ := store.Get(ctx, "user"); present {
					t.Error("rejected login persisted an identity snapshot")
				}

				return
			}

			if got == nil || *got != *tt.want {
				t.Errorf("Current() = %+v, want %+v", got, tt.want)
			}

			if _, present, _ := store.Get(ctx, "user"); !present {
				t.Error("successful login did not persist the identity snapshot")
			}
		})
	}
}

func TestIdentityService_Register(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := setupTestService(t)

	ok, err := svc.Register(ctx, "budi", "rahasia", "Jl. Mawar No. 7")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if !ok {
		t.Fatal("Register() = false, want true")
	}

	// Register performs an implicit login.
	if got := svc.Current(); got == nil || got.Username != "budi" || got.Role != domain.RoleUser {
		t.Errorf("Current() after register = %+v", got)
	}

	// The same credentials must log in immediately.
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	if ok, _ := svc.Login(ctx, "budi", "rahasia"); !ok {
		t.Error("Login() after register = false, want true")
	}

	for _, reserved := range []string{"admin", "demo", "budi"} {
		if ok, _ := svc.Register(ctx, reserved, "x", "y"); ok {
			t.Errorf("Register(%q) = true, want false", reserved)
		}

		if !svc.Registered(reserved) {
			t.Errorf("Registered(%q) = false, want true", reserved)
		}
	}

	if svc.Registered("ghost") {
		t.Error(`Registered("ghost") = true, want false`)
	}
}

func TestIdentityService_FailedLoginLeavesIdentity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := setupTestService(t)

	if ok, _ := svc.Login(ctx, "admin", "kopkit123"); !ok {
		t.Fatal("Login() = false, want true")
	}

	if ok, _ := svc.Login(ctx, "ghost", "boo"); ok {
		t.Fatal("Login() with bad pair = true, want false")
	}

	if got := svc.Current(); got == nil || got.Username != "admin" {
		t.Errorf("Current() after failed login = %+v, want admin identity", got)
	}
}

func TestIdentityService_Logout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store := setupTestService(t)

	if ok, _ := svc.Login(ctx, "demo", "demo123"); !ok {
		t.Fatal("Login() = false, want true")
	}

	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	if svc.Current() != nil {
		t.Error("Current() after logout is not nil")
	}

	if _, present, _ := store.Get(ctx, "user"); present {
		t.Error("logout did not remove the identity snapshot")
	}
}

func TestIdentityService_UpdateProfile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store := setupTestService(t)

	// No-op while logged out.
	if err := svc.UpdateAddress(ctx, "nowhere"); err != nil {
		t.Fatalf("UpdateAddress() while logged out error = %v", err)
	}

	if _, present, _ := store.Get(ctx, "user"); present {
		t.Error("logged-out update persisted an identity snapshot")
	}

	if ok, _ := svc.Register(ctx, "siti", "rahasia", "Jl. Melati No. 2"); !ok {
		t.Fatal("Register() = false, want true")
	}

	if err := svc.UpdateAddress(ctx, "Jl. Kenanga No. 9"); err != nil {
		t.Fatalf("UpdateAddress() error = %v", err)
	}

	if got := svc.Current(); got.Address != "Jl. Kenanga No. 9" {
		t.Errorf("Current().Address = %q, want %q", got.Address, "Jl. Kenanga No. 9")
	}

	// The registry entry must carry the new address too: a fresh session
	// logging in from the registry sees it.
	restored, err := identitysvc.NewIdentityService(ctx, store)
	if err != nil {
		t.Fatalf("new identity service: %v", err)
	}

	if err := restored.Logout(ctx); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	if ok, _ := restored.Login(ctx, "siti", "rahasia"); !ok {
		t.Fatal("Login() after restore = false, want true")
	}

	if got := restored.Current(); got.Address != "Jl. Kenanga No. 9" {
		t.Errorf("restored Current().Address = %q, want %q", got.Address, "Jl. Kenanga No. 9")
	}
}

func TestIdentityService_UpdateProfile_Username(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := setupTestService(t)

	if ok, _ := svc.Register(ctx, "andi", "rahasia", "Jl. Anggrek No. 4"); !ok {
		t.Fatal("Register() = false, want true")
	}

	newName := "andi-baru"
	if err := svc.UpdateProfile(ctx, domain.ProfilePatch{Username: &newName}); err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}

	if got := svc.Current(); got.Username != "andi-baru" {
		t.Errorf("Current().Username = %q, want %q", got.Username, "andi-baru")
	}

	// The registry entry was renamed in place.
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	if ok, _ := svc.Login(ctx, "andi", "rahasia"); ok {
		t.Error("Login() with old username = true, want false")
	}

	if ok, _ := svc.Login(ctx, "andi-baru", "rahasia"); !ok {
		t.Error("Login() with new username = false, want true")
	}
}

func TestIdentityService_RestoresSnapshot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store := setupTestService(t)

	if ok, _ := svc.Login(ctx, "admin", "kopkit123"); !ok {
		t.Fatal("Login() = false, want true")
	}

	restored, err := identitysvc.NewIdentityService(ctx, store)
	if err != nil {
		t.Fatalf("new identity service: %v", err)
	}

	got := restored.Current()
	if got == nil || got.Username != "admin" || got.Role != domain.RoleAdmin {
		t.Errorf("Current() after restore = %+v", got)
	}
}

func TestIdentityService_ToleratesMalformedSnapshots(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := kv.NewMemoryRepository()

	if err := store.Put(ctx, "user", []byte("{corrupt")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	if err := store.Put(ctx, "registeredUsers", []byte("not even close")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	svc, err := identitysvc.NewIdentityService(ctx, store)
	if err != nil {
		t.Fatalf("new identity service with corrupt snapshots: %v", err)
	}

	if svc.Current() != nil {
		t.Error("Current() = non-nil for corrupt snapshot, want nil")
	}

	// The service must stay fully operational.
	if ok, _ := svc.Register(ctx, "budi", "rahasia", "Jl. Mawar No. 7"); !ok {
		t.Error("Register() after corrupt registry = false, want true")
	}
}
