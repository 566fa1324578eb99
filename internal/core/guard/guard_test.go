package guard

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consoleiam/admin-console/internal/core/codec"
	"github.com/consoleiam/admin-console/internal/core/domain"
	"github.com/consoleiam/admin-console/internal/core/session"
	"github.com/consoleiam/admin-console/internal/infrastructure/storage"
	"github.com/consoleiam/admin-console/internal/testutil"
)

type memSlot struct{ value string }

func (m *memSlot) Load(context.Context) (string, error) {
	if m.value == "" {
		return "", domain.ErrNoCredential
	}
	return m.value, nil
}
func (m *memSlot) Save(_ context.Context, v string) error { m.value = v; return nil }
func (m *memSlot) Erase(context.Context) error            { m.value = ""; return nil }

func newStore() *session.Store {
	return session.NewStore(codec.New(codec.WithClock(testutil.Clock)), &memSlot{})
}

func sessionWith(perms, roles []string) *domain.Session {
	claims := &domain.Claims{UserID: "1", Roles: roles, Permissions: perms}
	return domain.NewSession("h.p.s", domain.NewProfile(claims), nil)
}

func TestRequirement_Satisfied(t *testing.T) {
	s := sessionWith([]string{"USER_MGMT:read", "USER_MGMT:update"}, []string{"tenant_admin"})

	tests := []struct {
		name string
		req  Requirement
		want bool
	}{
		{"empty", Requirement{}, true},
		{"single held", Requirement{Permission: "USER_MGMT:read"}, true},
		{"single missing", Requirement{Permission: "USER_MGMT:delete"}, false},
		{"all held", Requirement{Permissions: []domain.PermissionName{"USER_MGMT:read", "USER_MGMT:update"}}, true},
		{"all partial", Requirement{Permissions: []domain.PermissionName{"USER_MGMT:read", "USER_MGMT:delete"}}, false},
		{"any partial", Requirement{Permissions: []domain.PermissionName{"USER_MGMT:read", "USER_MGMT:delete"}, Mode: RequireAny}, true},
		{"any none", Requirement{Permissions: []domain.PermissionName{"ROLE_MGMT:read", "USER_MGMT:delete"}, Mode: RequireAny}, false},
		{"role held", Requirement{Role: domain.RoleTenantAdmin}, true},
		{"role missing", Requirement{Role: domain.RoleAdmin}, false},
		{"any role", Requirement{Roles: []domain.RoleName{domain.RoleAdmin, domain.RoleTenantAdmin}}, true},
		{"permission and role", Requirement{Permission: "USER_MGMT:read", Role: domain.RoleAdmin}, false},
		{"typo", Requirement{Permission: "USER_MGT:read"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Satisfied(s))
		})
	}
}

func TestRequirement_EmptyAllowsUnauthenticated(t *testing.T) {
	assert.True(t, Requirement{}.Empty())
	assert.True(t, Requirement{}.Satisfied(nil))
	assert.False(t, Requirement{Permission: "USER_MGMT:read"}.Satisfied(nil))
}

func TestGuard_FollowsStore(t *testing.T) {
	store := newStore()
	g := New(store, Requirement{Permission: "PRODUCT_MGMT:create"})
	defer g.Close()

	var flips []bool
	g.OnChange(func(allowed bool) { flips = append(flips, allowed) })

	assert.False(t, g.Allowed())

	tok := testutil.Token(t, testutil.Claims([]string{"PRODUCT_MGMT:create"}, nil))
	require.NoError(t, store.SetToken(context.Background(), tok))
	assert.True(t, g.Allowed())

	store.SetTenant(&domain.Tenant{ID: "t1"})
	assert.True(t, g.Allowed())

	store.Logout(context.Background())
	assert.False(t, g.Allowed())

	assert.Equal(t, []bool{true, false}, flips, "listeners fire only when the verdict flips")
}

func TestGuard_RacingWritersLeaveCurrentVerdict(t *testing.T) {
	store := session.NewStore(codec.New(codec.WithClock(testutil.Clock)), storage.NewMemorySlot())
	req := Requirement{Permission: "USER_MGMT:read"}
	g := New(store, req)
	defer g.Close()

	// A slow subscriber on logout lets the login notification overtake it.
	cancel := store.Subscribe(func(s *domain.Session) {
		if !s.Authenticated() {
			time.Sleep(50 * time.Microsecond)
		}
	})
	defer cancel()

	tok := testutil.Token(t, testutil.Claims([]string{"USER_MGMT:read"}, nil))
	for i := 0; i < 300; i++ {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.SetToken(context.Background(), tok)
		}()
		go func() {
			defer wg.Done()
			store.Logout(context.Background())
		}()
		wg.Wait()

		require.Equal(t, req.Satisfied(store.Snapshot()), g.Allowed(), "iteration %d", i)
	}
}

func TestGuard_NewSeesWritesDuringConstruction(t *testing.T) {
	store := newStore()
	tok := testutil.Token(t, testutil.Claims([]string{"USER_MGMT:read"}, nil))
	require.NoError(t, store.SetToken(context.Background(), tok))

	g := New(store, Requirement{Permission: "USER_MGMT:read"})
	defer g.Close()
	assert.True(t, g.Allowed())

	store.Logout(context.Background())
	assert.False(t, g.Allowed())
}

func TestGuard_CloseStopsFollowing(t *testing.T) {
	store := newStore()
	g := New(store, Requirement{Permission: "PRODUCT_MGMT:create"})
	g.Close()
	g.Close()

	tok := testutil.Token(t, testutil.Claims([]string{"PRODUCT_MGMT:create"}, nil))
	require.NoError(t, store.SetToken(context.Background(), tok))
	assert.False(t, g.Allowed())
}

func TestGuard_WarnsOnUnknownPermission(t *testing.T) {
	var buf bytes.Buffer
	g := New(newStore(), Requirement{Permission: "PRODUCT_MGT:read"}, WithLogger(zerolog.New(&buf)))
	defer g.Close()

	assert.Contains(t, buf.String(), "PRODUCT_MGT:read")

	buf.Reset()
	g2 := New(newStore(), Requirement{Permission: "PRODUCT_MGMT:read"}, WithLogger(zerolog.New(&buf)))
	defer g2.Close()
	assert.Empty(t, buf.String())
}

func TestRender(t *testing.T) {
	store := newStore()
	g := New(store, Requirement{Permission: "USER_MGMT:read"})
	defer g.Close()

	assert.Equal(t, "", Render(g, "content"))
	assert.Equal(t, "fallback", Render(g, "content", "fallback"))

	require.NoError(t, store.SetToken(context.Background(), testutil.Token(t, testutil.Claims([]string{"USER_MGMT:read"}, nil))))
	assert.Equal(t, "content", Render(g, "content", "fallback"))

	open := New(store, Requirement{})
	defer open.Close()
	store.Logout(context.Background())
	assert.Equal(t, "content", Render(open, "content"))

	var nilGuard *Guard
	assert.Equal(t, "fallback", Render(nilGuard, "content", "fallback"))
}
