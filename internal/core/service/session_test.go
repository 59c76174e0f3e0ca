package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jobhive/portal-client/internal/core/domain"
	"github.com/jobhive/portal-client/internal/infrastructure/storage/memory"
)

// stubIdentityAPI scripts the gateway calls the session service makes.
type stubIdentityAPI struct {
	me    *domain.User
	meErr error
}

func (s *stubIdentityAPI) Me(context.Context) (*domain.User, error) {
	return s.me, s.meErr
}

func (s *stubIdentityAPI) Login(context.Context, string, string) (*domain.AuthResult, error) {
	return nil, errors.New("not scripted")
}

func (s *stubIdentityAPI) Register(context.Context, domain.RegisterRequest) (*domain.AuthResult, error) {
	return nil, errors.New("not scripted")
}

func TestInitialize_NoStoredToken(t *testing.T) {
	store := memory.New()
	svc := NewSessionService(store, &stubIdentityAPI{}, zerolog.Nop())

	snap := svc.Initialize(context.Background())
	if snap.Authenticated() {
		t.Fatal("expected anonymous session")
	}
	if snap.Loading {
		t.Fatal("loading must be false after Initialize")
	}
}

func TestInitialize_LiveIdentityOverwritesMirror(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	store.Set(ctx, domain.TokenKey, "abc")
	store.Set(ctx, domain.UserKey, `{"id":1,"role":"job_seeker","full_name":"Old Name"}`)

	live := &domain.User{ID: 1, Role: domain.RoleEmployer, FullName: "New Name"}
	svc := NewSessionService(store, &stubIdentityAPI{me: live}, zerolog.Nop())

	snap := svc.Initialize(ctx)
	if !snap.Authenticated() {
		t.Fatal("expected authenticated session")
	}
	if snap.User.Role != domain.RoleEmployer {
		t.Fatalf("expected live role, got %q", snap.User.Role)
	}
	if snap.Token != "abc" {
		t.Fatalf("expected token preserved, got %q", snap.Token)
	}

	mirror, err := store.Get(ctx, domain.UserKey)
	if err != nil {
		t.Fatalf("mirror missing: %v", err)
	}
	var mirrored domain.User
	if err := json.Unmarshal([]byte(mirror), &mirrored); err != nil {
		t.Fatalf("mirror not JSON: %v", err)
	}
	if mirrored.FullName != "New Name" {
		t.Fatalf("mirror not overwritten, got %q", mirrored.FullName)
	}
}

func TestInitialize_FallsBackToMirrorWhenBackendDown(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	store.Set(ctx, domain.TokenKey, "abc")
	store.Set(ctx, domain.UserKey, `{"id":1,"role":"employer"}`)

	api := &stubIdentityAPI{meErr: &domain.TransportError{Err: errors.New("connection refused")}}
	svc := NewSessionService(store, api, zerolog.Nop())

	snap := svc.Initialize(ctx)
	if !snap.Authenticated() {
		t.Fatal("expected stale session from mirror")
	}
	if snap.User.ID != 1 || snap.User.Role != domain.RoleEmployer {
		t.Fatalf("unexpected mirrored user: %+v", snap.User)
	}
	if snap.Loading {
		t.Fatal("loading must be false")
	}
}

func TestInitialize_ClearsCredentialWhenMirrorAbsent(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	store.Set(ctx, domain.TokenKey, "abc")

	api := &stubIdentityAPI{meErr: &domain.TransportError{Err: errors.New("connection refused")}}
	svc := NewSessionService(store, api, zerolog.Nop())

	snap := svc.Initialize(ctx)
	if snap.Authenticated() || snap.User != nil || snap.Token != "" {
		t.Fatalf("expected anonymous session, got %+v", snap)
	}
	if _, err := store.Get(ctx, domain.TokenKey); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatal("token should be cleared")
	}
}

func TestInitialize_RejectsMalformedMirror(t *testing.T) {
	cases := []struct {
		name   string
		mirror string
	}{
		{"not JSON", `{{{`},
		{"empty object", `{}`},
		{"unknown role", `{"id":1,"role":"superuser"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			store := memory.New()
			store.Set(ctx, domain.TokenKey, "abc")
			store.Set(ctx, domain.UserKey, tc.mirror)

			api := &stubIdentityAPI{meErr: &domain.TransportError{Err: errors.New("down")}}
			svc := NewSessionService(store, api, zerolog.Nop())

			if snap := svc.Initialize(ctx); snap.Authenticated() {
				t.Fatalf("mirror %q must not authenticate", tc.mirror)
			}
			if _, err := store.Get(ctx, domain.UserKey); !errors.Is(err, domain.ErrKeyNotFound) {
				t.Fatal("bad mirror should be cleared")
			}
		})
	}
}

func TestLoginThenLogoutAtomicity(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := NewSessionService(store, &stubIdentityAPI{}, zerolog.Nop())

	user := &domain.User{ID: 3, Role: domain.RoleJobSeeker, Email: "a@b.c"}
	if err := svc.Login(ctx, user, "tok-3"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	snap := svc.Current()
	if snap.Token != "tok-3" || snap.User == nil || snap.User.ID != 3 {
		t.Fatalf("in-memory state wrong after login: %+v", snap)
	}
	if tok, err := store.Get(ctx, domain.TokenKey); err != nil || tok != "tok-3" {
		t.Fatalf("durable token wrong: %q %v", tok, err)
	}
	if _, err := store.Get(ctx, domain.UserKey); err != nil {
		t.Fatalf("durable mirror missing: %v", err)
	}

	svc.Logout(ctx)

	snap = svc.Current()
	if snap.Authenticated() || snap.User != nil || snap.Token != "" {
		t.Fatalf("in-memory state wrong after logout: %+v", snap)
	}
	if _, err := store.Get(ctx, domain.TokenKey); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatal("durable token should be gone")
	}
	if _, err := store.Get(ctx, domain.UserKey); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatal("durable mirror should be gone")
	}
}

func TestUpdateProfilePicture(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := NewSessionService(store, &stubIdentityAPI{}, zerolog.Nop())

	if err := svc.UpdateProfilePicture(ctx, "https://cdn/x.png"); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}

	svc.Login(ctx, &domain.User{ID: 4, Role: domain.RoleJobSeeker}, "tok")
	if err := svc.UpdateProfilePicture(ctx, "https://cdn/x.png"); err != nil {
		t.Fatalf("UpdateProfilePicture returned error: %v", err)
	}

	if got := svc.Current().User.ProfilePicture; got != "https://cdn/x.png" {
		t.Fatalf("in-memory picture not updated: %q", got)
	}

	mirror, _ := store.Get(ctx, domain.UserKey)
	var mirrored domain.User
	json.Unmarshal([]byte(mirror), &mirrored)
	if mirrored.ProfilePicture != "https://cdn/x.png" {
		t.Fatalf("mirror not re-persisted: %+v", mirrored)
	}
	// Token untouched by a profile merge.
	if tok, _ := store.Get(ctx, domain.TokenKey); tok != "tok" {
		t.Fatalf("token should be untouched, got %q", tok)
	}
}

func TestSubscribeReceivesStateChanges(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := NewSessionService(store, &stubIdentityAPI{}, zerolog.Nop())

	var seen []domain.Session
	unsubscribe := svc.Subscribe(func(s domain.Session) { seen = append(seen, s) })

	svc.Login(ctx, &domain.User{ID: 5, Role: domain.RoleJobSeeker}, "tok")
	svc.Logout(ctx)
	unsubscribe()
	svc.Login(ctx, &domain.User{ID: 5, Role: domain.RoleJobSeeker}, "tok")

	if len(seen) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(seen))
	}
	if !seen[0].Authenticated() || seen[1].Authenticated() {
		t.Fatalf("unexpected notification order: %+v", seen)
	}
}
