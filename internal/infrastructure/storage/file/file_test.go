package file

import (
	"context"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jobhive/portal-client/internal/core/domain"
)

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := New(Config{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if _, err := store.Get(ctx, domain.TokenKey); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}

	if err := store.Set(ctx, domain.TokenKey, "abc"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	got, err := store.Get(ctx, domain.TokenKey)
	if err != nil || got != "abc" {
		t.Fatalf("Get = %q, %v", got, err)
	}

	if err := store.Delete(ctx, domain.TokenKey); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := store.Get(ctx, domain.TokenKey); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatal("key should be gone after Delete")
	}
	// Deleting an absent key is a no-op.
	if err := store.Delete(ctx, domain.TokenKey); err != nil {
		t.Fatalf("Delete of absent key returned error: %v", err)
	}
}

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, _ := New(Config{Dir: dir})
	first.Set(ctx, domain.TokenKey, "abc")
	first.Set(ctx, domain.UserKey, `{"id":1,"role":"employer"}`)

	second, _ := New(Config{Dir: dir})
	tok, err := second.Get(ctx, domain.TokenKey)
	if err != nil || tok != "abc" {
		t.Fatalf("token did not survive reopen: %q %v", tok, err)
	}
}

func TestStore_EncryptsAtRest(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	key := hex.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))

	store, err := New(Config{Dir: dir, Key: key})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	store.Set(ctx, domain.TokenKey, "super-secret-token")

	raw, err := os.ReadFile(filepath.Join(dir, sessionFileName))
	if err != nil {
		t.Fatalf("session file missing: %v", err)
	}
	if strings.Contains(string(raw), "super-secret-token") {
		t.Fatal("token stored in plaintext despite encryption key")
	}

	reopened, _ := New(Config{Dir: dir, Key: key})
	tok, err := reopened.Get(ctx, domain.TokenKey)
	if err != nil || tok != "super-secret-token" {
		t.Fatalf("decrypt after reopen failed: %q %v", tok, err)
	}
}

func TestStore_RejectsBadKey(t *testing.T) {
	if _, err := New(Config{Dir: t.TempDir(), Key: "not-hex"}); err == nil {
		t.Fatal("expected error for malformed key")
	}
	if _, err := New(Config{Dir: t.TempDir(), Key: "abcd"}); err == nil {
		t.Fatal("expected error for short key")
	}
}

func TestStore_TamperedFileFailsClosed(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	key := hex.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))

	store, _ := New(Config{Dir: dir, Key: key})
	store.Set(ctx, domain.TokenKey, "abc")

	path := filepath.Join(dir, sessionFileName)
	raw, _ := os.ReadFile(path)
	raw[len(raw)-1] ^= 0xff
	os.WriteFile(path, raw, 0o600)

	if _, err := store.Get(ctx, domain.TokenKey); err == nil {
		t.Fatal("expected error reading tampered session file")
	}
}
