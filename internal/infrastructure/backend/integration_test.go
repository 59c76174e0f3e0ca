package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jobhive/portal-client/internal/core/domain"
	"github.com/jobhive/portal-client/internal/core/service"
	"github.com/jobhive/portal-client/internal/infrastructure/storage/memory"
	"github.com/jobhive/portal-client/internal/mockportal"
)

// startMock mounts the development backend on an httptest server and wires
// a gateway plus session storage against it.
func startMock(t *testing.T) (*Client, *memory.Store) {
	t.Helper()
	mock := mockportal.New(mockportal.Config{JWTSecret: "it-secret", Logger: zerolog.Nop()})
	srv := httptest.NewServer(mock.Echo())
	t.Cleanup(srv.Close)

	store := memory.New()
	client := New(Config{BaseURL: srv.URL, Storage: store, Logger: zerolog.Nop()})
	return client, store
}

func TestEndToEnd_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	client, store := startMock(t)

	// Register an employer and install the session the way the CLI does.
	res, err := client.Register(ctx, domain.RegisterRequest{
		Email:       "boss@jobhive.app",
		Password:    "hunter22",
		FullName:    "Boss Person",
		Role:        domain.RoleEmployer,
		CompanyName: "JobHive",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if res.Token == "" || res.User == nil || res.User.Role != domain.RoleEmployer {
		t.Fatalf("unexpected auth result: %+v", res)
	}

	session := service.NewSessionService(store, client, zerolog.Nop())
	if err := session.Login(ctx, res.User, res.Token); err != nil {
		t.Fatalf("session login: %v", err)
	}

	// A fresh process rehydrates against the live identity endpoint.
	rehydrated := service.NewSessionService(store, client, zerolog.Nop())
	snap := rehydrated.Initialize(ctx)
	if !snap.Authenticated() || snap.User.Role != domain.RoleEmployer {
		t.Fatalf("rehydration failed: %+v", snap)
	}
	if snap.Loading {
		t.Fatal("loading must be false after Initialize")
	}

	// The bearer from storage authorizes protected endpoints.
	job, err := client.CreateJob(ctx, domain.Job{
		Title:       "Go Engineer",
		Description: "Build the session layer",
		CompanyName: "JobHive",
		Location:    "Remote",
		JobType:     "full_time",
	})
	if err != nil {
		t.Fatalf("CreateJob returned error: %v", err)
	}

	found, err := client.SearchJobs(ctx, domain.JobSearch{Query: "session"})
	if err != nil {
		t.Fatalf("SearchJobs returned error: %v", err)
	}
	if len(found) != 1 || found[0].ID != job.ID {
		t.Fatalf("search did not find the posting: %+v", found)
	}

	owned, err := client.ResolveEmployerJobs(ctx, res.User.ID)
	if err != nil {
		t.Fatalf("ResolveEmployerJobs returned error: %v", err)
	}
	if len(owned) != 1 {
		t.Fatalf("expected 1 owned job, got %d", len(owned))
	}
}

func TestEndToEnd_RejectedTokenTearsDownAndStaysAnonymous(t *testing.T) {
	ctx := context.Background()
	client, store := startMock(t)

	store.Set(ctx, domain.TokenKey, "garbage")
	store.Set(ctx, domain.UserKey, `{"id":1,"role":"employer"}`)

	_, err := client.Me(ctx)
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 APIError, got %v", err)
	}
	if apiErr.Message != domain.SessionExpiredMessage {
		t.Fatalf("expected fixed session-expired text, got %q", apiErr.Message)
	}

	if _, err := store.Get(ctx, domain.TokenKey); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatal("token should be cleared")
	}
	if _, err := store.Get(ctx, domain.UserKey); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatal("identity mirror should be cleared")
	}

	// With storage emptied by the teardown, rehydration ends anonymous.
	session := service.NewSessionService(store, client, zerolog.Nop())
	if snap := session.Initialize(ctx); snap.Authenticated() {
		t.Fatalf("expected anonymous session, got %+v", snap)
	}
}

func TestEndToEnd_ValidationErrorShape(t *testing.T) {
	ctx := context.Background()
	client, _ := startMock(t)

	_, err := client.Register(ctx, domain.RegisterRequest{
		Email:    "not-an-email",
		Password: "pw",
		FullName: "X",
		Role:     domain.RoleJobSeeker,
	})
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 APIError, got %v", err)
	}
	if !strings.Contains(apiErr.Message, "email must be a valid email") {
		t.Fatalf("scalar detail missing from message: %q", apiErr.Message)
	}
	if !strings.Contains(apiErr.Message, `"loc"`) {
		t.Fatalf("raw validation body missing from 422 message: %q", apiErr.Message)
	}
}

func TestEndToEnd_MultipartUploadAndAI(t *testing.T) {
	ctx := context.Background()
	client, store := startMock(t)

	res, err := client.Register(ctx, domain.RegisterRequest{
		Email:    "seeker@jobhive.app",
		Password: "hunter22",
		FullName: "Seeker",
		Role:     domain.RoleJobSeeker,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	session := service.NewSessionService(store, client, zerolog.Nop())
	if err := session.Login(ctx, res.User, res.Token); err != nil {
		t.Fatalf("session login: %v", err)
	}

	resume, err := client.UploadResume(ctx, res.User.ID, "cv.pdf", strings.NewReader("ten years of Go"))
	if err != nil {
		t.Fatalf("UploadResume returned error: %v", err)
	}
	if resume.FileName != "cv.pdf" {
		t.Fatalf("unexpected resume record: %+v", resume)
	}

	analysis, err := client.AnalyzeResume(ctx, resume.ID)
	if err != nil {
		t.Fatalf("AnalyzeResume returned error: %v", err)
	}
	if !strings.Contains(string(analysis), "score") {
		t.Fatalf("unexpected analysis envelope: %s", analysis)
	}

	letter, err := client.AIGenerateCoverLetterFile(ctx, "cv.pdf", strings.NewReader("ten years of Go"), "Go Engineer")
	if err != nil {
		t.Fatalf("AIGenerateCoverLetterFile returned error: %v", err)
	}
	if !strings.Contains(string(letter), "cover_letter") {
		t.Fatalf("unexpected cover letter envelope: %s", letter)
	}
}

func TestEndToEnd_RoleGatingOnAdminRoutes(t *testing.T) {
	ctx := context.Background()
	client, store := startMock(t)

	res, err := client.Register(ctx, domain.RegisterRequest{
		Email:    "seeker2@jobhive.app",
		Password: "hunter22",
		FullName: "Seeker Two",
		Role:     domain.RoleJobSeeker,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	store.Set(ctx, domain.TokenKey, res.Token)

	_, err = client.AdminUsers(ctx)
	if !domain.IsStatus(err, http.StatusForbidden) {
		t.Fatalf("expected 403 for job seeker on admin route, got %v", err)
	}
	// A 403 invalidates the local session too.
	if _, err := store.Get(ctx, domain.TokenKey); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatal("token should be cleared after 403")
	}
}
