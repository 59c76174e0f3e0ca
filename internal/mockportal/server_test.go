package mockportal

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mock := New(Config{JWTSecret: "test-secret", Logger: zerolog.Nop()})
	srv := httptest.NewServer(mock.Echo())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	srv := testServer(t)
	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	srv := testServer(t)
	body := `{"email":"dup@x.io","password":"hunter22","full_name":"Dup","role":"job_seeker"}`

	if resp := postJSON(t, srv.URL+"/api/auth/register", body); resp.StatusCode != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d", resp.StatusCode)
	}

	resp := postJSON(t, srv.URL+"/api/auth/register", body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400, got %d", resp.StatusCode)
	}
	var envelope map[string]any
	json.NewDecoder(resp.Body).Decode(&envelope)
	if envelope["detail"] != "Email already registered" {
		t.Fatalf("unexpected error envelope: %v", envelope)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	srv := testServer(t)
	postJSON(t, srv.URL+"/api/auth/register",
		`{"email":"a@x.io","password":"hunter22","full_name":"A","role":"job_seeker"}`)

	resp := postJSON(t, srv.URL+"/api/auth/login", `{"email":"a@x.io","password":"wrong!"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	var envelope map[string]any
	json.NewDecoder(resp.Body).Decode(&envelope)
	if envelope["detail"] != "Incorrect email or password" {
		t.Fatalf("unexpected error envelope: %v", envelope)
	}
}

func TestValidation_EmitsDetailArray(t *testing.T) {
	srv := testServer(t)
	resp := postJSON(t, srv.URL+"/api/auth/register", `{"email":"bad","password":"x","full_name":"","role":"wizard"}`)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}

	var envelope struct {
		Detail []struct {
			Loc  []string `json:"loc"`
			Msg  string   `json:"msg"`
			Type string   `json:"type"`
		} `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if len(envelope.Detail) == 0 {
		t.Fatal("expected at least one validation entry")
	}
	if envelope.Detail[0].Msg == "" || len(envelope.Detail[0].Loc) == 0 {
		t.Fatalf("malformed validation entry: %+v", envelope.Detail[0])
	}
}

func TestProtectedRoute_MissingToken(t *testing.T) {
	srv := testServer(t)
	resp, err := http.Get(srv.URL + "/api/auth/me")
	if err != nil {
		t.Fatalf("GET /api/auth/me: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}
