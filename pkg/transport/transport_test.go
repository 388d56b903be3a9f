package transport

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/mingle-social/cli/pkg/apierrors"
	"github.com/mingle-social/cli/pkg/session"
)

func newTestTransport(t *testing.T, handler http.Handler) (*Transport, *session.Store, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := session.NewStore(filepath.Join(t.TempDir(), "credentials"))
	tr := New(Config{
		UserBaseURL: srv.URL,
		PostBaseURL: srv.URL,
		Timeout:     5 * time.Second,
	}, store)

	return tr, store, srv
}

func TestBearerDecorationWithSession(t *testing.T) {
	var gotAuth string
	tr, store, _ := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))

	if err := store.Save(&session.Session{Token: "T"}); err != nil {
		t.Fatalf("save session: %v", err)
	}

	resp, err := tr.UserR().Get("/me")
	if err := tr.CheckResponse(resp, err); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer T" {
		t.Errorf("Authorization header = %q, want %q", gotAuth, "Bearer T")
	}
}

func TestNoSessionStillSendsRequest(t *testing.T) {
	var gotAuth string
	hits := 0
	tr, _, _ := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))

	resp, err := tr.PostR().Get("/feed")
	if err := tr.CheckResponse(resp, err); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The server is authoritative; the client does not gate the call
	if hits != 1 {
		t.Errorf("expected 1 request, got %d", hits)
	}
	if gotAuth != "" {
		t.Errorf("no session should mean no Authorization header, got %q", gotAuth)
	}
}

func TestUnauthorizedClearsSessionAndSignalsOnce(t *testing.T) {
	tr, store, _ := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	if err := store.Save(&session.Session{Token: "T"}); err != nil {
		t.Fatalf("save session: %v", err)
	}

	signals := 0
	tr.OnAuthExpired(func() { signals++ })

	resp, err := tr.UserR().Get("/me")
	checkErr := tr.CheckResponse(resp, err)

	if !apierrors.IsAuth(checkErr) {
		t.Fatalf("expected auth error, got %v", checkErr)
	}
	if signals != 1 {
		t.Errorf("expiry hook fired %d times, want 1", signals)
	}
	if store.Current() != nil {
		t.Error("session should be cleared after a 401")
	}

	// The stored token must be gone from disk too
	fresh := session.NewStore(store.Path())
	if sess, _ := fresh.Load(); sess != nil {
		t.Error("token still present on disk after forced logout")
	}
}

func TestUnauthorizedOnBackgroundFetch(t *testing.T) {
	// A 401 triggers the forced logout regardless of which call hit it
	tr, store, _ := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	if err := store.Save(&session.Session{Token: "T"}); err != nil {
		t.Fatalf("save session: %v", err)
	}

	resp, err := tr.PostR().Get("/feed")
	if checkErr := tr.CheckResponse(resp, err); !apierrors.IsAuth(checkErr) {
		t.Fatalf("expected auth error, got %v", checkErr)
	}

	if store.Token() != "" {
		t.Error("token should be absent after any 401")
	}
}

func TestValidationErrorCarriesServerMessage(t *testing.T) {
	tr, _, _ := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "title is required"}`))
	}))

	resp, err := tr.PostR().Post("/create")
	checkErr := tr.CheckResponse(resp, err)

	valErr, ok := checkErr.(*apierrors.ValidationError)
	if !ok {
		t.Fatalf("expected validation error, got %v", checkErr)
	}
	if valErr.Message != "title is required" {
		t.Errorf("message = %q, want server-provided message", valErr.Message)
	}
	if valErr.StatusCode != 400 {
		t.Errorf("status = %d, want 400", valErr.StatusCode)
	}
}

func TestValidationErrorMessageKey(t *testing.T) {
	tr, _, _ := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message": "content too long"}`))
	}))

	resp, err := tr.PostR().Post("/create")
	checkErr := tr.CheckResponse(resp, err)

	valErr, ok := checkErr.(*apierrors.ValidationError)
	if !ok {
		t.Fatalf("expected validation error, got %v", checkErr)
	}
	if valErr.Message != "content too long" {
		t.Errorf("message = %q", valErr.Message)
	}
}

func TestDuplicateKeyNormalization(t *testing.T) {
	tr, _, _ := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error": {"code": 11000, "keyValue": {"email": "a@x.com"}}}`))
	}))

	resp, err := tr.UserR().Post("/signup")
	checkErr := tr.CheckResponse(resp, err)

	valErr, ok := checkErr.(*apierrors.ValidationError)
	if !ok {
		t.Fatalf("expected validation error, got %v", checkErr)
	}
	if valErr.Code != "duplicate_key" {
		t.Errorf("code = %q, want duplicate_key", valErr.Code)
	}
	if valErr.Field != "email" {
		t.Errorf("field = %q, want email", valErr.Field)
	}
	if !apierrors.IsDuplicate(checkErr) {
		t.Error("IsDuplicate should match")
	}
}

func TestGarbageErrorBodyFallsBackToGeneric(t *testing.T) {
	tr, _, _ := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("not json"))
	}))

	resp, err := tr.UserR().Post("/signup")
	checkErr := tr.CheckResponse(resp, err)

	valErr, ok := checkErr.(*apierrors.ValidationError)
	if !ok {
		t.Fatalf("expected validation error, got %v", checkErr)
	}
	if valErr.Message != "request failed" {
		t.Errorf("message = %q, want generic fallback", valErr.Message)
	}
}

func TestServerErrorClassification(t *testing.T) {
	hits := 0
	tr, _, _ := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	}))

	resp, err := tr.PostR().Get("/feed")
	checkErr := tr.CheckResponse(resp, err)

	if !apierrors.IsServer(checkErr) {
		t.Fatalf("expected server error, got %v", checkErr)
	}
	// Nothing is retried automatically
	if hits != 1 {
		t.Errorf("expected exactly 1 request, got %d", hits)
	}
}

func TestNetworkErrorClassification(t *testing.T) {
	store := session.NewStore(filepath.Join(t.TempDir(), "credentials"))
	tr := New(Config{
		UserBaseURL: "http://127.0.0.1:1", // nothing listens here
		PostBaseURL: "http://127.0.0.1:1",
		Timeout:     500 * time.Millisecond,
	}, store)

	resp, err := tr.UserR().Get("/me")
	checkErr := tr.CheckResponse(resp, err)

	if !apierrors.IsNetwork(checkErr) {
		t.Fatalf("expected network error, got %v", checkErr)
	}
}

func TestNonAuthFailureKeepsSession(t *testing.T) {
	tr, store, _ := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "bad input"}`))
	}))

	if err := store.Save(&session.Session{Token: "T"}); err != nil {
		t.Fatalf("save session: %v", err)
	}

	resp, err := tr.UserR().Post("/signup")
	if checkErr := tr.CheckResponse(resp, err); checkErr == nil {
		t.Fatal("expected an error")
	}

	if store.Token() != "T" {
		t.Error("validation failures must not clear the session")
	}
}
