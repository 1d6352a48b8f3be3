package api

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/mahannajafi/moslemi-group-project/internal/session"
)

func newStore(t *testing.T, accessToken string) *session.Store {
	t.Helper()
	s := session.NewStore(t.TempDir())
	if accessToken != "" {
		if err := s.Save(session.Session{AccessToken: accessToken}); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func TestHeaders(t *testing.T) {
	var got http.Header
	r := chi.NewRouter()
	r.Get("/rest/v1/ping", func(w http.ResponseWriter, req *http.Request) {
		got = req.Header.Clone()
		w.Write([]byte(`{}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := NewClient(srv.URL, "anon-key", newStore(t, "tok"))
	if err := c.Do(context.Background(), http.MethodGet, "/rest/v1/ping", nil, Options{Auth: true}, nil); err != nil {
		t.Fatal(err)
	}
	if got.Get("Accept") != "application/json" {
		t.Fatalf("Accept = %q", got.Get("Accept"))
	}
	if got.Get("apikey") != "anon-key" {
		t.Fatalf("apikey = %q", got.Get("apikey"))
	}
	if got.Get("Authorization") != "Bearer tok" {
		t.Fatalf("Authorization = %q", got.Get("Authorization"))
	}
}

func TestAuthWithoutTokenOmitsHeader(t *testing.T) {
	var got http.Header
	r := chi.NewRouter()
	r.Get("/rest/v1/ping", func(w http.ResponseWriter, req *http.Request) {
		got = req.Header.Clone()
		w.Write([]byte(`{}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := NewClient(srv.URL, "", newStore(t, ""))
	if err := c.Do(context.Background(), http.MethodGet, "/rest/v1/ping", nil, Options{Auth: true}, nil); err != nil {
		t.Fatal(err)
	}
	if _, ok := got["Authorization"]; ok {
		t.Fatalf("Authorization header must be absent, got %q", got.Get("Authorization"))
	}
	if _, ok := got["Apikey"]; ok {
		t.Fatal("apikey header must be absent when unconfigured")
	}
}

func TestRequestError(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/rest/v1/broken", func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, `{"message":"row level security"}`, http.StatusForbidden)
	})
	r.Get("/rest/v1/silent", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := NewClient(srv.URL, "", newStore(t, ""))

	err := c.Do(context.Background(), http.MethodGet, "/rest/v1/broken", nil, Options{}, nil)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("want RequestError, got %v", err)
	}
	if reqErr.Status != http.StatusForbidden || !strings.Contains(reqErr.Message, "row level security") {
		t.Fatalf("unexpected error: %+v", reqErr)
	}

	err = c.Do(context.Background(), http.MethodGet, "/rest/v1/silent", nil, Options{}, nil)
	if !errors.As(err, &reqErr) {
		t.Fatalf("want RequestError, got %v", err)
	}
	if reqErr.Message != "request failed" {
		t.Fatalf("empty body must fall back, got %q", reqErr.Message)
	}
}

func TestNoContent(t *testing.T) {
	r := chi.NewRouter()
	r.Delete("/rest/v1/thing/{id}", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := NewClient(srv.URL, "", newStore(t, ""))
	out := map[string]string{"untouched": "yes"}
	if err := c.Do(context.Background(), http.MethodDelete, "/rest/v1/thing/7", nil, Options{}, &out); err != nil {
		t.Fatal(err)
	}
	if out["untouched"] != "yes" {
		t.Fatal("204 must not touch out")
	}
}

func TestDecodeError(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/rest/v1/garbage", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := NewClient(srv.URL, "", newStore(t, ""))
	var out map[string]any
	err := c.Do(context.Background(), http.MethodGet, "/rest/v1/garbage", nil, Options{}, &out)
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("want DecodeError, got %v", err)
	}
}

func TestDoFormIsMultipartPost(t *testing.T) {
	var method, contentType string
	r := chi.NewRouter()
	r.Post("/storage/v1/object/b/f.jpg", func(w http.ResponseWriter, req *http.Request) {
		method = req.Method
		contentType = req.Header.Get("Content-Type")
		w.Write([]byte(`{"url":"https://cdn/f.jpg"}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := NewClient(srv.URL, "", newStore(t, "tok"))
	var resp struct {
		URL string `json:"url"`
	}
	body := strings.NewReader("--x--")
	err := c.DoForm(context.Background(), "/storage/v1/object/b/f.jpg", body, "multipart/form-data; boundary=x", Options{Auth: true}, &resp)
	if err != nil {
		t.Fatal(err)
	}
	if method != http.MethodPost {
		t.Fatalf("method = %s", method)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "multipart/form-data" {
		t.Fatalf("content type = %q", contentType)
	}
	if resp.URL != "https://cdn/f.jpg" {
		t.Fatalf("url = %q", resp.URL)
	}
}
