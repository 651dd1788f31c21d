package generation

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const testSecret = "test-secret"

func testSigner() *TokenSigner {
	return NewTokenSigner(testSecret, time.Hour)
}

func TestClientRequest(t *testing.T) {
	var gotPath, gotQuery, gotAuth, gotBody string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("type")
		gotAuth = r.Header.Get("Authorization")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(validResult())
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testSigner())
	learner := Learner{ID: "learner-1", InferredLevel: "middle", AssignedLevel: "high"}

	result, err := c.Request(t.Context(), "우주", "middle", "personal", learner)
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}

	if gotPath != "/generate/middle" {
		t.Errorf("path = %q, want /generate/middle", gotPath)
	}
	if gotQuery != "personal" {
		t.Errorf("type query = %q, want personal", gotQuery)
	}
	if !strings.HasPrefix(gotAuth, "Bearer ") {
		t.Fatalf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotBody != `{"keyword":"우주"}`+"\n" && gotBody != `{"keyword":"우주"}` {
		t.Errorf("body = %q, want keyword payload", gotBody)
	}
	if result.Keyword != "우주" {
		t.Errorf("Keyword = %q, want 우주", result.Keyword)
	}

	claims := verifyToken(t, strings.TrimPrefix(gotAuth, "Bearer "))
	if claims.UserID != "learner-1" {
		t.Errorf("userId claim = %q, want learner-1", claims.UserID)
	}
	if claims.Role != "student" {
		t.Errorf("role claim = %q, want student", claims.Role)
	}
	if claims.InferredLevel != "middle" || claims.AssignedLevel != "high" {
		t.Errorf("level claims = %q/%q, want middle/high", claims.InferredLevel, claims.AssignedLevel)
	}
}

func TestClientRequestUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testSigner())

	_, err := c.Request(t.Context(), "우주", "low", "manual", Learner{ID: "learner-1"})
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("Request() error = %v, want ErrUpstream", err)
	}
}

func TestClientRequestUnreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", testSigner(),
		WithHTTPClient(&http.Client{Timeout: time.Second}))

	_, err := c.Request(t.Context(), "우주", "low", "manual", Learner{ID: "learner-1"})
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("Request() error = %v, want ErrUpstream", err)
	}
}

func TestClientRequestMalformed(t *testing.T) {
	tests := []struct {
		name string
		body func() []byte
	}{
		{
			name: "schema violation",
			body: func() []byte { return []byte(`{"keyword":"우주","level":"low"}`) },
		},
		{
			name: "structurally incomplete variant",
			body: func() []byte {
				r := validResult()
				r.Generation1.Title = ""
				b, _ := json.Marshal(r)
				return b
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write(tt.body())
			}))
			defer srv.Close()

			c := NewClient(srv.URL, testSigner())

			_, err := c.Request(t.Context(), "우주", "low", "manual", Learner{ID: "learner-1"})
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("Request() error = %v, want ErrMalformed", err)
			}
		})
	}
}

// Sentinel markers inside a well-formed payload are not a client concern:
// the caller classifies them after decoding.
func TestClientRequestPassesSentinelsThrough(t *testing.T) {
	r := validResult()
	r.Generation0.Passage = "[TIMEOUT ERROR]"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(r)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testSigner())

	got, err := c.Request(t.Context(), "우주", "low", "manual", Learner{ID: "learner-1"})
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if got.Generation0.Passage != "[TIMEOUT ERROR]" {
		t.Errorf("Passage = %q, want sentinel preserved", got.Generation0.Passage)
	}
}
