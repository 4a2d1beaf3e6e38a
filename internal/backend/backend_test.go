package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/tubescout/internal/tabs"
)

func TestDemoClientReturnsPayload(t *testing.T) {
	client := NewDemo(0)
	result, err := client.Summarize(context.Background(), Request{SubmissionID: "abc"})
	require.NoError(t, err)
	assert.Equal(t, "abc", result.SubmissionID)
	for _, tab := range tabs.All() {
		assert.NotEmpty(t, result.Pane(tab), "pane %s", tab)
	}
	assert.Contains(t, result.Pane(tabs.QnA), "Questions & Answers")
	assert.Contains(t, result.Pane(tabs.Notes), "Structured Notes")
}

func TestDemoClientHonoursCancellation(t *testing.T) {
	client := NewDemo(time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.Summarize(ctx, Request{})
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestHTTPClientSummarize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/summarize" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Fatalf("unexpected auth header: %q", got)
		}
		var payload Request
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("failed to decode payload: %v", err)
		}
		if payload.URL != "https://youtu.be/dQw4w9WgXcQ" || payload.Language != "fr" {
			t.Fatalf("unexpected payload: %+v", payload)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"summary":"# Résumé","notes":"- note"}`))
	}))
	defer server.Close()

	client, err := NewHTTP(Config{Endpoint: server.URL + "/", APIKey: "secret", HTTPClient: server.Client(), RateLimit: 100})
	require.NoError(t, err)

	result, err := client.Summarize(context.Background(), Request{
		SubmissionID: "sub-1",
		URL:          "https://youtu.be/dQw4w9WgXcQ",
		VideoID:      "dQw4w9WgXcQ",
		Language:     "fr",
	})
	require.NoError(t, err)
	assert.Equal(t, "sub-1", result.SubmissionID)
	assert.Equal(t, "# Résumé", result.Summary)
	assert.Equal(t, "- note", result.Notes)
	assert.Equal(t, DemoResult().MindMap, result.MindMap)
	assert.Equal(t, DemoResult().QnA, result.QnA)
}

func TestHTTPClientErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "transcript unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewHTTP(Config{Endpoint: server.URL, HTTPClient: server.Client()})
	require.NoError(t, err)

	_, err = client.Summarize(context.Background(), Request{})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "502"), err.Error())
	assert.Contains(t, err.Error(), "transcript unavailable")
}

func TestHTTPClientBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client, err := NewHTTP(Config{Endpoint: server.URL, HTTPClient: server.Client()})
	require.NoError(t, err)
	_, err = client.Summarize(context.Background(), Request{})
	assert.ErrorContains(t, err, "decode summarize response")
}

func TestNewSelectsMode(t *testing.T) {
	demo, err := New(Config{Mode: ModeDemo})
	require.NoError(t, err)
	assert.Equal(t, "demo", demo.Name())

	_, err = New(Config{Mode: ModeHTTP})
	assert.Error(t, err)
}

func TestLanguages(t *testing.T) {
	lang, ok := LookupLanguage("EN")
	require.True(t, ok)
	assert.Equal(t, "English", lang.Name)

	_, ok = LookupLanguage("xx")
	assert.False(t, ok)

	all := Languages()
	assert.Equal(t, all[1], NextLanguage(all[0].Code))
	assert.Equal(t, all[0], NextLanguage(all[len(all)-1].Code))
	assert.Equal(t, all[0], NextLanguage("unknown"))
}
