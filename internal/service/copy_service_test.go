package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"atelier-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFallback = "Crafted for the bold. Designed for you."

func newGeneratorServer(t *testing.T, status int, text string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Prompt string `json:"prompt"`
			Image  string `json:"image"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Prompt)

		w.WriteHeader(status)
		if status == http.StatusOK {
			fmt.Fprintf(w, `{"text":%q}`, text)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGenerateCopyFromModel(t *testing.T) {
	srv := newGeneratorServer(t, http.StatusOK, "Silk that remembers the runway.")
	gc := NewGeneratorClient(srv.URL, 2*time.Second)
	cs := NewCopyService(gc, nil, nil, testFallback, time.Minute)

	got := cs.Generate(context.Background(), "describe the meridian slip dress")
	assert.Equal(t, models.CopySourceModel, got.Source)
	assert.Equal(t, "Silk that remembers the runway.", got.Text)
}

func TestGenerateCopyFallbackOnServerError(t *testing.T) {
	srv := newGeneratorServer(t, http.StatusInternalServerError, "")
	gc := NewGeneratorClient(srv.URL, 2*time.Second)
	cs := NewCopyService(gc, nil, nil, testFallback, time.Minute)

	got := cs.Generate(context.Background(), "describe the trench")
	assert.Equal(t, models.CopySourceFallback, got.Source)
	assert.Equal(t, testFallback, got.Text)
}

func TestGenerateCopyFallbackOnUnreachableEndpoint(t *testing.T) {
	gc := NewGeneratorClient("http://127.0.0.1:1/v1/generate", 500*time.Millisecond)
	cs := NewCopyService(gc, nil, nil, testFallback, time.Minute)

	got := cs.Generate(context.Background(), "describe the trench")
	assert.Equal(t, models.CopySourceFallback, got.Source)
	assert.Equal(t, testFallback, got.Text)
}

func TestGeneratorClientErrorClass(t *testing.T) {
	srv := newGeneratorServer(t, http.StatusBadGateway, "")
	gc := NewGeneratorClient(srv.URL, 2*time.Second)

	_, err := gc.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, models.ErrExternalUnavailable)
}

func TestGeneratorClientRejectsEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{}`)
	}))
	t.Cleanup(srv.Close)

	gc := NewGeneratorClient(srv.URL, 2*time.Second)
	_, err := gc.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, models.ErrExternalUnavailable)
}
