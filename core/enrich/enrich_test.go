package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/brandpipe/core"
)

func generateServer(t *testing.T, respond func(prompt string) string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req generateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.False(t, req.Stream)
		assert.NotEmpty(t, req.Model)

		json.NewEncoder(w).Encode(generateResponse{Response: respond(req.Prompt)})
	}))
}

func TestClientSynthesize(t *testing.T) {
	t.Parallel()

	srv := generateServer(t, func(prompt string) string {
		assert.Contains(t, prompt, "Bluewave")
		assert.Contains(t, prompt, "#0055AA")
		return `{"company_summary": "Bluewave builds sensors.", "brand_vibe": ["technical"]}`
	})
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL, Model: "llama3.1"})
	syn, err := client.Synthesize(context.Background(), core.SynthesisRequest{
		CompanyName: "Bluewave",
		URL:         "https://bluewave.example",
		HintColors:  []string{"#0055AA"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Bluewave builds sensors.", syn.Summary)
	assert.Equal(t, []string{"technical"}, syn.VibeKeywords)
}

func TestClientSynthesizeServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL, Model: "missing"})
	_, err := client.Synthesize(context.Background(), core.SynthesisRequest{CompanyName: "X"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrEnrichment))
}

func TestClientSynthesizeGarbageResponse(t *testing.T) {
	t.Parallel()

	srv := generateServer(t, func(string) string { return "I cannot answer that." })
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL, Model: "llama3.1"})
	_, err := client.Synthesize(context.Background(), core.SynthesisRequest{CompanyName: "X"})
	assert.True(t, errors.Is(err, core.ErrEnrichment))
}

func TestClientCaption(t *testing.T) {
	t.Parallel()

	srv := generateServer(t, func(prompt string) string {
		assert.Contains(t, prompt, "Launch day")
		return fmt.Sprintf("%q", "Counting down to launch.")
	})
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL, Model: "llama3.1"})
	caption, err := client.Caption(context.Background(), core.CaptionRequest{
		CompanyName: "Acme",
		PostType:    "Teaser",
		Pillar:      "Launch day",
	})
	require.NoError(t, err)
	// Surrounding quotes are stripped.
	assert.Equal(t, "Counting down to launch.", caption)
}
