package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/diffscribe/internal/config"
	domainErrors "github.com/thomas-vilte/diffscribe/internal/errors"
)

func newTestConfig(apiKey string) *config.Config {
	cfg := &config.Config{
		Language:     config.LangEN,
		AIProvider:   config.AIOpenAI,
		MaxDiffChars: 20000,
	}
	if apiKey != "" {
		cfg.SetAPIKey(config.AIOpenAI, apiKey)
	}
	return cfg
}

func newTestEvaluator(t *testing.T, handler http.HandlerFunc) *Evaluator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	factory := NewFactory(option.WithBaseURL(srv.URL+"/"), option.WithMaxRetries(0))
	evaluator, err := factory.CreateEvaluator(context.Background(), newTestConfig("test-key"))
	require.NoError(t, err)
	return evaluator.(*Evaluator)
}

func TestEvaluator_Evaluate(t *testing.T) {
	t.Run("returns the first choice", func(t *testing.T) {
		evaluator := newTestEvaluator(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			body, _ := io.ReadAll(r.Body)
			var req struct {
				Model    string `json:"model"`
				Messages []struct {
					Role    string `json:"role"`
					Content string `json:"content"`
				} `json:"messages"`
			}
			require.NoError(t, json.Unmarshal(body, &req))
			assert.Equal(t, "gpt-4o-mini", req.Model)
			require.Len(t, req.Messages, 1)
			assert.Equal(t, "user", req.Messages[0].Role)
			assert.Equal(t, "the prompt", req.Messages[0].Content)

			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"id":"chatcmpl-1","object":"chat.completion","created":1,"model":"gpt-4o-mini","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"fix: handle nil config"}}],"usage":{"prompt_tokens":10,"completion_tokens":5,"total_tokens":15}}`)
		})

		text, err := evaluator.Evaluate(context.Background(), "the prompt")

		require.NoError(t, err)
		assert.Equal(t, "fix: handle nil config", text)
	})

	t.Run("no choices", func(t *testing.T) {
		evaluator := newTestEvaluator(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"id":"chatcmpl-1","object":"chat.completion","created":1,"model":"gpt-4o-mini","choices":[]}`)
		})

		_, err := evaluator.Evaluate(context.Background(), "the prompt")

		assert.ErrorIs(t, err, domainErrors.ErrEmptyCompletion)
	})

	t.Run("invalid api key", func(t *testing.T) {
		evaluator := newTestEvaluator(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`)
		})

		_, err := evaluator.Evaluate(context.Background(), "the prompt")

		assert.ErrorIs(t, err, domainErrors.ErrAPIKeyInvalid)
	})
}

func TestFactory(t *testing.T) {
	factory := NewFactory()

	assert.Equal(t, "openai", factory.Name())
	assert.ErrorIs(t, factory.ValidateConfig(newTestConfig("")), domainErrors.ErrAPIKeyMissing)
	assert.NoError(t, factory.ValidateConfig(newTestConfig("key")))
}
