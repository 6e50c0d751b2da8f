package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient("test-key", "")
	require.NoError(t, err)
	client.apiURL = srv.URL
	return client
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient("", "gpt-4o-mini")
	require.Error(t, err)

	client, err := NewClient("key", "")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", client.model)
}

func TestAnswerSendsChatRequest(t *testing.T) {
	var captured chatRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "  Go and Kubernetes.  "}},
			},
		})
	})

	answer, err := client.Answer(context.Background(), "Proficient in Go.", "What languages?")
	require.NoError(t, err)
	assert.Equal(t, "Go and Kubernetes.", answer)

	assert.Equal(t, "gpt-4o-mini", captured.Model)
	assert.Equal(t, 300, captured.MaxTokens)
	assert.InDelta(t, 0.3, captured.Temperature, 0.001)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Contains(t, captured.Messages[1].Content, "RESUME CONTEXT:")
	assert.Contains(t, captured.Messages[1].Content, "Proficient in Go.")
	assert.Contains(t, captured.Messages[1].Content, "QUESTION: What languages?")
}

func TestSuggestUsesSmallerBudget(t *testing.T) {
	var captured chatRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "Try asking about skills."}},
			},
		})
	})

	suggestion, err := client.Suggest(context.Background(), "underwater basket weaving")
	require.NoError(t, err)
	assert.Equal(t, "Try asking about skills.", suggestion)

	assert.Equal(t, 100, captured.MaxTokens)
	assert.Contains(t, captured.Messages[1].Content, `"underwater basket weaving"`)
}

func TestCompleteAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "Invalid API key", "type": "invalid_request_error"},
		})
	})

	_, err := client.Answer(context.Background(), "ctx", "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API key")
}

func TestCompleteMissingChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	_, err := client.Answer(context.Background(), "ctx", "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing choices")
}

func TestCompleteMalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "not json")
	})

	_, err := client.Answer(context.Background(), "ctx", "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}
