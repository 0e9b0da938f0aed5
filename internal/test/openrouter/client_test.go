package openrouter_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wireframe-to-code-backend/internal/openrouter"
)

func TestResolveModel(t *testing.T) {
	assert.Equal(t, "deepseek/deepseek-r1-distill-llama-70b:free", openrouter.ResolveModel("deepseek"))
	assert.Equal(t, "meta-llama/llama-3.2-90b-vision-instruct", openrouter.ResolveModel("llama"))
	assert.Equal(t, "google/gemini-2.0-pro-exp-02-05:free", openrouter.ResolveModel("gemini"))
	assert.Equal(t, "google/gemini-2.0-pro-exp-02-05:free", openrouter.ResolveModel(""))
	assert.Equal(t, "google/gemini-2.0-pro-exp-02-05:free", openrouter.ResolveModel("something-else"))

	// Full provider strings pass through untouched.
	assert.Equal(t, "meta-llama/llama-3.2-90b-vision-instruct", openrouter.ResolveModel("meta-llama/llama-3.2-90b-vision-instruct"))
}

func TestGenerateCode_RequestPayload(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]interface{}{"content": "<div>ok</div>"}},
			},
		})
	}))
	defer server.Close()

	client := openrouter.NewClient(server.URL, "test-key")
	code, err := client.GenerateCode(context.Background(), "a login form", "https://img.test/wf.png", "llama")
	require.NoError(t, err)
	assert.Equal(t, "<div>ok</div>", code)

	assert.Equal(t, "meta-llama/llama-3.2-90b-vision-instruct", captured["model"])

	messages := captured["messages"].([]interface{})
	require.Len(t, messages, 1)
	message := messages[0].(map[string]interface{})
	assert.Equal(t, "user", message["role"])

	content := message["content"].([]interface{})
	require.Len(t, content, 2)

	textPart := content[0].(map[string]interface{})
	assert.Equal(t, "text", textPart["type"])
	assert.Contains(t, textPart["text"], "a login form")
	assert.Contains(t, textPart["text"], "https://img.test/wf.png")
	assert.Contains(t, textPart["text"], "single JSX file")

	imagePart := content[1].(map[string]interface{})
	assert.Equal(t, "image_url", imagePart["type"])
	assert.Equal(t, "https://img.test/wf.png", imagePart["image_url"].(map[string]interface{})["url"])
}

func TestGenerateCode_ModelMapping(t *testing.T) {
	tests := []struct {
		modelID string
		want    string
	}{
		{"deepseek", "deepseek/deepseek-r1-distill-llama-70b:free"},
		{"llama", "meta-llama/llama-3.2-90b-vision-instruct"},
		{"anything", "google/gemini-2.0-pro-exp-02-05:free"},
	}

	for _, tt := range tests {
		var gotModel string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req map[string]interface{}
			json.NewDecoder(r.Body).Decode(&req)
			gotModel = req["model"].(string)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"choices": []map[string]interface{}{
					{"message": map[string]interface{}{"content": "x"}},
				},
			})
		}))

		client := openrouter.NewClient(server.URL, "test-key")
		_, err := client.GenerateCode(context.Background(), "desc", "https://img.test/a.png", tt.modelID)
		require.NoError(t, err)
		assert.Equal(t, tt.want, gotModel, "modelID %q", tt.modelID)
		server.Close()
	}
}

func TestGenerateCode_MissingAPIKey(t *testing.T) {
	client := openrouter.NewClient("https://openrouter.test/api/v1", "")

	_, err := client.GenerateCode(context.Background(), "desc", "https://img.test/a.png", "llama")
	assert.ErrorIs(t, err, openrouter.ErrAuth)
}

func TestGenerateCode_RejectedCredential(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer server.Close()

	client := openrouter.NewClient(server.URL, "bad-key")
	_, err := client.GenerateCode(context.Background(), "desc", "https://img.test/a.png", "llama")
	assert.ErrorIs(t, err, openrouter.ErrAuth)
}

func TestGenerateCode_UpstreamStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"model overloaded"}}`))
	}))
	defer server.Close()

	client := openrouter.NewClient(server.URL, "test-key")
	_, err := client.GenerateCode(context.Background(), "desc", "https://img.test/a.png", "llama")
	assert.ErrorIs(t, err, openrouter.ErrUpstream)
}

func TestGenerateCode_ErrorObjectInBody(t *testing.T) {
	// Some upstream failures come back with a 200 and an error envelope.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{"message": "provider returned error"},
		})
	}))
	defer server.Close()

	client := openrouter.NewClient(server.URL, "test-key")
	_, err := client.GenerateCode(context.Background(), "desc", "https://img.test/a.png", "llama")
	assert.ErrorIs(t, err, openrouter.ErrUpstream)
	assert.Contains(t, err.Error(), "provider returned error")
}

func TestGenerateCode_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []interface{}{},
		})
	}))
	defer server.Close()

	client := openrouter.NewClient(server.URL, "test-key")
	_, err := client.GenerateCode(context.Background(), "desc", "https://img.test/a.png", "llama")
	assert.ErrorIs(t, err, openrouter.ErrMalformedResponse)
}

func TestGenerateCode_EmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]interface{}{"content": ""}},
			},
		})
	}))
	defer server.Close()

	client := openrouter.NewClient(server.URL, "test-key")
	_, err := client.GenerateCode(context.Background(), "desc", "https://img.test/a.png", "llama")
	assert.ErrorIs(t, err, openrouter.ErrMalformedResponse)
}

func TestGenerateCode_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := openrouter.NewClient(server.URL, "test-key")
	_, err := client.GenerateCode(context.Background(), "desc", "https://img.test/a.png", "llama")
	assert.ErrorIs(t, err, openrouter.ErrNetwork)
}
