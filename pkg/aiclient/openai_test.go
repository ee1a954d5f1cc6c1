package aiclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenAITestClient(t *testing.T, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOpenAIClient(Config{OpenAIAPIKey: "sk-test", OpenAIBaseURL: srv.URL + "/v1"}, nil)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestOpenAIClient_GenerateImage(t *testing.T) {
	c := newOpenAITestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/images/generations", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"created":1,"data":[{"url":"https://cdn.openai.test/img.png"}]}`)
	})

	url, err := c.GenerateImage(context.Background(), "a dog on a hill", "")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.openai.test/img.png", url)
}

func TestOpenAIClient_GenerateImage_B64(t *testing.T) {
	c := newOpenAITestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"created":1,"data":[{"b64_json":"`+pngBase64+`"}]}`)
	})

	url, err := c.GenerateImage(context.Background(), "p", "")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,"+pngBase64, url)
}

func TestOpenAIClient_GenerateStory(t *testing.T) {
	c := newOpenAITestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"id":"c1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"I found a stick."},"finish_reason":"stop"}],"usage":{"prompt_tokens":5,"completion_tokens":4,"total_tokens":9}}`)
	})

	text, err := c.GenerateStory(context.Background(), "p", "")
	require.NoError(t, err)
	assert.Equal(t, "I found a stick.", text)
}

func TestOpenAIClient_Unauthorized(t *testing.T) {
	c := newOpenAITestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`)
	})

	_, err := c.GenerateStory(context.Background(), "p", "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestOpenAIClient_ServerError(t *testing.T) {
	c := newOpenAITestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"error":{"message":"content policy violation","type":"invalid_request_error"}}`)
	})

	_, err := c.GenerateImage(context.Background(), "p", "")
	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, "content policy violation", genErr.Message)
	assert.Equal(t, http.StatusBadRequest, genErr.StatusCode)
}
