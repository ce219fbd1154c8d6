package service

import (
	"context"
	"course_admin_backend/internal/config"
	"course_admin_backend/internal/util"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aiConfig(baseURL string) config.AIConfig {
	return config.AIConfig{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		Model:          "test-model",
		Temperature:    0.4,
		TimeoutSeconds: 5,
	}
}

func TestAIService_Complete_Success(t *testing.T) {
	var gotAuth string
	var gotReq ChatCompletionRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "hello"}},
			},
		})
	}))
	defer srv.Close()

	svc := NewAIService(aiConfig(srv.URL))
	out, err := svc.Complete(context.Background(), "say hello")
	require.NoError(t, err)

	assert.Equal(t, "hello", out)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "test-model", gotReq.Model)
	assert.Equal(t, 0.4, gotReq.Temperature)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
	assert.Equal(t, "say hello", gotReq.Messages[0].Content)
}

func TestAIService_Complete_MissingAPIKeySkipsNetwork(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	cfg := aiConfig(srv.URL)
	cfg.APIKey = ""
	svc := NewAIService(cfg)

	_, err := svc.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, util.ErrMissingAPIKey)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestAIService_Complete_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer srv.Close()

	svc := NewAIService(aiConfig(srv.URL))
	_, err := svc.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, util.ErrEmptyAIResponse)
}

func TestAIService_Complete_EmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": ""}},
			},
		})
	}))
	defer srv.Close()

	svc := NewAIService(aiConfig(srv.URL))
	_, err := svc.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, util.ErrEmptyAIResponse)
}

func TestAIService_Complete_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	svc := NewAIService(aiConfig(srv.URL))
	_, err := svc.Complete(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestAIService_Complete_APIErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "model overloaded"},
		})
	}))
	defer srv.Close()

	svc := NewAIService(aiConfig(srv.URL))
	_, err := svc.Complete(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestAIService_SetConfig_HotReload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ChatCompletionRequest
		json.NewDecoder(r.Body).Decode(&req)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": req.Model}},
			},
		})
	}))
	defer srv.Close()

	svc := NewAIService(aiConfig(srv.URL))

	next := aiConfig(srv.URL)
	next.Model = "next-model"
	svc.SetConfig(next)

	out, err := svc.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "next-model", out)
}
