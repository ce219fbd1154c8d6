package service

import (
	"context"
	"course_admin_backend/internal/config"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func imageConfig(baseURL string) config.ImageGenConfig {
	return config.ImageGenConfig{BaseURL: baseURL, TimeoutSeconds: 5}
}

func TestImageService_Generate_ReturnsURL(t *testing.T) {
	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate-image", r.URL.Path)
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotPrompt = req["prompt"]
		json.NewEncoder(w).Encode(map[string]string{"image": "https://cdn.example.com/banner.png"})
	}))
	defer srv.Close()

	svc := NewImageService(imageConfig(srv.URL), nil)
	url, err := svc.Generate(context.Background(), "a gopher")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/banner.png", url)
	assert.Equal(t, "a gopher", gotPrompt)
}

func TestImageService_Generate_DataURIWithoutStorage(t *testing.T) {
	// Without storage wired the data URI is passed through untouched.
	dataURI := "data:image/png;base64,aGVsbG8="
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"image": dataURI})
	}))
	defer srv.Close()

	svc := NewImageService(imageConfig(srv.URL), nil)
	url, err := svc.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, dataURI, url)
}

func TestImageService_Generate_EmptyImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"image": ""})
	}))
	defer srv.Close()

	svc := NewImageService(imageConfig(srv.URL), nil)
	_, err := svc.Generate(context.Background(), "prompt")
	assert.Error(t, err)
}

func TestImageService_Generate_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewImageService(imageConfig(srv.URL), nil)
	_, err := svc.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
