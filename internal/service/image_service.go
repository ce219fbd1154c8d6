package service

import (
	"bytes"
	"context"
	"course_admin_backend/internal/util"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"course_admin_backend/internal/config"
)

// ImageService requests banner images from the image-generation endpoint.
// The endpoint may answer with a plain URL or an inline data URI; data URIs
// are pushed through the storage service so the persisted bannerurl stays
// durable.
type ImageService struct {
	mu      sync.RWMutex
	config  config.ImageGenConfig
	client  *http.Client
	Storage *StorageService
}

func NewImageService(cfg config.ImageGenConfig, storage *StorageService) *ImageService {
	return &ImageService{
		config:  cfg,
		client:  &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		Storage: storage,
	}
}

func (s *ImageService) SetConfig(cfg config.ImageGenConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
	s.client.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
}

func (s *ImageService) snapshot() config.ImageGenConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

type imageRequest struct {
	Prompt string `json:"prompt"`
}

type imageResponse struct {
	Image string `json:"image"`
}

// Generate makes exactly one call; retries are the caller's policy decision.
func (s *ImageService) Generate(ctx context.Context, prompt string) (string, error) {
	cfg := s.snapshot()

	jsonData, err := json.Marshal(imageRequest{Prompt: prompt})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", cfg.BaseURL+"/api/generate-image", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result imageResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if result.Image == "" {
		return "", fmt.Errorf("image API returned no image")
	}

	if strings.HasPrefix(result.Image, "data:") {
		return s.persistDataURI(ctx, result.Image)
	}

	return result.Image, nil
}

// persistDataURI decodes a base64 data URI and uploads it, returning the
// storage URL. Falls back to the raw data URI if no storage is wired.
func (s *ImageService) persistDataURI(ctx context.Context, dataURI string) (string, error) {
	if s.Storage == nil {
		return dataURI, nil
	}

	header, encoded, found := strings.Cut(dataURI, ",")
	if !found {
		return "", fmt.Errorf("malformed data URI from image API")
	}

	contentType := "image/png"
	if meta := strings.TrimPrefix(header, "data:"); meta != "" {
		contentType = strings.TrimSuffix(strings.Split(meta, ";")[0], ",")
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decoding image data URI: %w", err)
	}

	ext := ".png"
	if strings.Contains(contentType, "jpeg") {
		ext = ".jpg"
	} else if strings.Contains(contentType, "webp") {
		ext = ".webp"
	}

	filename := "banners/" + time.Now().Format("20060102150405") + "_" + util.GenerateRandomString(6) + ext
	return s.Storage.Upload(ctx, filename, bytes.NewReader(raw), int64(len(raw)), contentType)
}
