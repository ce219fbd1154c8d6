package service

import (
	"context"
	"course_admin_backend/internal/config"
	"course_admin_backend/internal/util"
	"course_admin_backend/pkg/logger"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// StorageProvider abstracts where uploaded media lands: generated banners,
// replacement banners and chapter videos all go through it.
type StorageProvider interface {
	Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error)
	UploadFile(ctx context.Context, filename string, localPath string, contentType string) (string, error)
	Delete(ctx context.Context, filename string) error
	GetURL(filename string) string
}

// localProvider writes files under a root directory served at /uploads.
type localProvider struct {
	root string
}

func (p *localProvider) ensurePath(filename string) (string, error) {
	dst := filepath.Join(p.root, filename)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", err
	}
	return dst, nil
}

func (p *localProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	dst, err := p.ensurePath(filename)
	if err != nil {
		return "", err
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, reader); err != nil {
		return "", err
	}
	return p.GetURL(filename), nil
}

func (p *localProvider) UploadFile(ctx context.Context, filename string, localPath string, contentType string) (string, error) {
	dst, err := p.ensurePath(filename)
	if err != nil {
		return "", err
	}
	if localPath == dst {
		return p.GetURL(filename), nil
	}

	src, err := os.Open(localPath)
	if err != nil {
		return "", err
	}
	defer src.Close()

	return p.Upload(ctx, filename, src, 0, contentType)
}

func (p *localProvider) Delete(ctx context.Context, filename string) error {
	return os.Remove(filepath.Join(p.root, filename))
}

func (p *localProvider) GetURL(filename string) string {
	return "/uploads/" + filename
}

type minioProvider struct {
	client *minio.Client
	bucket string
}

func newMinioProvider(cfg *config.StorageConfig) (*minioProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: false,
	})
	if err != nil {
		return nil, err
	}
	return &minioProvider{client: client, bucket: cfg.MinioBucket}, nil
}

func (p *minioProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	opts := minio.PutObjectOptions{ContentType: contentType}
	if _, err := p.client.PutObject(ctx, p.bucket, filename, reader, size, opts); err != nil {
		return "", err
	}
	return p.GetURL(filename), nil
}

func (p *minioProvider) UploadFile(ctx context.Context, filename string, localPath string, contentType string) (string, error) {
	opts := minio.PutObjectOptions{ContentType: contentType}
	if _, err := p.client.FPutObject(ctx, p.bucket, filename, localPath, opts); err != nil {
		return "", err
	}
	return p.GetURL(filename), nil
}

func (p *minioProvider) Delete(ctx context.Context, filename string) error {
	return p.client.RemoveObject(ctx, p.bucket, filename, minio.RemoveObjectOptions{})
}

func (p *minioProvider) GetURL(filename string) string {
	return "/" + p.bucket + "/" + filename
}

// ossProvider resolves its bucket handle once at construction.
type ossProvider struct {
	bucket   *oss.Bucket
	endpoint string
	name     string
}

func newOSSProvider(cfg *config.StorageConfig) (*ossProvider, error) {
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	bucket, err := client.Bucket(cfg.OSSBucket)
	if err != nil {
		return nil, err
	}
	return &ossProvider{bucket: bucket, endpoint: cfg.OSSEndpoint, name: cfg.OSSBucket}, nil
}

func (p *ossProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	if err := p.bucket.PutObject(filename, reader); err != nil {
		return "", err
	}
	return p.GetURL(filename), nil
}

func (p *ossProvider) UploadFile(ctx context.Context, filename string, localPath string, contentType string) (string, error) {
	if err := p.bucket.PutObjectFromFile(filename, localPath); err != nil {
		return "", err
	}
	return p.GetURL(filename), nil
}

func (p *ossProvider) Delete(ctx context.Context, filename string) error {
	return p.bucket.DeleteObject(filename)
}

func (p *ossProvider) GetURL(filename string) string {
	return fmt.Sprintf("https://%s.%s/%s", p.name, p.endpoint, filename)
}

// StorageService picks the configured provider, falling back to local disk
// when a remote backend cannot be reached at startup.
type StorageService struct {
	Provider StorageProvider
}

func NewStorageService(cfg *config.Config) *StorageService {
	var provider StorageProvider
	var err error

	switch cfg.Storage.Type {
	case util.StorageMinio:
		provider, err = newMinioProvider(&cfg.Storage)
	case util.StorageOSS:
		provider, err = newOSSProvider(&cfg.Storage)
	}

	if err != nil {
		logger.Log.Warn("remote storage unavailable, falling back to local disk",
			zap.String("type", cfg.Storage.Type),
			zap.Error(err))
		provider = nil
	}
	if provider == nil {
		provider = &localProvider{root: cfg.Storage.LocalPath}
	}

	return &StorageService{Provider: provider}
}

func (s *StorageService) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	return s.Provider.Upload(ctx, filename, reader, size, contentType)
}

func (s *StorageService) UploadFile(ctx context.Context, filename string, localPath string, contentType string) (string, error) {
	return s.Provider.UploadFile(ctx, filename, localPath, contentType)
}

func (s *StorageService) Delete(ctx context.Context, filename string) error {
	return s.Provider.Delete(ctx, filename)
}

func (s *StorageService) GetURL(filename string) string {
	return s.Provider.GetURL(filename)
}
