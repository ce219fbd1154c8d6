package service

import (
	"context"
	"course_admin_backend/internal/model"
	"course_admin_backend/internal/repository"
	"course_admin_backend/internal/util"
	"course_admin_backend/pkg/logger"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// AssetService handles uploaded media for courses: replacement banners and
// chapter videos.
type AssetService struct {
	Assets  *repository.AssetRepository
	Courses *repository.CourseRepository
	Storage *StorageService
}

func NewAssetService(assets *repository.AssetRepository, courses *repository.CourseRepository, storage *StorageService) *AssetService {
	return &AssetService{Assets: assets, Courses: courses, Storage: storage}
}

// UploadBanner replaces a course banner with an uploaded image. The stored
// bannerurl is swapped only after the upload succeeds.
func (s *AssetService) UploadBanner(ctx context.Context, courseID uint, file *multipart.FileHeader) (*model.CourseAsset, error) {
	course, err := s.Courses.FindByID(courseID)
	if err != nil {
		return nil, util.ErrCourseNotFound
	}

	if !util.HasAllowedExtension(file.Filename, util.AllowedImageExtensions) {
		return nil, util.ErrInvalidImageExt
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	contentType, err := util.ValidateMimeType(src, []string{util.MimeImage})
	if err != nil {
		return nil, util.ErrInvalidImageExt
	}
	if _, err := src.Seek(0, 0); err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("banners/%s_%s%s",
		course.CID,
		time.Now().Format("20060102150405"),
		filepath.Ext(file.Filename))

	url, err := s.Storage.Upload(ctx, filename, src, file.Size, contentType)
	if err != nil {
		return nil, err
	}

	if err := s.Courses.UpdateBanner(course.ID, url); err != nil {
		return nil, err
	}

	asset := &model.CourseAsset{
		CourseID: course.ID,
		Kind:     model.AssetBanner,
		URL:      url,
		Size:     file.Size,
	}
	if err := s.Assets.Create(asset); err != nil {
		return nil, err
	}

	logger.Log.Info("banner replaced",
		zap.Uint("course_id", course.ID),
		zap.String("url", url))

	return asset, nil
}

// UploadChapterVideo stores a video for one chapter of a course. The file is
// staged locally so its duration can be probed before the final upload.
func (s *AssetService) UploadChapterVideo(ctx context.Context, courseID uint, chapter int, file *multipart.FileHeader) (*model.CourseAsset, error) {
	course, err := s.Courses.FindByID(courseID)
	if err != nil {
		return nil, util.ErrCourseNotFound
	}

	if chapter < 1 || chapter > course.Chapters {
		return nil, util.ErrChapterOutOfRange
	}

	if !util.HasAllowedExtension(file.Filename, util.AllowedVideoExtensions) {
		return nil, util.ErrInvalidVideoExt
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	contentType, err := util.ValidateMimeType(src, []string{util.MimeVideo})
	if err != nil {
		return nil, util.ErrInvalidVideoExt
	}
	if _, err := src.Seek(0, 0); err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp("", "chapter_video_*"+filepath.Ext(file.Filename))
	if err != nil {
		return nil, err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.ReadFrom(src); err != nil {
		tmp.Close()
		return nil, err
	}
	tmp.Close()

	info, err := util.GetVideoInfo(tmpPath)
	if err != nil {
		logger.Log.Warn("video probe failed",
			zap.Uint("course_id", course.ID),
			zap.Int("chapter", chapter),
			zap.Error(err))
		info = &util.VideoInfo{Size: file.Size}
	}

	filename := fmt.Sprintf("videos/%s/chapter_%d_%s%s",
		course.CID,
		chapter,
		time.Now().Format("20060102150405"),
		filepath.Ext(file.Filename))

	url, err := s.Storage.UploadFile(ctx, filename, tmpPath, contentType)
	if err != nil {
		return nil, err
	}

	asset := &model.CourseAsset{
		CourseID: course.ID,
		Kind:     model.AssetVideo,
		Chapter:  chapter,
		URL:      url,
		Duration: info.Duration,
		Size:     file.Size,
	}
	if err := s.Assets.Create(asset); err != nil {
		return nil, err
	}

	logger.Log.Info("chapter video uploaded",
		zap.Uint("course_id", course.ID),
		zap.Int("chapter", chapter),
		zap.Float64("duration", info.Duration))

	return asset, nil
}

// ListByCourse returns the stored media rows for a course, chapters ascending.
func (s *AssetService) ListByCourse(courseID uint) ([]model.CourseAsset, error) {
	if _, err := s.Courses.FindByID(courseID); err != nil {
		return nil, util.ErrCourseNotFound
	}
	return s.Assets.FindByCourse(courseID)
}
