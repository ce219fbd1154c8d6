package service

import (
	"context"
	"course_admin_backend/internal/model"
	"course_admin_backend/internal/util"
	"course_admin_backend/pkg/logger"
	"course_admin_backend/pkg/monitoring"
	"encoding/json"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const coursePrompt = `Generate a learning course based on the following details.

Rules:
- The number of items in "chapters" MUST equal "noOfChapters"
- Respond ONLY with valid JSON
- Do NOT include explanations or extra text

Schema:
{
  "course": {
    "name": "string", "description": "string", "category": "string",
    "level": "Beginner | Intermediate | Advanced", "includeVideo": boolean,
    "noOfChapters": number, "bannerImagePrompt": "string",
    "chapters": [ { "chapterName": "string", "duration": "string", "topics": [ "string" ], "imagePrompt": "string" } ]
  }
}

User Input:
`

// TextGenerator produces the course JSON completion.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// BannerGenerator produces a banner image URL from a prompt.
type BannerGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// CourseStore is the persistence surface the pipeline needs.
type CourseStore interface {
	Create(course *model.Course) error
	FindByID(id uint) (*model.Course, error)
	FindByCID(cid string) (*model.Course, error)
	FindAll() ([]model.Course, error)
	Delete(id uint) error
}

// CourseService orchestrates generation: prompt assembly, completion,
// schema validation, banner enrichment and persistence. At most one
// generation runs at a time per instance.
type CourseService struct {
	AI      TextGenerator
	Banner  BannerGenerator
	Store   CourseStore
	Timeout time.Duration

	generating int32
}

func NewCourseService(ai TextGenerator, banner BannerGenerator, store CourseStore, timeout time.Duration) *CourseService {
	return &CourseService{AI: ai, Banner: banner, Store: store, Timeout: timeout}
}

// Generate runs the full pipeline for one draft and returns the persisted
// record. Failures after validation but before the insert leave no row
// behind; a failed banner does not abort the course.
func (s *CourseService) Generate(ctx context.Context, draft *model.CourseDraft) (*model.Course, error) {
	if strings.TrimSpace(draft.Name) == "" {
		monitoring.CourseGenerations.WithLabelValues("rejected").Inc()
		return nil, util.ErrCourseNameRequired
	}

	if !atomic.CompareAndSwapInt32(&s.generating, 0, 1) {
		monitoring.CourseGenerations.WithLabelValues("rejected").Inc()
		return nil, util.ErrGenerationInFlight
	}
	defer atomic.StoreInt32(&s.generating, 0)

	start := time.Now()
	defer func() {
		monitoring.GenerationDuration.Observe(time.Since(start).Seconds())
	}()

	genCtx := ctx
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	cid := model.GenerateUUID()

	draftJSON, err := json.Marshal(draft)
	if err != nil {
		monitoring.CourseGenerations.WithLabelValues("config_error").Inc()
		return nil, err
	}

	raw, err := s.AI.Complete(genCtx, coursePrompt+string(draftJSON))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrMissingAPIKey):
			monitoring.CourseGenerations.WithLabelValues("config_error").Inc()
		case errors.Is(err, util.ErrEmptyAIResponse):
			monitoring.CourseGenerations.WithLabelValues("empty_response").Inc()
		default:
			monitoring.CourseGenerations.WithLabelValues("ai_error").Inc()
		}
		logger.Log.Error("course generation completion failed",
			zap.String("cid", cid),
			zap.Error(err))
		return nil, err
	}

	course, err := ParseGeneratedCourse(raw)
	if err != nil {
		monitoring.CourseGenerations.WithLabelValues("invalid_schema").Inc()
		var se *SchemaError
		if errors.As(err, &se) {
			logger.Log.Error("generated course failed schema validation",
				zap.String("cid", cid),
				zap.Error(se.Reason),
				zap.String("raw", se.Raw))
		}
		return nil, err
	}

	bannerURL := util.PlaceholderBannerURL
	if s.Banner != nil && course.BannerImagePrompt != "" {
		url, bErr := s.Banner.Generate(genCtx, course.BannerImagePrompt)
		if bErr != nil {
			logger.Log.Warn("banner generation failed, using placeholder",
				zap.String("cid", cid),
				zap.Error(bErr))
		} else {
			bannerURL = url
		}
	}

	record := &model.Course{
		CID:          cid,
		Name:         course.Name,
		Category:     course.Category,
		Description:  course.Description,
		Chapters:     course.NoOfChapters,
		Level:        course.Level,
		IncludeVideo: course.IncludeVideo,
		CourseJSON:   datatypes.NewJSONType(*course),
		BannerURL:    bannerURL,
		Status:       model.CoursePublished,
	}

	if err := s.Store.Create(record); err != nil {
		monitoring.CourseGenerations.WithLabelValues("persistence_error").Inc()
		logger.Log.Error("course insert failed",
			zap.String("cid", cid),
			zap.Error(err))
		return nil, err
	}

	monitoring.CourseGenerations.WithLabelValues("success").Inc()
	logger.Log.Info("course generated",
		zap.String("cid", cid),
		zap.String("name", course.Name),
		zap.Int("chapters", course.NoOfChapters))

	return record, nil
}

// List returns all courses as dashboard summaries, newest first.
func (s *CourseService) List() ([]model.CourseSummary, error) {
	records, err := s.Store.FindAll()
	if err != nil {
		return nil, err
	}
	return ProjectCourses(records), nil
}

// GetView loads a course by its assigned ID and normalizes it for display.
func (s *CourseService) GetView(id uint) (*model.CourseView, error) {
	record, err := s.Store.FindByID(id)
	if err != nil {
		return nil, util.ErrCourseNotFound
	}
	return NormalizeCourse(record), nil
}

// GetViewByCID resolves a course by the pipeline-assigned cid.
func (s *CourseService) GetViewByCID(cid string) (*model.CourseView, error) {
	record, err := s.Store.FindByCID(cid)
	if err != nil {
		return nil, util.ErrCourseNotFound
	}
	return NormalizeCourse(record), nil
}

func (s *CourseService) Delete(id uint) error {
	if _, err := s.Store.FindByID(id); err != nil {
		return util.ErrCourseNotFound
	}
	return s.Store.Delete(id)
}
