package service

import (
	"context"
	"course_admin_backend/internal/model"
	"course_admin_backend/internal/util"
	"course_admin_backend/pkg/logger"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

type fakeTextGenerator struct {
	mu       sync.Mutex
	response string
	err      error
	calls    int
	release  chan struct{}
}

func (f *fakeTextGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeTextGenerator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeBannerGenerator struct {
	url   string
	err   error
	calls int
}

func (f *fakeBannerGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

type fakeCourseStore struct {
	mu      sync.Mutex
	courses []model.Course
	err     error
	creates int
}

func (f *fakeCourseStore) Create(course *model.Course) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	if f.err != nil {
		return f.err
	}
	course.ID = uint(len(f.courses) + 1)
	course.CreatedAt = time.Now()
	f.courses = append(f.courses, *course)
	return nil
}

func (f *fakeCourseStore) FindByID(id uint) (*model.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.courses {
		if f.courses[i].ID == id {
			return &f.courses[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeCourseStore) FindByCID(cid string) (*model.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.courses {
		if f.courses[i].CID == cid {
			return &f.courses[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeCourseStore) FindAll() ([]model.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Course, len(f.courses))
	copy(out, f.courses)
	return out, nil
}

func (f *fakeCourseStore) Delete(id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.courses {
		if f.courses[i].ID == id {
			f.courses = append(f.courses[:i], f.courses[i+1:]...)
			return nil
		}
	}
	return errors.New("record not found")
}

func (f *fakeCourseStore) createCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.creates
}

func validCompletion(t *testing.T, chapters int) string {
	t.Helper()
	chs := make([]model.GeneratedChapter, chapters)
	for i := range chs {
		chs[i] = model.GeneratedChapter{
			ChapterName: "Chapter",
			Duration:    "1h",
			Topics:      []string{"topic"},
			ImagePrompt: "image",
		}
	}
	payload := map[string]model.GeneratedCourse{
		"course": {
			Name:              "Generated Course",
			Description:       "desc",
			Category:          "Programming",
			Level:             model.LevelBeginner,
			IncludeVideo:      true,
			NoOfChapters:      chapters,
			BannerImagePrompt: "banner prompt",
			Chapters:          chs,
		},
	}
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return string(data)
}

func newDraft() *model.CourseDraft {
	return &model.CourseDraft{
		Name:         "Go for Beginners",
		Description:  "learn go",
		Category:     "Programming",
		Level:        model.LevelBeginner,
		NoOfChapters: 2,
	}
}

func TestCourseService_Generate_Success(t *testing.T) {
	ai := &fakeTextGenerator{response: validCompletion(t, 2)}
	banner := &fakeBannerGenerator{url: "https://cdn.example.com/banner.png"}
	store := &fakeCourseStore{}
	svc := NewCourseService(ai, banner, store, time.Minute)

	record, err := svc.Generate(context.Background(), newDraft())
	require.NoError(t, err)

	assert.NotEmpty(t, record.CID)
	assert.Equal(t, "Generated Course", record.Name)
	assert.Equal(t, 2, record.Chapters)
	assert.Equal(t, model.CoursePublished, record.Status)
	assert.Equal(t, "https://cdn.example.com/banner.png", record.BannerURL)
	assert.Equal(t, 1, banner.calls)
	assert.Equal(t, 1, store.createCount())

	stored := record.CourseJSON.Data()
	assert.Len(t, stored.Chapters, 2)
}

func TestCourseService_Generate_EmptyNameRejected(t *testing.T) {
	ai := &fakeTextGenerator{response: validCompletion(t, 2)}
	store := &fakeCourseStore{}
	svc := NewCourseService(ai, nil, store, time.Minute)

	draft := newDraft()
	draft.Name = "   "
	_, err := svc.Generate(context.Background(), draft)

	assert.ErrorIs(t, err, util.ErrCourseNameRequired)
	assert.Equal(t, 0, ai.callCount())
	assert.Equal(t, 0, store.createCount())
}

func TestCourseService_Generate_MissingAPIKeyNoPersist(t *testing.T) {
	ai := &fakeTextGenerator{err: util.ErrMissingAPIKey}
	store := &fakeCourseStore{}
	svc := NewCourseService(ai, nil, store, time.Minute)

	_, err := svc.Generate(context.Background(), newDraft())

	assert.ErrorIs(t, err, util.ErrMissingAPIKey)
	assert.Equal(t, 0, store.createCount())
}

func TestCourseService_Generate_SchemaFailureNoPersist(t *testing.T) {
	// Model returns one chapter fewer than requested.
	ai := &fakeTextGenerator{response: validCompletion(t, 1)}
	banner := &fakeBannerGenerator{url: "unused"}
	store := &fakeCourseStore{}
	svc := NewCourseService(ai, banner, store, time.Minute)

	_, err := svc.Generate(context.Background(), newDraft())

	assert.ErrorIs(t, err, util.ErrChapterCountMismatch)
	assert.Equal(t, 0, banner.calls)
	assert.Equal(t, 0, store.createCount())
}

func TestCourseService_Generate_BannerFailureFallsBackToPlaceholder(t *testing.T) {
	ai := &fakeTextGenerator{response: validCompletion(t, 2)}
	banner := &fakeBannerGenerator{err: errors.New("image service down")}
	store := &fakeCourseStore{}
	svc := NewCourseService(ai, banner, store, time.Minute)

	record, err := svc.Generate(context.Background(), newDraft())
	require.NoError(t, err)

	assert.Equal(t, util.PlaceholderBannerURL, record.BannerURL)
	assert.Equal(t, 1, store.createCount())
}

func TestCourseService_Generate_PersistFailureSurfaces(t *testing.T) {
	ai := &fakeTextGenerator{response: validCompletion(t, 2)}
	store := &fakeCourseStore{err: errors.New("disk full")}
	svc := NewCourseService(ai, nil, store, time.Minute)

	_, err := svc.Generate(context.Background(), newDraft())
	assert.Error(t, err)
}

func TestCourseService_Generate_RejectsConcurrentRuns(t *testing.T) {
	release := make(chan struct{})
	ai := &fakeTextGenerator{response: validCompletion(t, 2), release: release}
	store := &fakeCourseStore{}
	svc := NewCourseService(ai, nil, store, time.Minute)

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.Generate(context.Background(), newDraft())
		firstDone <- err
	}()

	// Wait for the first run to be inside the AI call.
	require.Eventually(t, func() bool {
		return ai.callCount() == 1
	}, time.Second, 5*time.Millisecond)

	_, err := svc.Generate(context.Background(), newDraft())
	assert.ErrorIs(t, err, util.ErrGenerationInFlight)

	close(release)
	require.NoError(t, <-firstDone)

	// The guard resets once the first run completes.
	_, err = svc.Generate(context.Background(), newDraft())
	assert.NoError(t, err)
}

func TestCourseService_Generate_GuardResetsAfterFailure(t *testing.T) {
	ai := &fakeTextGenerator{err: util.ErrEmptyAIResponse}
	store := &fakeCourseStore{}
	svc := NewCourseService(ai, nil, store, time.Minute)

	_, err := svc.Generate(context.Background(), newDraft())
	assert.ErrorIs(t, err, util.ErrEmptyAIResponse)

	ai.err = nil
	ai.response = validCompletion(t, 2)
	_, err = svc.Generate(context.Background(), newDraft())
	assert.NoError(t, err)
}

func TestCourseService_GetView_NotFound(t *testing.T) {
	svc := NewCourseService(nil, nil, &fakeCourseStore{}, time.Minute)
	_, err := svc.GetView(42)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestCourseService_GetViewByCID(t *testing.T) {
	ai := &fakeTextGenerator{response: validCompletion(t, 2)}
	store := &fakeCourseStore{}
	svc := NewCourseService(ai, nil, store, time.Minute)

	record, err := svc.Generate(context.Background(), newDraft())
	require.NoError(t, err)

	view, err := svc.GetViewByCID(record.CID)
	require.NoError(t, err)
	assert.Equal(t, record.CID, view.CID)
	assert.Equal(t, "Generated Course", view.Topic)
}

func TestCourseService_Delete(t *testing.T) {
	ai := &fakeTextGenerator{response: validCompletion(t, 2)}
	store := &fakeCourseStore{}
	svc := NewCourseService(ai, nil, store, time.Minute)

	record, err := svc.Generate(context.Background(), newDraft())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(record.ID))
	assert.ErrorIs(t, svc.Delete(record.ID), util.ErrCourseNotFound)
}
