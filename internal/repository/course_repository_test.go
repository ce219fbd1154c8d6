package repository

import (
	"course_admin_backend/internal/model"
	"course_admin_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Course{}, &model.CourseAsset{}))

	t.Cleanup(func() {
		db.Exec("DELETE FROM course_assets")
		db.Exec("DELETE FROM courses")
	})

	return db
}

func seedCourse(t *testing.T, repo *CourseRepository, cid, name string, createdAt time.Time) *model.Course {
	t.Helper()
	course := &model.Course{
		CID:        cid,
		Name:       name,
		Category:   "Programming",
		Chapters:   2,
		Level:      model.LevelBeginner,
		CourseJSON: datatypes.NewJSONType(model.GeneratedCourse{Name: name, NoOfChapters: 2}),
		BannerURL:  "https://cdn.example.com/b.png",
		Status:     model.CoursePublished,
	}
	require.NoError(t, repo.Create(course))
	require.NoError(t, repo.DB.Model(course).Update("created_at", createdAt).Error)
	course.CreatedAt = createdAt
	return course
}

func TestCourseRepository_CreateAndFindByID(t *testing.T) {
	repo := NewCourseRepository(newTestDB(t))

	created := seedCourse(t, repo, "cid-1", "Go Basics", time.Now())

	found, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go Basics", found.Name)
	assert.Equal(t, "cid-1", found.CID)

	stored := found.CourseJSON.Data()
	assert.Equal(t, 2, stored.NoOfChapters)
}

func TestCourseRepository_FindByCID(t *testing.T) {
	repo := NewCourseRepository(newTestDB(t))
	seedCourse(t, repo, "cid-abc", "Course A", time.Now())

	found, err := repo.FindByCID("cid-abc")
	require.NoError(t, err)
	assert.Equal(t, "Course A", found.Name)

	_, err = repo.FindByCID("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCourseRepository_FindAll_NewestFirst(t *testing.T) {
	repo := NewCourseRepository(newTestDB(t))
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	seedCourse(t, repo, "cid-old", "Oldest", base)
	seedCourse(t, repo, "cid-mid", "Middle", base.Add(24*time.Hour))
	seedCourse(t, repo, "cid-new", "Newest", base.Add(48*time.Hour))

	courses, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, courses, 3)
	assert.Equal(t, "Newest", courses[0].Name)
	assert.Equal(t, "Middle", courses[1].Name)
	assert.Equal(t, "Oldest", courses[2].Name)
}

func TestCourseRepository_FindRecent_Limits(t *testing.T) {
	repo := NewCourseRepository(newTestDB(t))
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 4; i++ {
		seedCourse(t, repo, string(rune('a'+i))+"-cid", "Course", base.Add(time.Duration(i)*time.Hour))
	}

	recent, err := repo.FindRecent(2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}

func TestCourseRepository_UpdateBanner(t *testing.T) {
	repo := NewCourseRepository(newTestDB(t))
	course := seedCourse(t, repo, "cid-1", "Course", time.Now())

	require.NoError(t, repo.UpdateBanner(course.ID, "https://cdn.example.com/new.png"))

	found, err := repo.FindByID(course.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/new.png", found.BannerURL)
}

func TestCourseRepository_FindWithPlaceholderBanner(t *testing.T) {
	repo := NewCourseRepository(newTestDB(t))
	course := seedCourse(t, repo, "cid-1", "Degraded", time.Now())
	seedCourse(t, repo, "cid-2", "Healthy", time.Now())

	require.NoError(t, repo.UpdateBanner(course.ID, util.PlaceholderBannerURL))

	pending, err := repo.FindWithPlaceholderBanner(util.PlaceholderBannerURL)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Degraded", pending[0].Name)
}

func TestCourseRepository_Delete(t *testing.T) {
	repo := NewCourseRepository(newTestDB(t))
	course := seedCourse(t, repo, "cid-1", "Course", time.Now())

	require.NoError(t, repo.Delete(course.ID))

	_, err := repo.FindByID(course.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCourseRepository_CountByCategory(t *testing.T) {
	repo := NewCourseRepository(newTestDB(t))

	a := seedCourse(t, repo, "cid-1", "One", time.Now())
	seedCourse(t, repo, "cid-2", "Two", time.Now())
	require.NoError(t, repo.DB.Model(a).Update("category", "Science").Error)

	counts, err := repo.CountByCategory()
	require.NoError(t, err)
	require.Len(t, counts, 2)

	byName := map[string]int64{}
	for _, c := range counts {
		byName[c.Category] = c.Count
	}
	assert.Equal(t, int64(1), byName["Science"])
	assert.Equal(t, int64(1), byName["Programming"])
}

func TestAssetRepository_FindByCourse_OrdersByChapter(t *testing.T) {
	db := newTestDB(t)
	courses := NewCourseRepository(db)
	assets := NewAssetRepository(db)

	course := seedCourse(t, courses, "cid-1", "Course", time.Now())

	require.NoError(t, assets.Create(&model.CourseAsset{CourseID: course.ID, Kind: model.AssetVideo, Chapter: 2, URL: "/v2"}))
	require.NoError(t, assets.Create(&model.CourseAsset{CourseID: course.ID, Kind: model.AssetVideo, Chapter: 1, URL: "/v1"}))
	require.NoError(t, assets.Create(&model.CourseAsset{CourseID: course.ID, Kind: model.AssetBanner, URL: "/b"}))

	list, err := assets.FindByCourse(course.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 0, list[0].Chapter)
	assert.Equal(t, "/v1", list[1].URL)
	assert.Equal(t, "/v2", list[2].URL)
}
