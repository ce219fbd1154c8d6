package repository

import (
	"course_admin_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) FindByCID(cid string) (*model.Course, error) {
	var course model.Course
	err := r.DB.Where("cid = ?", cid).First(&course).Error
	return &course, err
}

// FindAll returns courses newest first; list projection relies on this order.
func (r *CourseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Order("created_at DESC").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindRecent(limit int) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&courses).Error
	return courses, err
}

// FindWithPlaceholderBanner lists courses whose enrichment degraded to the
// placeholder, for the backfill job.
func (r *CourseRepository) FindWithPlaceholderBanner(placeholder string) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Where("bannerurl = ? OR bannerurl = ''", placeholder).Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) UpdateBanner(id uint, url string) error {
	return r.DB.Model(&model.Course{}).
		Where("id = ?", id).
		Update("bannerurl", url).
		Error
}

func (r *CourseRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Course{}, id).Error
}

func (r *CourseRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).Count(&count).Error
	return count, err
}

func (r *CourseRepository) CountByCategory() ([]model.CategoryCount, error) {
	var counts []model.CategoryCount
	err := r.DB.Model(&model.Course{}).
		Select("category, COUNT(*) as count").
		Group("category").
		Order("count DESC").
		Scan(&counts).Error
	return counts, err
}
