package repository

import (
	"course_admin_backend/internal/model"

	"gorm.io/gorm"
)

type AssetRepository struct {
	DB *gorm.DB
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{DB: db}
}

func (r *AssetRepository) Create(asset *model.CourseAsset) error {
	return r.DB.Create(asset).Error
}

func (r *AssetRepository) FindByCourse(courseID uint) ([]model.CourseAsset, error) {
	var assets []model.CourseAsset
	err := r.DB.Where("course_id = ?", courseID).Order("chapter ASC").Find(&assets).Error
	return assets, err
}
