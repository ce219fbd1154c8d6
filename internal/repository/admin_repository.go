package repository

import (
	"course_admin_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) FindByID(id uint) (*model.Admin, error) {
	var admin model.Admin
	err := r.DB.First(&admin, id).Error
	return &admin, err
}

func (r *AdminRepository) FindByEmail(email string) (*model.Admin, error) {
	var admin model.Admin
	err := r.DB.Where("email = ?", email).First(&admin).Error
	return &admin, err
}

func (r *AdminRepository) UpdateLastLogin(id uint) error {
	return r.DB.Model(&model.Admin{}).
		Where("id = ?", id).
		Update("last_login", time.Now()).
		Error
}
