package repository

import (
	"course_admin_backend/internal/model"

	"gorm.io/gorm"
)

type WorkerRepository struct {
	DB *gorm.DB
}

func NewWorkerRepository(db *gorm.DB) *WorkerRepository {
	return &WorkerRepository{DB: db}
}

func (r *WorkerRepository) Create(worker *model.Worker) error {
	return r.DB.Create(worker).Error
}

func (r *WorkerRepository) FindByID(id uint) (*model.Worker, error) {
	var worker model.Worker
	err := r.DB.First(&worker, id).Error
	return &worker, err
}

func (r *WorkerRepository) FindByEmail(email string) (*model.Worker, error) {
	var worker model.Worker
	err := r.DB.Where("email = ?", email).First(&worker).Error
	return &worker, err
}

func (r *WorkerRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Worker{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

// FindAll searches name/email/phone/code, newest first, with paging.
func (r *WorkerRepository) FindAll(search string, page, pageSize int) ([]model.Worker, int64, error) {
	var workers []model.Worker
	var total int64

	query := r.DB.Model(&model.Worker{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"name LIKE ? OR email LIKE ? OR phone LIKE ? OR code LIKE ?",
			like, like, like, like,
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page > 0 && pageSize > 0 {
		query = query.Offset((page - 1) * pageSize).Limit(pageSize)
	}

	err := query.Order("created_at DESC").Find(&workers).Error
	return workers, total, err
}

func (r *WorkerRepository) Update(worker *model.Worker) error {
	return r.DB.Save(worker).Error
}

func (r *WorkerRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Worker{}, id).Error
}

func (r *WorkerRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Worker{}).Count(&count).Error
	return count, err
}

func (r *WorkerRepository) CountByStatus(status model.WorkerStatus) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Worker{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
